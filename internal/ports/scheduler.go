package ports

// FrameScheduler is the host's "run on next paint frame" primitive. The
// callback runs on the host's UI thread during a later frame, never inline.
type FrameScheduler interface {
	NextFrame(fn func())
}
