package tour

import "errors"

var (
	// ErrStepNotFound classifies navigation towards a name that is not registered.
	ErrStepNotFound = errors.New("step not found")
	// ErrStartTimeout classifies a start that gave up waiting for steps to register.
	ErrStartTimeout = errors.New("no steps registered before start retry budget ran out")
	// ErrMeasurementUnavailable is returned by targets that have not been laid out.
	ErrMeasurementUnavailable = errors.New("target measurement unavailable")
	// ErrStaleStep classifies a current step that was unregistered while active.
	ErrStaleStep = errors.New("current step is no longer registered")
)
