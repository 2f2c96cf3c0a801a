package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameQueueRunsOnNextTick(t *testing.T) {
	t.Parallel()

	q := NewFrameQueue()
	var ran []int
	q.NextFrame(func() { ran = append(ran, 1) })
	q.NextFrame(func() { ran = append(ran, 2) })
	q.NextFrame(nil)
	require.Equal(t, 2, q.Pending())
	require.Empty(t, ran, "nothing runs inline")

	require.Equal(t, 2, q.Tick())
	require.Equal(t, []int{1, 2}, ran)
	require.Zero(t, q.Pending())
	require.EqualValues(t, 1, q.Frame())
}

func TestFrameQueueDefersWorkScheduledDuringTick(t *testing.T) {
	t.Parallel()

	q := NewFrameQueue()
	count := 0
	var retry func()
	retry = func() {
		count++
		if count < 3 {
			q.NextFrame(retry)
		}
	}
	q.NextFrame(retry)

	q.Tick()
	require.Equal(t, 1, count)
	q.Tick()
	require.Equal(t, 2, count)
	q.Tick()
	require.Equal(t, 3, count)
	require.Zero(t, q.Tick())
	require.EqualValues(t, 4, q.Frame())
}
