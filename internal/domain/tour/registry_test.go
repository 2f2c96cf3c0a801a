package tour

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(steps ...Step) *Registry {
	r := NewRegistry()
	for _, s := range steps {
		r.Register(s)
	}
	return r
}

func names(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}
	return out
}

func TestRegistryFirstAndLast(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, ok := r.First()
	require.False(t, ok, "empty registry has no first step")
	_, ok = r.Last()
	require.False(t, ok, "empty registry has no last step")

	r.Register(Step{Name: "b", Order: 20})
	r.Register(Step{Name: "c", Order: 30})
	r.Register(Step{Name: "a", Order: 10})

	for i := 0; i < 3; i++ {
		first, ok := r.First()
		require.True(t, ok)
		require.Equal(t, "a", first.Name)
		last, ok := r.Last()
		require.True(t, ok)
		require.Equal(t, "c", last.Name)
	}
}

func TestRegistryNextPrevSkipGaps(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(
		Step{Name: "intro", Order: 1},
		Step{Name: "search", Order: 5},
		Step{Name: "profile", Order: 42},
	)

	intro, _ := r.ByName("intro")
	search, _ := r.ByName("search")
	profile, _ := r.ByName("profile")

	next, ok := r.Next(intro)
	require.True(t, ok)
	require.Equal(t, "search", next.Name)

	next, ok = r.Next(search)
	require.True(t, ok)
	require.Equal(t, "profile", next.Name)

	_, ok = r.Next(profile)
	require.False(t, ok, "last step has no successor")

	prev, ok := r.Prev(profile)
	require.True(t, ok)
	require.Equal(t, "search", prev.Name)

	_, ok = r.Prev(intro)
	require.False(t, ok, "first step has no predecessor")
}

func TestRegistryNextPrevAreSymmetric(t *testing.T) {
	t.Parallel()

	orders := []int{7, -3, 12, 0, 99, 4}
	r := NewRegistry()
	for i, order := range orders {
		r.Register(Step{Name: fmt.Sprintf("s%d", i), Order: order})
	}

	steps := r.Steps()
	require.Len(t, steps, len(orders))
	for i := 0; i+1 < len(steps); i++ {
		next, ok := r.Next(steps[i])
		require.True(t, ok)
		require.Equal(t, steps[i+1].Name, next.Name)

		prev, ok := r.Prev(steps[i+1])
		require.True(t, ok)
		require.Equal(t, steps[i].Name, prev.Name)
	}
}

func TestRegistryTiesBreakByRegistrationSequence(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(
		Step{Name: "zeta", Order: 1},
		Step{Name: "alpha", Order: 1},
		Step{Name: "mid", Order: 1},
	)

	require.Equal(t, []string{"zeta", "alpha", "mid"}, names(r.Steps()))

	first, _ := r.First()
	require.Equal(t, "zeta", first.Name)
	last, _ := r.Last()
	require.Equal(t, "mid", last.Name)

	next, ok := r.Next(first)
	require.True(t, ok)
	require.Equal(t, "alpha", next.Name)

	prev, ok := r.Prev(last)
	require.True(t, ok)
	require.Equal(t, "alpha", prev.Name)
}

func TestRegistryUpsertKeepsSequence(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(
		Step{Name: "a", Order: 1, Text: "old"},
		Step{Name: "b", Order: 1},
	)
	r.Register(Step{Name: "a", Order: 1, Text: "new"})

	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"a", "b"}, names(r.Steps()))
	a, ok := r.ByName("a")
	require.True(t, ok)
	require.Equal(t, "new", a.Text)
}

func TestRegistryRegisterUnregisterRoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(Step{Name: "a", Order: 1}, Step{Name: "b", Order: 2})
	before := names(r.Steps())

	r.Register(Step{Name: "c", Order: 0})
	require.True(t, r.Contains("c"))
	r.Unregister("c")

	require.False(t, r.Contains("c"))
	require.Equal(t, before, names(r.Steps()))
	first, _ := r.First()
	require.Equal(t, "a", first.Name)
}

func TestRegistryIgnoresEmptyNames(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Step{Order: 1})
	require.Zero(t, r.Len())
}

func TestRegistryDetachIgnoresLateMutations(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(Step{Name: "a", Order: 1})
	r.Detach()
	require.True(t, r.Detached())

	require.NotPanics(t, func() {
		r.Unregister("a")
		r.Register(Step{Name: "b", Order: 2})
	})
	require.True(t, r.Contains("a"))
	require.False(t, r.Contains("b"))
}

func TestRegistryStaleStepUsesOrderOnly(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(
		Step{Name: "a", Order: 1},
		Step{Name: "b", Order: 2},
		Step{Name: "c", Order: 3},
	)
	b, _ := r.ByName("b")
	r.Unregister("b")

	next, ok := r.Next(b)
	require.True(t, ok)
	require.Equal(t, "c", next.Name)

	prev, ok := r.Prev(b)
	require.True(t, ok)
	require.Equal(t, "a", prev.Name)
	require.Zero(t, r.Position(b))
}

func TestRegistryPosition(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(
		Step{Name: "c", Order: 30},
		Step{Name: "a", Order: 10},
		Step{Name: "b", Order: 20},
	)
	for i, name := range []string{"a", "b", "c"} {
		s, _ := r.ByName(name)
		require.Equal(t, i+1, r.Position(s))
	}
}

func TestNilRegistryIsSafe(t *testing.T) {
	t.Parallel()

	var r *Registry
	require.NotPanics(t, func() {
		r.Register(Step{Name: "a"})
		r.Unregister("a")
		r.Detach()
	})
	require.Zero(t, r.Len())
	_, ok := r.First()
	require.False(t, ok)
	require.Empty(t, r.Steps())
}

func TestTargetFuncAndRect(t *testing.T) {
	t.Parallel()

	target := TargetFunc(func(context.Context) (Rect, error) {
		return Rect{X: 1, Y: 2, Width: 3, Height: 4}, nil
	})
	rect, err := target.Measure(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4.0, rect.Right())
	require.Equal(t, 6.0, rect.Bottom())
	require.False(t, rect.Empty())
	require.True(t, Rect{Width: 3}.Empty())
	require.True(t, Size{}.Empty())
}
