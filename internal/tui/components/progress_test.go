package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	t.Run("uses requested width", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(12)
		require.Equal(t, 12, p.bar.Width)
	})

	t.Run("falls back to default width", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(0)
		require.Equal(t, defaultBarWidth, p.bar.Width)
	})
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		step  int
		total int
		want  string
	}{
		{name: "first of several", step: 1, total: 4, want: "1/4"},
		{name: "last step", step: 4, total: 4, want: "4/4"},
		{name: "empty tour", step: 0, total: 0, want: "?/0"},
		{name: "step outside traversal", step: 0, total: 3, want: "?/3"},
		{name: "position beyond total", step: 5, total: 3, want: "5/3"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			view := NewProgress(10).View(tc.step, tc.total)
			require.Contains(t, view, tc.want)
			require.Greater(t, len(strings.TrimSpace(view)), len(tc.want))
		})
	}
}
