package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/overlay"
	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

const validYAML = `version: "1.0"
name: "Demo tour"
start_at: editor
settings:
  padding: 2
  transition: spring
  direction: rtl
steps:
  - name: sidebar
    order: 1
    text: "Navigate between sections here."
    target: {x: 0, y: 1, width: 20, height: 10}
  - name: editor
    order: 2
    text: "Write here."
    target: {x: 21, y: 1, width: 40, height: 10}
`

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Tour, err error)
	}{
		{
			name:     "valid tour is parsed and defaulted",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Tour, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Demo tour", cfg.Name)
				require.Equal(t, "editor", cfg.StartAt)
				require.Len(t, cfg.Steps, 2)
				require.Equal(t, Region{X: 21, Y: 1, Width: 40, Height: 10}, cfg.Steps[1].Target)
				require.Equal(t, 2.0, cfg.Settings.Padding)
				require.Equal(t, "spring", cfg.Settings.Transition)
				require.Equal(t, DefaultMaxStartTries, cfg.Settings.MaxStartTries)
				require.Equal(t, DefaultFPS, cfg.Settings.FPS)
				require.NotNil(t, cfg.Settings.Animated)
				require.True(t, *cfg.Settings.Animated)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "version: \"1.0\"\nname: [broken\n",
			assert: func(t *testing.T, cfg *Tour, err error) {
				require.Nil(t, cfg)
				var parseErr *walkthrougherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "tour.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "type mismatch returns parse error",
			contents: "version: [1, 0]\nname: x\n",
			assert: func(t *testing.T, cfg *Tour, err error) {
				var parseErr *walkthrougherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "missing steps returns validation error",
			contents: "version: \"1.0\"\nname: empty\n",
			assert: func(t *testing.T, cfg *Tour, err error) {
				var validationErr *walkthrougherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "steps", validationErr.Field)
			},
		},
		{
			name:     "explicit animated false is kept",
			contents: "version: \"1.0\"\nname: still\nsettings:\n  animated: false\nsteps:\n  - {name: a, order: 1, text: t, target: {x: 0, y: 0, width: 1, height: 1}}\n",
			assert: func(t *testing.T, cfg *Tour, err error) {
				require.NoError(t, err)
				require.False(t, *cfg.Settings.Animated)
				require.False(t, cfg.Settings.AnimatorOptions().Animated)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse("tour.yaml", []byte(tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	cfg, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "Demo tour", cfg.Name)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *walkthrougherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsConversion(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("tour.yaml", []byte(validYAML))
	require.NoError(t, err)

	engine := cfg.Settings.Engine()
	require.Equal(t, 2.0, engine.Padding)
	require.Equal(t, overlay.RightToLeft, engine.Direction)

	opts := cfg.Settings.AnimatorOptions()
	require.Equal(t, overlay.Spring, opts.Mode)
	require.Equal(t, 300*time.Millisecond, opts.Duration)
	require.Equal(t, DefaultFrequency, opts.Frequency)
	require.Equal(t, DefaultDamping, opts.Damping)
	require.Equal(t, time.Second/60, cfg.Settings.FrameInterval())
}

func TestTourRegistry(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("tour.yaml", []byte(`version: "1.0"
name: ordering
steps:
  - {name: third, order: 3, text: c, target: {x: 0, y: 0, width: 1, height: 1}}
  - {name: first, order: 1, text: a, target: {x: 0, y: 0, width: 1, height: 1}}
  - {name: tie, order: 1, text: b, target: {x: 5, y: 6, width: 7, height: 8}}
`))
	require.NoError(t, err)

	registry := cfg.Registry()
	var names []string
	for _, step := range registry.Steps() {
		names = append(names, step.Name)
	}
	require.Equal(t, []string{"first", "tie", "third"}, names)

	tie, ok := registry.ByName("tie")
	require.True(t, ok)
	rect, err := tie.Target.Measure(context.Background())
	require.NoError(t, err)
	require.Equal(t, cfg.Steps[2].Target.Rect(), rect)
}
