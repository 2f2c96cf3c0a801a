package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

func validTour() *Tour {
	return &Tour{
		Version: "1.0.0",
		Name:    "tour",
		Steps: []Step{
			{Name: "first", Order: 1, Text: "one", Target: Region{Width: 10, Height: 2}},
			{Name: "second", Order: 2, Text: "two", Target: Region{X: 3, Y: 4, Width: 5, Height: 6}},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(*Tour)
		wantField string
	}{
		{name: "valid tour", mutate: func(*Tour) {}},
		{name: "bad version", mutate: func(c *Tour) { c.Version = "beta" }, wantField: "version"},
		{name: "missing name", mutate: func(c *Tour) { c.Name = "" }, wantField: "name"},
		{name: "no steps", mutate: func(c *Tour) { c.Steps = nil }, wantField: "steps"},
		{name: "uppercase step name", mutate: func(c *Tour) { c.Steps[0].Name = "First" }, wantField: "steps[0].name"},
		{name: "missing text", mutate: func(c *Tour) { c.Steps[1].Text = "" }, wantField: "steps[1].text"},
		{name: "zero width target", mutate: func(c *Tour) { c.Steps[1].Target.Width = 0 }, wantField: "steps[1].target.width"},
		{name: "negative x", mutate: func(c *Tour) { c.Steps[0].Target.X = -1 }, wantField: "steps[0].target.x"},
		{name: "duplicate names", mutate: func(c *Tour) { c.Steps[1].Name = "first" }, wantField: "steps[1].name"},
		{name: "unknown start_at", mutate: func(c *Tour) { c.StartAt = "nowhere" }, wantField: "start_at"},
		{name: "known start_at", mutate: func(c *Tour) { c.StartAt = "second" }},
		{name: "unknown easing", mutate: func(c *Tour) { c.Settings.Easing = "bouncy" }, wantField: "settings.easing"},
		{name: "unknown transition", mutate: func(c *Tour) { c.Settings.Transition = "fade" }, wantField: "settings.transition"},
		{name: "unknown direction", mutate: func(c *Tour) { c.Settings.Direction = "up" }, wantField: "settings.direction"},
		{name: "negative padding", mutate: func(c *Tour) { c.Settings.Padding = -1 }, wantField: "settings.padding"},
		{name: "duplicate orders allowed", mutate: func(c *Tour) { c.Steps[1].Order = 1 }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validTour()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *walkthrougherrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *walkthrougherrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}
