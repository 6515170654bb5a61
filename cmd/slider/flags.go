package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/slider/internal/config"
	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/slider"
)

// stateFlags override the slider section of slider.json.
type stateFlags struct {
	value       float64
	minimum     float64
	maximum     float64
	step        float64
	orientation string
	markSteps   bool
	size        string
}

var stateFlagNames = []string{"value", "min", "max", "step", "orientation", "mark-steps", "size"}

func addStateFlags(cmd *cobra.Command, f *stateFlags) {
	fs := cmd.Flags()
	fs.Float64Var(&f.value, "value", 0, "Slider value")
	fs.Float64Var(&f.minimum, "min", 0, "Range minimum")
	fs.Float64Var(&f.maximum, "max", 100, "Range maximum")
	fs.Float64Var(&f.step, "step", 1, "Step size (0 for continuous)")
	fs.StringVar(&f.orientation, "orientation", "horizontal", "Orientation (horizontal, vertical)")
	fs.BoolVar(&f.markSteps, "mark-steps", false, "Draw a mark at every step")
	fs.StringVar(&f.size, "size", slider.DefaultControlSize, "Control size class")
}

// resolve applies the flags the user set to cfg and returns the validated
// initial state. Errors caused by a flag carry CodeInvalidFlags.
func (f *stateFlags) resolve(cmd *cobra.Command, cfg *config.Config) (slider.State, error) {
	fs := cmd.Flags()
	changed := false
	for _, name := range stateFlagNames {
		if fs.Changed(name) {
			changed = true
		}
	}

	if fs.Changed("value") {
		cfg.Slider.Value = f.value
	}
	if fs.Changed("min") {
		cfg.Slider.Minimum = f.minimum
	}
	if fs.Changed("max") {
		cfg.Slider.Maximum = f.maximum
	}
	if fs.Changed("step") {
		cfg.Slider.Step = f.step
	}
	if fs.Changed("orientation") {
		cfg.Slider.Orientation = f.orientation
	}
	if fs.Changed("mark-steps") {
		cfg.Slider.MarkSteps = f.markSteps
	}
	if fs.Changed("size") {
		cfg.Slider.ControlSize = f.size
	}

	if err := cfg.Validate(); err != nil {
		if changed {
			return slider.State{}, errors.New(errors.CodeInvalidFlags).
				Wrap(err).
				WithSuggestion("Check --value, --min, --max, --step and --orientation")
		}
		return slider.State{}, err
	}
	return cfg.State()
}
