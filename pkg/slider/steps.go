package slider

import "math"

// MaxStepMarks caps the number of marks StepPositions produces; denser
// ranges get no marks at all.
const MaxStepMarks = 100

// StepPositions returns the position in [0,1] of every step between min and
// max. The last position is always 1, even when the range is not a whole
// number of steps. It returns nil when step is not positive, when the range
// is empty or not finite, or when there would be more than MaxStepMarks marks.
func StepPositions(min, max, step float64) []float64 {
	span := max - min
	if step <= 0 || span <= 0 || math.IsInf(step, 0) {
		return nil
	}
	n := math.Floor(span/step + 1e-9)
	if math.IsNaN(n) || n+1 > MaxStepMarks {
		return nil
	}
	count := int(n)
	positions := make([]float64, 0, count+2)
	for i := 0; i <= count; i++ {
		positions = append(positions, math.Min(float64(i)*step/span, 1))
	}
	if positions[len(positions)-1] < 1 {
		positions = append(positions, 1)
	}
	return positions
}
