package analysis

import (
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// SamplePoint is one probe of an analyzer sweep. Y may be NaN or infinite
// where the function is undefined or diverges.
type SamplePoint struct {
	X, Y float64
}

// Sweep evaluates ev on the closed interval [min, max] with the given
// step. The grid is computed by index, not by accumulation, so long sweeps
// do not drift.
func Sweep(ev *expr.Evaluator, min, max, step float64) []SamplePoint {
	n := int(math.Round((max-min)/step)) + 1
	if n < 1 {
		return nil
	}
	pts := make([]SamplePoint, 0, n)
	for i := 0; i < n; i++ {
		x := min + float64(i)*step
		pts = append(pts, SamplePoint{X: x, Y: ev.Eval(x)})
	}
	return pts
}

func finite(y float64) bool {
	return !math.IsNaN(y) && !math.IsInf(y, 0)
}
