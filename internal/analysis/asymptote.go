package analysis

import (
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// Candidate is a suspected vertical asymptote, tagged with the heuristic
// that flagged it. It is a candidate, not a proven singularity.
type Candidate struct {
	X      float64
	Method string
}

// Detection method tags.
const (
	MethodUndefined  = "undefined-point"
	MethodSignFlip   = "sign-flip"
	MethodSlopeSpike = "slope-spike"
)

// ScanAsymptotes sweeps [xMin, xMax] in a fixed number of steps, looking
// at each point and its two neighbors. It works in logical coordinates;
// the renderer passes its visible window and a threshold scaled to the
// current zoom. Candidates closer than the dedup distance keep only the
// first occurrence, so the result is ordered and sparse.
func ScanAsymptotes(ev *expr.Evaluator, xMin, xMax, yThreshold float64, p Params) []Candidate {
	if xMax <= xMin || p.AsymptoteSteps <= 0 {
		return nil
	}
	step := (xMax - xMin) / float64(p.AsymptoteSteps)
	minGap := p.AsymptoteDedupSteps * step

	var found []Candidate
	for i := 0; i < p.AsymptoteSteps; i++ {
		x := xMin + float64(i)*step
		y := ev.Eval(x)
		yl := ev.Eval(x - step)
		yr := ev.Eval(x + step)

		method := ""
		switch {
		case !finite(y) && finite(yl) && finite(yr):
			method = MethodUndefined
		case finite(yl) && finite(yr) &&
			math.Abs(yl) > yThreshold && math.Abs(yr) > yThreshold &&
			yl*yr < 0:
			method = MethodSignFlip
		case finite(y) && finite(yl) && finite(yr) &&
			math.Max(math.Abs(y-yl), math.Abs(yr-y))/step > yThreshold/step &&
			(yl > yThreshold && yr < -yThreshold || yl < -yThreshold && yr > yThreshold):
			method = MethodSlopeSpike
		}
		if method == "" {
			continue
		}

		dup := false
		for _, c := range found {
			if math.Abs(c.X-x) < minGap {
				dup = true
				break
			}
		}
		if !dup {
			found = append(found, Candidate{X: x, Method: method})
		}
	}
	return found
}
