package analysis

import (
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// symmetryPoints is the positive half of the mirrored sample grid. Zero is
// excluded: f(0) says nothing about symmetry.
var symmetryPoints = [...]float64{3, 2, 1, 0.5}

// Symmetry classifies ev as even, odd, both or neither from mirrored
// sample pairs. A class is claimed only when at least the agreement
// fraction of the finite pairs matches it; with no finite pair at all the
// function is neither.
func Symmetry(ev *expr.Evaluator, p Params) (even, odd bool) {
	pairs, evenHits, oddHits := 0, 0, 0
	for _, x := range symmetryPoints {
		pos := ev.Eval(x)
		neg := ev.Eval(-x)
		if !finite(pos) || !finite(neg) {
			continue
		}
		pairs++
		if math.Abs(neg-pos) < p.SymmetryTol {
			evenHits++
		}
		if math.Abs(neg+pos) < p.SymmetryTol {
			oddHits++
		}
	}
	if pairs == 0 {
		return false, false
	}
	need := p.SymmetryAgreement * float64(pairs)
	return float64(evenHits) >= need, float64(oddHits) >= need
}
