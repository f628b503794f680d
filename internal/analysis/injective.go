package analysis

import (
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// OneToOne reports whether ev looks injective over [-5, 5] sampled in
// steps of 0.5. The first pair of outputs closer than the tolerance
// settles the question negatively; a positive verdict additionally
// requires enough finite samples to mean anything.
func OneToOne(ev *expr.Evaluator, p Params) bool {
	seen := make([]float64, 0, 21)
	for i := 0; i <= 20; i++ {
		x := -5 + 0.5*float64(i)
		y := ev.Eval(x)
		if !finite(y) {
			continue
		}
		for _, prev := range seen {
			if math.Abs(y-prev) < p.InjectiveTol {
				return false
			}
		}
		seen = append(seen, y)
	}
	return len(seen) >= p.InjectiveMinSamples
}
