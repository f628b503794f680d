package expr

import "math"

// Evaluator is the compiled form of a user expression: a pure, total
// function of one real variable. Eval never fails and never allocates;
// undefined points come back as NaN. An Evaluator is immutable after
// Compile and safe for concurrent readers.
type Evaluator struct {
	root      *node
	source    string
	canonical string
}

// probePoints is the fixed self-test grid. An expression that is finite at
// none of these points is rejected as unevaluable.
var probePoints = [...]float64{0, 1, -1, 0.5, 2}

// Compile normalizes, parses and self-tests a raw expression. It returns
// ErrEmptyExpression, a *SyntaxError or a *UnevaluableError on bad input;
// a non-nil Evaluator otherwise.
func Compile(raw string) (*Evaluator, error) {
	canonical, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	root, err := parse(canonical)
	if err != nil {
		return nil, err
	}
	ev := &Evaluator{root: root, source: raw, canonical: canonical}
	for _, x := range probePoints {
		if y := ev.Eval(x); !math.IsNaN(y) && !math.IsInf(y, 0) {
			return ev, nil
		}
	}
	return nil, &UnevaluableError{Canonical: canonical}
}

// Eval evaluates the expression at x. Points where the expression is
// mathematically undefined evaluate to NaN; signed infinities from
// division by zero pass through so callers can observe the direction of
// divergence.
func (e *Evaluator) Eval(x float64) float64 {
	return e.root.eval(x)
}

// Canonical returns the normalized text the evaluator was compiled from.
func (e *Evaluator) Canonical() string { return e.canonical }

// Source returns the raw text as the user typed it.
func (e *Evaluator) Source() string { return e.source }
