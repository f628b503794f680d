package analysis

import (
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// Report is the aggregate analysis of one compiled expression. It is
// assembled once per successful compile and immutable afterwards.
type Report struct {
	Expression string   `json:"expression"`
	Canonical  string   `json:"canonical"`
	IsFunction bool     `json:"is_function"`
	IsEven     bool     `json:"is_even"`
	IsOdd      bool     `json:"is_odd"`
	IsOneToOne bool     `json:"is_one_to_one"`
	Domain     string   `json:"domain"`
	Range      string   `json:"range"`
	Properties []string `json:"properties"`
}

// verticalLinePoints is the probe grid for the function sanity gate.
var verticalLinePoints = [...]float64{-5, -2, 0, 1, 3, 5}

// Analyze runs every analyzer against ev and assembles the report. The
// analyzers are independent; order here is presentation order only.
func Analyze(ev *expr.Evaluator, p Params) *Report {
	r := &Report{
		Expression: ev.Source(),
		Canonical:  ev.Canonical(),
		IsFunction: isFunction(ev),
	}
	r.IsEven, r.IsOdd = Symmetry(ev, p)
	r.IsOneToOne = OneToOne(ev, p)
	r.Domain = Domain(ev, p)
	r.Range = Range(ev, p)
	r.Properties = properties(r)
	return r
}

// isFunction is a simplified vertical-line test. The evaluator is total
// and deterministic by construction, so each probe can only ever produce
// one value; this re-checks that determinism holds rather than proving
// anything about multi-valuedness.
func isFunction(ev *expr.Evaluator) bool {
	for _, x := range verticalLinePoints {
		a, b := ev.Eval(x), ev.Eval(x)
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

func properties(r *Report) []string {
	var labels []string
	if r.IsFunction {
		labels = append(labels, "function")
	}
	switch {
	case r.IsEven && r.IsOdd:
		labels = append(labels, "even and odd (zero function)")
	case r.IsEven:
		labels = append(labels, "even symmetry")
	case r.IsOdd:
		labels = append(labels, "odd symmetry")
	default:
		labels = append(labels, "no symmetry")
	}
	if r.IsOneToOne {
		labels = append(labels, "one-to-one")
	} else {
		labels = append(labels, "not one-to-one")
	}
	return labels
}
