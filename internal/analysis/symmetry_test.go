package analysis

import (
	"testing"

	"github.com/san-kum/funcscope/internal/expr"
)

func compileT(t *testing.T, raw string) *expr.Evaluator {
	t.Helper()
	ev, err := expr.Compile(raw)
	if err != nil {
		t.Fatalf("Compile(%q): %v", raw, err)
	}
	return ev
}

func TestSymmetry(t *testing.T) {
	tests := []struct {
		raw  string
		even bool
		odd  bool
	}{
		{"x^2", true, false},
		{"x^3", false, true},
		{"x+1", false, false},
		{"cos(x)", true, false},
		{"sin(x)", false, true},
		{"abs(x)", true, false},
		{"sqrt(x)", false, false}, // no finite mirrored pair exists
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			even, odd := Symmetry(compileT(t, tt.raw), DefaultParams())
			if even != tt.even || odd != tt.odd {
				t.Errorf("Symmetry(%s) = (even=%v, odd=%v), want (even=%v, odd=%v)",
					tt.raw, even, odd, tt.even, tt.odd)
			}
		})
	}
}
