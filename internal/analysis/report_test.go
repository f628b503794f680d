package analysis

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	r := Analyze(compileT(t, "x^2"), DefaultParams())

	if !r.IsFunction {
		t.Error("x^2 should pass the vertical-line gate")
	}
	if !r.IsEven || r.IsOdd {
		t.Errorf("x^2 symmetry: even=%v odd=%v", r.IsEven, r.IsOdd)
	}
	if r.IsOneToOne {
		t.Error("x^2 should not be one-to-one")
	}
	if r.Domain != "all real numbers" {
		t.Errorf("domain = %q", r.Domain)
	}
	if r.Range != "y ≥ 0" {
		t.Errorf("range = %q", r.Range)
	}
	if len(r.Properties) == 0 {
		t.Error("expected property labels")
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	// Recompiling and re-analyzing the same text must give an identical
	// report: the sweeps are fixed grids over a deterministic evaluator.
	for _, raw := range []string{"x^2", "sin(x)", "1/x", "sqrt(x+2)"} {
		a := Analyze(compileT(t, raw), DefaultParams())
		b := Analyze(compileT(t, raw), DefaultParams())
		if !reflect.DeepEqual(a, b) {
			t.Errorf("reports for %q differ:\n%+v\n%+v", raw, a, b)
		}
	}
}

func TestSweep(t *testing.T) {
	pts := Sweep(compileT(t, "x"), -1, 1, 0.5)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	if pts[0].X != -1 || pts[4].X != 1 {
		t.Errorf("grid endpoints wrong: %v", pts)
	}
	for _, pt := range pts {
		if pt.Y != pt.X {
			t.Errorf("f(x)=x sampled wrong at %v", pt)
		}
	}
}
