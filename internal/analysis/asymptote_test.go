package analysis

import (
	"math"
	"testing"
)

func TestScanAsymptotes_Reciprocal(t *testing.T) {
	ev := compileT(t, "1/x")
	p := DefaultParams()
	cands := ScanAsymptotes(ev, -10, 10, 40, p)

	if len(cands) != 1 {
		t.Fatalf("expected exactly 1 candidate, got %d: %v", len(cands), cands)
	}
	step := 20.0 / float64(p.AsymptoteSteps)
	if math.Abs(cands[0].X) > step {
		t.Errorf("candidate at %g, want within one step (%g) of 0", cands[0].X, step)
	}
}

func TestScanAsymptotes_Smooth(t *testing.T) {
	for _, raw := range []string{"x^2", "sin(x)", "exp(x)"} {
		ev := compileT(t, raw)
		if cands := ScanAsymptotes(ev, -10, 10, 40, DefaultParams()); len(cands) != 0 {
			t.Errorf("ScanAsymptotes(%s) = %v, want none", raw, cands)
		}
	}
}

func TestScanAsymptotes_Dedup(t *testing.T) {
	// tan has poles every π; with dedup distance 10 steps (0.1 here) each
	// pole should appear once, and the list should be ordered.
	ev := compileT(t, "tan(x)")
	cands := ScanAsymptotes(ev, -10, 10, 60, DefaultParams())

	if len(cands) == 0 {
		t.Fatal("expected candidates for tan")
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].X <= cands[i-1].X {
			t.Fatalf("candidates not ordered: %v", cands)
		}
		if cands[i].X-cands[i-1].X < 0.1 {
			t.Fatalf("candidates %g and %g closer than dedup distance", cands[i-1].X, cands[i].X)
		}
	}
}

func TestScanAsymptotes_DegenerateWindow(t *testing.T) {
	ev := compileT(t, "1/x")
	if cands := ScanAsymptotes(ev, 5, 5, 40, DefaultParams()); cands != nil {
		t.Errorf("expected nil for empty window, got %v", cands)
	}
}
