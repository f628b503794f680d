package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/funcscope/internal/analysis"
	"github.com/san-kum/funcscope/internal/expr"
)

func TestPlot(t *testing.T) {
	ev, err := expr.Compile("x^2")
	if err != nil {
		t.Fatal(err)
	}
	out := Plot(ev, -3, 3, 0, 10, 60, 10)
	if out == "" {
		t.Fatal("expected a chart")
	}
	if !strings.Contains(out, "f(x) = x^2") {
		t.Error("caption should name the expression")
	}
}

func TestPlot_Degenerate(t *testing.T) {
	ev, err := expr.Compile("x")
	if err != nil {
		t.Fatal(err)
	}
	if out := Plot(ev, 3, -3, -10, 10, 60, 10); out != "" {
		t.Error("expected empty output for inverted window")
	}
	if out := Plot(ev, -3, 3, -10, 10, 1, 10); out != "" {
		t.Error("expected empty output for sub-column width")
	}
}

func TestRenderReport(t *testing.T) {
	r := &analysis.Report{
		Expression: "x^2",
		IsFunction: true,
		IsEven:     true,
		Domain:     "all real numbers",
		Range:      "y ≥ 0",
		Properties: []string{"function", "even symmetry"},
	}
	out := RenderReport(r)
	for _, want := range []string{"x^2", "all real numbers", "y ≥ 0", "even symmetry"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}

func TestRenderAsymptotes(t *testing.T) {
	if out := RenderAsymptotes(nil); !strings.Contains(out, "no vertical asymptotes") {
		t.Errorf("empty case = %q", out)
	}
	cands := []analysis.Candidate{{X: 0, Method: analysis.MethodUndefined}}
	if out := RenderAsymptotes(cands); !strings.Contains(out, analysis.MethodUndefined) {
		t.Errorf("method tag missing from %q", out)
	}
}
