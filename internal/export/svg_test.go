package export

import (
	"strings"
	"testing"

	"github.com/san-kum/funcscope/internal/expr"
)

func TestCurveToSVG(t *testing.T) {
	ev, err := expr.Compile("x")
	if err != nil {
		t.Fatal(err)
	}
	svg := CurveToSVG(ev, -5, 5, -5, 5, 400, 300, "#00ff88")

	if !strings.HasPrefix(svg, `<?xml`) || !strings.HasSuffix(svg, "</svg>") {
		t.Error("malformed SVG envelope")
	}
	if strings.Count(svg, "<path") != 1 {
		t.Errorf("f(x)=x should render as a single path, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "#00ff88") {
		t.Error("stroke color missing")
	}
}

func TestCurveToSVG_BreaksAtPole(t *testing.T) {
	ev, err := expr.Compile("1/x")
	if err != nil {
		t.Fatal(err)
	}
	svg := CurveToSVG(ev, -5, 5, -5, 5, 400, 300, "#fff")

	// The curve leaves the window around x=0, so the path must split.
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("1/x should render as 2 path segments, got %d", n)
	}
}

func TestCurveToSVG_Degenerate(t *testing.T) {
	ev, err := expr.Compile("x")
	if err != nil {
		t.Fatal(err)
	}
	if svg := CurveToSVG(ev, 5, -5, -5, 5, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for inverted window")
	}
	if svg := CurveToSVG(ev, -5, 5, -5, 5, 1, 300, "#fff"); svg != "" {
		t.Error("expected empty output for sub-pixel width")
	}
}
