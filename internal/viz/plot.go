// Package viz renders compiled expressions and analysis reports for the
// terminal.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/funcscope/internal/analysis"
	"github.com/san-kum/funcscope/internal/expr"
)

// Plot renders ev over [xMin, xMax] as a terminal chart with one sample
// per column. Undefined points and values outside [yMin, yMax] become NaN,
// which asciigraph draws as gaps, so poles show up as breaks in the curve
// instead of flattening the vertical scale. Pass yMin >= yMax to disable
// clamping.
func Plot(ev *expr.Evaluator, xMin, xMax, yMin, yMax float64, width, height int) string {
	if width < 2 || height < 2 || xMax <= xMin {
		return ""
	}
	series := make([]float64, width)
	step := (xMax - xMin) / float64(width-1)
	for i := range series {
		y := ev.Eval(xMin + float64(i)*step)
		if math.IsInf(y, 0) {
			y = math.NaN()
		}
		if yMin < yMax && !math.IsNaN(y) && (y < yMin || y > yMax) {
			y = math.NaN()
		}
		series[i] = y
	}
	caption := fmt.Sprintf("f(x) = %s   x ∈ [%g, %g]", ev.Source(), xMin, xMax)
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// RenderReport formats an analysis report as styled terminal lines.
func RenderReport(r *analysis.Report) string {
	var b strings.Builder
	b.WriteString(Title.Render("f(x) = "+r.Expression) + "\n")
	line := func(label, value string) {
		b.WriteString(Label.Render(fmt.Sprintf("%-12s", label)) + Value.Render(value) + "\n")
	}
	line("domain", r.Domain)
	line("range", r.Range)
	line("even", yesNo(r.IsEven))
	line("odd", yesNo(r.IsOdd))
	line("one-to-one", yesNo(r.IsOneToOne))
	line("properties", strings.Join(r.Properties, ", "))
	return b.String()
}

// RenderAsymptotes formats asymptote candidates as a one-line summary.
func RenderAsymptotes(cands []analysis.Candidate) string {
	if len(cands) == 0 {
		return Label.Render("no vertical asymptotes detected")
	}
	parts := make([]string, len(cands))
	for i, c := range cands {
		parts[i] = fmt.Sprintf("x ≈ %.3f (%s)", c.X, c.Method)
	}
	return Label.Render("asymptotes: ") + Value.Render(strings.Join(parts, ", "))
}

func yesNo(v bool) string {
	if v {
		return Good.Render("yes")
	}
	return Bad.Render("no")
}
