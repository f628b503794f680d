// Package export writes function plots to standalone files.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/funcscope/internal/expr"
)

// CurveToSVG samples ev over [xMin, xMax], one sample per horizontal
// pixel, and renders the curve as SVG path segments. The path breaks
// wherever the function is undefined or leaves [yMin, yMax], so poles
// appear as gaps rather than vertical spikes across the image.
func CurveToSVG(ev *expr.Evaluator, xMin, xMax, yMin, yMax float64, width, height int, strokeColor string) string {
	if width < 2 || height < 2 || xMax <= xMin || yMax <= yMin {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Axes, when they fall inside the window.
	if xMin < 0 && xMax > 0 {
		px := -xMin / (xMax - xMin) * float64(width)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#333344" stroke-width="1"/>
`, px, px, height))
	}
	if yMin < 0 && yMax > 0 {
		py := float64(height) - (-yMin/(yMax-yMin))*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333344" stroke-width="1"/>
`, py, width, py))
	}

	step := (xMax - xMin) / float64(width-1)
	inSegment := false
	for i := 0; i < width; i++ {
		x := xMin + float64(i)*step
		y := ev.Eval(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || y < yMin || y > yMax {
			if inSegment {
				sb.WriteString(`"/>` + "\n")
				inSegment = false
			}
			continue
		}
		px := float64(i)
		py := float64(height) - (y-yMin)/(yMax-yMin)*float64(height)
		if !inSegment {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M%.1f,%.1f`, strokeColor, px, py))
			inSegment = true
			continue
		}
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
	}
	if inSegment {
		sb.WriteString(`"/>` + "\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
