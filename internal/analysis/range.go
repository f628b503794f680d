package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/funcscope/internal/expr"
)

// rangeProbes are wide fixed probes used to recognize parabola-like bounds
// and global monotonic growth beyond the sweep window.
var rangeProbes = [...]float64{-100, -10, 0, 10, 100}

// Range describes the values ev takes. The verdict is built from a sweep
// over [RangeMin, RangeMax] plus the wide probes, applying a fixed decision
// ladder: observed divergence first, then shape tests, then the raw
// extremes. Like everything in this package it is sample-based and can be
// fooled.
func Range(ev *expr.Evaluator, p Params) string {
	minY, maxY := math.Inf(1), math.Inf(-1)
	count := 0
	sawPosInf, sawNegInf := false, false

	n := int(math.Round((p.RangeMax-p.RangeMin)/p.RangeStep)) + 1
	for i := 0; i < n; i++ {
		y := ev.Eval(p.RangeMin + float64(i)*p.RangeStep)
		switch {
		case math.IsInf(y, 1):
			sawPosInf = true
		case math.IsInf(y, -1):
			sawNegInf = true
		case !math.IsNaN(y):
			count++
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}

	switch {
	case sawPosInf && sawNegInf:
		return "all real numbers"
	case sawPosInf:
		return "y → +∞"
	case sawNegInf:
		return "y → -∞"
	}

	if count < p.RangeMinSamples || !finite(minY) || !finite(maxY) {
		return "cannot determine range"
	}

	var ys [len(rangeProbes)]float64
	allFinite := true
	for i, x := range rangeProbes {
		ys[i] = ev.Eval(x)
		if !finite(ys[i]) {
			allFinite = false
			break
		}
	}
	if allFinite {
		center := ys[len(ys)/2]
		if ys[0] > 100 && ys[len(ys)-1] > 100 && center <= ys[0] && center <= ys[len(ys)-1] {
			if math.Abs(minY) <= 0.1 {
				return "y ≥ 0"
			}
			return fmt.Sprintf("y ≥ %.2f", minY)
		}
		if ys[0] < -100 && ys[len(ys)-1] < -100 && center >= ys[0] && center >= ys[len(ys)-1] {
			if math.Abs(maxY) <= 0.1 {
				return "y ≤ 0"
			}
			return fmt.Sprintf("y ≤ %.2f", maxY)
		}
		if monotonic(ys[:]) {
			slope := math.Abs(ys[len(ys)-1]-ys[0]) / (rangeProbes[len(rangeProbes)-1] - rangeProbes[0])
			if slope > 0.1 {
				return "all real numbers"
			}
		}
	}

	if maxY-minY < 0.01 {
		return fmt.Sprintf("y ≈ %.2f (approximately constant)", (minY+maxY)/2)
	}
	if minY >= -1.1 && maxY <= 1.1 && minY <= -0.9 && maxY >= 0.9 {
		return "-1 ≤ y ≤ 1"
	}
	if math.Abs(minY) <= 0.1 {
		if maxY > 100 {
			return "y ≥ 0"
		}
		return fmt.Sprintf("0 ≤ y ≤ %.2f", maxY)
	}
	if math.Abs(maxY) <= 0.1 {
		if minY < -100 {
			return "y ≤ 0"
		}
		return fmt.Sprintf("%.2f ≤ y ≤ 0", minY)
	}
	if maxY-minY > 100 {
		return "all real numbers"
	}
	return fmt.Sprintf("%.2f ≤ y ≤ %.2f", minY, maxY)
}

func monotonic(ys []float64) bool {
	inc, dec := true, true
	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			inc = false
		}
		if ys[i] >= ys[i-1] {
			dec = false
		}
	}
	return inc || dec
}
