package expr

import "math"

// funcs is the whitelisted function vocabulary, resolved by token
// classification during parsing. The normalizer lowers csc, sec and cot to
// reciprocals of sin, cos and tan before parsing, so they never appear here.
var funcs = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"log":   math.Log10,
	"ln":    math.Log,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
	"exp":   math.Exp,
}
