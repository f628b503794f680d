// Package expr turns user-typed algebra in one variable into a safe,
// callable numeric function.
//
// The pipeline is Normalize -> lex -> parse -> Evaluator. Normalization
// produces a canonical string: lowercased, constants substituted,
// reciprocal trig lowered, implicit multiplication made explicit and
// parentheses validated. The parser classifies identifiers against a
// static function table and builds a small AST; there is no path from
// input text to code execution. Evaluation is a tree walk over float64
// with IEEE semantics: undefined points are NaN, division by zero keeps
// its sign as an infinity, and Eval never fails.
package expr
