package expr

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression indicates the raw input was empty or whitespace only.
var ErrEmptyExpression = errors.New("expr: empty expression")

// SyntaxError reports malformed input, most commonly a parenthesis
// imbalance. Pos is the rune offset into the canonical text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at %d: %s", e.Pos, e.Msg)
}

// UnevaluableError indicates an expression that parsed but produced no
// finite value at any compile-time probe point.
type UnevaluableError struct {
	Canonical string
}

func (e *UnevaluableError) Error() string {
	return fmt.Sprintf("expr: %q does not evaluate to a finite value anywhere", e.Canonical)
}
