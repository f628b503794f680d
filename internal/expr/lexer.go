package expr

import (
	"strconv"
)

type tokenKind int8

const (
	tokenEOF tokenKind = iota
	tokenNum
	tokenIdent
	tokenOp
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
	pos  int
	val  float64 // set for tokenNum
}

// lexAll tokenizes a canonical expression. The normalizer has already
// lowercased the text and stripped whitespace, so the scanner only sees
// digits, lowercase letters, operators and parentheses.
func lexAll(src string) ([]token, error) {
	toks := make([]token, 0, len(src))
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			text := src[i:j]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: i, Msg: "malformed number " + strconv.Quote(text)}
			}
			toks = append(toks, token{kind: tokenNum, text: text, pos: i, val: val})
			i = j
		case c >= 'a' && c <= 'z':
			j := i
			for j < len(src) && src[j] >= 'a' && src[j] <= 'z' {
				j++
			}
			toks = append(toks, token{kind: tokenIdent, text: src[i:j], pos: i})
			i = j
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokenOp, text: string(c), pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenClose, text: ")", pos: i})
			i++
		default:
			return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + strconv.Quote(string(c))}
		}
	}
	toks = append(toks, token{kind: tokenEOF, pos: len(src)})
	return toks, nil
}
