package expr

import "strconv"

// parser is a recursive-descent parser over the canonical token stream.
// Precedence, loosest first: addition, multiplication, unary minus,
// exponentiation (right-associative), atoms. -x^2 parses as -(x^2).
type parser struct {
	toks []token
	pos  int
}

func parse(canonical string) (*node, error) {
	toks, err := lexAll(canonical)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected " + strconv.Quote(tok.text)}
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseAdditive() (*node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if tok.text == "-" {
			kind = nodeSub
		}
		left = &node{kind: kind, left: left, right: right}
	}
}

func (p *parser) parseMultiplicative() (*node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		kind := nodeMul
		if tok.text == "/" {
			kind = nodeDiv
		}
		left = &node{kind: kind, left: left, right: right}
	}
}

func (p *parser) parseUnary() (*node, error) {
	tok := p.peek()
	if tok.kind == tokenOp {
		switch tok.text {
		case "-":
			p.next()
			operand, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNeg, left: operand}, nil
		case "+":
			p.next()
			return p.parseUnary()
		}
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.kind != tokenOp || tok.text != "^" {
		return base, nil
	}
	p.next()
	// Right-associative, and the exponent may carry its own sign: 2^-3.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: base, right: exp}, nil
}

func (p *parser) parseAtom() (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenIdent:
		if tok.text == "x" {
			return &node{kind: nodeVar}, nil
		}
		fn, ok := funcs[tok.text]
		if !ok {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "unknown identifier " + strconv.Quote(tok.text)}
		}
		open := p.next()
		if open.kind != tokenOpen {
			return nil, &SyntaxError{Pos: open.pos, Msg: tok.text + " must be called with a parenthesized argument"}
		}
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenClose {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "unbalanced parenthesis: missing )"}
		}
		return &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}, nil
	case tokenOpen:
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenClose {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "unbalanced parenthesis: missing )"}
		}
		return inner, nil
	case tokenEOF:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of expression"}
	}
	return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected " + strconv.Quote(tok.text)}
}
