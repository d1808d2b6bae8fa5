package expr

// parser consumes the token stream for one statement and builds its
// expression tree.
type parser struct {
	lexer *Lexer
	tok   Token
}

// Parse builds the expression tree for one statement's expression text.
//
// The grammar is left-associative with a single precedence level:
//
//	expression := ('+' | '-')? term ( ('+' | '-') term )*
//	term       := Number | DieNotation
//
// An explicit sign before the first term applies to that term; otherwise an
// implicit leading '+' is assumed.
//
// A token that is not a valid term where one is required fails with
// ErrUnexpectedToken; a well-formed expression followed by leftover tokens,
// such as two consecutive terms, fails with ErrTrailingInput.
func Parse(input string) (Expr, error) {
	p := &parser{lexer: NewLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseExpression()
}

func (p *parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseExpression() (Expr, error) {
	if p.tok.Kind == KindEnd {
		return nil, ErrEmptyExpression
	}

	// Optional sign on the first term. A leading '-' subtracts the term
	// from zero so evaluation order stays uniform.
	leading := OpAdd
	if p.tok.Kind == KindPlus || p.tok.Kind == KindMinus {
		if p.tok.Kind == KindMinus {
			leading = OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if leading == OpSub {
		left = &Binary{Op: OpSub, Left: &Literal{Value: 0}, Right: left}
	}

	for p.tok.Kind == KindPlus || p.tok.Kind == KindMinus {
		op := OpAdd
		if p.tok.Kind == KindMinus {
			op = OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}

	if p.tok.Kind != KindEnd {
		return nil, &SyntaxError{Pos: p.tok.Pos, Text: p.tok.String(), Err: ErrTrailingInput}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	tok := p.tok
	switch tok.Kind {
	case KindNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: tok.Value}, nil
	case KindDie:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Roll{Dice: tok.Dice}, nil
	default:
		return nil, &SyntaxError{Pos: tok.Pos, Text: tok.String(), Err: ErrUnexpectedToken}
	}
}
