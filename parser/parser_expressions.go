/*
File    : pyrustlang/parser/parser_expressions.go
*/
package parser

import (
	"strconv"

	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/lexer"
)

// expression parses with precedence climbing, one method per level,
// lowest first: equality < comparison < additive < multiplicative.
// All binary operators are left-associative.
func (p *Parser) expression() (Expr, *diag.SyntaxError) {
	return p.equality()
}

func (p *Parser) equality() (Expr, *diag.SyntaxError) {
	return p.binaryLevel(p.comparison, lexer.PEq, lexer.PNeq)
}

func (p *Parser) comparison() (Expr, *diag.SyntaxError) {
	return p.binaryLevel(p.additive, lexer.PLt, lexer.PGt, lexer.PLe, lexer.PGe)
}

func (p *Parser) additive() (Expr, *diag.SyntaxError) {
	return p.binaryLevel(p.multiplicative, lexer.PPlus, lexer.PMinus)
}

func (p *Parser) multiplicative() (Expr, *diag.SyntaxError) {
	return p.binaryLevel(p.unary, lexer.PStar, lexer.PSlash)
}

func (p *Parser) binaryLevel(next func() (Expr, *diag.SyntaxError), ops ...lexer.Punct) (Expr, *diag.SyntaxError) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		matched := false
		for _, op := range ops {
			if tok.Kind == lexer.Punctuation && tok.Punct == op {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: tok.Punct, Left: left, Right: right, Line: tok.Line, Column: tok.Column}
	}
}

// unary desugars a leading '-' into a binary subtraction from zero, so
// the evaluator needs no separate negation semantics.
func (p *Parser) unary() (Expr, *diag.SyntaxError) {
	if p.checkPunct(lexer.PMinus) {
		tok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: lexer.PMinus, Left: &IntLit{Value: 0}, Right: operand, Line: tok.Line, Column: tok.Column}, nil
	}
	return p.call()
}

func (p *Parser) call() (Expr, *diag.SyntaxError) {
	if p.check(lexer.Identifier) {
		next := lexer.Token{}
		if p.pos+1 < len(p.tokens) {
			next = p.tokens[p.pos+1]
		}
		if next.Kind == lexer.Punctuation && next.Punct == lexer.PLParen {
			nameTok := p.advance()
			p.advance() // '('
			var args []Expr
			if !p.checkPunct(lexer.PRParen) {
				for {
					arg, err := p.expression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !p.matchPunct(lexer.PComma) {
						break
					}
				}
			}
			if err, ok := p.expectPunct(lexer.PRParen, "')'"); !ok {
				return nil, err
			}
			return &CallExpr{Callee: nameTok.Literal, Args: args, Line: nameTok.Line, Column: nameTok.Column}, nil
		}
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, *diag.SyntaxError) {
	tok := p.current()
	switch tok.Kind {
	case lexer.Integer:
		p.advance()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &IntLit{Value: v}, nil
	case lexer.Float:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return &FloatLit{Value: v}, nil
	case lexer.String:
		p.advance()
		return &StrLit{Value: tok.Literal}, nil
	case lexer.Boolean:
		p.advance()
		return &BoolLit{Value: tok.Literal == "true"}, nil
	case lexer.Identifier:
		p.advance()
		return &NameExpr{Name: tok.Literal, Line: tok.Line, Column: tok.Column}, nil
	case lexer.Punctuation:
		if tok.Punct == lexer.PLParen {
			p.advance()
			inner, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err, ok := p.expectPunct(lexer.PRParen, "')'"); !ok {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, p.errorf("Expected expression, found %s", p.describe(tok))
}
