/*
File    : pyrustlang/parser/parser.go
*/
package parser

import (
	"fmt"

	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/lexer"
)

// Parser is a recursive-descent parser over a scanned token stream.
// The grammar is newline-insensitive and has no statement terminator:
// each statement production consumes exactly the tokens it needs.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// Parse consumes the whole token stream and returns the program, or the
// first syntax error encountered. Parsing stops at the first error.
func Parse(tokens []lexer.Token) (*Program, *diag.SyntaxError) {
	p := New(tokens)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*Program, *diag.SyntaxError) {
	prog := &Program{}
	for !p.check(lexer.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) atEnd() bool { return p.current().Kind == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.current().Kind == kind
}

func (p *Parser) checkKeyword(kw lexer.Kw) bool {
	tok := p.current()
	return tok.Kind == lexer.Keyword && tok.Keyword == kw
}

func (p *Parser) checkPunct(punct lexer.Punct) bool {
	tok := p.current()
	return tok.Kind == lexer.Punctuation && tok.Punct == punct
}

func (p *Parser) matchKeyword(kw lexer.Kw) bool {
	if p.checkKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchPunct(punct lexer.Punct) bool {
	if p.checkPunct(punct) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectPunct(punct lexer.Punct, what string) (*diag.SyntaxError, bool) {
	if p.checkPunct(punct) {
		p.advance()
		return nil, true
	}
	return p.errorf("Expected %s, found %s", what, p.describe(p.current())), false
}

func (p *Parser) expectIdentifier(what string) (string, *diag.SyntaxError) {
	if p.check(lexer.Identifier) {
		tok := p.advance()
		return tok.Literal, nil
	}
	return "", p.errorf("Expected %s, found %s", what, p.describe(p.current()))
}

func (p *Parser) describe(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "end of input"
	}
	return tok.Literal
}

func (p *Parser) errorf(format string, args ...interface{}) *diag.SyntaxError {
	tok := p.current()
	return &diag.SyntaxError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)}
}
