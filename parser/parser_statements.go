/*
File    : pyrustlang/parser/parser_statements.go
*/
package parser

import (
	"github.com/mazhukin/pyrustlang/diag"
	"github.com/mazhukin/pyrustlang/lexer"
)

// statement dispatches on the current token: a statement keyword picks
// its production, an identifier followed by '=' is an assignment, and
// anything else is a bare expression statement.
func (p *Parser) statement() (Stmt, *diag.SyntaxError) {
	switch {
	case p.checkKeyword(lexer.KwLet):
		return p.letDecl()
	case p.checkKeyword(lexer.KwFn):
		return p.fnDecl()
	case p.checkKeyword(lexer.KwIf):
		return p.ifStmt()
	case p.checkKeyword(lexer.KwWhile):
		return p.whileStmt()
	case p.checkKeyword(lexer.KwReturn):
		return p.returnStmt()
	case p.checkKeyword(lexer.KwPrint):
		return p.printStmt()
	case p.check(lexer.Identifier) && p.peekIsAssign():
		return p.assignStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) peekIsAssign() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	next := p.tokens[p.pos+1]
	return next.Kind == lexer.Punctuation && next.Punct == lexer.PAssign
}

func (p *Parser) typeTag(what string) (TypeTag, *diag.SyntaxError) {
	tok := p.current()
	if tok.Kind == lexer.Keyword {
		if tag, ok := TypeTagFromKeyword(tok.Keyword); ok {
			p.advance()
			return tag, nil
		}
	}
	return 0, p.errorf("Expected %s, found %s", what, p.describe(tok))
}

func (p *Parser) letDecl() (Stmt, *diag.SyntaxError) {
	tok := p.advance() // 'let'
	mutable := p.matchKeyword(lexer.KwMut)
	name, err := p.expectIdentifier("identifier")
	if err != nil {
		return nil, err
	}
	var typ *TypeTag
	if p.matchPunct(lexer.PColon) {
		t, err := p.typeTag("type")
		if err != nil {
			return nil, err
		}
		typ = &t
	}
	if err, ok := p.expectPunct(lexer.PAssign, "'='"); !ok {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &LetDecl{Name: name, Mutable: mutable, Type: typ, Value: value, Line: tok.Line, Column: tok.Column}, nil
}

func (p *Parser) fnDecl() (Stmt, *diag.SyntaxError) {
	tok := p.advance() // 'fn'
	name, err := p.expectIdentifier("function name")
	if err != nil {
		return nil, err
	}
	if err, ok := p.expectPunct(lexer.PLParen, "'('"); !ok {
		return nil, err
	}
	var params []Param
	if !p.checkPunct(lexer.PRParen) {
		for {
			pname, err := p.expectIdentifier("parameter name")
			if err != nil {
				return nil, err
			}
			if err, ok := p.expectPunct(lexer.PColon, "':'"); !ok {
				return nil, err
			}
			ptype, err := p.typeTag("parameter type")
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: pname, Type: ptype})
			if !p.matchPunct(lexer.PComma) {
				break
			}
		}
	}
	if err, ok := p.expectPunct(lexer.PRParen, "')'"); !ok {
		return nil, err
	}
	var retType *TypeTag
	if p.matchPunct(lexer.PArrow) {
		t, err := p.typeTag("return type")
		if err != nil {
			return nil, err
		}
		retType = &t
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FnDecl{Name: name, Params: params, ReturnType: retType, Body: body, Line: tok.Line, Column: tok.Column}, nil
}

func (p *Parser) block() ([]Stmt, *diag.SyntaxError) {
	if err, ok := p.expectPunct(lexer.PLBrace, "'{'"); !ok {
		return nil, err
	}
	var stmts []Stmt
	for !p.checkPunct(lexer.PRBrace) && !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err, ok := p.expectPunct(lexer.PRBrace, "'}'"); !ok {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStmt() (Stmt, *diag.SyntaxError) {
	p.advance() // 'if'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond, Then: then}
	if p.matchKeyword(lexer.KwElse) {
		if p.checkKeyword(lexer.KwIf) {
			nested, err := p.ifStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = []Stmt{nested}
		} else {
			elseBlock, err := p.block()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}
	return stmt, nil
}

func (p *Parser) whileStmt() (Stmt, *diag.SyntaxError) {
	p.advance() // 'while'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) returnStmt() (Stmt, *diag.SyntaxError) {
	tok := p.advance() // 'return'
	// A bare `return` is recognized when the next token closes the
	// enclosing block or begins a new statement.
	if p.checkPunct(lexer.PRBrace) || p.atEnd() || p.startsStatement() {
		return &ReturnStmt{Line: tok.Line}, nil
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, Line: tok.Line}, nil
}

func (p *Parser) startsStatement() bool {
	switch {
	case p.checkKeyword(lexer.KwLet), p.checkKeyword(lexer.KwFn),
		p.checkKeyword(lexer.KwIf), p.checkKeyword(lexer.KwWhile),
		p.checkKeyword(lexer.KwReturn), p.checkKeyword(lexer.KwPrint):
		return true
	case p.check(lexer.Identifier) && p.peekIsAssign():
		return true
	}
	return false
}

func (p *Parser) printStmt() (Stmt, *diag.SyntaxError) {
	p.advance() // 'print'
	if err, ok := p.expectPunct(lexer.PLParen, "'('"); !ok {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err, ok := p.expectPunct(lexer.PRParen, "')'"); !ok {
		return nil, err
	}
	return &PrintStmt{Value: value}, nil
}

func (p *Parser) assignStmt() (Stmt, *diag.SyntaxError) {
	nameTok := p.advance()
	p.advance() // '='
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Name: nameTok.Literal, Value: value, Line: nameTok.Line, Column: nameTok.Column}, nil
}

func (p *Parser) exprStmt() (Stmt, *diag.SyntaxError) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Value: value}, nil
}
