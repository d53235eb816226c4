/*
File    : pyrustlang/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestScan_Basics(t *testing.T) {
	cases := []tokenCase{
		{
			Input: `let mut n = 1`,
			Expected: []Token{
				{Kind: Keyword, Literal: "let", Keyword: KwLet},
				{Kind: Keyword, Literal: "mut", Keyword: KwMut},
				{Kind: Identifier, Literal: "n"},
				{Kind: Punctuation, Literal: "=", Punct: PAssign},
				{Kind: Integer, Literal: "1"},
				{Kind: EOF},
			},
		},
		{
			Input: `3.14 + 2 == 5`,
			Expected: []Token{
				{Kind: Float, Literal: "3.14"},
				{Kind: Punctuation, Literal: "+", Punct: PPlus},
				{Kind: Integer, Literal: "2"},
				{Kind: Punctuation, Literal: "==", Punct: PEq},
				{Kind: Integer, Literal: "5"},
				{Kind: EOF},
			},
		},
		{
			Input: `fn add(a: i32, b: i32) -> i32 { return a }`,
			Expected: []Token{
				{Kind: Keyword, Literal: "fn", Keyword: KwFn},
				{Kind: Identifier, Literal: "add"},
				{Kind: Punctuation, Literal: "(", Punct: PLParen},
				{Kind: Identifier, Literal: "a"},
				{Kind: Punctuation, Literal: ":", Punct: PColon},
				{Kind: Keyword, Literal: "i32", Keyword: KwI32},
				{Kind: Punctuation, Literal: ",", Punct: PComma},
				{Kind: Identifier, Literal: "b"},
				{Kind: Punctuation, Literal: ":", Punct: PColon},
				{Kind: Keyword, Literal: "i32", Keyword: KwI32},
				{Kind: Punctuation, Literal: ")", Punct: PRParen},
				{Kind: Punctuation, Literal: "->", Punct: PArrow},
				{Kind: Keyword, Literal: "i32", Keyword: KwI32},
				{Kind: Punctuation, Literal: "{", Punct: PLBrace},
				{Kind: Keyword, Literal: "return", Keyword: KwReturn},
				{Kind: Identifier, Literal: "a"},
				{Kind: Punctuation, Literal: "}", Punct: PRBrace},
				{Kind: EOF},
			},
		},
		{
			Input: `true false`,
			Expected: []Token{
				{Kind: Boolean, Literal: "true"},
				{Kind: Boolean, Literal: "false"},
				{Kind: EOF},
			},
		},
		{
			Input: "# a comment\n1",
			Expected: []Token{
				{Kind: Integer, Literal: "1"},
				{Kind: EOF},
			},
		},
	}

	for _, c := range cases {
		tokens, errs := New(c.Input).Scan()
		assert.Empty(t, errs, "input %q", c.Input)
		assert.Equal(t, len(c.Expected), len(tokens), "input %q", c.Input)
		for i, want := range c.Expected {
			if i >= len(tokens) {
				break
			}
			assert.Equal(t, want.Kind, tokens[i].Kind, "token %d of %q", i, c.Input)
			assert.Equal(t, want.Literal, tokens[i].Literal, "token %d of %q", i, c.Input)
		}
	}
}

func TestScan_StringEscapes(t *testing.T) {
	tokens, errs := New(`"hello\nworld" 'tab\there'`).Scan()
	assert.Empty(t, errs)
	assert.Equal(t, "hello\nworld", tokens[0].Literal)
	assert.Equal(t, "tab\there", tokens[1].Literal)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).Scan()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string")
}

func TestScan_UnexpectedCharacter(t *testing.T) {
	tokens, errs := New(`1 @ 2`).Scan()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unexpected character: @")
	// recovers and keeps scanning past the bad character
	assert.Equal(t, Integer, tokens[0].Kind)
	assert.Equal(t, Integer, tokens[1].Kind)
}

func TestScan_LineAndColumn(t *testing.T) {
	tokens, _ := New("1\n  2").Scan()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[1].Column)
}
