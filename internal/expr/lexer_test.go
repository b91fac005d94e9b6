package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_AccessChain(t *testing.T) {
	input := "user.roles[0].name"
	lexer := NewLexer(input, "test.expr")

	tokens, err := lexer.Tokenize()
	require.NoError(t, err, "unexpected error")

	expected := []struct {
		typ TokenType
		val string
	}{
		{TokenIdent, "user"},
		{TokenDot, "."},
		{TokenIdent, "roles"},
		{TokenLBracket, "["},
		{TokenNumber, "0"},
		{TokenRBracket, "]"},
		{TokenDot, "."},
		{TokenIdent, "name"},
		{TokenEOF, ""},
	}

	require.Len(t, tokens, len(expected), "wrong number of tokens")

	for i, exp := range expected {
		assert.Equal(t, exp.typ, tokens[i].Type, "token[%d] type", i)
		if exp.typ != TokenEOF {
			assert.Equal(t, exp.val, tokens[i].Value, "token[%d] value", i)
		}
	}
}

func TestLexer_CallWithLiterals(t *testing.T) {
	input := `format("x={}", -1, 2.5)`
	lexer := NewLexer(input, "test.expr")

	tokens, err := lexer.Tokenize()
	require.NoError(t, err, "unexpected error")

	expected := []struct {
		typ TokenType
		val string
	}{
		{TokenIdent, "format"},
		{TokenLParen, "("},
		{TokenString, "x={}"},
		{TokenComma, ","},
		{TokenMinus, "-"},
		{TokenNumber, "1"},
		{TokenComma, ","},
		{TokenNumber, "2.5"},
		{TokenRParen, ")"},
		{TokenEOF, ""},
	}

	require.Len(t, tokens, len(expected), "wrong number of tokens")

	for i, exp := range expected {
		assert.Equal(t, exp.typ, tokens[i].Type, "token[%d] type", i)
		if exp.typ != TokenEOF {
			assert.Equal(t, exp.val, tokens[i].Value, "token[%d] value", i)
		}
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "double quoted", input: `"hello"`, want: "hello"},
		{name: "single quoted", input: `'hi'`, want: "hi"},
		{name: "newline escape", input: `"a\nb"`, want: "a\nb"},
		{name: "tab escape", input: `"a\tb"`, want: "a\tb"},
		{name: "quote escape", input: `"say \"hi\""`, want: `say "hi"`},
		{name: "backslash", input: `"a\\b"`, want: `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input, "").Tokenize()
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, TokenString, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Value)
		})
	}
}

func TestLexer_NumberThenAttribute(t *testing.T) {
	// The dot after a number with no following digit starts attribute
	// access instead of a fractional part.
	tokens, err := NewLexer("items[1].x", "").Tokenize()
	require.NoError(t, err)

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		TokenIdent, TokenLBracket, TokenNumber, TokenRBracket,
		TokenDot, TokenIdent, TokenEOF,
	}, types)
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unterminated string", input: `"abc`},
		{name: "string across newline", input: "\"a\nb\""},
		{name: "bad escape", input: `"\q"`},
		{name: "unexpected character", input: "a § b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input, "test.expr").Tokenize()
			require.Error(t, err)
			var lexErr *LexError
			assert.ErrorAs(t, err, &lexErr)
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := NewLexer("a\n  b", "f.expr").Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Position{File: "f.expr", Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, Position{File: "f.expr", Line: 2, Column: 3}, tokens[1].Pos)
}
