package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the type of token.
type TokenType int

// TokenType constants for expression token types.
const (
	TokenIdent    TokenType = iota // Identifier
	TokenNumber                    // Integer or float literal
	TokenString                    // Quoted string literal
	TokenDot                       // .
	TokenLBracket                  // [
	TokenRBracket                  // ]
	TokenLParen                    // (
	TokenRParen                    // )
	TokenComma                     // ,
	TokenMinus                     // -
	TokenEOF                       // End of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "IDENT"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenDot:
		return "DOT"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenComma:
		return "COMMA"
	case TokenMinus:
		return "MINUS"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// Lexer tokenizes an expression string.
type Lexer struct {
	input    string
	file     string
	pos      int // current position in input
	line     int // current line number (1-based)
	col      int // current column number (1-based)
	lastLine int // line at start of current token
	lastCol  int // column at start of current token
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input, file string) *Lexer {
	return &Lexer{
		input: input,
		file:  file,
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Tokenize converts the input into a slice of tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}

// nextToken returns the next token from the input.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	l.markStart()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.position()}, nil
	}

	r := l.peek()
	switch {
	case r == '.':
		l.advance()
		return l.token(TokenDot, "."), nil
	case r == '[':
		l.advance()
		return l.token(TokenLBracket, "["), nil
	case r == ']':
		l.advance()
		return l.token(TokenRBracket, "]"), nil
	case r == '(':
		l.advance()
		return l.token(TokenLParen, "("), nil
	case r == ')':
		l.advance()
		return l.token(TokenRParen, ")"), nil
	case r == ',':
		l.advance()
		return l.token(TokenComma, ","), nil
	case r == '-':
		l.advance()
		return l.token(TokenMinus, "-"), nil
	case r == '"' || r == '\'':
		return l.scanString(r)
	case unicode.IsDigit(r):
		return l.scanNumber()
	case r == '_' || unicode.IsLetter(r):
		return l.scanIdent()
	default:
		return Token{}, NewLexError(l.position(), "unexpected character "+string(r))
	}
}

// scanString scans a quoted string literal with backslash escapes.
func (l *Lexer) scanString(quote rune) (Token, error) {
	l.advance() // opening quote
	var b strings.Builder

	for l.pos < len(l.input) {
		r := l.peek()
		switch r {
		case quote:
			l.advance()
			return l.token(TokenString, b.String()), nil
		case '\\':
			l.advance()
			if l.pos >= len(l.input) {
				return Token{}, NewLexError(l.startPosition(), "unterminated string literal")
			}
			esc := l.peek()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"', '\'':
				b.WriteRune(esc)
			default:
				return Token{}, NewLexError(l.position(), "invalid escape \\"+string(esc))
			}
			l.advance()
		case '\n':
			return Token{}, NewLexError(l.startPosition(), "unterminated string literal")
		default:
			b.WriteRune(r)
			l.advance()
		}
	}

	return Token{}, NewLexError(l.startPosition(), "unterminated string literal")
}

// scanNumber scans an integer or float literal.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	sawDot := false

	for l.pos < len(l.input) {
		r := l.peek()
		if r == '.' && !sawDot {
			// A dot is only part of the number when a digit follows;
			// otherwise it starts attribute access (1.foo is not lexed).
			next := l.peekAt(l.pos + 1)
			if !unicode.IsDigit(next) {
				break
			}
			sawDot = true
			l.advance()
			continue
		}
		if !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}

	return l.token(TokenNumber, l.input[start:l.pos]), nil
}

// scanIdent scans an identifier.
func (l *Lexer) scanIdent() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) {
		r := l.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	return l.token(TokenIdent, l.input[start:l.pos]), nil
}

// Helper methods

func (l *Lexer) token(typ TokenType, val string) Token {
	return Token{Type: typ, Value: val, Pos: l.startPosition()}
}

// peek returns the current rune without advancing.
func (l *Lexer) peek() rune {
	return l.peekAt(l.pos)
}

// peekAt returns the rune at the given byte offset without advancing.
func (l *Lexer) peekAt(pos int) rune {
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

// advance moves to the next rune, updating position tracking.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r := l.peek()
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			break
		}
		l.advance()
	}
}

// markStart records the start position for the current token.
func (l *Lexer) markStart() {
	l.lastLine = l.line
	l.lastCol = l.col
}

// position returns the current position.
func (l *Lexer) position() Position {
	return Position{File: l.file, Line: l.line, Column: l.col}
}

// startPosition returns the position where the current token started.
func (l *Lexer) startPosition() Position {
	return Position{File: l.file, Line: l.lastLine, Column: l.lastCol}
}
