package expr

import (
	"strconv"
	"strings"

	"github.com/wrike/minijinja/pkg/value"
)

// Parser builds an AST from a token stream.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses a complete expression.
func Parse(input, file string) (Node, error) {
	tokens, err := NewLexer(input, file).Tokenize()
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, NewParseErrorf(tok.Pos, "unexpected %s after expression", tok.Type)
	}
	return node, nil
}

// parseExpr parses a primary expression followed by postfix operations.
func (p *Parser) parseExpr() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Type {
		case TokenDot:
			dot := p.next()
			name := p.peek()
			if name.Type != TokenIdent {
				return nil, NewParseErrorf(name.Pos, "expected attribute name after '.', got %s", name.Type)
			}
			p.next()

			// An opening paren directly after the attribute makes it a
			// method call rather than field access.
			if p.peek().Type == TokenLParen {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				node = &MethodCallNode{nodeBase: nodeBase{pos: dot.Pos}, Recv: node, Name: name.Value, Args: args}
			} else {
				node = &AttrNode{nodeBase: nodeBase{pos: dot.Pos}, Base: node, Name: name.Value}
			}

		case TokenLBracket:
			open := p.next()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if tok := p.peek(); tok.Type != TokenRBracket {
				return nil, NewParseErrorf(tok.Pos, "expected ']', got %s", tok.Type)
			}
			p.next()
			node = &IndexNode{nodeBase: nodeBase{pos: open.Pos}, Base: node, Index: idx}

		case TokenLParen:
			pos := p.peek().Pos
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			node = &CallNode{nodeBase: nodeBase{pos: pos}, Callee: node, Args: args}

		default:
			return node, nil
		}
	}
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgs() ([]Node, error) {
	p.next() // consume '('

	var args []Node
	if p.peek().Type == TokenRParen {
		p.next()
		return args, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch tok := p.peek(); tok.Type {
		case TokenComma:
			p.next()
		case TokenRParen:
			p.next()
			return args, nil
		default:
			return nil, NewParseErrorf(tok.Pos, "expected ',' or ')', got %s", tok.Type)
		}
	}
}

// parsePrimary parses an identifier, literal or negated number.
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case TokenIdent:
		switch tok.Value {
		case "true":
			return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.FromBool(true)}, nil
		case "false":
			return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.FromBool(false)}, nil
		case "none":
			return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.None}, nil
		}
		return &IdentNode{nodeBase: nodeBase{pos: tok.Pos}, Name: tok.Value}, nil

	case TokenString:
		return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.FromString(tok.Value)}, nil

	case TokenNumber:
		return p.numberLiteral(tok, false)

	case TokenMinus:
		num := p.peek()
		if num.Type != TokenNumber {
			return nil, NewParseErrorf(num.Pos, "expected number after '-', got %s", num.Type)
		}
		p.next()
		return p.numberLiteral(num, true)

	default:
		return nil, NewParseErrorf(tok.Pos, "unexpected %s", tok.Type)
	}
}

func (p *Parser) numberLiteral(tok Token, neg bool) (Node, error) {
	if strings.Contains(tok.Value, ".") {
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, NewParseErrorf(tok.Pos, "invalid number %q", tok.Value)
		}
		if neg {
			f = -f
		}
		return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.FromFloat(f)}, nil
	}

	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, NewParseErrorf(tok.Pos, "invalid number %q", tok.Value)
	}
	if neg {
		n = -n
	}
	return &LiteralNode{nodeBase: nodeBase{pos: tok.Pos}, Value: value.FromInt(n)}, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}
