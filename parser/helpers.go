package parser

import (
	"strings"

	"github.com/ledgerkit/beancount/ast"
	"github.com/shopspring/decimal"
)

// Helper parsing methods used across directive parsers.
// These implement the common primitives of the ledger syntax.

// parseDate parses a DATE token into an ast.Date. Calendar validity is
// checked here: day 32 is a lexical error, not a syntax error.
func (p *Parser) parseDate() (ast.Date, error) {
	tok := p.peek()
	if tok.Type != DATE {
		return ast.Date{}, p.errorAtToken(tok, SyntaxError, "expected date")
	}
	p.advance()

	date, err := ast.NewDate(tok.String(p.source))
	if err != nil {
		return ast.Date{}, p.errorAtToken(tok, LexicalError, "invalid date %q", tok.String(p.source))
	}

	return date, nil
}

// parseAccount parses an account path. Inside directives a bare account type
// with zero segments (e.g. "Assets", lexed as IDENT) is accepted.
func (p *Parser) parseAccount() (ast.Account, error) {
	tok := p.peek()

	switch tok.Type {
	case ACCOUNT:
		p.advance()
		return p.accountFromToken(tok)

	case IDENT:
		if typ, ok := ast.AccountTypeOf(tok.String(p.source)); ok {
			p.advance()
			return ast.Account{Type: typ}, nil
		}
	}

	return ast.Account{}, p.errorAtToken(tok, SyntaxError, "expected account but got %s %q", tok.Type, tok.String(p.source))
}

// accountFromToken splits and validates an ACCOUNT token.
func (p *Parser) accountFromToken(tok Token) (ast.Account, error) {
	parts := strings.Split(tok.String(p.source), ":")

	typ, ok := ast.AccountTypeOf(parts[0])
	if !ok {
		return ast.Account{}, p.errorAtToken(tok, SyntaxError, "unknown account type %q", parts[0])
	}

	segments := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if part == "" {
			return ast.Account{}, p.errorAtToken(tok, SyntaxError, "empty segment in account %q", tok.String(p.source))
		}
		segments = append(segments, p.interner.Intern(part))
	}

	return ast.Account{Type: typ, Segments: segments}, nil
}

// parseAmount parses an amount: NUMBER CURRENCY. The decimal value keeps the
// precision of the literal; "0.10" does not collapse to "0.1".
func (p *Parser) parseAmount() (ast.Amount, error) {
	numTok := p.peek()
	if numTok.Type != NUMBER {
		return ast.Amount{}, p.errorAtToken(numTok, SyntaxError, "expected number")
	}
	p.advance()

	value, err := decimal.NewFromString(numTok.String(p.source))
	if err != nil {
		return ast.Amount{}, p.errorAtToken(numTok, LexicalError, "invalid number %q", numTok.String(p.source))
	}

	currTok := p.peek()
	if currTok.Type != IDENT {
		return ast.Amount{}, p.errorAtToken(currTok, SyntaxError, "expected currency after number")
	}
	if currTok.Start == numTok.End {
		return ast.Amount{}, p.errorAtToken(currTok, SyntaxError, "expected whitespace between number and currency")
	}
	p.advance()

	return ast.Amount{
		Value:    value,
		Currency: p.interner.InternBytes(currTok.Bytes(p.source)),
	}, nil
}

// parseString parses a STRING token and decodes its escapes.
func (p *Parser) parseString() (string, error) {
	tok := p.peek()
	if tok.Type != STRING {
		return "", p.errorAtToken(tok, SyntaxError, "expected string")
	}
	p.advance()

	value, err := decodeString(tok.String(p.source))
	if err != nil {
		return "", p.errorAtToken(tok, LexicalError, "%v", err)
	}

	return p.interner.Intern(value), nil
}

// parseIdent parses an IDENT token, typically a currency symbol.
func (p *Parser) parseIdent() (string, error) {
	tok := p.peek()
	if tok.Type != IDENT {
		return "", p.errorAtToken(tok, SyntaxError, "expected identifier but got %s %q", tok.Type, tok.String(p.source))
	}
	p.advance()

	return p.interner.InternBytes(tok.Bytes(p.source)), nil
}

// parseTag parses a TAG token and returns the tag without the # sigil.
func (p *Parser) parseTag() (ast.Tag, error) {
	tok := p.peek()
	if tok.Type != TAG {
		return "", p.errorAtToken(tok, SyntaxError, "expected tag")
	}
	if tok.Len() <= 1 {
		return "", p.errorAtToken(tok, SyntaxError, "expected tag name after '#'")
	}
	p.advance()

	return ast.Tag(p.interner.Intern(tok.String(p.source)[1:])), nil
}

// parseLink parses a LINK token and returns the link without the ^ sigil.
func (p *Parser) parseLink() (ast.Link, error) {
	tok := p.peek()
	if tok.Type != LINK {
		return "", p.errorAtToken(tok, SyntaxError, "expected link")
	}
	if tok.Len() <= 1 {
		return "", p.errorAtToken(tok, SyntaxError, "expected link name after '^'")
	}
	p.advance()

	return ast.Link(p.interner.Intern(tok.String(p.source)[1:])), nil
}

// parseMetadata parses indented key: "value" lines following a directive
// header. Metadata continues as long as indentation continues; duplicate
// keys overwrite in order of appearance.
//
// Keys can be identifiers, keywords (e.g. "price:"), or uppercase/Unicode
// words. A key directly followed by its colon lexes as a single ACCOUNT
// token with a trailing colon.
func (p *Parser) parseMetadata(meta *ast.Metadata) error {
	for !p.isAtEnd() {
		tok := p.peek()
		if tok.Column <= 1 {
			break
		}

		var key string
		text := tok.String(p.source)

		switch {
		case tok.Type == ACCOUNT && strings.HasSuffix(text, ":") && !strings.Contains(strings.TrimSuffix(text, ":"), ":"):
			p.advance()
			key = strings.TrimSuffix(text, ":")

		case (tok.Type == IDENT || isKeyword(tok.Type)) && p.peekAhead(1).Type == COLON:
			p.advance()
			p.advance() // the colon
			key = text

		default:
			return nil
		}

		value, err := p.parseString()
		if err != nil {
			return err
		}

		meta.Set(p.interner.Intern(key), value)
	}

	return nil
}

// isKeyword returns true if the token type is a directive keyword.
func isKeyword(typ TokenType) bool {
	switch typ {
	case BALANCE, OPEN, CLOSE, COMMODITY, PAD, NOTE, DOCUMENT,
		PRICE, EVENT, CUSTOM, OPTION, INCLUDE, PLUGIN:
		return true
	default:
		return false
	}
}

// restOfLine consumes all tokens remaining on the given line and returns
// their source text verbatim, spacing between tokens included.
func (p *Parser) restOfLine(line int) string {
	start := -1
	end := -1

	for !p.isAtEnd() && p.peek().Line == line {
		tok := p.advance()
		if start < 0 {
			start = tok.Start
		}
		end = tok.End
	}

	if start < 0 {
		return ""
	}
	return strings.TrimSpace(string(p.source[start:end]))
}

// Helper methods for token navigation

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAhead(n int) Token {
	pos := p.pos + n
	if pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[pos]
}

func (p *Parser) previous() Token {
	if p.pos == 0 {
		return Token{Type: ILLEGAL}
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Type == typ
}

func (p *Parser) match(types ...TokenType) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) consume(typ TokenType, message string) error {
	if p.check(typ) {
		p.advance()
		return nil
	}
	return p.errorAtToken(p.peek(), SyntaxError, "%s", message)
}

// Error helpers

func (p *Parser) errorAtToken(tok Token, kind ErrorKind, format string, args ...interface{}) error {
	return newErrorf(tokenPosition(tok, p.filename), kind, format, args...)
}

// tokenPosition extracts position information from a token.
func tokenPosition(tok Token, filename string) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   tok.Start,
		Line:     tok.Line,
		Column:   tok.Column,
	}
}
