// Package parser turns ledger text into typed ast.Directive values.
//
// The parser is a hand-written recursive-descent parser over a zero-copy
// token stream. Directives are dispatched on the token following the leading
// date, or on the leading keyword for option/plugin/include; transactions
// are recognized by a flag character (* or !) rather than a keyword.
//
// Parsing is fail-fast: the first malformed record fails the whole document
// with a position-carrying *ParseError. No best-effort AST is produced for
// malformed input.
package parser

import (
	"context"

	"github.com/ledgerkit/beancount/ast"
	"github.com/ledgerkit/beancount/telemetry"
)

// Parser consumes a token stream and produces directives.
type Parser struct {
	source   []byte
	filename string
	tokens   []Token
	pos      int
	interner *Interner
}

// Option configures a parse operation.
type Option func(*config)

type config struct {
	filename string
}

// WithFilename sets the filename reported in positions and errors.
func WithFilename(filename string) Option {
	return func(c *config) {
		c.filename = filename
	}
}

// ParseBytes parses a whole document into ordered directives, comments
// included, in source order.
func ParseBytes(ctx context.Context, source []byte, opts ...Option) ([]ast.Directive, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	collector := telemetry.FromContext(ctx)
	timer := collector.Start("Parse document")
	defer timer.End()

	lexTimer := timer.Child("Lex")
	lexer := NewLexer(source, cfg.filename)
	tokens := lexer.ScanAll()
	lexTimer.Annotate("tokens", len(tokens))
	lexTimer.End()

	p := &Parser{
		source:   source,
		filename: cfg.filename,
		tokens:   tokens,
		interner: lexer.Interner(),
	}

	parseTimer := timer.Child("Parse directives")
	directives, err := p.parseDocument()
	parseTimer.Annotate("directives", len(directives))
	parseTimer.End()
	return directives, err
}

// ParseString parses a whole document given as a string.
func ParseString(ctx context.Context, input string, opts ...Option) ([]ast.Directive, error) {
	return ParseBytes(ctx, []byte(input), opts...)
}

// ParseDirective parses exactly one directive record. It fails if the input
// contains none or more than one.
func ParseDirective(ctx context.Context, input string, opts ...Option) (ast.Directive, error) {
	directives, err := ParseBytes(ctx, []byte(input), opts...)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, newErrorf(ast.Position{Line: 1, Column: 1}, SyntaxError, "expected a directive")
	}
	if len(directives) > 1 {
		return nil, newErrorf(directives[1].Position(), SyntaxError, "expected a single directive, found %d", len(directives))
	}
	return directives[0], nil
}

// ParseAccount parses a standalone account path. Unlike account parsing
// inside directives, the standalone grammar requires at least one segment
// after the account type.
func ParseAccount(input string) (ast.Account, error) {
	lexer := NewLexer([]byte(input), "")
	tokens := lexer.ScanAll()

	p := &Parser{source: []byte(input), tokens: tokens, interner: lexer.Interner()}

	account, err := p.parseAccount()
	if err != nil {
		return ast.Account{}, err
	}
	if !p.isAtEnd() {
		return ast.Account{}, p.errorAtToken(p.peek(), SyntaxError, "unexpected %s after account", p.peek().Type)
	}
	if len(account.Segments) == 0 {
		return ast.Account{}, newErrorf(tokenPosition(tokens[0], ""), SemanticError, "account requires at least one segment after %s", account.Type)
	}

	return account, nil
}

// parseDocument parses the entry sequence: zero or more directives, each
// starting at column 1 of its own line, with comments preserved in source
// order. A token left over past column 1 is a malformed tail of the previous
// record and fails the parse.
func (p *Parser) parseDocument() ([]ast.Directive, error) {
	directives := make([]ast.Directive, 0, 16)

	for !p.isAtEnd() {
		if tok := p.peek(); tok.Column != 1 {
			return nil, p.errorAtToken(tok, SyntaxError, "unexpected %s %q, directives must start at the beginning of a line", tok.Type, tok.String(p.source))
		}

		directive, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}

	return directives, nil
}

// parseEntry parses one directive record: a comment line, a dated directive,
// or one of the dateless keywords (option, plugin, include).
func (p *Parser) parseEntry() (ast.Directive, error) {
	tok := p.peek()
	pos := tokenPosition(tok, p.filename)

	switch tok.Type {
	case COMMENT:
		p.advance()
		return &ast.Comment{Pos: pos, Content: p.interner.InternBytes(tok.Bytes(p.source))}, nil

	case DATE:
		return p.parseDated(pos)

	case OPTION:
		return p.parseOption(pos)

	case PLUGIN:
		return p.parsePlugin(pos)

	case INCLUDE:
		return p.parseInclude(pos)

	default:
		return nil, p.errorAtToken(tok, SyntaxError, "unexpected %s %q, expected a directive", tok.Type, tok.String(p.source))
	}
}

// parseDated dispatches a dated record on the token following the date.
// A flag character instead of a keyword marks a transaction.
func (p *Parser) parseDated(pos ast.Position) (ast.Directive, error) {
	date, err := p.parseDate()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	switch tok.Type {
	case OPEN:
		return p.parseOpen(pos, date)
	case CLOSE:
		return p.parseClose(pos, date)
	case COMMODITY:
		return p.parseCommodity(pos, date)
	case BALANCE:
		return p.parseBalance(pos, date)
	case PAD:
		return p.parsePad(pos, date)
	case NOTE:
		return p.parseNote(pos, date)
	case DOCUMENT:
		return p.parseDocumentDirective(pos, date)
	case PRICE:
		return p.parsePrice(pos, date)
	case EVENT:
		return p.parseEvent(pos, date)
	case CUSTOM:
		return p.parseCustom(pos, date)
	case ASTERISK, EXCLAIM:
		return p.parseTransaction(pos, date)
	default:
		return nil, p.errorAtToken(tok, SyntaxError, "unexpected %s %q after date, expected a directive keyword or transaction flag", tok.Type, tok.String(p.source))
	}
}
