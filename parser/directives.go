package parser

import "github.com/ledgerkit/beancount/ast"

// Directive parsers for all non-transaction directives.
// These are relatively simple parsers with deterministic structure.

// parseOpen parses: DATE open ACCOUNT [CURRENCY [, CURRENCY]*]
func (p *Parser) parseOpen(pos ast.Position, date ast.Date) (*ast.Open, error) {
	if err := p.consume(OPEN, "expected 'open'"); err != nil {
		return nil, err
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	open := &ast.Open{
		Pos:     pos,
		Date:    date,
		Account: account,
	}

	// Optional comma-separated commodity list, on the same line
	if p.check(IDENT) && p.peek().Line == pos.Line {
		currency, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		open.Commodities = append(open.Commodities, currency)

		for p.check(COMMA) && p.peek().Line == pos.Line {
			p.advance()
			currency, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			open.Commodities = append(open.Commodities, currency)
		}
	}

	return open, nil
}

// parseClose parses: DATE close ACCOUNT
func (p *Parser) parseClose(pos ast.Position, date ast.Date) (*ast.Close, error) {
	if err := p.consume(CLOSE, "expected 'close'"); err != nil {
		return nil, err
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	return &ast.Close{
		Pos:     pos,
		Date:    date,
		Account: account,
	}, nil
}

// parseCommodity parses: DATE commodity CURRENCY
//
//	[KEY: "VALUE"]*
//
// Metadata lines continue as long as indentation continues; the map keeps
// insertion order and duplicate keys overwrite in order of appearance.
func (p *Parser) parseCommodity(pos ast.Position, date ast.Date) (*ast.Commodity, error) {
	if err := p.consume(COMMODITY, "expected 'commodity'"); err != nil {
		return nil, err
	}

	currency, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	commodity := &ast.Commodity{
		Pos:      pos,
		Date:     date,
		Currency: currency,
	}

	if err := p.parseMetadata(&commodity.Metadata); err != nil {
		return nil, err
	}

	return commodity, nil
}

// parseBalance parses: DATE balance ACCOUNT AMOUNT
func (p *Parser) parseBalance(pos ast.Position, date ast.Date) (*ast.Balance, error) {
	if err := p.consume(BALANCE, "expected 'balance'"); err != nil {
		return nil, err
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	amount, err := p.parseAmount()
	if err != nil {
		return nil, err
	}

	return &ast.Balance{
		Pos:     pos,
		Date:    date,
		Account: account,
		Amount:  amount,
	}, nil
}

// parsePad parses: DATE pad ACCOUNT ACCOUNT
func (p *Parser) parsePad(pos ast.Position, date ast.Date) (*ast.Pad, error) {
	if err := p.consume(PAD, "expected 'pad'"); err != nil {
		return nil, err
	}

	from, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	to, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	return &ast.Pad{
		Pos:  pos,
		Date: date,
		From: from,
		To:   to,
	}, nil
}

// parseNote parses: DATE note ACCOUNT STRING
func (p *Parser) parseNote(pos ast.Position, date ast.Date) (*ast.Note, error) {
	if err := p.consume(NOTE, "expected 'note'"); err != nil {
		return nil, err
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	description, err := p.parseString()
	if err != nil {
		return nil, err
	}

	return &ast.Note{
		Pos:         pos,
		Date:        date,
		Account:     account,
		Description: description,
	}, nil
}

// parseDocumentDirective parses: DATE document ACCOUNT STRING
// The path string may be empty.
func (p *Parser) parseDocumentDirective(pos ast.Position, date ast.Date) (*ast.Document, error) {
	if err := p.consume(DOCUMENT, "expected 'document'"); err != nil {
		return nil, err
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}

	path, err := p.parseString()
	if err != nil {
		return nil, err
	}

	return &ast.Document{
		Pos:     pos,
		Date:    date,
		Account: account,
		Path:    path,
	}, nil
}

// parsePrice parses: DATE price CURRENCY AMOUNT
func (p *Parser) parsePrice(pos ast.Position, date ast.Date) (*ast.Price, error) {
	if err := p.consume(PRICE, "expected 'price'"); err != nil {
		return nil, err
	}

	commodity, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	amount, err := p.parseAmount()
	if err != nil {
		return nil, err
	}

	return &ast.Price{
		Pos:       pos,
		Date:      date,
		Commodity: commodity,
		Amount:    amount,
	}, nil
}

// parseEvent parses: DATE event STRING STRING
func (p *Parser) parseEvent(pos ast.Position, date ast.Date) (*ast.Event, error) {
	if err := p.consume(EVENT, "expected 'event'"); err != nil {
		return nil, err
	}

	name, err := p.parseString()
	if err != nil {
		return nil, err
	}

	value, err := p.parseString()
	if err != nil {
		return nil, err
	}

	return &ast.Event{
		Pos:   pos,
		Date:  date,
		Name:  name,
		Value: value,
	}, nil
}

// parseCustom parses: DATE custom STRING VALUE+
// where VALUE is a quoted string (escape-decoded) or any bare token
// (account, currency, number), kept as its source text.
func (p *Parser) parseCustom(pos ast.Position, date ast.Date) (*ast.Custom, error) {
	keyword := p.peek()
	if err := p.consume(CUSTOM, "expected 'custom'"); err != nil {
		return nil, err
	}

	typeName, err := p.parseString()
	if err != nil {
		return nil, err
	}

	custom := &ast.Custom{
		Pos:  pos,
		Date: date,
		Type: typeName,
	}

	for !p.isAtEnd() && p.peek().Line == keyword.Line {
		tok := p.peek()

		switch tok.Type {
		case STRING:
			value, err := p.parseString()
			if err != nil {
				return nil, err
			}
			custom.Values = append(custom.Values, value)

		case ACCOUNT, IDENT, NUMBER, DATE:
			p.advance()
			custom.Values = append(custom.Values, p.interner.InternBytes(tok.Bytes(p.source)))

		default:
			return nil, p.errorAtToken(tok, SyntaxError, "unexpected %s %q in custom directive", tok.Type, tok.String(p.source))
		}
	}

	if len(custom.Values) == 0 {
		return nil, p.errorAtToken(p.peek(), SyntaxError, "custom directive requires at least one value")
	}

	return custom, nil
}

// parseOption parses: option STRING STRING
func (p *Parser) parseOption(pos ast.Position) (*ast.Option, error) {
	if err := p.consume(OPTION, "expected 'option'"); err != nil {
		return nil, err
	}

	key, err := p.parseString()
	if err != nil {
		return nil, err
	}

	value, err := p.parseString()
	if err != nil {
		return nil, err
	}

	return &ast.Option{
		Pos:   pos,
		Key:   key,
		Value: value,
	}, nil
}

// parsePlugin parses: plugin STRING [STRING]
func (p *Parser) parsePlugin(pos ast.Position) (*ast.Plugin, error) {
	if err := p.consume(PLUGIN, "expected 'plugin'"); err != nil {
		return nil, err
	}

	module, err := p.parseString()
	if err != nil {
		return nil, err
	}

	plugin := &ast.Plugin{
		Pos:    pos,
		Module: module,
	}

	if p.check(STRING) && p.peek().Line == pos.Line {
		config, err := p.parseString()
		if err != nil {
			return nil, err
		}
		plugin.Config = config
	}

	return plugin, nil
}

// parseInclude parses: include STRING, or include BARE_PATH where the bare
// path is the rest of the line verbatim.
func (p *Parser) parseInclude(pos ast.Position) (*ast.Include, error) {
	keyword := p.peek()
	if err := p.consume(INCLUDE, "expected 'include'"); err != nil {
		return nil, err
	}

	include := &ast.Include{Pos: pos}

	if p.check(STRING) {
		filename, err := p.parseString()
		if err != nil {
			return nil, err
		}
		include.Filename = filename
		return include, nil
	}

	filename := p.restOfLine(keyword.Line)
	if filename == "" {
		return nil, p.errorAtToken(p.peek(), SyntaxError, "expected file path after 'include'")
	}
	include.Filename = p.interner.Intern(filename)

	return include, nil
}
