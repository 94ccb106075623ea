package parser

import "github.com/ledgerkit/beancount/ast"

// Transaction parsing - the most complex directive type.
// Transactions are keyed by a flag character rather than a keyword, and
// their postings are indented on subsequent lines.

// parseTransaction parses a transaction:
// DATE FLAG [PAYEE] [NARRATION] [TAG]* [LINK]*
//
//	POSTING*
func (p *Parser) parseTransaction(pos ast.Position, date ast.Date) (*ast.Transaction, error) {
	txn := &ast.Transaction{
		Pos:  pos,
		Date: date,
	}

	if p.match(ASTERISK) {
		txn.Flag = ast.Complete
	} else if p.match(EXCLAIM) {
		txn.Flag = ast.Incomplete
	} else {
		return nil, p.errorAtToken(p.peek(), SyntaxError, "expected transaction flag (* or !)")
	}

	// Zero strings: no payee, no narration.
	// One string: it is the narration.
	// Two strings: payee then narration.
	if p.check(STRING) {
		first, err := p.parseString()
		if err != nil {
			return nil, err
		}

		if p.check(STRING) {
			second, err := p.parseString()
			if err != nil {
				return nil, err
			}
			txn.Payee = first
			txn.Narration = second
		} else {
			txn.Narration = first
		}
	}

	// Tags and links, order preserved
	for p.check(TAG) || p.check(LINK) {
		if p.check(TAG) {
			tag, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			txn.Tags = append(txn.Tags, tag)
		} else {
			link, err := p.parseLink()
			if err != nil {
				return nil, err
			}
			txn.Links = append(txn.Links, link)
		}
	}

	postings, err := p.parsePostings(pos.Line)
	if err != nil {
		return nil, err
	}
	txn.Postings = postings

	return txn, nil
}

// parsePostings parses all postings for a transaction.
// Postings are indented lines (column > 1) following the header line;
// a token back at column 1 ends the transaction.
func (p *Parser) parsePostings(headerLine int) ([]*ast.Posting, error) {
	postings := make([]*ast.Posting, 0, 4)

	for !p.isAtEnd() {
		tok := p.peek()

		if tok.Line == headerLine {
			return nil, p.errorAtToken(tok, SyntaxError, "postings must start on a new line")
		}
		if tok.Column <= 1 {
			break
		}

		// Comments are entry-level records; an indented comment inside the
		// posting block would be silently lost, so it is rejected.
		if tok.Type == COMMENT {
			return nil, p.errorAtToken(tok, SyntaxError, "comments must start at the beginning of a line")
		}

		// A posting starts with an optional flag or an account
		switch {
		case tok.Type == ASTERISK || tok.Type == EXCLAIM || tok.Type == ACCOUNT:
		case tok.Type == IDENT && isAccountTypeToken(tok, p.source):
		default:
			return nil, p.errorAtToken(tok, SyntaxError, "unexpected %s %q, expected a posting", tok.Type, tok.String(p.source))
		}

		posting, err := p.parsePosting()
		if err != nil {
			return nil, err
		}

		postings = append(postings, posting)
	}

	return postings, nil
}

// isAccountTypeToken reports whether an IDENT token is a bare account type
// (a root account with zero segments).
func isAccountTypeToken(tok Token, source []byte) bool {
	_, ok := ast.AccountTypeOf(tok.String(source))
	return ok
}

// parsePosting parses a single posting:
// [FLAG] ACCOUNT [AMOUNT] [COST] [@ PRICE | @@ PRICE]
//
// Amount, cost and price are independent optionals; a posting may carry a
// unit price or a total price but never both.
func (p *Parser) parsePosting() (*ast.Posting, error) {
	line := p.peek().Line

	posting := &ast.Posting{Flag: ast.Complete}

	if p.match(ASTERISK) {
		posting.Flag = ast.Complete
	} else if p.match(EXCLAIM) {
		posting.Flag = ast.Incomplete
	}

	account, err := p.parseAccount()
	if err != nil {
		return nil, err
	}
	posting.Account = account

	// Optional amount
	if p.check(NUMBER) && p.peek().Line == line {
		amount, err := p.parseAmount()
		if err != nil {
			return nil, err
		}
		posting.Amount = &amount
	}

	// Optional cost specification
	if p.check(LBRACE) && p.peek().Line == line {
		cost, err := p.parseCost()
		if err != nil {
			return nil, err
		}
		posting.Cost = cost
	}

	// Optional price annotation
	if (p.check(AT) || p.check(ATAT)) && p.peek().Line == line {
		total := p.check(ATAT)
		p.advance()

		price, err := p.parseAmount()
		if err != nil {
			return nil, err
		}
		if total {
			posting.TotalPrice = &price
		} else {
			posting.Price = &price
		}

		// A second price annotation on the same line is rejected
		if p.check(AT) || p.check(ATAT) {
			return nil, p.errorAtToken(p.peek(), SyntaxError, "posting cannot carry both a unit price and a total price")
		}
	}

	return posting, nil
}

// parseCost parses a cost specification: { AMOUNT [, STRING] }
func (p *Parser) parseCost() (*ast.Cost, error) {
	if err := p.consume(LBRACE, "expected '{'"); err != nil {
		return nil, err
	}

	amount, err := p.parseAmount()
	if err != nil {
		return nil, err
	}

	cost := &ast.Cost{Amount: amount}

	if p.match(COMMA) {
		note, err := p.parseString()
		if err != nil {
			return nil, err
		}
		cost.Note = note
	}

	if err := p.consume(RBRACE, "expected '}'"); err != nil {
		return nil, err
	}

	return cost, nil
}
