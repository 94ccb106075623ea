// Constructor functions for programmatically building AST nodes, such as from
// importers or round-trip tests. Complex types use functional options,
// following Go idioms for configurable constructors.
package ast

// NewAccount creates an Account from a type and segments.
//
// Example:
//
//	account := ast.NewAccount(ast.Assets, "US", "BofA", "Checking")
func NewAccount(t AccountType, segments ...string) Account {
	return Account{Type: t, Segments: segments}
}

// TransactionOption configures a Transaction under construction.
type TransactionOption func(*Transaction)

// WithPayee sets the transaction payee.
func WithPayee(payee string) TransactionOption {
	return func(t *Transaction) { t.Payee = payee }
}

// WithNarration sets the transaction narration.
func WithNarration(narration string) TransactionOption {
	return func(t *Transaction) { t.Narration = narration }
}

// WithTags appends tags to the transaction.
func WithTags(tags ...Tag) TransactionOption {
	return func(t *Transaction) { t.Tags = append(t.Tags, tags...) }
}

// WithLinks appends links to the transaction.
func WithLinks(links ...Link) TransactionOption {
	return func(t *Transaction) { t.Links = append(t.Links, links...) }
}

// WithPostings appends postings to the transaction.
func WithPostings(postings ...*Posting) TransactionOption {
	return func(t *Transaction) { t.Postings = append(t.Postings, postings...) }
}

// NewTransaction creates a Transaction with the given date and flag.
//
// Example:
//
//	txn := ast.NewTransaction(ast.MustDate("2014-05-05"), ast.Complete,
//		ast.WithNarration("Lamb tagine with wine"),
//		ast.WithPostings(
//			ast.NewPosting(ast.NewAccount(ast.Expenses, "Restaurant"),
//				ast.WithAmount(ast.MustAmount("37.45", "USD"))),
//			ast.NewPosting(ast.NewAccount(ast.Liabilities, "CreditCard")),
//		))
func NewTransaction(date Date, flag Flag, opts ...TransactionOption) *Transaction {
	t := &Transaction{Date: date, Flag: flag}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PostingOption configures a Posting under construction.
type PostingOption func(*Posting)

// WithPostingFlag sets an explicit posting flag.
func WithPostingFlag(flag Flag) PostingOption {
	return func(p *Posting) { p.Flag = flag }
}

// WithAmount sets the posting amount.
func WithAmount(amount Amount) PostingOption {
	return func(p *Posting) { p.Amount = &amount }
}

// WithCost sets the posting cost basis. An empty note means no note.
func WithCost(amount Amount, note string) PostingOption {
	return func(p *Posting) { p.Cost = &Cost{Amount: amount, Note: note} }
}

// WithPrice sets a per-unit price annotation.
func WithPrice(amount Amount) PostingOption {
	return func(p *Posting) { p.Price = &amount }
}

// WithTotalPrice sets a lot total price annotation.
func WithTotalPrice(amount Amount) PostingOption {
	return func(p *Posting) { p.TotalPrice = &amount }
}

// NewPosting creates a Posting for the given account. The flag defaults to
// Complete.
func NewPosting(account Account, opts ...PostingOption) *Posting {
	p := &Posting{Flag: Complete, Account: account}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CommodityOption configures a Commodity under construction.
type CommodityOption func(*Commodity)

// WithMeta adds a metadata entry, preserving insertion order.
func WithMeta(key, value string) CommodityOption {
	return func(c *Commodity) { c.Metadata.Set(key, value) }
}

// NewCommodity creates a Commodity declaration.
//
// Example:
//
//	c := ast.NewCommodity(ast.MustDate("2014-01-01"), "USD",
//		ast.WithMeta("name", "US Dollar"))
func NewCommodity(date Date, currency string, opts ...CommodityOption) *Commodity {
	c := &Commodity{Date: date, Currency: currency}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
