package ast

// Open declares the opening of an account at a specific date, marking the
// beginning of its lifetime in the ledger. The optional commodity list
// constrains which currencies the account may hold.
//
// Example:
//
//	2014-05-01 open Assets:US:BofA:Checking USD
//	2014-05-01 open Assets:Investments CNY, USD
type Open struct {
	Pos         Position
	Date        Date
	Account     Account
	Commodities []string
}

var _ Directive = &Open{}

func (o *Open) Position() Position { return o.Pos }
func (o *Open) Kind() string       { return "open" }
func (o *Open) directive()         {}

// Close declares the closing of an account at a specific date, marking the
// end of its lifetime in the ledger.
//
// Example:
//
//	2015-09-23 close Assets:US:BofA:Checking
type Close struct {
	Pos     Position
	Date    Date
	Account Account
}

var _ Directive = &Close{}

func (c *Close) Position() Position { return c.Pos }
func (c *Close) Kind() string       { return "close" }
func (c *Close) directive()         {}

// Commodity declares a commodity or currency that can be used in the ledger,
// optionally annotated with ordered key/value metadata.
//
// Example:
//
//	2014-01-01 commodity USD
//	  name: "US Dollar"
type Commodity struct {
	Pos      Position
	Date     Date
	Currency string
	Metadata Metadata
}

var _ Directive = &Commodity{}

func (c *Commodity) Position() Position { return c.Pos }
func (c *Commodity) Kind() string       { return "commodity" }
func (c *Commodity) directive()         {}

// Balance asserts the balance of an account at a specific date.
//
// Example:
//
//	2014-08-09 balance Assets:Cash 100.00 USD
type Balance struct {
	Pos     Position
	Date    Date
	Account Account
	Amount  Amount
}

var _ Directive = &Balance{}

func (b *Balance) Position() Position { return b.Pos }
func (b *Balance) Kind() string       { return "balance" }
func (b *Balance) directive()         {}

// Pad inserts an automatic adjustment from one account to another so that a
// following balance assertion holds.
//
// Example:
//
//	2014-06-01 pad Assets:Cash Equity:Opening-Balances
type Pad struct {
	Pos  Position
	Date Date
	From Account
	To   Account
}

var _ Directive = &Pad{}

func (p *Pad) Position() Position { return p.Pos }
func (p *Pad) Kind() string       { return "pad" }
func (p *Pad) directive()         {}

// Note attaches a dated free-text description to an account.
//
// Example:
//
//	2014-07-09 note Assets:Cash "Called the bank about a pending deposit"
type Note struct {
	Pos         Position
	Date        Date
	Account     Account
	Description string
}

var _ Directive = &Note{}

func (n *Note) Position() Position { return n.Pos }
func (n *Note) Kind() string       { return "note" }
func (n *Note) directive()         {}

// Document associates an external file with an account. The path may be
// empty.
//
// Example:
//
//	2014-07-09 document Assets:Cash "statements/2014-07.pdf"
type Document struct {
	Pos     Position
	Date    Date
	Account Account
	Path    string
}

var _ Directive = &Document{}

func (d *Document) Position() Position { return d.Pos }
func (d *Document) Kind() string       { return "document" }
func (d *Document) directive()         {}

// Price records a dated price point for a commodity.
//
// Example:
//
//	2014-07-09 price USD 7 CNY
type Price struct {
	Pos       Position
	Date      Date
	Commodity string
	Amount    Amount
}

var _ Directive = &Price{}

func (p *Price) Position() Position { return p.Pos }
func (p *Price) Kind() string       { return "price" }
func (p *Price) directive()         {}

// Event records a dated change of a named variable, such as a location.
//
// Example:
//
//	2014-07-09 event "location" "Paris, France"
type Event struct {
	Pos   Position
	Date  Date
	Name  string
	Value string
}

var _ Directive = &Event{}

func (e *Event) Position() Position { return e.Pos }
func (e *Event) Kind() string       { return "event" }
func (e *Event) directive()         {}

// Custom is a dated directive with a quoted type name and one or more
// free-form values. Values parsed from bare tokens keep their source text;
// values parsed from quoted strings are escape-decoded.
//
// Example:
//
//	2014-07-09 custom "budget" Expenses:Eat "monthly" CNY
type Custom struct {
	Pos    Position
	Date   Date
	Type   string
	Values []string
}

var _ Directive = &Custom{}

func (c *Custom) Position() Position { return c.Pos }
func (c *Custom) Kind() string       { return "custom" }
func (c *Custom) directive()         {}

// Option sets a file-level configuration parameter. Options carry no date.
//
// Example:
//
//	option "title" "Personal Ledger"
type Option struct {
	Pos   Position
	Key   string
	Value string
}

var _ Directive = &Option{}

func (o *Option) Position() Position { return o.Pos }
func (o *Option) Kind() string       { return "option" }
func (o *Option) directive()         {}

// Plugin names a processing extension, with an optional configuration
// string. An empty Config means no configuration was given.
//
// Example:
//
//	plugin "module name" "config data"
type Plugin struct {
	Pos    Position
	Module string
	Config string
}

var _ Directive = &Plugin{}

func (p *Plugin) Position() Position { return p.Pos }
func (p *Plugin) Kind() string       { return "plugin" }
func (p *Plugin) directive()         {}

// Include names another ledger file whose directives should be merged in.
// Resolving the include is left to external collaborators.
//
// Example:
//
//	include "accounts.ledger"
type Include struct {
	Pos      Position
	Filename string
}

var _ Directive = &Include{}

func (i *Include) Position() Position { return i.Pos }
func (i *Include) Kind() string       { return "include" }
func (i *Include) directive()         {}

// Comment is a full comment line, captured verbatim including the leading
// semicolon. Comments keep their position in the directive sequence.
type Comment struct {
	Pos     Position
	Content string
}

var _ Directive = &Comment{}

func (c *Comment) Position() Position { return c.Pos }
func (c *Comment) Kind() string       { return "comment" }
func (c *Comment) directive()         {}
