// Package formatter renders AST values back to canonical ledger text.
//
// Rendering is a total function: any valid AST value produces text that the
// parser accepts, and re-parsing that text yields an equal AST. Whitespace
// between tokens normalizes; the default output uses single spaces, and an
// optional currency column aligns amounts for display.
package formatter

import (
	"io"
	"strings"

	"github.com/ledgerkit/beancount/ast"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultIndentation is the indentation for postings and metadata
	DefaultIndentation = 2

	// MinimumSpacing is the minimum number of spaces before an aligned currency
	MinimumSpacing = 2
)

// Formatter renders directives to ledger text.
// The zero value (and New with no options) produces canonical single-space
// output.
type Formatter struct {
	// CurrencyColumn is the column the numeric value is right-aligned to end
	// at in balance, price and posting lines. 0 disables alignment.
	CurrencyColumn int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithCurrencyColumn sets a column for amount alignment. Alignment only
// widens inter-token whitespace, so aligned output re-parses to the same
// AST as canonical output.
func WithCurrencyColumn(col int) Option {
	return func(f *Formatter) {
		f.CurrencyColumn = col
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render renders a single directive with the default formatter. The result
// carries no trailing newline.
func Render(d ast.Directive) string {
	return New().Render(d)
}

// Render renders a single directive. The result carries no trailing newline;
// multi-line directives (transactions, commodities with metadata) use "\n"
// between lines and two-space indentation for continuation lines.
func (f *Formatter) Render(d ast.Directive) string {
	var buf strings.Builder
	f.formatDirective(d, &buf)
	return buf.String()
}

// Format renders a sequence of directives to w, one record per line in the
// order given.
func (f *Formatter) Format(directives []ast.Directive, w io.Writer) error {
	var buf strings.Builder
	buf.Grow(len(directives) * 64)

	for _, d := range directives {
		f.formatDirective(d, &buf)
		buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// formatDirective renders a directive based on its type. The switch is
// exhaustive over the closed directive set.
func (f *Formatter) formatDirective(d ast.Directive, buf *strings.Builder) {
	switch directive := d.(type) {
	case *ast.Open:
		f.formatOpen(directive, buf)
	case *ast.Close:
		f.formatClose(directive, buf)
	case *ast.Commodity:
		f.formatCommodity(directive, buf)
	case *ast.Transaction:
		f.formatTransaction(directive, buf)
	case *ast.Balance:
		f.formatBalance(directive, buf)
	case *ast.Pad:
		f.formatPad(directive, buf)
	case *ast.Note:
		f.formatNote(directive, buf)
	case *ast.Document:
		f.formatDocument(directive, buf)
	case *ast.Price:
		f.formatPrice(directive, buf)
	case *ast.Event:
		f.formatEvent(directive, buf)
	case *ast.Custom:
		f.formatCustom(directive, buf)
	case *ast.Option:
		f.formatOption(directive, buf)
	case *ast.Plugin:
		f.formatPlugin(directive, buf)
	case *ast.Include:
		f.formatInclude(directive, buf)
	case *ast.Comment:
		buf.WriteString(directive.Content)
	}
}

// formatOpen renders an open directive.
func (f *Formatter) formatOpen(o *ast.Open, buf *strings.Builder) {
	buf.WriteString(o.Date.String())
	buf.WriteString(" open ")
	buf.WriteString(o.Account.String())

	if len(o.Commodities) > 0 {
		buf.WriteByte(' ')
		for i, currency := range o.Commodities {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(currency)
		}
	}
}

// formatClose renders a close directive.
func (f *Formatter) formatClose(c *ast.Close, buf *strings.Builder) {
	buf.WriteString(c.Date.String())
	buf.WriteString(" close ")
	buf.WriteString(c.Account.String())
}

// formatCommodity renders a commodity directive with one metadata line per
// entry, in map order.
func (f *Formatter) formatCommodity(c *ast.Commodity, buf *strings.Builder) {
	buf.WriteString(c.Date.String())
	buf.WriteString(" commodity ")
	buf.WriteString(c.Currency)

	for _, key := range c.Metadata.Keys() {
		value, _ := c.Metadata.Get(key)
		buf.WriteString("\n  ")
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(Escape(value))
	}
}

// formatBalance renders a balance directive.
func (f *Formatter) formatBalance(b *ast.Balance, buf *strings.Builder) {
	buf.WriteString(b.Date.String())
	buf.WriteString(" balance ")
	buf.WriteString(b.Account.String())
	f.formatAmount(b.Amount, buf)
}

// formatPad renders a pad directive.
func (f *Formatter) formatPad(p *ast.Pad, buf *strings.Builder) {
	buf.WriteString(p.Date.String())
	buf.WriteString(" pad ")
	buf.WriteString(p.From.String())
	buf.WriteByte(' ')
	buf.WriteString(p.To.String())
}

// formatNote renders a note directive.
func (f *Formatter) formatNote(n *ast.Note, buf *strings.Builder) {
	buf.WriteString(n.Date.String())
	buf.WriteString(" note ")
	buf.WriteString(n.Account.String())
	buf.WriteByte(' ')
	buf.WriteString(Escape(n.Description))
}

// formatDocument renders a document directive.
func (f *Formatter) formatDocument(d *ast.Document, buf *strings.Builder) {
	buf.WriteString(d.Date.String())
	buf.WriteString(" document ")
	buf.WriteString(d.Account.String())
	buf.WriteByte(' ')
	buf.WriteString(Escape(d.Path))
}

// formatPrice renders a price directive.
func (f *Formatter) formatPrice(p *ast.Price, buf *strings.Builder) {
	buf.WriteString(p.Date.String())
	buf.WriteString(" price ")
	buf.WriteString(p.Commodity)
	f.formatAmount(p.Amount, buf)
}

// formatEvent renders an event directive.
func (f *Formatter) formatEvent(e *ast.Event, buf *strings.Builder) {
	buf.WriteString(e.Date.String())
	buf.WriteString(" event ")
	buf.WriteString(Escape(e.Name))
	buf.WriteByte(' ')
	buf.WriteString(Escape(e.Value))
}

// formatCustom renders a custom directive. All values render quoted; a bare
// value re-parses to the same string.
func (f *Formatter) formatCustom(c *ast.Custom, buf *strings.Builder) {
	buf.WriteString(c.Date.String())
	buf.WriteString(" custom ")
	buf.WriteString(Escape(c.Type))
	for _, value := range c.Values {
		buf.WriteByte(' ')
		buf.WriteString(Escape(value))
	}
}

// formatOption renders an option directive.
func (f *Formatter) formatOption(o *ast.Option, buf *strings.Builder) {
	buf.WriteString("option ")
	buf.WriteString(Escape(o.Key))
	buf.WriteByte(' ')
	buf.WriteString(Escape(o.Value))
}

// formatPlugin renders a plugin directive.
func (f *Formatter) formatPlugin(p *ast.Plugin, buf *strings.Builder) {
	buf.WriteString("plugin ")
	buf.WriteString(Escape(p.Module))
	if p.Config != "" {
		buf.WriteByte(' ')
		buf.WriteString(Escape(p.Config))
	}
}

// formatInclude renders an include directive. The path renders quoted so
// paths with spaces survive the round trip.
func (f *Formatter) formatInclude(i *ast.Include, buf *strings.Builder) {
	buf.WriteString("include ")
	buf.WriteString(Escape(i.Filename))
}

// formatTransaction renders a transaction header followed by one posting
// line per output line, each indented by two spaces.
// Header order is fixed: date flag [payee] [narration] [#tag ...] [^link ...]
func (f *Formatter) formatTransaction(t *ast.Transaction, buf *strings.Builder) {
	buf.WriteString(t.Date.String())
	buf.WriteByte(' ')
	buf.WriteString(string(t.Flag))

	if t.Payee != "" {
		buf.WriteByte(' ')
		buf.WriteString(Escape(t.Payee))
	}
	if t.Narration != "" {
		buf.WriteByte(' ')
		buf.WriteString(Escape(t.Narration))
	}

	for _, tag := range t.Tags {
		buf.WriteString(" #")
		buf.WriteString(string(tag))
	}
	for _, link := range t.Links {
		buf.WriteString(" ^")
		buf.WriteString(string(link))
	}

	for _, posting := range t.Postings {
		buf.WriteByte('\n')
		f.formatPosting(posting, buf)
	}
}

// formatPosting renders a single posting line:
// [flag] account [amount] [{cost[, note]}] [@ price | @@ price]
// The flag renders only when it deviates from the default.
func (f *Formatter) formatPosting(p *ast.Posting, buf *strings.Builder) {
	buf.WriteString("  ")

	if p.Flag == ast.Incomplete {
		buf.WriteString("! ")
	}

	buf.WriteString(p.Account.String())

	if p.Amount != nil {
		f.formatAmount(*p.Amount, buf)
	}

	if p.Cost != nil {
		buf.WriteString(" {")
		buf.WriteString(p.Cost.Amount.String())
		if p.Cost.Note != "" {
			buf.WriteString(", ")
			buf.WriteString(Escape(p.Cost.Note))
		}
		buf.WriteByte('}')
	}

	if p.Price != nil {
		buf.WriteString(" @ ")
		buf.WriteString(p.Price.String())
	} else if p.TotalPrice != nil {
		buf.WriteString(" @@ ")
		buf.WriteString(p.TotalPrice.String())
	}
}

// formatAmount writes an amount after the current line content, either with
// a single space (canonical) or padded so the currency starts at the
// configured column. Padding uses display width, since accounts may contain
// wide CJK characters.
func (f *Formatter) formatAmount(amount ast.Amount, buf *strings.Builder) {
	value := amount.Value.String()

	padding := 1
	if f.CurrencyColumn > 0 {
		padding = f.CurrencyColumn - lineWidth(buf) - len(value)
		if padding < MinimumSpacing {
			padding = MinimumSpacing
		}
	}

	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(value)
	buf.WriteByte(' ')
	buf.WriteString(amount.Currency)
}

// lineWidth returns the display width of the current (last) line in buf.
func lineWidth(buf *strings.Builder) int {
	s := buf.String()
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return runewidth.StringWidth(s)
}
