package ast

// Flag marks the status of a transaction or posting: '*' for complete,
// '!' for incomplete.
type Flag string

const (
	Complete   Flag = "*"
	Incomplete Flag = "!"
)

// Transaction records a financial transaction with a date, flag, optional
// payee and narration, tags, links, and a list of postings.
//
// Payee/narration resolution: with no quoted string after the flag both are
// empty; with one string it becomes the narration; with two the first is the
// payee and the second the narration. An empty string means absent.
//
// Example:
//
//	2014-05-05 * "Cafe Mogador" "Lamb tagine with wine" #food
//	  Liabilities:CreditCard  -37.45 USD
//	  Expenses:Restaurant
type Transaction struct {
	Pos       Position
	Date      Date
	Flag      Flag
	Payee     string
	Narration string
	Tags      []Tag
	Links     []Link
	Postings  []*Posting
}

var _ Directive = &Transaction{}

func (t *Transaction) Position() Position { return t.Pos }
func (t *Transaction) Kind() string       { return "transaction" }
func (t *Transaction) directive()         {}

// Posting is a single leg of a transaction: an account with an optional
// amount, cost and price annotation. The flag defaults to Complete when
// absent in source. At most one of Price and TotalPrice may be set; the
// grammar rejects a posting carrying both.
//
// Example postings:
//
//	Assets:Investments  10 HOOL {518.73 USD, "first-lot"}
//	Assets:Cash        200 EUR @ 1.35 USD
//	Expenses:Fees       15 EUR @@ 20.25 USD
//	Assets:Checking
type Posting struct {
	Flag       Flag
	Account    Account
	Amount     *Amount
	Cost       *Cost
	Price      *Amount // per-unit price, written @ amount
	TotalPrice *Amount // lot total price, written @@ amount
}
