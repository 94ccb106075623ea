package ast

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the root category of an account. The five categories are a
// fixed part of the grammar; any other leading segment is rejected.
type AccountType string

const (
	Assets      AccountType = "Assets"
	Liabilities AccountType = "Liabilities"
	Equity      AccountType = "Equity"
	Income      AccountType = "Income"
	Expenses    AccountType = "Expenses"
)

// accountTypeOrder fixes the ordering of account types for Compare.
var accountTypeOrder = map[AccountType]int{
	Assets:      0,
	Liabilities: 1,
	Equity:      2,
	Income:      3,
	Expenses:    4,
}

// AccountTypeOf returns the account type named by s, if any.
func AccountTypeOf(s string) (AccountType, bool) {
	t := AccountType(s)
	if _, ok := accountTypeOrder[t]; ok {
		return t, true
	}
	return "", false
}

// Account identifies a ledger account: a type followed by colon-separated
// segments. Segments may contain Unicode letters and digits.
//
// Example accounts:
//
//	Assets:US:BofA:Checking
//	Expenses:Food:中文
//
// Zero segments is representable (a bare root account such as "Assets" is
// accepted inside directives); the standalone account grammar requires at
// least one segment.
type Account struct {
	Type     AccountType
	Segments []string
}

// String renders the account as the type followed by ":"-joined segments,
// with no trailing colon when there are no segments.
func (a Account) String() string {
	if len(a.Segments) == 0 {
		return string(a.Type)
	}
	return string(a.Type) + ":" + strings.Join(a.Segments, ":")
}

// Equal reports structural equality of two accounts.
func (a Account) Equal(b Account) bool {
	return a.Compare(b) == 0
}

// Compare orders accounts by type, then by segment sequence lexicographically.
func (a Account) Compare(b Account) int {
	if d := accountTypeOrder[a.Type] - accountTypeOrder[b.Type]; d != 0 {
		return d
	}
	for i := 0; i < len(a.Segments) && i < len(b.Segments); i++ {
		if c := strings.Compare(a.Segments[i], b.Segments[i]); c != 0 {
			return c
		}
	}
	return len(a.Segments) - len(b.Segments)
}

// Date is a calendar date with no time component.
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

// NewDate parses a date string in YYYY-MM-DD format.
// Invalid calendar dates (e.g. day 32) are rejected.
func NewDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// MustDate is like NewDate but panics on error. Intended for tests and
// programmatic construction with known-good literals.
func MustDate(s string) Date {
	d, err := NewDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// Amount is a decimal value paired with a commodity symbol. The value keeps
// the precision of the source literal: "0.10" stays "0.10", not "0.1".
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount creates an Amount from a decimal literal and currency.
func NewAmount(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: d, Currency: currency}, nil
}

// MustAmount is like NewAmount but panics on error.
func MustAmount(value, currency string) Amount {
	a, err := NewAmount(value, currency)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the amount as "value currency".
func (a Amount) String() string {
	return a.Value.String() + " " + a.Currency
}

// Equal reports whether two amounts carry the same value at the same scale
// and the same currency.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency &&
		a.Value.Exponent() == b.Value.Exponent() &&
		a.Value.Equal(b.Value)
}

// Cost is the acquisition-price annotation on a posting, written as
// {amount[, "note"]}. An empty note means no note.
type Cost struct {
	Amount Amount
	Note   string
}

// Tag is a transaction tag, written #name in source.
type Tag string

// Link is a transaction link, written ^name in source.
type Link string

// Metadata is an insertion-ordered mapping from metadata key to string value.
// Setting an existing key overwrites its value but keeps its original
// position; the order is observable through parse and render.
type Metadata struct {
	keys   []string
	values map[string]string
}

// Set adds or overwrites a key.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}
