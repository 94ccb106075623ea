package formatter

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerkit/beancount/ast"
)

func TestRenderOpen(t *testing.T) {
	tests := []struct {
		name      string
		directive ast.Directive
		expected  string
	}{
		{
			name: "Simple",
			directive: &ast.Open{
				Date:    ast.MustDate("1970-01-01"),
				Account: ast.NewAccount(ast.Equity, "hello"),
			},
			expected: "1970-01-01 open Equity:hello",
		},
		{
			name: "SingleCommodity",
			directive: &ast.Open{
				Date:        ast.MustDate("1970-01-01"),
				Account:     ast.NewAccount(ast.Equity, "hello"),
				Commodities: []string{"CNY"},
			},
			expected: "1970-01-01 open Equity:hello CNY",
		},
		{
			name: "MultipleCommodities",
			directive: &ast.Open{
				Date:        ast.MustDate("2021-06-01"),
				Account:     ast.NewAccount(ast.Assets, "Checking"),
				Commodities: []string{"CNY", "USD", "CAD"},
			},
			expected: "2021-06-01 open Assets:Checking CNY, USD, CAD",
		},
		{
			name: "UnicodeSegments",
			directive: &ast.Open{
				Date:    ast.MustDate("2021-06-01"),
				Account: ast.NewAccount(ast.Assets, "123", "中文", "日本語"),
			},
			expected: "2021-06-01 open Assets:123:中文:日本語",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.directive))
		})
	}
}

func TestRenderDatedDirectives(t *testing.T) {
	tests := []struct {
		name      string
		directive ast.Directive
		expected  string
	}{
		{
			name: "Close",
			directive: &ast.Close{
				Date:    ast.MustDate("2022-01-01"),
				Account: ast.NewAccount(ast.Assets, "Checking"),
			},
			expected: "2022-01-01 close Assets:Checking",
		},
		{
			name: "Balance",
			directive: &ast.Balance{
				Date:    ast.MustDate("1970-01-01"),
				Account: ast.NewAccount(ast.Equity, "hello"),
				Amount:  ast.MustAmount("10", "CNY"),
			},
			expected: "1970-01-01 balance Equity:hello 10 CNY",
		},
		{
			name: "Pad",
			directive: &ast.Pad{
				Date: ast.MustDate("2022-03-01"),
				From: ast.NewAccount(ast.Assets, "Checking"),
				To:   ast.NewAccount(ast.Equity, "Opening-Balances"),
			},
			expected: "2022-03-01 pad Assets:Checking Equity:Opening-Balances",
		},
		{
			name: "Note",
			directive: &ast.Note{
				Date:        ast.MustDate("2022-03-01"),
				Account:     ast.NewAccount(ast.Assets, "Checking"),
				Description: "Called the bank",
			},
			expected: `2022-03-01 note Assets:Checking "Called the bank"`,
		},
		{
			name: "Document",
			directive: &ast.Document{
				Date:    ast.MustDate("2022-03-01"),
				Account: ast.NewAccount(ast.Assets, "Checking"),
				Path:    "/statements/march.pdf",
			},
			expected: `2022-03-01 document Assets:Checking "/statements/march.pdf"`,
		},
		{
			name: "DocumentEmptyPath",
			directive: &ast.Document{
				Date:    ast.MustDate("2022-03-01"),
				Account: ast.NewAccount(ast.Assets, "Checking"),
			},
			expected: `2022-03-01 document Assets:Checking ""`,
		},
		{
			name: "Price",
			directive: &ast.Price{
				Date:      ast.MustDate("2022-03-01"),
				Commodity: "USD",
				Amount:    ast.MustAmount("7", "CNY"),
			},
			expected: "2022-03-01 price USD 7 CNY",
		},
		{
			name: "Event",
			directive: &ast.Event{
				Date:  ast.MustDate("2022-03-01"),
				Name:  "location",
				Value: "Shanghai",
			},
			expected: `2022-03-01 event "location" "Shanghai"`,
		},
		{
			name: "Custom",
			directive: &ast.Custom{
				Date:   ast.MustDate("2022-03-01"),
				Type:   "budget",
				Values: []string{"Expenses:Eat", "monthly", "CNY"},
			},
			expected: `2022-03-01 custom "budget" "Expenses:Eat" "monthly" "CNY"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.directive))
		})
	}
}

func TestRenderUndatedDirectives(t *testing.T) {
	tests := []struct {
		name      string
		directive ast.Directive
		expected  string
	}{
		{
			name:      "Option",
			directive: &ast.Option{Key: "hello", Value: "value"},
			expected:  `option "hello" "value"`,
		},
		{
			name:      "Plugin",
			directive: &ast.Plugin{Module: "beancount.plugins.auto"},
			expected:  `plugin "beancount.plugins.auto"`,
		},
		{
			name:      "PluginWithConfig",
			directive: &ast.Plugin{Module: "beancount.plugins.auto", Config: "strict"},
			expected:  `plugin "beancount.plugins.auto" "strict"`,
		},
		{
			name:      "Include",
			directive: &ast.Include{Filename: "accounts/2022 archive.bean"},
			expected:  `include "accounts/2022 archive.bean"`,
		},
		{
			name:      "Comment",
			directive: &ast.Comment{Content: ";你好啊"},
			expected:  ";你好啊",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.directive))
		})
	}
}

func TestRenderCommodity(t *testing.T) {
	c := ast.NewCommodity(ast.MustDate("2022-03-01"), "CNY",
		ast.WithMeta("a", "b"),
		ast.WithMeta("中文-test", "值"),
	)

	expected := strings.Join([]string{
		"2022-03-01 commodity CNY",
		`  a: "b"`,
		`  中文-test: "值"`,
	}, "\n")
	assert.Equal(t, expected, Render(c))
}

func TestRenderTransaction(t *testing.T) {
	tests := []struct {
		name        string
		transaction *ast.Transaction
		expected    []string
	}{
		{
			name: "PayeeAndNarration",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithPayee("Grocery"),
				ast.WithNarration("weekly shop"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Expenses, "Food"),
						ast.WithAmount(ast.MustAmount("30.5", "USD"))),
					ast.NewPosting(ast.NewAccount(ast.Assets, "Checking"),
						ast.WithAmount(ast.MustAmount("-30.5", "USD"))),
				),
			),
			expected: []string{
				`2022-03-01 * "Grocery" "weekly shop"`,
				"  Expenses:Food 30.5 USD",
				"  Assets:Checking -30.5 USD",
			},
		},
		{
			name: "NarrationOnly",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Incomplete,
				ast.WithNarration("pending"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Expenses, "Food")),
				),
			),
			expected: []string{
				`2022-03-01 ! "pending"`,
				"  Expenses:Food",
			},
		},
		{
			name: "TagsAndLinks",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithNarration("trip"),
				ast.WithTags("travel", "2022"),
				ast.WithLinks("receipt-1"),
			),
			expected: []string{
				`2022-03-01 * "trip" #travel #2022 ^receipt-1`,
			},
		},
		{
			name: "CostAndPrice",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithNarration("buy"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Assets, "Invest"),
						ast.WithAmount(ast.MustAmount("10", "HOOL")),
						ast.WithCost(ast.MustAmount("0.1", "USD"), "TEST"),
						ast.WithPrice(ast.MustAmount("0.2", "USD"))),
				),
			),
			expected: []string{
				`2022-03-01 * "buy"`,
				`  Assets:Invest 10 HOOL {0.1 USD, "TEST"} @ 0.2 USD`,
			},
		},
		{
			name: "TotalPrice",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithNarration("convert"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Assets, "Invest"),
						ast.WithAmount(ast.MustAmount("10", "HOOL")),
						ast.WithTotalPrice(ast.MustAmount("2", "USD"))),
				),
			),
			expected: []string{
				`2022-03-01 * "convert"`,
				"  Assets:Invest 10 HOOL @@ 2 USD",
			},
		},
		{
			name: "AnnotationsWithoutAmount",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithNarration("lot"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Assets, "Invest"),
						ast.WithCost(ast.MustAmount("518.73", "USD"), "")),
					ast.NewPosting(ast.NewAccount(ast.Assets, "Cash"),
						ast.WithPrice(ast.MustAmount("1", "USD"))),
					ast.NewPosting(ast.NewAccount(ast.Assets, "Total"),
						ast.WithTotalPrice(ast.MustAmount("2", "USD"))),
				),
			),
			expected: []string{
				`2022-03-01 * "lot"`,
				"  Assets:Invest {518.73 USD}",
				"  Assets:Cash @ 1 USD",
				"  Assets:Total @@ 2 USD",
			},
		},
		{
			name: "IncompletePostingFlag",
			transaction: ast.NewTransaction(ast.MustDate("2022-03-01"), ast.Complete,
				ast.WithNarration("check later"),
				ast.WithPostings(
					ast.NewPosting(ast.NewAccount(ast.Expenses, "Food"),
						ast.WithPostingFlag(ast.Incomplete),
						ast.WithAmount(ast.MustAmount("5", "USD"))),
				),
			),
			expected: []string{
				`2022-03-01 * "check later"`,
				"  ! Expenses:Food 5 USD",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, strings.Join(tt.expected, "\n"), Render(tt.transaction))
		})
	}
}

func TestRenderPreservesDecimalScale(t *testing.T) {
	b := &ast.Balance{
		Date:    ast.MustDate("2022-03-01"),
		Account: ast.NewAccount(ast.Assets, "Checking"),
		Amount:  ast.MustAmount("0.10", "USD"),
	}
	assert.Equal(t, "2022-03-01 balance Assets:Checking 0.10 USD", Render(b))
}

func TestCurrencyColumnAlignment(t *testing.T) {
	f := New(WithCurrencyColumn(30))

	b := &ast.Balance{
		Date:    ast.MustDate("2022-03-01"),
		Account: ast.NewAccount(ast.Assets, "Cash"),
		Amount:  ast.MustAmount("10", "USD"),
	}
	// "2022-03-01 balance Assets:Cash" is 30 wide, so only the minimum
	// spacing applies and "10" ends past the column.
	assert.Equal(t, "2022-03-01 balance Assets:Cash  10 USD", f.Render(b))

	short := &ast.Price{
		Date:      ast.MustDate("2022-03-01"),
		Commodity: "USD",
		Amount:    ast.MustAmount("7", "CNY"),
	}
	// "2022-03-01 price USD" is 20 wide; the value ends at column 30.
	assert.Equal(t, "2022-03-01 price USD         7 CNY", f.Render(short))
}

func TestFormatWritesEntriesInOrder(t *testing.T) {
	f := New()
	var buf strings.Builder

	err := f.Format([]ast.Directive{
		&ast.Comment{Content: ";你好啊"},
		&ast.Open{Date: ast.MustDate("1970-01-01"), Account: ast.NewAccount(ast.Equity, "hello"), Commodities: []string{"CNY"}},
	}, &buf)
	assert.NoError(t, err)

	assert.Equal(t, ";你好啊\n1970-01-01 open Equity:hello CNY\n", buf.String())
}
