// Package beancount parses plain-text ledger files into a typed AST and
// renders the AST back to text.
//
// The package is the public facade; parsing lives in the parser package,
// rendering in the formatter package, and the directive types in ast.
// Parsing and rendering are inverse operations: rendering a parsed document
// and parsing it again yields an equal AST.
package beancount

import (
	"context"

	"github.com/ledgerkit/beancount/ast"
	"github.com/ledgerkit/beancount/formatter"
	"github.com/ledgerkit/beancount/parser"
)

// ParseEntries parses a whole document into directives in source order,
// comment lines included. The first malformed record fails the parse.
func ParseEntries(ctx context.Context, input string, opts ...parser.Option) ([]ast.Directive, error) {
	return parser.ParseString(ctx, input, opts...)
}

// ParseDirective parses exactly one directive record.
func ParseDirective(ctx context.Context, input string, opts ...parser.Option) (ast.Directive, error) {
	return parser.ParseDirective(ctx, input, opts...)
}

// ParseAccount parses a standalone account path such as
// "Assets:Bank:Checking". The path needs at least one segment after the
// account type.
func ParseAccount(input string) (ast.Account, error) {
	return parser.ParseAccount(input)
}

// Render renders a single directive to canonical text without a trailing
// newline.
func Render(d ast.Directive) string {
	return formatter.Render(d)
}
