// Package ast declares the types used to represent syntax trees for ledger files.
//
// These types represent the structure of ledger directives, transactions, and
// related elements. An AST can be created by parsing ledger text with the parser
// package, or constructed programmatically for generating ledger output.
package ast

// Directive is the interface implemented by all directive types.
//
// The set of directives is closed: every implementation lives in this package,
// and the serializer switches exhaustively over it. Adding a directive kind is
// a compile-time-checked change.
type Directive interface {
	// Position reports where the directive starts in the source file.
	// Directives constructed programmatically have a zero position.
	Position() Position

	// Kind returns the directive keyword ("open", "balance", ...).
	Kind() string

	directive()
}
