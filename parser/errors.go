package parser

import (
	"fmt"

	"github.com/ledgerkit/beancount/ast"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// LexicalError covers malformed primitives: bad dates, bad numbers,
	// unterminated strings.
	LexicalError ErrorKind = iota
	// SyntaxError covers unexpected tokens, missing required fields, and
	// records matching no directive shape.
	SyntaxError
	// SemanticError covers well-formed input rejected during construction,
	// such as a standalone account with zero segments.
	SemanticError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case SemanticError:
		return "semantic"
	default:
		return "unknown"
	}
}

// ParseError describes a parse failure with its source position. The parser
// never recovers internally; the first failing record fails the parse.
type ParseError struct {
	Pos     ast.Position
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	location := fmt.Sprintf("%s:%d:%d", e.Pos.Filename, e.Pos.Line, e.Pos.Column)
	if e.Pos.Filename == "" {
		location = fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s: %s error: %s", location, e.Kind, e.Message)
}

// GetPosition returns the error position, for error presentation layers.
func (e *ParseError) GetPosition() ast.Position {
	return e.Pos
}

func newErrorf(pos ast.Position, kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Pos:     pos,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
