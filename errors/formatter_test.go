package errors

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerkit/beancount/parser"
)

func parseErr(t *testing.T, source string) error {
	t.Helper()
	_, err := parser.ParseString(context.Background(), source, parser.WithFilename("main.bean"))
	assert.Error(t, err)
	return err
}

func TestTextFormatterWithoutSource(t *testing.T) {
	err := parseErr(t, "2022-03-01 bogus Assets:Cash")

	tf := NewTextFormatter()
	assert.Equal(t, err.Error(), tf.Format(err))
}

func TestTextFormatterWithSourceContext(t *testing.T) {
	source := strings.Join([]string{
		"1970-01-01 open Assets:Cash",
		"2022-03-01 bogus Assets:Cash",
	}, "\n")

	err := parseErr(t, source)
	tf := NewTextFormatter(WithSource([]byte(source)))
	formatted := tf.Format(err)

	assert.Contains(t, formatted, err.Error())
	assert.Contains(t, formatted, "   2022-03-01 bogus Assets:Cash")

	// The caret sits under column 12, where the unknown keyword starts.
	assert.Contains(t, formatted, "   "+strings.Repeat(" ", 11)+"^")
}

func TestTextFormatterFallsBackForPlainErrors(t *testing.T) {
	tf := NewTextFormatter(WithSource([]byte("anything")))
	assert.Equal(t, "plain failure", tf.Format(fmt.Errorf("plain failure")))
}

func TestTextFormatterFormatAll(t *testing.T) {
	tf := NewTextFormatter()
	out := tf.FormatAll([]error{
		fmt.Errorf("first"),
		fmt.Errorf("second"),
	})
	assert.Equal(t, "first\n\nsecond", out)
	assert.Equal(t, "", tf.FormatAll(nil))
}

func TestJSONFormatter(t *testing.T) {
	err := parseErr(t, "2024-02-30 open Assets:Cash")

	jf := NewJSONFormatter()
	out := jf.Format(err)

	assert.Contains(t, out, `"kind":"lexical"`)
	assert.Contains(t, out, `"filename":"main.bean"`)
	assert.Contains(t, out, `"line":1`)
}

func TestJSONFormatterPlainError(t *testing.T) {
	jf := NewJSONFormatter()
	out := jf.Format(fmt.Errorf("plain failure"))

	assert.Contains(t, out, `"kind":"error"`)
	assert.Contains(t, out, `"message":"plain failure"`)
	assert.NotContains(t, out, "position")
}
