package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAccountString(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    string
	}{
		{name: "Simple", account: NewAccount(Assets, "Cash"), want: "Assets:Cash"},
		{name: "Nested", account: NewAccount(Expenses, "Food", "Restaurant"), want: "Expenses:Food:Restaurant"},
		{name: "Unicode", account: NewAccount(Assets, "123", "234", "English", "中文", "日本語", "한국어"), want: "Assets:123:234:English:中文:日本語:한국어"},
		{name: "NoSegments", account: NewAccount(Equity), want: "Equity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.String())
		})
	}
}

func TestAccountCompare(t *testing.T) {
	a := NewAccount(Assets, "Cash")
	b := NewAccount(Assets, "Cash")
	assert.True(t, a.Equal(b))

	// Types order before segments.
	assert.True(t, NewAccount(Assets, "Z").Compare(NewAccount(Liabilities, "A")) < 0)

	// Segment sequences compare lexicographically.
	assert.True(t, NewAccount(Assets, "Bank").Compare(NewAccount(Assets, "Cash")) < 0)

	// A prefix orders before its extension.
	assert.True(t, NewAccount(Assets, "Bank").Compare(NewAccount(Assets, "Bank", "Checking")) < 0)
}

func TestAccountTypeOf(t *testing.T) {
	for _, name := range []string{"Assets", "Liabilities", "Equity", "Income", "Expenses"} {
		typ, ok := AccountTypeOf(name)
		assert.True(t, ok)
		assert.Equal(t, name, string(typ))
	}

	_, ok := AccountTypeOf("Funds")
	assert.False(t, ok)
}

func TestDate(t *testing.T) {
	d, err := NewDate("1970-01-01")
	assert.NoError(t, err)
	assert.Equal(t, "1970-01-01", d.String())

	_, err = NewDate("2024-02-30")
	assert.Error(t, err)

	_, err = NewDate("2024-13-01")
	assert.Error(t, err)
}

func TestAmountPrecision(t *testing.T) {
	tests := []struct {
		value string
	}{
		{"0.1"},
		{"0.10"},
		{"-1"},
		{"1234567890123456789012345678901234567890.000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			a, err := NewAmount(tt.value, "USD")
			assert.NoError(t, err)
			assert.Equal(t, tt.value+" USD", a.String())
		})
	}
}

func TestAmountEqual(t *testing.T) {
	assert.True(t, MustAmount("0.1", "USD").Equal(MustAmount("0.1", "USD")))

	// Same numeric value at a different scale is a different amount.
	assert.False(t, MustAmount("0.1", "USD").Equal(MustAmount("0.10", "USD")))
	assert.False(t, MustAmount("0.1", "USD").Equal(MustAmount("0.1", "CNY")))
}

func TestMetadataOrder(t *testing.T) {
	var m Metadata
	m.Set("a", "b")
	m.Set("中文-test", "한국어 我也不知道我在说啥")

	assert.Equal(t, []string{"a", "中文-test"}, m.Keys())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestMetadataOverwriteKeepsPosition(t *testing.T) {
	var m Metadata
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	v, _ := m.Get("a")
	assert.Equal(t, "3", v)
}
