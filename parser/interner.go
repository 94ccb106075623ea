package parser

// Interner implements string interning to reduce memory usage.
//
// Many strings repeat throughout a ledger file: account names, currency
// codes, common payees. By maintaining a pool of canonical strings, the same
// string instance is reused for all occurrences.
type Interner struct {
	pool map[string]string
}

// NewInterner creates a new string interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// Intern returns the canonical version of the string.
func (i *Interner) Intern(s string) string {
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// InternBytes converts a byte slice to a string and interns it.
// This is the common case when working with tokens from the lexer.
func (i *Interner) InternBytes(b []byte) string {
	// The temporary string for the map lookup is optimized away by the
	// compiler in the hit case.
	s := string(b)
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// Size returns the number of unique strings in the intern pool.
func (i *Interner) Size() int {
	return len(i.pool)
}
