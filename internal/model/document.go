package model

// Document is the typed form of one OFX file.
//
// Currency codes are ISO-4217 and languages ISO-639 three-letter codes. Every
// account appears in exactly one of BankAccounts, CreditAccounts or
// InvestmentAccounts. InvestmentAccounts is never populated.
type Document struct {
	Header             Header
	SignOn             *SignOn // nil when the sign-on section is missing
	SignupAccountInfo  []AccountInfo
	BankAccounts       []*BankAccount
	CreditAccounts     []*CreditAccount
	InvestmentAccounts []*InvestmentAccount
}

// Accounts returns bank, credit and investment accounts in that order.
func (d *Document) Accounts() []Account {
	accts := make([]Account, 0, len(d.BankAccounts)+len(d.CreditAccounts)+len(d.InvestmentAccounts))
	for _, a := range d.BankAccounts {
		accts = append(accts, a)
	}
	for _, a := range d.CreditAccounts {
		accts = append(accts, a)
	}
	for _, a := range d.InvestmentAccounts {
		accts = append(accts, a)
	}
	return accts
}

// BankAccount returns the first bank account, or nil.
//
// Deprecated: use BankAccounts.
func (d *Document) BankAccount() *BankAccount {
	if len(d.BankAccounts) == 0 {
		return nil
	}
	return d.BankAccounts[0]
}

// CreditCard returns the first credit account, or nil.
//
// Deprecated: use CreditAccounts.
func (d *Document) CreditCard() *CreditAccount {
	if len(d.CreditAccounts) == 0 {
		return nil
	}
	return d.CreditAccounts[0]
}

// HeaderField is one key:value line of the header block. HasValue is false
// for a line that carried no colon.
type HeaderField struct {
	Key      string
	Value    string
	HasValue bool
}

// Header is the ordered key:value block preceding the markup body. A key
// seen twice keeps its first position and its last value.
type Header struct {
	keys   []string
	fields map[string]HeaderField
}

// NewHeader builds a Header from fields in source order.
func NewHeader(fields ...HeaderField) Header {
	h := Header{fields: make(map[string]HeaderField, len(fields))}
	for _, f := range fields {
		if _, seen := h.fields[f.Key]; !seen {
			h.keys = append(h.keys, f.Key)
		}
		h.fields[f.Key] = f
	}
	return h
}

// Get returns the value for key. ok is false when the key is missing or
// was given without a value.
func (h Header) Get(key string) (value string, ok bool) {
	f, found := h.fields[key]
	if !found || !f.HasValue {
		return "", false
	}
	return f.Value, true
}

// Has reports whether key appeared in the header, with or without a value.
func (h Header) Has(key string) bool {
	_, ok := h.fields[key]
	return ok
}

// Keys returns the keys in first-seen order.
func (h Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Fields returns one entry per key, in first-seen order.
func (h Header) Fields() []HeaderField {
	out := make([]HeaderField, 0, len(h.keys))
	for _, k := range h.keys {
		out = append(out, h.fields[k])
	}
	return out
}

// Len returns the number of distinct keys.
func (h Header) Len() int { return len(h.keys) }
