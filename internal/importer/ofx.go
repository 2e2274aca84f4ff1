package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/cleared-dev/ofxparse/internal/markup"
	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/money"
	"github.com/cleared-dev/ofxparse/internal/ofx"
)

// OFXParser flattens the bank and credit card statements of an OFX (or
// Quicken QFX) file.
type OFXParser struct {
	format string
}

// NewOFXParser returns a parser registered under format, usually the file
// extension.
func NewOFXParser(format string) *OFXParser {
	return &OFXParser{format: format}
}

// Format returns the parser name.
func (p *OFXParser) Format() string { return p.format }

// Parse reads an OFX file and returns one BankTransaction per statement
// transaction.
func (p *OFXParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	doc, err := p.ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return Flatten(doc)
}

// ParseDocument reads an OFX file into its document model.
func (p *OFXParser) ParseDocument(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s file: %w", p.format, err)
	}

	text, err := DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s file: %w", p.format, err)
	}

	doc, err := ofx.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s file: %w", p.format, err)
	}
	return doc, nil
}

// DecodeText converts data to UTF-8 according to the CHARSET header field.
// Files declaring UTF-8 encoding or an unknown charset pass through as is.
func DecodeText(data []byte) (string, error) {
	header, _ := markup.SplitHeader(string(data))
	fields := markup.ParseHeader(header)

	if enc, _ := fields.Get("ENCODING"); strings.EqualFold(enc, "UTF-8") {
		return string(data), nil
	}

	cs, _ := fields.Get("CHARSET")
	dec := charsetDecoder(cs)
	if dec == nil {
		return string(data), nil
	}

	out, err := dec.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func charsetDecoder(charset string) *encoding.Decoder {
	switch strings.ToUpper(charset) {
	case "1252", "WINDOWS-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-1", "8859-1":
		return charmap.ISO8859_1.NewDecoder()
	}
	return nil
}

// Flatten turns every bank and credit card transaction of doc into a
// BankTransaction. A transaction without a readable date or amount is an
// error.
func Flatten(doc *model.Document) ([]model.BankTransaction, error) {
	var txns []model.BankTransaction
	for _, acct := range doc.Accounts() {
		base := acct.Base()
		for i := range base.Statement.Transactions {
			txn, err := flattenTransaction(base, &base.Statement.Transactions[i], i)
			if err != nil {
				return nil, fmt.Errorf("account %s transaction %d: %w", base.Number, i+1, err)
			}
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func flattenTransaction(acct *model.AccountBase, t *model.Transaction, idx int) (model.BankTransaction, error) {
	date, ok := t.Date()
	if !ok {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q", t.DatePosted)
	}

	amount, ok := money.Decimal(t.Amount)
	if !ok {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q", t.Amount)
	}

	return model.BankTransaction{
		Date:        date,
		Account:     acct.Number,
		Type:        string(t.Type()),
		Description: t.Payee,
		Memo:        t.Memo,
		Amount:      amount,
		Currency:    acct.Statement.Currency,
		Reference:   makeOFXRef(acct.Number, t.FITID, idx),
		CheckNumber: t.CheckNumber,
	}, nil
}

// makeOFXRef creates a reference like ofx_103333333333_22222A. FITID is
// unique per account; without one the statement position is used.
func makeOFXRef(account, fitID string, idx int) string {
	if fitID == "" {
		return fmt.Sprintf("ofx_%s_#%d", account, idx+1)
	}
	return fmt.Sprintf("ofx_%s_%s", account, fitID)
}
