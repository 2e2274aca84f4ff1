package commands

import (
	"time"

	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/ofx"
)

// documentView is the YAML rendering of a parsed document.
type documentView struct {
	Header      []headerView      `yaml:"header"`
	SignOn      *signOnView       `yaml:"signon,omitempty"`
	AccountInfo []accountInfoView `yaml:"account_info,omitempty"`
	Accounts    []accountView     `yaml:"accounts,omitempty"`
}

type headerView struct {
	Key   string  `yaml:"key"`
	Value *string `yaml:"value"`
}

type signOnView struct {
	Code        string `yaml:"code"`
	Severity    string `yaml:"severity"`
	Message     string `yaml:"message,omitempty"`
	Description string `yaml:"description,omitempty"`
	ServerDate  string `yaml:"server_date,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Institute   string `yaml:"institute,omitempty"`
	FID         string `yaml:"fid,omitempty"`
}

type accountInfoView struct {
	Desc   string `yaml:"desc"`
	Number string `yaml:"number"`
	BankID string `yaml:"bank_id,omitempty"`
	Type   string `yaml:"type,omitempty"`
}

type accountView struct {
	Kind           string            `yaml:"kind"`
	Number         string            `yaml:"number"`
	RoutingNumber  string            `yaml:"routing_number,omitempty"`
	Type           string            `yaml:"type,omitempty"`
	TransactionUID string            `yaml:"transaction_uid,omitempty"`
	Currency       string            `yaml:"currency,omitempty"`
	StartDate      string            `yaml:"start_date,omitempty"`
	EndDate        string            `yaml:"end_date,omitempty"`
	Balances       map[string]*int64 `yaml:"balances_in_pennies,omitempty"`
	Transactions   []transactionView `yaml:"transactions,omitempty"`
}

type transactionView struct {
	Type        string `yaml:"type"`
	Date        string `yaml:"date"`
	Amount      string `yaml:"amount"`
	Pennies     *int64 `yaml:"pennies"`
	FITID       string `yaml:"fitid,omitempty"`
	CheckNumber string `yaml:"check_number,omitempty"`
	Payee       string `yaml:"payee,omitempty"`
	Memo        string `yaml:"memo,omitempty"`
	SIC         string `yaml:"sic,omitempty"`
	SICDesc     string `yaml:"sic_desc,omitempty"`
}

func newDocumentView(doc *model.Document) documentView {
	v := documentView{}

	for _, f := range doc.Header.Fields() {
		hv := headerView{Key: f.Key}
		if f.HasValue {
			value := f.Value
			hv.Value = &value
		}
		v.Header = append(v.Header, hv)
	}

	if so := doc.SignOn; so != nil {
		desc, _ := so.Status.CodeDesc()
		v.SignOn = &signOnView{
			Code:        so.Status.Code(),
			Severity:    so.Status.Severity,
			Message:     so.Status.Message,
			Description: desc,
			ServerDate:  formatDateTime(so.ServerDate),
			Language:    so.Language,
			Institute:   so.Institute.Name,
			FID:         so.Institute.ID,
		}
	}

	for _, info := range doc.SignupAccountInfo {
		v.AccountInfo = append(v.AccountInfo, accountInfoView(info))
	}

	for _, acct := range doc.Accounts() {
		v.Accounts = append(v.Accounts, newAccountView(acct))
	}
	return v
}

func newAccountView(acct model.Account) accountView {
	base := acct.Base()
	v := accountView{
		Kind:           acct.Kind().String(),
		Number:         base.Number,
		RoutingNumber:  base.RoutingNumber,
		TransactionUID: base.TransactionUID,
		Currency:       base.Statement.Currency,
		StartDate:      formatDateTime(base.Statement.StartDate),
		EndDate:        formatDateTime(base.Statement.EndDate),
	}
	if bank, ok := acct.(*model.BankAccount); ok {
		v.Type = string(bank.Type())
	}

	for _, f := range acct.MonetaryFields() {
		if v.Balances == nil {
			v.Balances = make(map[string]*int64)
		}
		v.Balances[f.Name] = optionalPennies(f.Pennies())
	}

	for i := range base.Statement.Transactions {
		v.Transactions = append(v.Transactions, newTransactionView(&base.Statement.Transactions[i]))
	}
	return v
}

func newTransactionView(t *model.Transaction) transactionView {
	sic, _ := t.SIC()
	sicDesc, _ := t.SICDesc()
	return transactionView{
		Type:        string(t.Type()),
		Date:        formatDateTime(t.DatePosted),
		Amount:      t.Amount,
		Pennies:     optionalPennies(t.AmountInPennies()),
		FITID:       t.FITID,
		CheckNumber: t.CheckNumber,
		Payee:       t.Payee,
		Memo:        t.Memo,
		SIC:         sic,
		SICDesc:     sicDesc,
	}
}

func optionalPennies(cents int64, ok bool) *int64 {
	if !ok {
		return nil
	}
	return &cents
}

// formatDateTime renders a parseable OFX datetime as RFC 3339 and leaves
// anything else as written.
func formatDateTime(raw string) string {
	t, ok := ofx.ParseDateTime(raw)
	if !ok {
		return raw
	}
	return t.Format(time.RFC3339)
}
