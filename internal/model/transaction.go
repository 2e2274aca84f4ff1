package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ofxparse/internal/money"
	"github.com/cleared-dev/ofxparse/internal/ofxtime"
)

// Statement is the transaction list of an account.
type Statement struct {
	Currency     string
	StartDate    string
	EndDate      string
	Transactions []Transaction // document order
}

func (s *Statement) StartTime() (time.Time, bool) { return ofxtime.Parse(s.StartDate) }
func (s *Statement) EndTime() (time.Time, bool)   { return ofxtime.Parse(s.EndDate) }

// TransactionType is a TRNTYPE code.
type TransactionType string

const (
	TxnCredit      TransactionType = "CREDIT"
	TxnDebit       TransactionType = "DEBIT"
	TxnInterest    TransactionType = "INT"
	TxnDividend    TransactionType = "DIV"
	TxnFee         TransactionType = "FEE"
	TxnServiceChg  TransactionType = "SRVCHG"
	TxnDeposit     TransactionType = "DEP"
	TxnATM         TransactionType = "ATM"
	TxnPOS         TransactionType = "POS"
	TxnTransfer    TransactionType = "XFER"
	TxnCheck       TransactionType = "CHECK"
	TxnPayment     TransactionType = "PAYMENT"
	TxnCash        TransactionType = "CASH"
	TxnDirectDep   TransactionType = "DIRECTDEP"
	TxnDirectDebit TransactionType = "DIRECTDEBIT"
	TxnRepeatPmt   TransactionType = "REPEATPMT"
	TxnOther       TransactionType = "OTHER"
)

var transactionTypes = map[TransactionType]string{
	TxnCredit:      "Generic credit",
	TxnDebit:       "Generic debit",
	TxnInterest:    "Interest earned or paid ",
	TxnDividend:    "Dividend",
	TxnFee:         "FI fee",
	TxnServiceChg:  "Service charge",
	TxnDeposit:     "Deposit",
	TxnATM:         "ATM debit or credit",
	TxnPOS:         "Point of sale debit or credit ",
	TxnTransfer:    "Transfer",
	TxnCheck:       "Check",
	TxnPayment:     "Electronic payment",
	TxnCash:        "Cash withdrawal",
	TxnDirectDep:   "Direct deposit",
	TxnDirectDebit: "Merchant initiated debit",
	TxnRepeatPmt:   "Repeating payment/standing order",
	TxnOther:       "Other",
}

// NormalizeTransactionType trims and upper-cases a raw TRNTYPE.
func NormalizeTransactionType(raw string) TransactionType {
	return TransactionType(strings.ToUpper(strings.TrimSpace(raw)))
}

// Description returns the description of t; unknown types return ok == false.
func (t TransactionType) Description() (string, bool) {
	desc, ok := transactionTypes[t]
	return desc, ok
}

// Transaction is one STMTTRN of a bank or credit card statement.
type Transaction struct {
	RawType     string
	DatePosted  string
	Amount      string
	FITID       string
	CheckNumber string // set only for CHECK transactions
	RawSIC      string
	Memo        string
	Payee       string // structured payee followed by NAME, unseparated
	PayeeID     string // reserved
}

// Type returns RawType trimmed and upper-cased.
func (t *Transaction) Type() TransactionType { return NormalizeTransactionType(t.RawType) }

// TypeDesc describes Type.
func (t *Transaction) TypeDesc() (string, bool) { return t.Type().Description() }

// SIC returns the merchant category code. An empty code is absent.
func (t *Transaction) SIC() (string, bool) {
	sic := strings.ToUpper(strings.TrimSpace(t.RawSIC))
	if sic == "" {
		return "", false
	}
	return sic, true
}

// CheckNum returns the check number. An empty number is absent.
func (t *Transaction) CheckNum() (string, bool) {
	num := strings.TrimSpace(t.CheckNumber)
	if num == "" {
		return "", false
	}
	return num, true
}

// SICDesc describes SIC using the merchant category table.
func (t *Transaction) SICDesc() (string, bool) {
	sic, ok := t.SIC()
	if !ok {
		return "", false
	}
	return MerchantCategory(sic)
}

func (t *Transaction) Date() (time.Time, bool) { return ofxtime.Parse(t.DatePosted) }

func (t *Transaction) AmountInPennies() (int64, bool) { return money.PenniesFor(t.Amount) }

// MonetaryFields lists the money-bearing fields of a transaction.
func (t *Transaction) MonetaryFields() []MonetaryField {
	return []MonetaryField{{Name: "amount", Text: t.Amount}}
}

// BankTransaction is a transaction flattened for import: one row per
// statement transaction with the owning account folded in.
type BankTransaction struct {
	Date        time.Time
	Account     string
	Type        string
	Description string
	Memo        string
	Amount      decimal.Decimal // negative = outflow, positive = inflow
	Currency    string
	Reference   string
	CheckNumber string
}
