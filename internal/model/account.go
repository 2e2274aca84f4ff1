package model

import (
	"strings"
	"time"

	"github.com/cleared-dev/ofxparse/internal/money"
	"github.com/cleared-dev/ofxparse/internal/ofxtime"
)

// AccountKind tags the variant behind an Account.
type AccountKind int

const (
	KindBank AccountKind = iota + 1
	KindCredit
	KindInvestment
)

func (k AccountKind) String() string {
	switch k {
	case KindBank:
		return "bank"
	case KindCredit:
		return "credit"
	case KindInvestment:
		return "investment"
	default:
		return "unknown"
	}
}

// Account is one of *BankAccount, *CreditAccount or *InvestmentAccount.
type Account interface {
	Kind() AccountKind
	Base() *AccountBase
	MonetaryFields() []MonetaryField
	isAccount()
}

// AccountBase holds the fields every account variant shares.
type AccountBase struct {
	Number         string
	RoutingNumber  string
	TransactionUID string
	AccountKey     string
	Statement      Statement
}

// BankAccountType is the ACCTTYPE of a bank account.
type BankAccountType string

const (
	BankAccountChecking    BankAccountType = "CHECKING"
	BankAccountSavings     BankAccountType = "SAVINGS"
	BankAccountMoneyMarket BankAccountType = "MONEYMRKT"
	BankAccountCreditLine  BankAccountType = "CREDITLINE"
)

// Valid reports whether t is one of the known bank account types.
func (t BankAccountType) Valid() bool {
	switch t {
	case BankAccountChecking, BankAccountSavings, BankAccountMoneyMarket, BankAccountCreditLine:
		return true
	}
	return false
}

// BankAccount is a checking, savings, money market or credit line account.
type BankAccount struct {
	AccountBase
	RawType     string
	BranchID    string
	Balance     string // ledger balance, as written
	BalanceDate string
}

func (a *BankAccount) Kind() AccountKind  { return KindBank }
func (a *BankAccount) Base() *AccountBase { return &a.AccountBase }
func (a *BankAccount) isAccount()         {}

// Type returns RawType trimmed and upper-cased.
func (a *BankAccount) Type() BankAccountType {
	return BankAccountType(strings.ToUpper(strings.TrimSpace(a.RawType)))
}

// MonetaryFields lists the money-bearing fields of a bank account.
func (a *BankAccount) MonetaryFields() []MonetaryField {
	return []MonetaryField{{Name: "balance", Text: a.Balance}}
}

func (a *BankAccount) BalanceInPennies() (int64, bool) { return money.PenniesFor(a.Balance) }
func (a *BankAccount) BalanceTime() (time.Time, bool)  { return ofxtime.Parse(a.BalanceDate) }

// CreditAccount is a credit card account.
type CreditAccount struct {
	AccountBase
	Balance             string
	BalanceDate         string
	RemainingCredit     string // available balance
	RemainingCreditDate string
}

func (a *CreditAccount) Kind() AccountKind  { return KindCredit }
func (a *CreditAccount) Base() *AccountBase { return &a.AccountBase }
func (a *CreditAccount) isAccount()         {}

// MonetaryFields lists the money-bearing fields of a credit account.
func (a *CreditAccount) MonetaryFields() []MonetaryField {
	return []MonetaryField{
		{Name: "remaining_credit", Text: a.RemainingCredit},
		{Name: "balance", Text: a.Balance},
	}
}

func (a *CreditAccount) BalanceInPennies() (int64, bool) { return money.PenniesFor(a.Balance) }
func (a *CreditAccount) BalanceTime() (time.Time, bool)  { return ofxtime.Parse(a.BalanceDate) }

func (a *CreditAccount) RemainingCreditInPennies() (int64, bool) {
	return money.PenniesFor(a.RemainingCredit)
}

func (a *CreditAccount) RemainingCreditTime() (time.Time, bool) {
	return ofxtime.Parse(a.RemainingCreditDate)
}

// InvestmentAccount is reserved; no document ever populates one.
type InvestmentAccount struct {
	AccountBase
	BrokerID      string
	Positions     []Position
	MarginBalance string
	ShortBalance  string
	CashBalance   string
}

// Position is reserved for investment holdings.
type Position struct {
	SecurityID  string
	Units       string
	UnitPrice   string
	MarketValue string
}

func (a *InvestmentAccount) Kind() AccountKind  { return KindInvestment }
func (a *InvestmentAccount) Base() *AccountBase { return &a.AccountBase }
func (a *InvestmentAccount) isAccount()         {}

// MonetaryFields lists the money-bearing fields of an investment account.
func (a *InvestmentAccount) MonetaryFields() []MonetaryField {
	return []MonetaryField{
		{Name: "margin_balance", Text: a.MarginBalance},
		{Name: "short_balance", Text: a.ShortBalance},
		{Name: "cash_balance", Text: a.CashBalance},
	}
}

func (a *InvestmentAccount) MarginBalanceInPennies() (int64, bool) {
	return money.PenniesFor(a.MarginBalance)
}

func (a *InvestmentAccount) ShortBalanceInPennies() (int64, bool) {
	return money.PenniesFor(a.ShortBalance)
}

func (a *InvestmentAccount) CashBalanceInPennies() (int64, bool) {
	return money.PenniesFor(a.CashBalance)
}

// AccountInfo is one entry of the signup account listing. It is unrelated to
// the statement accounts of the same document.
type AccountInfo struct {
	Desc   string
	Number string
	BankID string
	Type   string
}

// MonetaryField pairs a money-bearing field name with its raw text.
type MonetaryField struct {
	Name string
	Text string
}

// Pennies converts Text with money.PenniesFor.
func (f MonetaryField) Pennies() (int64, bool) { return money.PenniesFor(f.Text) }

// PenniesOf looks up name among fields and converts it. Unknown names and
// empty amounts both return ok == false.
func PenniesOf(fields []MonetaryField, name string) (int64, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Pennies()
		}
	}
	return 0, false
}
