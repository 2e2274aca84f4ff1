package ofx

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/tree"
)

// loadFixture reads testdata/<name>.ofx with CRLF line endings, the way
// institutions ship them.
func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name+".ofx"))
	require.NoError(t, err)
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n")
}

func parseFixture(t *testing.T, name string) *model.Document {
	t.Helper()
	doc, err := Parse(loadFixture(t, name))
	require.NoError(t, err)
	return doc
}

func assertParses(t *testing.T, parse func() (time.Time, bool), msgAndArgs ...any) {
	t.Helper()
	_, ok := parse()
	assert.True(t, ok, msgAndArgs...)
}

func TestPreProcess_StripsSpaces(t *testing.T) {
	_, body := PreProcess(loadFixture(t, "with_spaces"))
	assert.Contains(t, body, "<MESSAGE>The user is authentic; operation succeeded.</MESSAGE>",
		"content in tags should not be altered except whitespace trims")
	assert.Contains(t, body, "<DTSERVER>20070623192013.337[-5:CDT]</DTSERVER>")
	assert.Contains(t, body, "<ORG>U.S. Bank</ORG>")
}

func TestPreProcess_Header(t *testing.T) {
	header, _ := PreProcess(loadFixture(t, "with_spaces"))
	assert.Equal(t, 9, header.Len())

	v, ok := header.Get("DATA")
	require.True(t, ok)
	assert.Equal(t, "OFXSGML", v)
	assert.Equal(t, "OFXHEADER", header.Keys()[0])
}

func TestParseDateTime(t *testing.T) {
	for _, in := range []string{
		"20070622190000.200[-5:CDT]",
		"20070622190000.200[+9.0:JST]",
		"20070622",
		"20070622190000",
		"20070622190000.200",
	} {
		_, ok := ParseDateTime(in)
		assert.True(t, ok, "expected %q to parse", in)
	}

	got, ok := ParseDateTime("20070622190000.200[-5:CDT]")
	require.True(t, ok)
	_, offset := got.Zone()
	assert.Equal(t, -5*3600, offset)

	_, ok = ParseDateTime("not-a-date")
	assert.False(t, ok)
}

func TestPenniesFor(t *testing.T) {
	_, ok := PenniesFor("")
	assert.False(t, ok)

	cents, ok := PenniesFor("-1.0")
	require.True(t, ok)
	assert.Equal(t, int64(-100), cents)
}

func TestParse_SignOn(t *testing.T) {
	doc := parseFixture(t, "with_spaces")
	require.NotNil(t, doc.SignOn)

	status := doc.SignOn.Status
	assert.Equal(t, "0", status.Code())
	assert.Equal(t, "INFO", status.Severity)
	assert.Equal(t, "The user is authentic; operation succeeded.", status.Message)
	desc, ok := status.CodeDesc()
	assert.True(t, ok)
	assert.Equal(t, "Success", desc)

	assertParses(t, doc.SignOn.Date)
	assert.Equal(t, "ENG", doc.SignOn.Language)
	assert.Equal(t, "U.S. Bank", doc.SignOn.Institute.Name)
	assert.Equal(t, "1402", doc.SignOn.Institute.ID)
}

func TestParse_AccountInfo(t *testing.T) {
	doc := parseFixture(t, "account_info")
	require.Len(t, doc.SignupAccountInfo, 1)

	info := doc.SignupAccountInfo[0]
	assert.Equal(t, "103333333333", info.Number)
	assert.Equal(t, "033000033", info.BankID)
	assert.Equal(t, "CHECKING", info.Type)
	assert.Equal(t, "Online Checking", info.Desc)
	assert.Empty(t, doc.Accounts(), "signup listing is independent of statement accounts")
}

func TestParse_AccountsInfo(t *testing.T) {
	doc := parseFixture(t, "accounts_info")
	require.Len(t, doc.SignupAccountInfo, 2)

	first := doc.SignupAccountInfo[0]
	assert.Equal(t, "10333333333-0", first.Number)
	assert.Equal(t, "Auto Loan", first.Desc)

	second := doc.SignupAccountInfo[1]
	assert.Equal(t, "10333333333-1", second.Number)
	assert.Equal(t, "033000033", second.BankID)
	assert.Equal(t, "SAVINGS", second.Type)
	assert.Equal(t, "Savings", second.Desc)
}

func TestParse_NoAccounts(t *testing.T) {
	doc := parseFixture(t, "with_spaces")
	assert.Empty(t, doc.Accounts())
	assert.Empty(t, doc.SignupAccountInfo)
}

type wantTxn struct {
	typ         model.TransactionType
	amount      string
	cents       int64
	fitID       string
	checkNumber string
	payee       string
	memo        string
}

var usBankTxns = []wantTxn{
	{model.TxnPayment, "-11.11", -1111, "11111111 22", "", "WEB AUTHORIZED PMT FOO INC", "Download from usbank.com. FOO INC"},
	{model.TxnCheck, "-111.11", -11111, "22222A", "0000009611", "CHECK", "Download from usbank.com."},
	{model.TxnDirectDep, "1111.11", 111111, "X34AE33", "", "ELECTRONIC DEPOSIT BAR INC", "Download from usbank.com. BAR INC"},
	{model.TxnCredit, "11.11", 1111, "8 8 9089743", "", "ATM DEPOSIT US BANK ANYTOWNAS", "Download from usbank.com. US BANK ANYTOWN ASUS1"},
	{model.TxnDebit, "-111.12", -11112, "22222B", "", "GENERIC PAYMENT", "Download from San Diego Trust Bank"},
}

func assertTransactions(t *testing.T, want []wantTxn, got []model.Transaction) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		txn := got[i]
		assert.Equal(t, w.typ, txn.Type(), "txn %d type", i)
		typeDesc, _ := w.typ.Description()
		gotDesc, ok := txn.TypeDesc()
		assert.True(t, ok, "txn %d type desc", i)
		assert.Equal(t, typeDesc, gotDesc, "txn %d type desc", i)
		assertParses(t, txn.Date, "txn %d date", i)
		assert.Equal(t, w.amount, txn.Amount, "txn %d amount", i)
		cents, ok := txn.AmountInPennies()
		assert.True(t, ok)
		assert.Equal(t, w.cents, cents, "txn %d pennies", i)
		assert.Equal(t, w.fitID, txn.FITID, "txn %d fitid", i)
		assert.Equal(t, w.checkNumber, txn.CheckNumber, "txn %d check number", i)
		assert.Equal(t, w.payee, txn.Payee, "txn %d payee", i)
		assert.Equal(t, w.memo, txn.Memo, "txn %d memo", i)
		_, ok = txn.SIC()
		assert.False(t, ok, "txn %d sic", i)
		_, ok = txn.SICDesc()
		assert.False(t, ok, "txn %d sic desc", i)
	}
}

func assertUSBankAccount(t *testing.T, acct *model.BankAccount, uid string) {
	t.Helper()
	assert.Equal(t, "103333333333", acct.Number)
	assert.Equal(t, "033000033", acct.RoutingNumber)
	assert.Equal(t, model.BankAccountChecking, acct.Type())
	assert.Equal(t, "1234.09", acct.Balance)
	cents, ok := acct.BalanceInPennies()
	assert.True(t, ok)
	assert.Equal(t, int64(123409), cents)
	assertParses(t, acct.BalanceTime)
	assert.Equal(t, uid, acct.TransactionUID)

	stmt := acct.Statement
	assert.Equal(t, "USD", stmt.Currency)
	assertParses(t, stmt.StartTime)
	assertParses(t, stmt.EndTime)
}

func TestParse_SingleBankAccount(t *testing.T) {
	doc := parseFixture(t, "banking")

	acct := doc.BankAccount()
	require.NotNil(t, acct)
	assertUSBankAccount(t, acct, "9C24229A0077EAA50000011353C9E00743FC")
	assertTransactions(t, usBankTxns[:4], acct.Statement.Transactions)

	assert.Len(t, doc.Accounts(), 1)
	assert.Empty(t, doc.CreditAccounts)
	assert.Empty(t, doc.InvestmentAccounts)
}

func TestParse_MultipleBankAccounts(t *testing.T) {
	doc := parseFixture(t, "banks")

	require.Len(t, doc.BankAccounts, 2)
	assert.Len(t, doc.Accounts(), 2)

	first := doc.BankAccounts[0]
	assertUSBankAccount(t, first, "9C24229A0077EAA50000011353C9E00743FC")
	assertTransactions(t, usBankTxns, first.Statement.Transactions)

	second := doc.BankAccounts[1]
	assertUSBankAccount(t, second, "9C24229A0077EAA50000011353C9E00743FD")
	assertTransactions(t, usBankTxns[3:4], second.Statement.Transactions)
}

func TestParse_CheckNumberOnlyForChecks(t *testing.T) {
	doc := parseFixture(t, "banks")
	txns := doc.BankAccounts[0].Statement.Transactions

	assert.Equal(t, model.TxnCheck, txns[1].Type())
	assert.Equal(t, "0000009611", txns[1].CheckNumber)

	assert.Equal(t, model.TxnDebit, txns[4].Type())
	assert.Empty(t, txns[4].CheckNumber, "CHECKNUM is ignored for non-check transactions")
}

func assertCreditAccount(t *testing.T, acct *model.CreditAccount, number string) {
	t.Helper()
	assert.Equal(t, number, acct.Number)
	assert.Equal(t, "19000.99", acct.RemainingCredit)
	cents, ok := acct.RemainingCreditInPennies()
	assert.True(t, ok)
	assert.Equal(t, int64(1900099), cents)
	assertParses(t, acct.RemainingCreditTime)
	assert.Equal(t, "-1111.01", acct.Balance)
	cents, ok = acct.BalanceInPennies()
	assert.True(t, ok)
	assert.Equal(t, int64(-111101), cents)
	assertParses(t, acct.BalanceTime)
	assert.Equal(t, "0", acct.TransactionUID)

	stmt := acct.Statement
	assert.Equal(t, "USD", stmt.Currency)
	assertParses(t, stmt.StartTime)
	assertParses(t, stmt.EndTime)

	txns := stmt.Transactions
	require.Len(t, txns, 3)

	tests := []struct {
		typ     model.TransactionType
		amount  string
		cents   int64
		fitID   string
		sic     string
		sicDesc string
		payee   string
	}{
		{model.TxnDebit, "-19.17", -1917, "xx", "5912", "Drug Stores and Pharmacies", "WALGREEN      34638675 ANYTOWN"},
		{model.TxnDebit, "-12.0", -1200, "yy-56", "7933", "Bowling Alleys", "SUNSET BOWL            ANYTOWN"},
		{model.TxnCredit, "11.01", 1101, "78-9", "0000", "", "ELECTRONIC PAYMENT-THANK YOU"},
	}
	for i, tt := range tests {
		txn := txns[i]
		assert.Equal(t, tt.typ, txn.Type(), "txn %d", i)
		assertParses(t, txn.Date, "txn %d date", i)
		assert.Equal(t, tt.amount, txn.Amount, "txn %d", i)
		got, _ := txn.AmountInPennies()
		assert.Equal(t, tt.cents, got, "txn %d", i)
		assert.Equal(t, tt.fitID, txn.FITID, "txn %d", i)
		assert.Empty(t, txn.CheckNumber, "txn %d", i)

		sic, ok := txn.SIC()
		assert.True(t, ok, "txn %d", i)
		assert.Equal(t, tt.sic, sic, "txn %d", i)
		desc, ok := txn.SICDesc()
		assert.Equal(t, tt.sicDesc != "", ok, "txn %d", i)
		assert.Equal(t, tt.sicDesc, desc, "txn %d", i)

		assert.Equal(t, tt.payee, txn.Payee, "txn %d", i)
		assert.Empty(t, txn.Memo, "txn %d", i)
	}
}

func TestParse_SingleCreditCard(t *testing.T) {
	doc := parseFixture(t, "creditcard")

	acct := doc.CreditCard()
	require.NotNil(t, acct)
	assertCreditAccount(t, acct, "XXXXXXXXXXXX1111")

	assert.Len(t, doc.Accounts(), 1)
	assert.Empty(t, doc.SignupAccountInfo)
	assert.Empty(t, doc.BankAccounts)
}

func TestParse_MultipleCreditCards(t *testing.T) {
	doc := parseFixture(t, "creditcards")

	require.Len(t, doc.CreditAccounts, 2)
	assert.Len(t, doc.Accounts(), 2)
	assert.Empty(t, doc.SignupAccountInfo)

	assertCreditAccount(t, doc.CreditAccounts[0], "XXXXXXXXXXXX1111")
	assertCreditAccount(t, doc.CreditAccounts[1], "XXXXXXXXXXXX2222")
}

func TestParse_AccountListing(t *testing.T) {
	doc := parseFixture(t, "list")

	require.Len(t, doc.SignupAccountInfo, 1)
	info := doc.SignupAccountInfo[0]
	assert.Equal(t, "CREDIT CARD ************1111", info.Desc)
	assert.Equal(t, "XXXXXXXXXXXX1111", info.Number)
	assert.Empty(t, info.Type)

	assert.Empty(t, doc.Accounts())
}

func TestParse_MalformedHeader(t *testing.T) {
	doc := parseFixture(t, "malformed_header")

	v, ok := doc.Header.Get("VERSION")
	require.True(t, ok, "header should still be parsed")
	assert.Equal(t, "102", v)

	assert.True(t, doc.Header.Has("THIS LINE HAS NO COLON"))
	_, ok = doc.Header.Get("THIS LINE HAS NO COLON")
	assert.False(t, ok)

	require.NotNil(t, doc.SignOn)
	assert.Equal(t, "ENG", doc.SignOn.Language)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Header.Len())
	assert.Nil(t, doc.SignOn)
	assert.Empty(t, doc.SignupAccountInfo)
	assert.Empty(t, doc.BankAccounts)
	assert.Empty(t, doc.CreditAccounts)
	assert.Empty(t, doc.InvestmentAccounts)
}

func TestParse_HeaderOnly(t *testing.T) {
	doc, err := Parse("OFXHEADER:100\r\nVERSION:102")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Header.Len())
	assert.Nil(t, doc.SignOn)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(loadFixture(t, "broken"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.ErrorIs(t, err, tree.ErrMalformed)
}

func TestParse_LFLineEndings(t *testing.T) {
	data, err := os.ReadFile("../../testdata/banking.ofx")
	require.NoError(t, err)

	doc, err := Parse(string(data))
	require.NoError(t, err)
	assert.Equal(t, 9, doc.Header.Len())
	require.Len(t, doc.BankAccounts, 1)
	assertTransactions(t, usBankTxns[:4], doc.BankAccounts[0].Statement.Transactions)
}

func TestParse_StructuredPayeeAndClosedLeaves(t *testing.T) {
	const doc = "OFXHEADER:100\r\n\r\n" +
		"<OFX><BANKMSGSRSV1><STMTTRNRS><TRNUID>7</TRNUID><STMTRS><CURDEF>EUR</CURDEF>" +
		"<BANKACCTFROM><BANKID>1</BANKID><BRANCHID>22</BRANCHID><ACCTID>3</ACCTID><ACCTTYPE>savings</ACCTTYPE></BANKACCTFROM>" +
		"<BANKTRANLIST><STMTTRN><TRNTYPE>pos<DTPOSTED>20240102<TRNAMT>-4.50<FITID>A1" +
		"<PAYEE><NAME>ACME<ADDR1>1 Main St</PAYEE><NAME>Store #4<MEMO>coffee</STMTTRN>" +
		"</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>"

	parsed, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, parsed.BankAccounts, 1)

	acct := parsed.BankAccounts[0]
	assert.Equal(t, "22", acct.BranchID)
	assert.Equal(t, model.BankAccountSavings, acct.Type())
	assert.Equal(t, "savings", acct.RawType)
	assert.Equal(t, "EUR", acct.Statement.Currency)

	txns := acct.Statement.Transactions
	require.Len(t, txns, 1)
	assert.Equal(t, model.TxnPOS, txns[0].Type())
	assert.Equal(t, "ACME1 Main StStore #4", txns[0].Payee)
	assert.Equal(t, "coffee", txns[0].Memo)
}

func TestParse_FieldFailuresDegrade(t *testing.T) {
	const doc = "<OFX><CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS>" +
		"<LEDGERBAL><BALAMT></BALAMT><DTASOF>yesterday</LEDGERBAL>" +
		"<BANKTRANLIST><STMTTRN><TRNTYPE>CHECK<DTPOSTED>2024<TRNAMT>abc</STMTTRN></BANKTRANLIST>" +
		"</CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1></OFX>"

	parsed, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, parsed.CreditAccounts, 1)

	acct := parsed.CreditAccounts[0]
	_, ok := acct.BalanceInPennies()
	assert.False(t, ok, "empty BALAMT is absent")
	_, ok = acct.BalanceTime()
	assert.False(t, ok)
	_, ok = acct.RemainingCreditInPennies()
	assert.False(t, ok)

	txn := acct.Statement.Transactions[0]
	_, ok = txn.Date()
	assert.False(t, ok)
	cents, ok := txn.AmountInPennies()
	assert.True(t, ok)
	assert.Zero(t, cents)
	assert.Empty(t, txn.CheckNumber)
	_, ok = acct.Statement.StartTime()
	assert.False(t, ok)
}

func TestParse_InvestmentNotExtracted(t *testing.T) {
	const doc = "<OFX><INVSTMTMSGSRSV1><INVSTMTTRNRS><TRNUID>1<INVSTMTRS><CURDEF>USD" +
		"<INVACCTFROM><BROKERID>example.com<ACCTID>9</INVACCTFROM></INVSTMTRS></INVSTMTTRNRS></INVSTMTMSGSRSV1></OFX>"

	parsed, err := Parse(doc)
	require.NoError(t, err)
	assert.Empty(t, parsed.InvestmentAccounts)
	assert.Empty(t, parsed.Accounts())
}

func TestParse_SectionRequiresMessageSet(t *testing.T) {
	const doc = "<OFX><STMTTRNRS><TRNUID>1<STMTRS><CURDEF>USD</STMTRS></STMTTRNRS></OFX>"

	parsed, err := Parse(doc)
	require.NoError(t, err)
	assert.Empty(t, parsed.BankAccounts, "STMTTRNRS outside BANKMSGSRSV1 is not a bank statement")
}

func TestParse_Concurrent(t *testing.T) {
	text := loadFixture(t, "banks")

	const workers = 8
	results := make([]*model.Document, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Parse(text)
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}
