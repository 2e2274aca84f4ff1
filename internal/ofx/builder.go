package ofx

import (
	"strings"

	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/tree"
)

// Message set roots.
const (
	pathSignOn     = "SIGNONMSGSRSV1/SONRS"
	pathSignup     = "SIGNUPMSGSRSV1/ACCTINFOTRNRS"
	pathBankMsgs   = "BANKMSGSRSV1"
	pathBankStmts  = "BANKMSGSRSV1/STMTTRNRS"
	pathCardMsgs   = "CREDITCARDMSGSRSV1"
	pathCardStmts  = "CREDITCARDMSGSRSV1/CCSTMTTRNRS"
	pathInvestMsgs = "INVSTMTMSGSRSV1"
)

func build(root *tree.Node) *model.Document {
	doc := &model.Document{}

	if sonrs := root.First(pathSignOn); sonrs != nil {
		doc.SignOn = buildSignOn(sonrs)
	}

	for _, trnrs := range root.Find(pathSignup) {
		doc.SignupAccountInfo = append(doc.SignupAccountInfo, buildAccountInfos(trnrs)...)
	}

	if root.Has(pathBankMsgs) {
		for _, trnrs := range root.Find(pathBankStmts) {
			doc.BankAccounts = append(doc.BankAccounts, buildBank(trnrs))
		}
	}

	if root.Has(pathCardMsgs) {
		for _, trnrs := range root.Find(pathCardStmts) {
			doc.CreditAccounts = append(doc.CreditAccounts, buildCredit(trnrs))
		}
	}

	if root.Has(pathInvestMsgs) {
		buildInvestment(root)
	}

	return doc
}

func buildSignOn(sonrs *tree.Node) *model.SignOn {
	return &model.SignOn{
		Status:     buildStatus(sonrs.First("STATUS")),
		ServerDate: sonrs.Text("DTSERVER"),
		Language:   sonrs.Text("LANGUAGE"),
		Institute: model.Institute{
			Name: sonrs.Text("FI/ORG"),
			ID:   sonrs.Text("FI/FID"),
		},
	}
}

func buildStatus(status *tree.Node) model.Status {
	return model.Status{
		RawCode:  status.Text("CODE"),
		Severity: status.Text("SEVERITY"),
		Message:  status.Text("MESSAGE"),
	}
}

func buildAccountInfos(trnrs *tree.Node) []model.AccountInfo {
	var infos []model.AccountInfo
	for _, info := range trnrs.Find("ACCTINFO") {
		infos = append(infos, model.AccountInfo{
			Desc:   info.Text("DESC"),
			Number: info.Text("ACCTID"),
			BankID: info.Text("BANKID"),
			Type:   strings.TrimSpace(info.Text("ACCTTYPE")),
		})
	}
	return infos
}

func buildBank(trnrs *tree.Node) *model.BankAccount {
	acct := &model.BankAccount{
		AccountBase: model.AccountBase{
			TransactionUID: strings.TrimSpace(trnrs.Text("TRNUID")),
			Number:         trnrs.Text("STMTRS/BANKACCTFROM/ACCTID"),
			RoutingNumber:  trnrs.Text("STMTRS/BANKACCTFROM/BANKID"),
			AccountKey:     trnrs.Text("STMTRS/BANKACCTFROM/ACCTKEY"),
		},
		RawType:     trnrs.Text("STMTRS/BANKACCTFROM/ACCTTYPE"),
		BranchID:    trnrs.Text("STMTRS/BANKACCTFROM/BRANCHID"),
		Balance:     trnrs.Text("STMTRS/LEDGERBAL/BALAMT"),
		BalanceDate: trnrs.Text("STMTRS/LEDGERBAL/DTASOF"),
	}
	acct.Statement = buildStatement(trnrs, "STMTRS")
	return acct
}

func buildCredit(trnrs *tree.Node) *model.CreditAccount {
	acct := &model.CreditAccount{
		AccountBase: model.AccountBase{
			TransactionUID: strings.TrimSpace(trnrs.Text("TRNUID")),
			Number:         trnrs.Text("CCSTMTRS/CCACCTFROM/ACCTID"),
			AccountKey:     trnrs.Text("CCSTMTRS/CCACCTFROM/ACCTKEY"),
		},
		Balance:             trnrs.Text("CCSTMTRS/LEDGERBAL/BALAMT"),
		BalanceDate:         trnrs.Text("CCSTMTRS/LEDGERBAL/DTASOF"),
		RemainingCredit:     trnrs.Text("CCSTMTRS/AVAILBAL/BALAMT"),
		RemainingCreditDate: trnrs.Text("CCSTMTRS/AVAILBAL/DTASOF"),
	}
	acct.Statement = buildStatement(trnrs, "CCSTMTRS")
	return acct
}

// buildStatement reads the statement under stmtrs, which is STMTRS for bank
// accounts and CCSTMTRS for credit cards.
func buildStatement(trnrs *tree.Node, stmtrs string) model.Statement {
	stmt := model.Statement{
		Currency:  trnrs.Text(stmtrs + "/CURDEF"),
		StartDate: trnrs.Text(stmtrs + "/BANKTRANLIST/DTSTART"),
		EndDate:   trnrs.Text(stmtrs + "/BANKTRANLIST/DTEND"),
	}
	for _, t := range trnrs.Find(stmtrs + "/BANKTRANLIST/STMTTRN") {
		stmt.Transactions = append(stmt.Transactions, buildTransaction(t))
	}
	return stmt
}

// buildTransaction is shared by bank and credit card statements.
func buildTransaction(t *tree.Node) model.Transaction {
	txn := model.Transaction{
		RawType:    t.Text("TRNTYPE"),
		DatePosted: t.Text("DTPOSTED"),
		Amount:     t.Text("TRNAMT"),
		FITID:      t.Text("FITID"),
		Payee:      t.ChildText("PAYEE") + t.ChildText("NAME"),
		Memo:       t.Text("MEMO"),
		RawSIC:     t.Text("SIC"),
	}
	if txn.Type() == model.TxnCheck {
		txn.CheckNumber = t.Text("CHECKNUM")
	}
	return txn
}

// buildInvestment is intentionally a no-op: investment statements are
// recognized but not extracted, so InvestmentAccounts stays empty.
func buildInvestment(*tree.Node) {}
