package ledger

import (
	"context"
	"testing"
	"time"

	"bankdemo/biz/dal/dbtest"
	"bankdemo/biz/dal/query"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/model/mode"
	"bankdemo/biz/model/storage"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	vuln     Searcher
	secure   Searcher
	aliceAcc int64
	bobAcc   int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := dbtest.OpenSeeded(t)
	exec := query.NewGormExecutor(db)
	return fixture{
		db:       db,
		vuln:     NewSearcher(exec, mode.Vuln),
		secure:   NewSearcher(exec, mode.Secure),
		aliceAcc: dbtest.AccountOf(t, db, dbtest.UserByEmail(t, db, "alice@bank.local").ID).ID,
		bobAcc:   dbtest.AccountOf(t, db, dbtest.UserByEmail(t, db, "bob@bank.local").ID).ID,
	}
}

func beneficiaries(t *testing.T, s Searcher, accountID int64, term string) []string {
	t.Helper()
	list, bizErr := s.Search(context.Background(), accountID, term)
	assert.Nil(t, bizErr)
	out := make([]string, 0, len(list))
	for _, tx := range list {
		out = append(out, tx.Beneficiary)
	}
	return out
}

func TestSearch_EmptyTermReturnsOwnTransactionsNewestFirst(t *testing.T) {
	f := newFixture(t)
	for _, s := range []Searcher{f.vuln, f.secure} {
		assert.Equal(t, []string{"Bob", "Electricity Co"}, beneficiaries(t, s, f.aliceAcc, ""))
		assert.Equal(t, []string{"Landlord"}, beneficiaries(t, s, f.bobAcc, ""))
	}
}

func TestSearch_TermMatchesBeneficiaryOrNote(t *testing.T) {
	f := newFixture(t)
	for _, s := range []Searcher{f.vuln, f.secure} {
		assert.Equal(t, []string{"Electricity Co"}, beneficiaries(t, s, f.aliceAcc, "Electric"))
		assert.Equal(t, []string{"Bob"}, beneficiaries(t, s, f.aliceAcc, "dinner"))
		assert.Empty(t, beneficiaries(t, s, f.aliceAcc, "rent"))
	}
}

func TestSearch_ResultFields(t *testing.T) {
	f := newFixture(t)
	list, bizErr := f.secure.Search(context.Background(), f.aliceAcc, "dinner")
	assert.Nil(t, bizErr)
	if assert.Len(t, list, 1) {
		tx := list[0]
		assert.Equal(t, f.aliceAcc, tx.AccountID)
		assert.Equal(t, "transfer", string(tx.Type))
		assert.Equal(t, "12.50", tx.Amount.String())
		assert.Equal(t, "dinner", tx.Note)
		assert.WithinDuration(t, time.Now().Add(-24*time.Hour), tx.CreatedAt, time.Hour)
	}
}

func TestSearch_InjectionWidensScopeOnlyInVulnMode(t *testing.T) {
	f := newFixture(t)
	term := "%') OR 1=1 OR (note LIKE '"

	// every account's rows leak through the injected disjunction
	leaked := beneficiaries(t, f.vuln, f.aliceAcc, term)
	assert.Contains(t, leaked, "Landlord")
	assert.Len(t, leaked, 3)

	assert.Empty(t, beneficiaries(t, f.secure, f.aliceAcc, term))
}

func TestSearch_SecureModeMatchesLiteralContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	assert.NoError(t, f.db.Create(&storage.TransactionRecord{
		AccountID: f.aliceAcc, Type: "transfer", Beneficiary: "O'Neil", Amount: 100,
		Note: "50% off_sale", CreatedAt: time.Now(),
	}).Error)

	assert.Equal(t, []string{"O'Neil"}, beneficiaries(t, f.secure, f.aliceAcc, "O'Neil"))
	assert.Equal(t, []string{"O'Neil"}, beneficiaries(t, f.secure, f.aliceAcc, "50%"))
	assert.Equal(t, []string{"O'Neil"}, beneficiaries(t, f.secure, f.aliceAcc, "off_sale"))
	// wildcards only match themselves
	assert.Equal(t, []string{"O'Neil"}, beneficiaries(t, f.secure, f.aliceAcc, "%"))
	assert.Equal(t, []string{"O'Neil"}, beneficiaries(t, f.secure, f.aliceAcc, "_"))

	// the same quote breaks the vuln statement
	_, bizErr := f.vuln.Search(ctx, f.aliceAcc, "O'Neil")
	assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "a!%b!_c!!", escapeLike("a%b_c!"))
}

func TestAccounts_FindByUserID(t *testing.T) {
	db := dbtest.OpenSeeded(t)
	accounts := NewAccounts(query.NewGormExecutor(db))
	alice := dbtest.UserByEmail(t, db, "alice@bank.local")

	acc, bizErr := accounts.FindByUserID(context.Background(), alice.ID)
	assert.Nil(t, bizErr)
	assert.Equal(t, "100.00", acc.Balance.String())
	assert.Equal(t, alice.ID, acc.UserID)

	_, bizErr = accounts.FindByUserID(context.Background(), 9999)
	assert.True(t, errs.ErrorEqual(errs.AccountNotFound, bizErr))
}
