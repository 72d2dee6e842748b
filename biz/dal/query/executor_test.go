package query_test

import (
	"context"
	"errors"
	"testing"

	"bankdemo/biz/dal/dbtest"
	"bankdemo/biz/dal/query"

	"github.com/stretchr/testify/assert"
)

func TestGormExecutor_RunUnsafe(t *testing.T) {
	db := dbtest.OpenSeeded(t)
	exec := query.NewGormExecutor(db)
	ctx := context.Background()

	rows, err := exec.RunUnsafe(ctx, "SELECT id, email, role FROM users WHERE email='alice@bank.local'")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "alice@bank.local", rows[0].String("email"))
		assert.Equal(t, "customer", rows[0].String("role"))
		assert.NotZero(t, rows[0].Int64("id"))
	}

	t.Run("embedded syntax changes the statement", func(t *testing.T) {
		email := "nobody' OR '1'='1"
		rows, err := exec.RunUnsafe(ctx, "SELECT id FROM users WHERE email='"+email+"'")
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("broken syntax is a store error", func(t *testing.T) {
		_, err := exec.RunUnsafe(ctx, "SELECT id FROM users WHERE email='a'b'")
		var storeErr *query.StoreError
		assert.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "query", storeErr.Op)
	})
}

func TestGormExecutor_RunSafe(t *testing.T) {
	db := dbtest.OpenSeeded(t)
	exec := query.NewGormExecutor(db)
	ctx := context.Background()

	rows, err := exec.RunSafe(ctx, "SELECT id FROM users WHERE email = ?", "nobody' OR '1'='1")
	assert.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = exec.RunSafe(ctx, "SELECT id, email FROM users WHERE email = ?", "bob@bank.local")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "bob@bank.local", rows[0].String("email"))
	}

	_, err = exec.RunSafe(ctx, "SELECT nope FROM missing_table WHERE id = ?", 1)
	assert.True(t, query.IsStoreError(err))
}

func TestGormExecutor_ExecSafeAndInTx(t *testing.T) {
	db := dbtest.OpenSeeded(t)
	exec := query.NewGormExecutor(db)
	ctx := context.Background()
	alice := dbtest.UserByEmail(t, db, "alice@bank.local")
	acc := dbtest.AccountOf(t, db, alice.ID)

	res, err := exec.ExecSafe(ctx, "UPDATE accounts SET balance = balance - ? WHERE id = ?", 100, acc.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Equal(t, acc.Balance-100, dbtest.AccountOf(t, db, alice.ID).Balance)

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := exec.InTx(ctx, func(tx query.Executor) error {
			if _, err := tx.ExecSafe(ctx, "UPDATE accounts SET balance = 0 WHERE id = ?", acc.ID); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, acc.Balance-100, dbtest.AccountOf(t, db, alice.ID).Balance)
	})

	t.Run("commit", func(t *testing.T) {
		var inserted int64
		err := exec.InTx(ctx, func(tx query.Executor) error {
			res, err := tx.ExecSafe(ctx,
				"INSERT INTO transactions (account_id, type, beneficiary, amount, note, created_at) VALUES (?, 'transfer', ?, ?, ?, CURRENT_TIMESTAMP)",
				acc.ID, "Carol", 100, "")
			inserted = res.LastInsertID
			return err
		})
		assert.NoError(t, err)
		assert.NotZero(t, inserted)
		assert.Equal(t, int64(3), dbtest.CountTransactions(t, db, acc.ID))
	})
}

func TestRowAccessors(t *testing.T) {
	r := query.Row{
		"a": int64(7),
		"b": []byte("12"),
		"c": "2024-05-01 10:11:12",
		"d": nil,
		"e": float64(3),
	}
	assert.Equal(t, int64(7), r.Int64("a"))
	assert.Equal(t, int64(12), r.Int64("b"))
	assert.Equal(t, int64(3), r.Int64("e"))
	assert.Equal(t, "12", r.String("b"))
	assert.Equal(t, "", r.String("d"))
	assert.Equal(t, 2024, r.Time("c").Year())
	assert.True(t, r.Time("missing").IsZero())
}
