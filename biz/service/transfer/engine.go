// Package transfer moves money out of an account and records the movement
// in the ledger.
package transfer

import (
	"context"
	"errors"
	"strings"
	"time"

	"bankdemo/biz/dal/query"
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/util/metrics"
	"bankdemo/biz/util/money"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
)

type Command struct {
	AccountID   int64       `validate:"gt=0"`
	Beneficiary string      `validate:"required,max=255"`
	Amount      money.Cents `validate:"gt=0"`
	Note        string      `validate:"max=255"`
}

// errInsufficient aborts the unit of work when the guarded debit touches no row.
var errInsufficient = errors.New("insufficient funds")

type Engine struct {
	exec     query.Executor
	validate *validator.Validate
	now      func() time.Time
}

func New(exec query.Executor) *Engine {
	return &Engine{
		exec:     exec,
		validate: validator.New(),
		now:      time.Now,
	}
}

func NewDefault() *Engine {
	return New(query.NewGormExecutor(mysql.GetDbConn()))
}

// Transfer debits cmd.Amount from the account and appends a transfer entry.
// Both happen or neither does. Parameters are always bound, whatever the
// security mode.
func (e *Engine) Transfer(ctx context.Context, cmd Command) (*domain.Transaction, errs.Error) {
	cmd.Beneficiary = strings.TrimSpace(cmd.Beneficiary)
	cmd.Note = strings.TrimSpace(cmd.Note)
	if err := e.validate.Struct(cmd); err != nil {
		hlog.CtxInfof(ctx, "invalid transfer: %v", err)
		metrics.ObserveTransfer(metrics.ResultRejected, 0)
		return nil, errs.InvalidTransfer
	}

	rows, err := e.exec.RunSafe(ctx, "SELECT id, balance FROM accounts WHERE id = ? LIMIT 1", cmd.AccountID)
	if err != nil {
		hlog.CtxErrorf(ctx, "load account err: %v", err)
		metrics.ObserveTransfer(metrics.ResultError, 0)
		return nil, errs.ServerError
	}
	if len(rows) == 0 {
		metrics.ObserveTransfer(metrics.ResultRejected, 0)
		return nil, errs.AccountNotFound
	}
	if money.Cents(rows[0].Int64("balance")) < cmd.Amount {
		metrics.ObserveTransfer(metrics.ResultInsufficient, 0)
		return nil, errs.InsufficientFunds
	}

	tx := &domain.Transaction{
		AccountID:   cmd.AccountID,
		Type:        domain.TransactionTypeTransfer,
		Beneficiary: cmd.Beneficiary,
		Amount:      cmd.Amount,
		Note:        cmd.Note,
		CreatedAt:   e.now().UTC(),
	}
	err = e.exec.InTx(ctx, func(q query.Executor) error {
		res, err := q.ExecSafe(ctx,
			"UPDATE accounts SET balance = balance - ? WHERE id = ? AND balance >= ?",
			int64(cmd.Amount), cmd.AccountID, int64(cmd.Amount))
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return errInsufficient
		}

		res, err = q.ExecSafe(ctx,
			"INSERT INTO transactions (account_id, type, beneficiary, amount, note, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			tx.AccountID, string(tx.Type), tx.Beneficiary, int64(tx.Amount), tx.Note, tx.CreatedAt)
		if err != nil {
			return err
		}
		tx.ID = res.LastInsertID
		return nil
	})
	if errors.Is(err, errInsufficient) {
		metrics.ObserveTransfer(metrics.ResultInsufficient, 0)
		return nil, errs.InsufficientFunds
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "transfer err: %v", err)
		metrics.ObserveTransfer(metrics.ResultError, 0)
		return nil, errs.ServerError
	}

	hlog.CtxInfof(ctx, "transfer committed, account=%d amount=%s", tx.AccountID, tx.Amount)
	metrics.ObserveTransfer(metrics.ResultOK, int64(tx.Amount))
	return tx, nil
}
