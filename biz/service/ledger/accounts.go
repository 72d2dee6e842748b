package ledger

import (
	"context"

	"bankdemo/biz/dal/query"
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/model/convert"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Accounts looks accounts up by owner. Both modes bind parameters here; the
// user id comes from the session.
type Accounts struct {
	exec query.Executor
}

func NewAccounts(exec query.Executor) *Accounts {
	return &Accounts{exec: exec}
}

func NewDefaultAccounts() *Accounts {
	return NewAccounts(query.NewGormExecutor(mysql.GetDbConn()))
}

func (a *Accounts) FindByUserID(ctx context.Context, userID int64) (*domain.Account, errs.Error) {
	rows, err := a.exec.RunSafe(ctx, "SELECT id, user_id, balance FROM accounts WHERE user_id = ? LIMIT 1", userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find account err: %v", err)
		return nil, errs.ServerError
	}
	if len(rows) == 0 {
		return nil, errs.AccountNotFound
	}
	return convert.RowToAccount(rows[0]), nil
}
