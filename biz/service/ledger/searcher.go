// Package ledger reads accounts and their transaction history.
package ledger

import (
	"context"
	"strconv"
	"strings"

	"bankdemo/biz/config"
	"bankdemo/biz/dal/query"
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/model/convert"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/model/mode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const transactionColumns = "id, account_id, type, beneficiary, amount, note, created_at"

// Searcher lists an account's transactions, newest first, optionally
// filtered by a term matched against beneficiary and note. Results never
// leave the given account.
type Searcher interface {
	Search(ctx context.Context, accountID int64, term string) ([]*domain.Transaction, errs.Error)
}

func NewSearcher(exec query.Executor, m mode.Mode) Searcher {
	if m.IsVuln() {
		return &unsafeSearcher{exec: exec}
	}
	return &safeSearcher{exec: exec}
}

func NewDefaultSearcher() Searcher {
	return NewSearcher(query.NewGormExecutor(mysql.GetDbConn()), config.GetSecurityMode())
}

// unsafeSearcher embeds term in both LIKE patterns; an empty term leaves
// '%%'. Quotes in term rewrite the statement.
type unsafeSearcher struct {
	exec query.Executor
}

func (s *unsafeSearcher) Search(ctx context.Context, accountID int64, term string) ([]*domain.Transaction, errs.Error) {
	text := "SELECT " + transactionColumns + " FROM transactions " +
		"WHERE account_id=" + strconv.FormatInt(accountID, 10) + " AND " +
		"(beneficiary LIKE '%" + term + "%' OR note LIKE '%" + term + "%') " +
		"ORDER BY created_at DESC, id DESC"

	rows, err := s.exec.RunUnsafe(ctx, text)
	if err != nil {
		hlog.CtxErrorf(ctx, "search transactions err: %v", err)
		return nil, errs.ServerError
	}
	return toTransactions(rows), nil
}

type safeSearcher struct {
	exec query.Executor
}

func (s *safeSearcher) Search(ctx context.Context, accountID int64, term string) ([]*domain.Transaction, errs.Error) {
	var (
		rows query.Rows
		err  error
	)
	if term == "" {
		rows, err = s.exec.RunSafe(ctx,
			"SELECT "+transactionColumns+" FROM transactions "+
				"WHERE account_id = ? ORDER BY created_at DESC, id DESC",
			accountID)
	} else {
		like := "%" + escapeLike(term) + "%"
		rows, err = s.exec.RunSafe(ctx,
			"SELECT "+transactionColumns+" FROM transactions "+
				"WHERE account_id = ? AND (beneficiary LIKE ? ESCAPE '!' OR note LIKE ? ESCAPE '!') "+
				"ORDER BY created_at DESC, id DESC",
			accountID, like, like)
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "search transactions err: %v", err)
		return nil, errs.ServerError
	}
	return toTransactions(rows), nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes LIKE wildcards in term match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func toTransactions(rows query.Rows) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, convert.RowToTransaction(r))
	}
	return out
}
