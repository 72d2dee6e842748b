// Package query runs statements against the relational store in one of two
// ways: RunUnsafe executes caller-built text verbatim, RunSafe sends the
// values out-of-band as bound parameters.
package query

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// StoreError wraps any failure reported by the store, including syntax
// errors provoked by interpolated input. Its text is for server logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// Result describes a row-affecting statement.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

type Executor interface {
	// RunUnsafe executes text as-is. Any value the caller embedded in it is
	// part of the statement.
	RunUnsafe(ctx context.Context, text string) (Rows, error)
	// RunSafe executes a parameterised template; args never change its structure.
	RunSafe(ctx context.Context, template string, args ...any) (Rows, error)
	// ExecSafe executes a parameterised write.
	ExecSafe(ctx context.Context, template string, args ...any) (Result, error)
	// InTx runs fn against an executor bound to a single store transaction.
	// It commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Executor) error) error
}

type GormExecutor struct {
	db *gorm.DB
}

func NewGormExecutor(db *gorm.DB) *GormExecutor {
	return &GormExecutor{db: db}
}

func (e *GormExecutor) RunUnsafe(ctx context.Context, text string) (Rows, error) {
	var rows []map[string]any
	if err := e.db.WithContext(ctx).Raw(text).Scan(&rows).Error; err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return toRows(rows), nil
}

func (e *GormExecutor) RunSafe(ctx context.Context, template string, args ...any) (Rows, error) {
	var rows []map[string]any
	if err := e.db.WithContext(ctx).Raw(template, args...).Scan(&rows).Error; err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return toRows(rows), nil
}

func (e *GormExecutor) ExecSafe(ctx context.Context, template string, args ...any) (Result, error) {
	// The connection pool is used directly so LastInsertId stays available.
	pool := e.db.WithContext(ctx).Statement.ConnPool
	res, err := pool.ExecContext(ctx, template, args...)
	if err != nil {
		return Result{}, &StoreError{Op: "exec", Err: err}
	}
	return toResult(res), nil
}

func (e *GormExecutor) InTx(ctx context.Context, fn func(tx Executor) error) error {
	var fnErr error
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&GormExecutor{db: tx})
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return &StoreError{Op: "tx", Err: err}
}

func toResult(res sql.Result) Result {
	var out Result
	out.RowsAffected, _ = res.RowsAffected()
	out.LastInsertID, _ = res.LastInsertId()
	return out
}

func toRows(in []map[string]any) Rows {
	out := make(Rows, 0, len(in))
	for _, r := range in {
		out = append(out, Row(r))
	}
	return out
}
