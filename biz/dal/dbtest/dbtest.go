// Package dbtest opens throwaway SQLite stores with the demo schema for
// package tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"bankdemo/biz/dal/seed"
	"bankdemo/biz/model/storage"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// Open returns an empty, migrated in-memory store private to the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:bankdemo_%d?mode=memory&cache=shared", seq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// one connection keeps the in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := seed.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// OpenSeeded returns a store filled with seed.DefaultUsers.
func OpenSeeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	if _, err := seed.Run(context.Background(), db, seed.DefaultUsers(), seed.Options{HashCost: bcrypt.MinCost}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func UserByEmail(t testing.TB, db *gorm.DB, email string) storage.UserRecord {
	t.Helper()
	var u storage.UserRecord
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		t.Fatalf("user %s: %v", email, err)
	}
	return u
}

func AccountOf(t testing.TB, db *gorm.DB, userID int64) storage.AccountRecord {
	t.Helper()
	var a storage.AccountRecord
	if err := db.Where("user_id = ?", userID).First(&a).Error; err != nil {
		t.Fatalf("account of %d: %v", userID, err)
	}
	return a
}

func CountTransactions(t testing.TB, db *gorm.DB, accountID int64) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&storage.TransactionRecord{}).Where("account_id = ?", accountID).Count(&n).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}
