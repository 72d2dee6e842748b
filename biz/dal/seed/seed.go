// Package seed creates the demo schema and fixture data. Every user gets both
// credential columns so either security mode can log in.
package seed

import (
	"context"
	"fmt"
	"time"

	"bankdemo/biz/dal/repo"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/model/storage"
	"bankdemo/biz/util/money"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type DemoUser struct {
	Email        string
	Password     string
	Role         domain.Role
	Balance      money.Cents
	Transactions []DemoTransaction
}

type DemoTransaction struct {
	Beneficiary string
	Amount      money.Cents
	Note        string
	Age         time.Duration
}

func DefaultUsers() []DemoUser {
	return []DemoUser{
		{
			Email:    "alice@bank.local",
			Password: "alice123",
			Role:     domain.RoleCustomer,
			Balance:  10000,
			Transactions: []DemoTransaction{
				{Beneficiary: "Electricity Co", Amount: 4500, Note: "monthly bill", Age: 72 * time.Hour},
				{Beneficiary: "Bob", Amount: 1250, Note: "dinner", Age: 24 * time.Hour},
			},
		},
		{
			Email:    "bob@bank.local",
			Password: "bob123",
			Role:     domain.RoleCustomer,
			Balance:  25000,
			Transactions: []DemoTransaction{
				{Beneficiary: "Landlord", Amount: 80000, Note: "rent", Age: 48 * time.Hour},
			},
		},
		{
			Email:    "admin@bank.local",
			Password: "admin123",
			Role:     domain.RoleAdmin,
			Balance:  100000,
		},
	}
}

type Options struct {
	// HashCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	HashCost int
	Now      func() time.Time
}

// binaryColumns pins the credential columns to a byte-wise collation. MySQL's
// default _ci collation would let "ALICE@BANK.LOCAL" match alice's row.
var binaryColumns = []string{
	"ALTER TABLE users MODIFY email VARCHAR(191) NOT NULL COLLATE utf8mb4_bin",
	"ALTER TABLE users MODIFY password_plain VARCHAR(255) NOT NULL DEFAULT '' COLLATE utf8mb4_bin",
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(storage.Models()...); err != nil {
		return err
	}
	if db.Dialector.Name() != "mysql" {
		// sqlite compares text with BINARY already
		return nil
	}
	return collateBinary(db)
}

func collateBinary(db *gorm.DB) error {
	for _, stmt := range binaryColumns {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("collate users: %w", err)
		}
	}
	return nil
}

// Run inserts users and their accounts. Users that already exist are skipped
// and reported in the returned slice.
func Run(ctx context.Context, db *gorm.DB, users []DemoUser, opts Options) (skipped []string, err error) {
	cost := opts.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return skipped, err
		}

		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			user := &storage.UserRecord{
				Email:         u.Email,
				Role:          string(u.Role),
				PasswordPlain: u.Password,
				PasswordHash:  string(hash),
				CreatedAt:     now(),
			}
			if _, err := repo.NewUserRepository(tx).Create(ctx, user); err != nil {
				return err
			}

			account := &storage.AccountRecord{UserID: user.ID, Balance: int64(u.Balance)}
			if err := tx.Create(account).Error; err != nil {
				return err
			}

			for _, t := range u.Transactions {
				rec := &storage.TransactionRecord{
					AccountID:   account.ID,
					Type:        string(domain.TransactionTypeTransfer),
					Beneficiary: t.Beneficiary,
					Amount:      int64(t.Amount),
					Note:        t.Note,
					CreatedAt:   now().Add(-t.Age),
				}
				if err := tx.Create(rec).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if errs.IsDuplicatedErr(err) {
			skipped = append(skipped, u.Email)
			continue
		}
		if err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
