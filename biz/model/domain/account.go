package domain

import (
	"time"

	"bankdemo/biz/util/money"
)

type Account struct {
	ID      int64
	UserID  int64
	Balance money.Cents
}

type TransactionType string

const TransactionTypeTransfer TransactionType = "transfer"

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID          int64
	AccountID   int64
	Type        TransactionType
	Beneficiary string
	Amount      money.Cents
	Note        string
	CreatedAt   time.Time
}

type Message struct {
	ID        int64
	UserID    int64
	Email     string
	Content   string
	CreatedAt time.Time
}
