package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        int64 `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	ID            int64     `gorm:"primarykey"`
	Email         string    `gorm:"size:191;not null;uniqueIndex"`
	Role          string    `gorm:"size:32;not null;default:customer"`
	PasswordPlain string    `gorm:"size:255;not null;default:''"` // demo data for vuln mode
	PasswordHash  string    `gorm:"size:255;not null;default:''"` // bcrypt, secure mode
	CreatedAt     time.Time
}

func (UserRecord) TableName() string {
	return "users"
}

type AccountRecord struct {
	ID      int64 `gorm:"primarykey"`
	UserID  int64 `gorm:"not null;uniqueIndex"`
	Balance int64 `gorm:"not null;default:0"` // minor units
}

func (AccountRecord) TableName() string {
	return "accounts"
}

type TransactionRecord struct {
	ID          int64     `gorm:"primarykey"`
	AccountID   int64     `gorm:"not null;index:idx_account_created,priority:1"`
	Type        string    `gorm:"size:32;not null"`
	Beneficiary string    `gorm:"size:255;not null"`
	Amount      int64     `gorm:"not null"` // minor units
	Note        string    `gorm:"size:255;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;index:idx_account_created,priority:2"`
}

func (TransactionRecord) TableName() string {
	return "transactions"
}

type MessageRecord struct {
	GormModel
	UserID  int64  `gorm:"not null;index"`
	Content string `gorm:"size:1000;not null"`
}

func (MessageRecord) TableName() string {
	return "messages"
}

// Models lists every table of the demo schema in creation order.
func Models() []any {
	return []any{
		&UserRecord{},
		&AccountRecord{},
		&TransactionRecord{},
		&MessageRecord{},
	}
}
