package repo

import (
	"context"
	"testing"
	"time"

	"bankdemo/biz/model/errs"
	"bankdemo/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(storage.Models()...)
	assert.NoError(t, err)
	return db
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u := &storage.UserRecord{
		Email: "carol@bank.local",
		Role:  "customer",
	}

	created, err := r.Create(ctx, u)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	// Verify in DB
	var m storage.UserRecord
	err = db.First(&m, "email = ?", "carol@bank.local").Error
	assert.NoError(t, err)
	assert.Equal(t, created.ID, m.ID)

	// duplicated email
	_, err = r.Create(ctx, &storage.UserRecord{Email: "carol@bank.local"})
	assert.Error(t, err)
	assert.True(t, errs.IsDuplicatedErr(err))
}

func TestUserRepository_Find(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u := &storage.UserRecord{Email: "carol@bank.local", Role: "customer"}
	db.Create(u)

	found, err := r.FindByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "carol@bank.local", found.Email)

	found, err = r.FindByEmail(ctx, "carol@bank.local")
	assert.NoError(t, err)
	assert.NotNil(t, found)

	// Test not found
	found, err = r.FindByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, found)

	found, err = r.FindByEmail(ctx, "nobody@bank.local")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMessageRepository(t *testing.T) {
	db := setupTestDB(t)
	r := NewMessageRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		m := &storage.MessageRecord{UserID: 1, Content: content}
		m.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := r.Create(ctx, m)
		assert.NoError(t, err)
	}
	_, err := r.Create(ctx, &storage.MessageRecord{UserID: 2, Content: "other"})
	assert.NoError(t, err)

	list, err := r.ListByUserID(ctx, 1, 0)
	assert.NoError(t, err)
	if assert.Len(t, list, 3) {
		assert.Equal(t, "third", list[0].Content)
		assert.Equal(t, "first", list[2].Content)
	}

	list, err = r.ListByUserID(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	// soft delete hides the row, other users cannot delete it
	ok, err := r.Delete(ctx, 2, list[0].ID)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = r.Delete(ctx, 1, list[0].ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	list, err = r.ListByUserID(ctx, 1, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	var total int64
	assert.NoError(t, db.Unscoped().Model(&storage.MessageRecord{}).Where("user_id = ?", 1).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}
