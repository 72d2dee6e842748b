// Package message keeps the short notes a customer leaves on their account.
package message

import (
	"context"
	"strings"
	"unicode/utf8"

	"bankdemo/biz/dal/repo"
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/model/convert"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	maxContentLen = 1000
	listLimit     = 100
)

var (
	ErrEmptyContent = errs.ParamError.SetMsg("message content is required")
	ErrTooLong      = errs.ParamError.SetMsg("message content is too long")
)

type Service struct {
	messages *repo.MessageRepository
	users    *repo.UserRepository
}

func New(messages *repo.MessageRepository, users *repo.UserRepository) *Service {
	return &Service{messages: messages, users: users}
}

func NewDefault() *Service {
	db := mysql.GetDbConn()
	return New(repo.NewMessageRepository(db), repo.NewUserRepository(db))
}

func (s *Service) Post(ctx context.Context, author *domain.Identity, content string) (*domain.Message, errs.Error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return nil, ErrTooLong
	}

	m, err := s.messages.Create(ctx, &storage.MessageRecord{UserID: author.ID, Content: content})
	if err != nil {
		hlog.CtxErrorf(ctx, "create message err: %v", err)
		return nil, errs.ServerError
	}
	return convert.MessageRecordToDomain(m, author.Email), nil
}

// List returns the user's own messages, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]*domain.Message, errs.Error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.Unauthorized
	}

	list, err := s.messages.ListByUserID(ctx, userID, listLimit)
	if err != nil {
		hlog.CtxErrorf(ctx, "list messages err: %v", err)
		return nil, errs.ServerError
	}

	out := make([]*domain.Message, 0, len(list))
	for _, m := range list {
		out = append(out, convert.MessageRecordToDomain(m, u.Email))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, messageID int64) errs.Error {
	ok, err := s.messages.Delete(ctx, userID, messageID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete message err: %v", err)
		return errs.ServerError
	}
	if !ok {
		return errs.MessageNotFound
	}
	return nil
}
