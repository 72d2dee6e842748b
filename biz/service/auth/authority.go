// Package auth verifies credentials and owns the session lifecycle:
// anonymous, authenticated until logout or expiry, then anonymous again.
package auth

import (
	"context"
	"strings"
	"time"

	"bankdemo/biz/config"
	"bankdemo/biz/dal/query"
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/db/redis"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/service/session"
	"bankdemo/biz/util/metrics"
	"bankdemo/biz/util/random"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	tokenBytes = 32
	defaultTTL = time.Hour
)

type Authority struct {
	verifier Verifier
	sessions session.Store
	ttl      time.Duration
	now      func() time.Time
}

func New(verifier Verifier, sessions session.Store, ttl time.Duration) *Authority {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Authority{
		verifier: verifier,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

func NewDefault() *Authority {
	conf := config.GetSessionConf()
	return New(
		NewVerifier(query.NewGormExecutor(mysql.GetDbConn()), config.GetSecurityMode()),
		session.NewRedisStore(redis.GetRedisClient(), conf.TokenPrefix),
		time.Duration(conf.MaxAge)*time.Second,
	)
}

// Authenticate returns the matched identity. Unknown emails and wrong
// passwords produce the same AuthenticationFailed error.
func (a *Authority) Authenticate(ctx context.Context, email, password string) (*domain.Identity, errs.Error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errs.ParamError
	}

	identity, err := a.verifier.Verify(ctx, email, password)
	if err != nil {
		hlog.CtxErrorf(ctx, "verify credential err: %v", err)
		metrics.ObserveLogin(a.verifier.Mode(), metrics.ResultError)
		return nil, errs.ServerError
	}
	if identity == nil {
		hlog.CtxInfof(ctx, "authentication failed")
		metrics.ObserveLogin(a.verifier.Mode(), metrics.ResultRejected)
		return nil, errs.AuthenticationFailed
	}

	metrics.ObserveLogin(a.verifier.Mode(), metrics.ResultOK)
	return identity, nil
}

// StartSession binds identity to a fresh unguessable token.
func (a *Authority) StartSession(ctx context.Context, identity *domain.Identity) (string, time.Time, errs.Error) {
	if identity == nil {
		return "", time.Time{}, errs.Unauthorized
	}

	token, err := random.Token(tokenBytes)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate session token err: %v", err)
		return "", time.Time{}, errs.ServerError
	}

	expiresAt := a.now().Add(a.ttl)
	sess := &domain.Session{
		Identity:  domain.Identity{ID: identity.ID, Email: identity.Email, Role: identity.Role},
		ExpiresAt: expiresAt,
	}
	if err := a.sessions.Put(ctx, token, sess, a.ttl); err != nil {
		hlog.CtxErrorf(ctx, "put session err: %v", err)
		return "", time.Time{}, errs.ServerError
	}
	return token, expiresAt, nil
}

// Validate resolves a token to its identity, or Unauthorized.
func (a *Authority) Validate(ctx context.Context, token string) (*domain.Identity, errs.Error) {
	if token == "" {
		return nil, errs.Unauthorized
	}

	sess, err := a.sessions.Get(ctx, token)
	if err != nil {
		hlog.CtxErrorf(ctx, "get session err: %v", err)
		return nil, errs.ServerError
	}
	if sess == nil || sess.Expired(a.now()) {
		return nil, errs.Unauthorized
	}

	identity := sess.Identity
	return &identity, nil
}

// EndSession invalidates token. Ending an unknown or empty token is a no-op.
func (a *Authority) EndSession(ctx context.Context, token string) errs.Error {
	if token == "" {
		return nil
	}
	if err := a.sessions.Delete(ctx, token); err != nil {
		hlog.CtxErrorf(ctx, "delete session err: %v", err)
		return errs.ServerError
	}
	return nil
}
