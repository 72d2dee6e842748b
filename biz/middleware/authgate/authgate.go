// Package authgate admits a request only when its cookie session carries a
// token the auth authority still recognises.
package authgate

import (
	"context"
	"net/http"

	"bankdemo/biz/middleware/session"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/service/auth"
	"bankdemo/biz/util/resp"
	"bankdemo/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type identityKey struct{}

type tokenKey struct{}

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := session.GetToken(c)
		if token == "" {
			hlog.CtxInfof(ctx, "authorization failed, no session token")
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		identity, bizErr := auth.NewDefault().Validate(ctx, token)
		if bizErr != nil {
			status := http.StatusUnauthorized
			if errs.ErrorEqual(bizErr, errs.ServerError) {
				status = http.StatusInternalServerError
			}
			resp.AbortWithErr(c, bizErr, status)
			return
		}

		ctx = context.WithValue(ctx, identityKey{}, identity)
		ctx = context.WithValue(ctx, tokenKey{}, token)
		ctx = trace_info.WithUserId(ctx, identity.ID)
		c.Next(ctx)
	}
}

func GetIdentity(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return identity
}

// GetToken returns the validated session token.
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// WithIdentity is used by tests that mount handlers without the gate.
func WithIdentity(ctx context.Context, identity *domain.Identity, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey{}, identity)
	return context.WithValue(ctx, tokenKey{}, token)
}
