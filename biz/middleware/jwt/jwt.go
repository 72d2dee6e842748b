package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"bankdemo/biz/config"
	"bankdemo/biz/middleware/authgate"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/util/encode"
	"bankdemo/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
)

// ValidateMW must run after authgate: the access token is only accepted
// together with the session it was issued for, so ending the session also
// retires the token.
func ValidateMW() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtConf := config.GetJWTConfig()
		jwtStr := exactJWT(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		// 0. basic validation
		claims, err := validateToken(jwtStr, jwtConf.AccessTokenSecret)
		if err != nil {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		// 1. check the summary of the session token
		if !claims.CheckSum(authgate.GetToken(ctx)) {
			hlog.CtxInfof(ctx, "session not match")
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		// 2. the token must name the session's user
		if identity := authgate.GetIdentity(ctx); identity == nil || identity.ID != claims.UserID {
			hlog.CtxInfof(ctx, "jwt user does not match the session")
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, Payload{}, claims)

		c.Next(ctx)
	}
}

type Payload struct {
	UserID int64  `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload

	Sum string `json:"sum,omitempty"`
}

func (c *Claims) CheckSum(sessToken string) bool {
	if sessToken == "" {
		return false
	}
	return encode.Sum(c.ID, sessToken) == c.Sum
}

// GenerateToken signs an access token bound to sessToken. It never outlives
// expiresAt.
func GenerateToken(ctx context.Context, payload Payload, sessToken string, expiresAt time.Time) (string, int64, error) {
	tokenID := uuid.New().String()

	jwtConf := config.GetJWTConfig()
	exp := accessExpiration(jwtConf)
	if until := time.Until(expiresAt); !expiresAt.IsZero() && until < exp {
		exp = until
	}
	expAt := time.Now().Add(exp).Unix()

	jwtStr, err := generateToken(payload, exp, tokenID, sessToken, jwtConf.AccessTokenSecret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt, nil
}

func GetPayload(ctx context.Context) Payload {
	claims, ok := ctx.Value(Payload{}).(*Claims)
	if ok {
		return claims.Payload
	}
	return Payload{}
}

func generateToken(payload Payload, expiration time.Duration, tokenID, sessToken, secret, issuer string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			Issuer:    issuer,
			ID:        tokenID,
		},
		Payload: payload,
		Sum:     encode.Sum(tokenID, sessToken),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func validateToken(tokenStr, secret string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrHashUnavailable
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrHashUnavailable) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

func exactJWT(c *app.RequestContext) string {
	v := c.Request.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
}

func accessExpiration(conf config.JWTConf) time.Duration {
	if conf.AccessExpiration > 0 {
		return time.Duration(conf.AccessExpiration) * time.Second
	}

	return 30 * time.Minute
}
