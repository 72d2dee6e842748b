// Package session keeps authenticated sessions keyed by an opaque token with
// a server-side expiry.
package session

import (
	"context"
	"time"

	"bankdemo/biz/model/domain"
)

type Store interface {
	// Put stores sess under token for ttl.
	Put(ctx context.Context, token string, sess *domain.Session, ttl time.Duration) error
	// Get returns nil, nil when the token is unknown or expired.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}
