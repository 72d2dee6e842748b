package auth

import (
	"context"
	"sync"

	"bankdemo/biz/dal/query"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/mode"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks an email/password pair. A nil identity with a nil error
// means no user matched.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*domain.Identity, error)
	Mode() mode.Mode
}

// NewVerifier picks the credential strategy for m.
func NewVerifier(exec query.Executor, m mode.Mode) Verifier {
	if m.IsVuln() {
		return &unsafeVerifier{exec: exec}
	}
	return &safeVerifier{exec: exec}
}

// unsafeVerifier embeds both values in the statement and compares the
// plaintext column inside the store. Quotes in either value rewrite the
// WHERE clause; that is the behaviour the vuln mode exists to show.
type unsafeVerifier struct {
	exec query.Executor
}

func (v *unsafeVerifier) Mode() mode.Mode { return mode.Vuln }

func (v *unsafeVerifier) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	text := "SELECT id, email, role FROM users " +
		"WHERE email='" + email + "' AND password_plain='" + password + "'"

	rows, err := v.exec.RunUnsafe(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return identityFromRow(rows[0]), nil
}

type safeVerifier struct {
	exec query.Executor
}

func (v *safeVerifier) Mode() mode.Mode { return mode.Secure }

func (v *safeVerifier) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	rows, err := v.exec.RunSafe(ctx,
		"SELECT id, email, role, password_hash FROM users WHERE email = ? LIMIT 1", email)
	if err != nil {
		return nil, err
	}

	// Unknown emails still pay for a bcrypt comparison.
	hash := dummyHash()
	var row query.Row
	if len(rows) > 0 {
		row = rows[0]
		if h := row.String("password_hash"); h != "" {
			hash = []byte(h)
		}
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return nil, nil
	}
	// collations may compare case-insensitively; the stored value is authoritative
	if row == nil || row.String("email") != email {
		return nil, nil
	}
	return identityFromRow(row), nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("bankdemo-no-such-user"), bcrypt.DefaultCost)
	})
	return dummy
}

func identityFromRow(r query.Row) *domain.Identity {
	return &domain.Identity{
		ID:    r.Int64("id"),
		Email: r.String("email"),
		Role:  domain.Role(r.String("role")),
	}
}
