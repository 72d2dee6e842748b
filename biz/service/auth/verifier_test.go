package auth

import (
	"context"
	"testing"

	"bankdemo/biz/dal/dbtest"
	"bankdemo/biz/dal/query"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/mode"

	"github.com/stretchr/testify/assert"
)

func newVerifiers(t *testing.T) (vuln, secure Verifier) {
	t.Helper()
	exec := query.NewGormExecutor(dbtest.OpenSeeded(t))
	return NewVerifier(exec, mode.Vuln), NewVerifier(exec, mode.Secure)
}

func TestVerifier_SameResultForHonestInput(t *testing.T) {
	vuln, secure := newVerifiers(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"correct", "alice@bank.local", "alice123", "alice@bank.local"},
		{"wrong password", "alice@bank.local", "nope", ""},
		{"unknown email", "carol@bank.local", "alice123", ""},
		{"other user's password", "alice@bank.local", "bob123", ""},
		{"case differs", "Alice@bank.local", "alice123", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range []Verifier{vuln, secure} {
				got, err := v.Verify(ctx, tc.email, tc.password)
				assert.NoError(t, err, v.Mode())
				if tc.want == "" {
					assert.Nil(t, got, v.Mode())
					continue
				}
				if assert.NotNil(t, got, v.Mode()) {
					assert.Equal(t, tc.want, got.Email)
					assert.Equal(t, domain.RoleCustomer, got.Role)
					assert.NotZero(t, got.ID)
				}
			}
		})
	}
}

func TestVerifier_InjectedPasswordBypassesVulnMode(t *testing.T) {
	vuln, secure := newVerifiers(t)
	ctx := context.Background()

	// closes the password literal and appends a disjunction on the target email
	password := "x' OR email='admin@bank.local"

	got, err := vuln.Verify(ctx, "admin@bank.local", password)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "admin@bank.local", got.Email)
		assert.Equal(t, domain.RoleAdmin, got.Role)
	}

	got, err = secure.Verify(ctx, "admin@bank.local", password)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifier_InjectedEmailBypassesVulnMode(t *testing.T) {
	vuln, secure := newVerifiers(t)
	ctx := context.Background()

	email := "bob@bank.local' OR '1'='1"

	got, err := vuln.Verify(ctx, email, "wrong")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "bob@bank.local", got.Email)
	}

	got, err = secure.Verify(ctx, email, "wrong")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifier_QuoteInSecureModeIsLiteral(t *testing.T) {
	_, secure := newVerifiers(t)
	got, err := secure.Verify(context.Background(), "o'brien@bank.local", "it's")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerifier_VulnModeSyntaxErrorIsStoreError(t *testing.T) {
	vuln, _ := newVerifiers(t)
	_, err := vuln.Verify(context.Background(), "alice@bank.local'", "x")
	assert.True(t, query.IsStoreError(err))
}
