package random

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/bytedance/gopkg/lang/fastrand"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandStr is fast but predictable; use Token for anything secret.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[fastrand.Intn(len(letters))]
	}
	return string(b)
}

// Token returns n bytes from the OS CSPRNG, base64url encoded without padding.
func Token(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
