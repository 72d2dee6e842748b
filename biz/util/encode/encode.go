package encode

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum binds a value to a secret-ish context, e.g. a token id to the session
// token it was issued for.
func Sum(salt, value string) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte{0})
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
