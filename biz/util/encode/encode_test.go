package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	a := Sum("tid", "token")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Sum("tid", "token"))
	assert.NotEqual(t, a, Sum("tid", "token2"))
	// the separator keeps ("ab","c") and ("a","bc") apart
	assert.NotEqual(t, Sum("ab", "c"), Sum("a", "bc"))
}
