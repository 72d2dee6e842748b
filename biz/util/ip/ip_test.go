package ip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Hex(t *testing.T) {
	v := IPv4Hex()
	assert.Len(t, v, 8)
	assert.Equal(t, v, IPv4Hex())
}
