package id_gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewId(t *testing.T) {
	idgen := NewIDGenerator(2)
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	seen := map[string]bool{}
	for i := 0; ; i++ {
		select {
		case <-ticker.C:
			id := idgen.NewID()
			t.Logf("log id: %s", id)
			assert.False(t, seen[id])
			seen[id] = true
			if i > 10 {
				idgen.Stop()
			}
		case <-idgen.stop:
			return
		}
	}
}

func TestDefault(t *testing.T) {
	assert.NotEmpty(t, NewID())
	assert.NotEqual(t, NewID(), NewID())
}
