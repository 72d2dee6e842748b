package trace_info

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogId(t *testing.T) {
	assert.Empty(t, GetLogId(context.Background()))
	assert.Equal(t, "abc", GetLogId(WithLogId(context.Background(), "abc")))
}

func TestUserId(t *testing.T) {
	_, ok := GetUserId(context.Background())
	assert.False(t, ok)

	ctx := WithUserId(WithLogId(context.Background(), "abc"), 7)
	id, ok := GetUserId(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "abc", GetLogId(ctx))
}
