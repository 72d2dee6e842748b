// Package trace_info carries per-request correlation data: the log id picked
// by the trace middleware and the account holder admitted by the auth gate.
package trace_info

import (
	"context"
)

type logIdKey struct{}

type userIdKey struct{}

func WithLogId(ctx context.Context, logId string) context.Context {
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	logId, _ := ctx.Value(logIdKey{}).(string)
	return logId
}

func WithUserId(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIdKey{}, userID)
}

// GetUserId reports false for anonymous requests.
func GetUserId(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIdKey{}).(int64)
	return userID, ok
}
