package trace

import (
	"context"

	"bankdemo/biz/util/id_gen"
	"bankdemo/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	headerKeyLogId = "X-Log-ID"
	maxLogIdLen    = 64
)

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(headerKeyLogId)
		if !validLogID(logID) {
			logID = id_gen.NewID()
		}
		ctx = trace_info.WithLogId(ctx, logID)
		c.Header(headerKeyLogId, logID)
		c.Next(ctx)
	}
}

// validLogID keeps client supplied ids from forging log lines.
func validLogID(id string) bool {
	if id == "" || len(id) > maxLogIdLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
		default:
			return false
		}
	}
	return true
}
