package logger

import (
	"context"
	"io"
	"os"
	"strconv"

	"bankdemo/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Init routes hlog to stdout and the rotating file. Ctx* calls are prefixed
// with the request log id and, once authenticated, the user id.
func Init() {
	l := hlog.DefaultLogger()
	if cl, ok := l.(*ctxLogger); ok {
		l = cl.FullLogger
	}
	l.SetOutput(io.MultiWriter(os.Stdout, newOutput()))
	l.SetLevel(newLevel())
	hlog.SetLogger(&ctxLogger{FullLogger: l})
}

type ctxLogger struct {
	hlog.FullLogger
}

func withLogID(ctx context.Context, format string) string {
	logID := trace_info.GetLogId(ctx)
	userID, authed := trace_info.GetUserId(ctx)
	switch {
	case logID != "" && authed:
		return "[" + logID + " uid=" + strconv.FormatInt(userID, 10) + "] " + format
	case logID != "":
		return "[" + logID + "] " + format
	case authed:
		return "[uid=" + strconv.FormatInt(userID, 10) + "] " + format
	}
	return format
}

func (l *ctxLogger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxTracef(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxDebugf(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxInfof(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxNoticef(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxWarnf(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxErrorf(ctx, withLogID(ctx, format), v...)
}

func (l *ctxLogger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxFatalf(ctx, withLogID(ctx, format), v...)
}
