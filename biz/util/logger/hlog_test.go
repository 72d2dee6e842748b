package logger

import (
	"context"
	"path/filepath"
	"testing"

	"bankdemo/biz/config"
	"bankdemo/biz/model/mode"
	"bankdemo/biz/util/random"
	"bankdemo/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
)

func TestHlog(t *testing.T) {
	Init()

	ctx := trace_info.WithLogId(context.Background(), random.RandStr(32))

	hlog.CtxInfof(ctx, "test info data: %d, %s", 123, "ttt")
	hlog.CtxErrorf(ctx, "test error data: %d, %s", 123, "ttt")

	hlog.Infof("test info data: %d, %s", 123, "ttt")
	hlog.Errorf("test error data: %d, %s", 123, "ttt")
}

func TestWithLogID(t *testing.T) {
	ctx := trace_info.WithLogId(context.Background(), "abc")
	assert.Equal(t, "[abc] hello %s", withLogID(ctx, "hello %s"))
	assert.Equal(t, "hello", withLogID(context.Background(), "hello"))

	ctx = trace_info.WithUserId(ctx, 7)
	assert.Equal(t, "[abc uid=7] transfer %s", withLogID(ctx, "transfer %s"))
	assert.Equal(t, "[uid=7] x", withLogID(trace_info.WithUserId(context.Background(), 7), "x"))
}

func TestRotatingFile(t *testing.T) {
	f := rotatingFile(config.LoggerConf{}, mode.Vuln)
	assert.Equal(t, filepath.Join("log", "bankdemo-vuln.log"), filepath.Clean(f.Filename))
	assert.Equal(t, defaultMaxSizeMB, f.MaxSize)
	assert.Equal(t, defaultMaxBackups, f.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, f.MaxAge)

	f = rotatingFile(config.LoggerConf{Dir: "/var/log/bank", FileName: "audit.log", MaxSize: 5}, mode.Secure)
	assert.Equal(t, "/var/log/bank/audit.log", f.Filename)
	assert.Equal(t, 5, f.MaxSize)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, hlog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, hlog.LevelInfo, parseLevel(""))
	assert.Equal(t, hlog.LevelInfo, parseLevel("verbose"))
}
