package logger

import (
	"path/filepath"
	"strings"

	"bankdemo/biz/config"
	"bankdemo/biz/model/mode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "./log"
	defaultMaxSizeMB  = 512
	defaultMaxBackups = 10
	defaultMaxAgeDays = 14
)

var levels = map[string]hlog.Level{
	"trace":  hlog.LevelTrace,
	"debug":  hlog.LevelDebug,
	"info":   hlog.LevelInfo,
	"notice": hlog.LevelNotice,
	"warn":   hlog.LevelWarn,
	"error":  hlog.LevelError,
	"fatal":  hlog.LevelFatal,
}

func newOutput() *lumberjack.Logger {
	return rotatingFile(config.GetLoggerConf(), config.GetSecurityMode())
}

// rotatingFile writes to bankdemo-<mode>.log unless a file name is
// configured, keeping vuln and secure runs in separate files.
func rotatingFile(conf config.LoggerConf, m mode.Mode) *lumberjack.Logger {
	dir := conf.Dir
	if dir == "" {
		dir = defaultDir
	}
	name := conf.FileName
	if name == "" {
		name = "bankdemo-" + m.String() + ".log"
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    orDefault(conf.MaxSize, defaultMaxSizeMB),
		MaxAge:     orDefault(conf.MaxAge, defaultMaxAgeDays),
		MaxBackups: orDefault(conf.MaxBackups, defaultMaxBackups),
		LocalTime:  true,
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func newLevel() hlog.Level {
	return parseLevel(config.GetLoggerConf().Level)
}

func parseLevel(s string) hlog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return hlog.LevelInfo
}
