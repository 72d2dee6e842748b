package middleware

import (
	"bankdemo/biz/middleware/accesslog"
	"bankdemo/biz/middleware/authgate"
	"bankdemo/biz/middleware/cors"
	"bankdemo/biz/middleware/jwt"
	"bankdemo/biz/middleware/recovery"
	"bankdemo/biz/middleware/session"
	"bankdemo/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
		session.New(),   // 会话
	}
}

// Protected guards the banking routes: a live session first, then an
// access token issued for that session.
func Protected() []app.HandlerFunc {
	return []app.HandlerFunc{
		authgate.New(),
		jwt.ValidateMW(),
	}
}
