// Package be assembles the HTTP engine of the banking demo.
package be

import (
	"bankdemo/biz/config"
	"bankdemo/biz/middleware"
	"bankdemo/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func NewEngine() *server.Hertz {
	h := server.New(
		server.WithHostPorts(config.GetServerConf().Addr),
		server.WithCustomValidatorFunc(validate.Func()),
	)
	h.Use(middleware.Suite()...)
	register(h)
	return h
}
