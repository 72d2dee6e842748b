package main

import (
	"flag"

	be "bankdemo"
	"bankdemo/biz/config"
	"bankdemo/biz/db"
	"bankdemo/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var confPath string

func init() {
	flag.StringVar(&confPath, "conf", "conf/deploy.yml", "path of the yaml config")
}

func main() {
	flag.Parse()

	config.Init(confPath)
	logger.Init()
	db.Init()

	hlog.Infof("starting bankdemo, security_mode=%s addr=%s",
		config.GetSecurityMode(), config.GetServerConf().Addr)
	if config.GetSecurityMode().IsVuln() {
		hlog.Warnf("VULN mode: queries are built by string concatenation, never expose this instance")
	}

	be.NewEngine().Spin()
}
