// Command seeder creates the demo schema and inserts the demo customers.
// Running it again leaves existing users untouched.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"bankdemo/biz/config"
	"bankdemo/biz/dal/seed"
	"bankdemo/biz/db/mysql"

	"github.com/sirupsen/logrus"
)

var (
	confPath string
	timeout  time.Duration
)

func init() {
	flag.StringVar(&confPath, "conf", "conf/deploy.yml", "path of the yaml config")
	flag.DurationVar(&timeout, "timeout", time.Minute, "overall seeding timeout")
}

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	config.Init(confPath)
	mysql.Init()
	conn := mysql.GetDbConn()

	if err := seed.Migrate(conn); err != nil {
		log.WithError(err).Error("migrate schema")
		os.Exit(1)
	}
	log.Info("schema ready")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	users := seed.DefaultUsers()
	skipped, err := seed.Run(ctx, conn, users, seed.Options{})
	if err != nil {
		log.WithError(err).Error("seed demo data")
		os.Exit(1)
	}
	for _, email := range skipped {
		log.WithField("email", email).Info("user exists, skipped")
	}
	log.WithFields(logrus.Fields{
		"inserted": len(users) - len(skipped),
		"skipped":  len(skipped),
	}).Info("seeding done")
}
