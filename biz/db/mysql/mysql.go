package mysql

import (
	"context"
	"fmt"
	"time"

	"bankdemo/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	driver "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var db *gorm.DB

func Init() {
	conf := config.GetMySQLConf()

	conn, err := gorm.Open(gormmysql.New(gormmysql.Config{DSN: DSN(conf)}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic(err)
	}
	limit := conf.PoolLimit
	if limit <= 0 {
		limit = 10
	}
	sqlDB.SetMaxOpenConns(limit)
	sqlDB.SetMaxIdleConns(limit)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		panic(fmt.Errorf("mysql ping: %w", err))
	}
	hlog.Infof("connected to mysql %s:%d/%s", conf.IP, conf.Port, conf.DBName)

	db = conn
}

func DSN(conf config.MySQLConf) string {
	port := conf.Port
	if port == 0 {
		port = 3306
	}
	c := driver.NewConfig()
	c.User = conf.Username
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", conf.IP, port)
	c.DBName = conf.DBName
	c.ParseTime = true
	c.Loc = time.UTC
	return c.FormatDSN()
}

func GetDbConn() *gorm.DB {
	return db
}

// SetDbConn replaces the shared connection and returns the previous one.
// Tests use it to point the handlers at an in-memory store.
func SetDbConn(conn *gorm.DB) *gorm.DB {
	prev := db
	db = conn
	return prev
}
