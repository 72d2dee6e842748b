package db

import (
	"bankdemo/biz/db/mysql"
	"bankdemo/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
