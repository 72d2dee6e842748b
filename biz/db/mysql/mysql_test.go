package mysql

import (
	"testing"

	"bankdemo/biz/config"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.MySQLConf{DBName: "bank_demo", IP: "10.0.0.2", Username: "bank", Password: "p@ss"})

	parsed, err := driver.ParseDSN(dsn)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.2:3306", parsed.Addr)
	assert.Equal(t, "bank_demo", parsed.DBName)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.True(t, parsed.ParseTime)
}

func TestSetDbConn(t *testing.T) {
	conn := &gorm.DB{Config: &gorm.Config{}}

	prev := SetDbConn(conn)
	assert.Same(t, conn, GetDbConn())

	assert.Same(t, conn, SetDbConn(prev))
	assert.True(t, GetDbConn() == prev)
}
