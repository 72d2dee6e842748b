package errs

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	// sqlite stores used by tests and local runs
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
