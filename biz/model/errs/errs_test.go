package errs

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestErrorEqual(t *testing.T) {
	assert.True(t, ErrorEqual(nil, nil))
	assert.False(t, ErrorEqual(ParamError, nil))
	assert.True(t, ErrorEqual(ParamError, InvalidTransfer))
	assert.False(t, ErrorEqual(InsufficientFunds, AccountNotFound))
}

func TestSetMsgKeepsCode(t *testing.T) {
	e := ServerError.SetErr(errors.New("boom"))
	assert.Equal(t, ServerError.Code(), e.Code())
	assert.Equal(t, "boom", e.Msg())
	assert.Equal(t, "internal server error", ServerError.Msg())
}

func TestIsDuplicatedErr(t *testing.T) {
	assert.False(t, IsDuplicatedErr(nil))
	assert.False(t, IsDuplicatedErr(errors.New("x")))
	assert.True(t, IsDuplicatedErr(&mysql.MySQLError{Number: 1062}))
}
