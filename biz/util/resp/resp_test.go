package resp

import (
	"errors"
	"testing"

	"bankdemo/biz/model/errs"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	ok := envelope("pong", nil)
	assert.True(t, ok.Success)
	assert.Equal(t, "pong", ok.Data)

	fail := envelope(nil, errs.InsufficientFunds)
	assert.False(t, fail.Success)
	assert.Equal(t, int(errs.InsufficientFunds.Code()), fail.Code)
	assert.Equal(t, "insufficient funds", fail.Message)

	raw := envelope(nil, errors.New("Error 1064: You have an error in your SQL syntax"))
	assert.Equal(t, int(errs.ServerError.Code()), raw.Code)
	assert.Equal(t, errs.ServerError.Msg(), raw.Message)
}
