package resp

import (
	"errors"
	"net/http"

	"bankdemo/biz/model/dto"
	"bankdemo/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

// envelope never carries the text of a non-business error: store and
// driver messages stay in the server log.
func envelope(data any, err error) *dto.CommonResp {
	if err == nil {
		return &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		}
	}

	var bizErr errs.Error
	if !errors.As(err, &bizErr) {
		bizErr = errs.ServerError
	}
	return &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	}
}

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, envelope(data, nil))
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	c.JSON(http.StatusOK, envelope(nil, bizErr))
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, envelope(nil, bizErr))
}
