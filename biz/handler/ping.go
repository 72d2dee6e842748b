package handler

import (
	"context"

	"bankdemo/biz/config"
	"bankdemo/biz/model/dto"
	"bankdemo/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
)

func Ping(ctx context.Context, c *app.RequestContext) {
	resp.SuccessResp(c, "pong")
}

// Mode 当前安全模式
//
//	@Tags			system
//	@Summary		当前安全模式
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.ModeResp}
//	@Router			/api/v1/mode [GET]
func Mode(ctx context.Context, c *app.RequestContext) {
	resp.SuccessResp(c, dto.ModeResp{Mode: config.GetSecurityMode().String()})
}
