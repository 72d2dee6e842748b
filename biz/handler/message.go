package handler

import (
	"context"
	"net/http"
	"strconv"

	"bankdemo/biz/middleware/authgate"
	"bankdemo/biz/model/convert"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/dto"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/service/message"
	"bankdemo/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ListMessages 留言列表
//
//	@Tags			message
//	@Summary		留言列表
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.ListMessagesResp}
//	@Router			/api/v1/messages [GET]
func ListMessages(ctx context.Context, c *app.RequestContext) {
	identity := authgate.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	list, bizErr := message.NewDefault().List(ctx, identity.ID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.ListMessagesResp{Messages: convert.MessagesToDTO(list)})
}

// PostMessage 发布留言
//
//	@Tags			message
//	@Summary		发布留言
//	@Accept			json
//	@Produce		json
//	@Param			req				body		dto.PostMessageReq	true	"message body"
//	@Param			Authorization	header		string				true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.PostMessageResp}
//	@Router			/api/v1/messages [POST]
func PostMessage(ctx context.Context, c *app.RequestContext) {
	var req dto.PostMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	identity := authgate.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	m, bizErr := message.NewDefault().Post(ctx, identity, req.Content)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, dto.PostMessageResp{Message: convert.MessagesToDTO([]*domain.Message{m})[0]})
}

// DeleteMessage 删除留言
//
//	@Tags			message
//	@Summary		删除留言
//	@Produce		json
//	@Param			id				path		int		true	"message id"
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp
//	@Router			/api/v1/messages/{id} [DELETE]
func DeleteMessage(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	identity := authgate.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	if bizErr := message.NewDefault().Delete(ctx, identity.ID, id); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	resp.SuccessResp(c, nil)
}
