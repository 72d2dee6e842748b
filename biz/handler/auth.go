package handler

import (
	"context"
	"net/http"

	"bankdemo/biz/config"
	"bankdemo/biz/middleware/jwt"
	"bankdemo/biz/middleware/session"
	"bankdemo/biz/model/dto"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/service/auth"
	"bankdemo/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Login 用户登录接口
//
//	@Tags			auth
//	@Summary		用户登录接口
//	@Description	Verifies email and password and opens a session. Both security modes answer a failed attempt with the same message.
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.LoginResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/api/v1/auth/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError, http.StatusBadRequest)
		return
	}

	authority := auth.NewDefault()
	identity, bizErr := authority.Authenticate(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	// a new login replaces whatever the cookie carried before
	if old := session.GetToken(c); old != "" {
		_ = authority.EndSession(ctx, old)
	}

	token, expiresAt, bizErr := authority.StartSession(ctx, identity)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	if err := session.SetToken(c, token); err != nil {
		hlog.CtxErrorf(ctx, "sess.Save err: %v", err)
		_ = authority.EndSession(ctx, token)
		resp.AbortWithErr(c, errs.ServerError, http.StatusInternalServerError)
		return
	}

	accessToken, expAt, err := jwt.GenerateToken(ctx, jwt.Payload{
		UserID: identity.ID,
		Email:  identity.Email,
	}, token, expiresAt)
	if err != nil {
		resp.FailResp(c, errs.ServerError)
		return
	}

	hlog.CtxInfof(ctx, "login success, user_id=%d", identity.ID)
	resp.SuccessResp(c, dto.LoginResp{
		AccessToken: accessToken,
		ExpiresAt:   expAt,
		Mode:        config.GetSecurityMode().String(),
		User:        identityToDTO(identity),
	})
}

// Logout 用户登出接口
//
//	@Tags			auth
//	@Summary		用户登出接口
//	@Description	Ends the session. Succeeds whether or not a session exists.
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.LogoutResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/api/v1/auth/logout [POST]
func Logout(ctx context.Context, c *app.RequestContext) {
	if token := session.GetToken(c); token != "" {
		if bizErr := auth.NewDefault().EndSession(ctx, token); bizErr != nil {
			hlog.CtxErrorf(ctx, "EndSession err: %v", bizErr)
		}
	}
	if err := session.Remove(c); err != nil {
		hlog.CtxErrorf(ctx, "RemoveSession err: %v", err)
	}
	hlog.CtxInfof(ctx, "Logout success")
	resp.SuccessResp(c, dto.LogoutResp{})
}
