package handler

import (
	"context"
	"net/http"
	"strings"

	"bankdemo/biz/config"
	"bankdemo/biz/middleware/authgate"
	"bankdemo/biz/model/convert"
	"bankdemo/biz/model/domain"
	"bankdemo/biz/model/dto"
	"bankdemo/biz/model/errs"
	"bankdemo/biz/service/ledger"
	"bankdemo/biz/service/transfer"
	"bankdemo/biz/util/money"
	"bankdemo/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Dashboard 账户概览
//
//	@Tags			bank
//	@Summary		账户概览
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.DashboardResp}
//	@Router			/api/v1/bank/dashboard [GET]
func Dashboard(ctx context.Context, c *app.RequestContext) {
	identity := authgate.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	data := dto.DashboardResp{
		User:    identityToDTO(identity),
		Balance: money.Cents(0).String(),
		Mode:    config.GetSecurityMode().String(),
	}
	acc, bizErr := ledger.NewDefaultAccounts().FindByUserID(ctx, identity.ID)
	switch {
	case bizErr == nil:
		data.AccountID = acc.ID
		data.Balance = acc.Balance.String()
	case errs.ErrorEqual(bizErr, errs.AccountNotFound):
		// users without an account still get a page
	default:
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, data)
}

// Transactions 交易记录查询
//
//	@Tags			bank
//	@Summary		交易记录查询
//	@Produce		json
//	@Param			search			query		string	false	"matched against beneficiary and note"
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.TransactionsResp}
//	@Router			/api/v1/bank/transactions [GET]
func Transactions(ctx context.Context, c *app.RequestContext) {
	var req dto.TransactionsReq
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

	search := strings.TrimSpace(req.Search)
	data := dto.TransactionsResp{Search: search, Transactions: []dto.Transaction{}}

	acc, bizErr := ledger.NewDefaultAccounts().FindByUserID(ctx, identity.ID)
	if errs.ErrorEqual(bizErr, errs.AccountNotFound) {
		resp.SuccessResp(c, data)
		return
	}
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	list, bizErr := ledger.NewDefaultSearcher().Search(ctx, acc.ID, search)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	data.Transactions = convert.TransactionsToDTO(list)
	resp.SuccessResp(c, data)
}

// Transfer 转账
//
//	@Tags			bank
//	@Summary		转账
//	@Description	Debits the caller's account and records the transfer. Amounts are decimal strings with at most two fraction digits.
//	@Accept			json
//	@Produce		json
//	@Param			req				body		dto.TransferReq	true	"transfer request body"
//	@Param			Authorization	header		string			true	"jwt"
//	@Success		200				{object}	dto.CommonResp{data=dto.TransferResp}
//	@Router			/api/v1/bank/transfer [POST]
func Transfer(ctx context.Context, c *app.RequestContext) {
	var req dto.TransferReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.InvalidTransfer, http.StatusBadRequest)
		return
	}

	identity := authgate.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		hlog.CtxInfof(ctx, "parse amount %q err: %v", req.Amount, err)
		resp.FailResp(c, errs.InvalidTransfer)
		return
	}

	accounts := ledger.NewDefaultAccounts()
	acc, bizErr := accounts.FindByUserID(ctx, identity.ID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	tx, bizErr := transfer.NewDefault().Transfer(ctx, transfer.Command{
		AccountID:   acc.ID,
		Beneficiary: req.Beneficiary,
		Amount:      amount,
		Note:        req.Note,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	data := dto.TransferResp{
		Transaction: convert.TransactionToDTO(tx),
		Balance:     (acc.Balance - tx.Amount).String(),
	}
	if after, bizErr := accounts.FindByUserID(ctx, identity.ID); bizErr == nil {
		data.Balance = after.Balance.String()
	}
	resp.SuccessResp(c, data)
}

func identityToDTO(identity *domain.Identity) dto.Identity {
	return dto.Identity{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  string(identity.Role),
	}
}
