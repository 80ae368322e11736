package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/delivery"
	"github.com/openmarket/goapi/domain"
)

type authHandler struct {
	auth       domain.AuthUsecase
	signingMsg string
}

func New(e *echo.Echo, auth domain.AuthUsecase, signingMsg string) {
	handler := &authHandler{
		auth:       auth,
		signingMsg: signingMsg,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsg", handler.getSigningMsg)
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address"`
		Signature string         `json:"signature"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if tkn, err := h.auth.Login(ctx, p.Address, p.Signature); err == domain.ErrInvalidAddress || err == domain.ErrInvalidSignature {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	} else if err != nil {
		ctx.WithField("err", err).Error("auth.Login failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

func (h *authHandler) getSigningMsg(c echo.Context) error {
	res := struct {
		Msg string `json:"msg"`
	}{
		Msg: h.signingMsg,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
