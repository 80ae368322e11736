package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/delivery"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New wires the listing ledger onto the router. Mutating routes go through
// authMiddleware so the caller identity comes from the access token, never
// from the payload.
func New(e *echo.Echo, uc marketplace.UseCase, authMiddleware ...echo.MiddlewareFunc) {
	h := &handler{
		marketplace: uc,
	}

	g := e.Group("/marketplace")
	g.GET("/listing", h.getListing)
	// browse endpoints tolerate slightly stale reads, single lookups do not
	g.GET("/listings", h.getListings, middleware.CacheHttp(10*time.Second))
	g.GET("/proceeds", h.getProceeds)
	g.GET("/activities", h.getActivities, middleware.CacheHttp(10*time.Second))

	authed := e.Group("/marketplace", authMiddleware...)
	authed.POST("/listing", h.listItem)
	authed.PUT("/listing", h.updateListing)
	authed.DELETE("/listing", h.cancelListing)
	authed.POST("/buy", h.buyItem)
	authed.POST("/withdraw", h.withdrawProceeds)
}

type listingParams struct {
	ChainId    domain.ChainId `json:"chainId" query:"chainId" validate:"required"`
	Collection domain.Address `json:"collection" query:"collection" validate:"required"`
	TokenId    domain.TokenId `json:"tokenId" query:"tokenId" validate:"required"`
}

func (p *listingParams) toId() marketplace.ListingId {
	return marketplace.ListingId{
		ChainId:    p.ChainId,
		Collection: p.Collection,
		TokenId:    p.TokenId,
	}
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.marketplace.GetListing(ctx, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId    *domain.ChainId `query:"chainId"`
		Collection *domain.Address `query:"collection"`
		Seller     *domain.Address `query:"seller"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []marketplace.ListingFindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, marketplace.ListingWithChainId(*p.ChainId))
	}
	if p.Collection != nil {
		opts = append(opts, marketplace.ListingWithCollection(*p.Collection))
	}
	if p.Seller != nil {
		opts = append(opts, marketplace.ListingWithSeller(*p.Seller))
	}
	if p.Limit > 0 {
		opts = append(opts, marketplace.ListingWithPagination(p.Offset, p.Limit))
	}

	if res, err := h.marketplace.GetListings(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getProceeds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId" validate:"required"`
		Address domain.Address `query:"address" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := marketplace.ProceedsId{ChainId: p.ChainId, Address: p.Address}
	if res, err := h.marketplace.GetProceeds(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId    *domain.ChainId           `query:"chainId"`
		Collection *domain.Address           `query:"collection"`
		TokenId    *domain.TokenId           `query:"tokenId"`
		Account    *domain.Address           `query:"account"`
		Type       *marketplace.ActivityType `query:"type"`
		Offset     int32                     `query:"offset"`
		Limit      int32                     `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []marketplace.ActivityFindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, marketplace.ActivityWithChainId(*p.ChainId))
	}
	if p.Collection != nil && p.TokenId != nil {
		opts = append(opts, marketplace.ActivityWithToken(*p.Collection, *p.TokenId))
	}
	if p.Account != nil {
		opts = append(opts, marketplace.ActivityWithAccount(*p.Account))
	}
	if p.Type != nil {
		opts = append(opts, marketplace.ActivityWithType(*p.Type))
	}
	if p.Limit > 0 {
		opts = append(opts, marketplace.ActivityWithPagination(p.Offset, p.Limit))
	}

	if res, err := h.marketplace.GetActivities(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) listItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		listingParams
		Price string `json:"price" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	if res, err := h.marketplace.ListItem(ctx, address, p.toId(), price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) updateListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		listingParams
		Price string `json:"price" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	if res, err := h.marketplace.UpdateListing(ctx, address, p.toId(), price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &listingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.CancelListing(ctx, address, p.toId()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "")
}

func (h *handler) buyItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		listingParams
		Paid string `json:"paid" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	paid, err := decimal.NewFromString(p.Paid)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	if err := h.marketplace.BuyItem(ctx, address, p.toId(), paid); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "")
}

func (h *handler) withdrawProceeds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		ChainId domain.ChainId `json:"chainId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if amount, err := h.marketplace.WithdrawProceeds(ctx, address, p.ChainId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, amount)
	}
}
