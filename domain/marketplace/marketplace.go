package marketplace

import (
	"github.com/shopspring/decimal"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

// UseCase is the listing/escrow ledger.
//
// State machine per (chainId, collection, tokenId):
//
//	UNLISTED -> LISTED   ListItem
//	LISTED   -> LISTED   UpdateListing, or ListItem by the current seller
//	LISTED   -> UNLISTED BuyItem, CancelListing
//
// Any call from the wrong state fails with ErrNotListed/ErrAlreadyListed.
// Mutating operations are serialized by the implementation and follow
// checks-effects-interactions ordering: ledger state is mutated before any
// registry or payout call, and rolled back by compensating actions if that
// call fails.
type UseCase interface {
	ListItem(ctx ctx.Ctx, caller domain.Address, id ListingId, price decimal.Decimal) (*Listing, error)
	BuyItem(ctx ctx.Ctx, buyer domain.Address, id ListingId, paid decimal.Decimal) error
	CancelListing(ctx ctx.Ctx, caller domain.Address, id ListingId) error
	UpdateListing(ctx ctx.Ctx, caller domain.Address, id ListingId, newPrice decimal.Decimal) (*Listing, error)
	WithdrawProceeds(ctx ctx.Ctx, caller domain.Address, chainId domain.ChainId) (decimal.Decimal, error)

	GetListing(ctx ctx.Ctx, id ListingId) (*Listing, error)
	GetListings(ctx ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*Listing, error)
	GetProceeds(ctx ctx.Ctx, id ProceedsId) (decimal.Decimal, error)
	GetActivities(ctx ctx.Ctx, opts ...ActivityFindAllOptionsFunc) ([]*Activity, error)
}
