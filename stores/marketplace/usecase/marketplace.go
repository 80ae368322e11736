package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/service/chain/contract"
	"github.com/openmarket/goapi/service/payout"
)

type MarketplaceUseCaseCfg struct {
	ListingRepo  marketplace.ListingRepo
	ProceedsRepo marketplace.ProceedsRepo
	ActivityRepo marketplace.ActivityRepo
	Erc721       contract.Erc721Contract
	Payout       payout.Client
}

type impl struct {
	listingRepo  marketplace.ListingRepo
	proceedsRepo marketplace.ProceedsRepo
	activityRepo marketplace.ActivityRepo
	erc721       contract.Erc721Contract
	payout       payout.Client

	// mutating operations take the write lock so checks, ledger writes and
	// the compensating rollbacks never interleave; reads take the read lock
	// so they never observe a half-applied operation
	mu sync.RWMutex
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		listingRepo:  cfg.ListingRepo,
		proceedsRepo: cfg.ProceedsRepo,
		activityRepo: cfg.ActivityRepo,
		erc721:       cfg.Erc721,
		payout:       cfg.Payout,
	}
}

func (im *impl) ListItem(ctx ctx.Ctx, caller domain.Address, id marketplace.ListingId, price decimal.Decimal) (*marketplace.Listing, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	caller = caller.ToLower()
	id = id.LowerCase()

	if !price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	cur, err := im.listingRepo.FindOne(ctx, id)
	if err != nil && err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	// re-listing by the current seller is a price update, anyone else
	// has to wait for the listing to clear
	if cur != nil && !cur.Seller.Equals(caller) {
		return nil, domain.ErrAlreadyListed
	}

	if err := im.checkOwnerAndApproval(ctx, caller, id); err != nil {
		return nil, err
	}

	now := time.Now()
	listing := &marketplace.Listing{
		ChainId:    id.ChainId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     caller,
		Price:      price.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cur != nil {
		listing.CreatedAt = cur.CreatedAt
	}

	if err := im.listingRepo.Upsert(ctx, listing); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("failed to listingRepo.Upsert")
		return nil, err
	}

	im.emitActivity(ctx, &marketplace.Activity{
		Type:       marketplace.ActivityTypeList,
		ChainId:    id.ChainId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     caller,
		Price:      price.String(),
	})

	return listing, nil
}

func (im *impl) BuyItem(ctx ctx.Ctx, buyer domain.Address, id marketplace.ListingId, paid decimal.Decimal) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	buyer = buyer.ToLower()
	id = id.LowerCase()

	listing, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return err
	}

	price, err := listing.PriceDecimal()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"price": listing.Price,
		}).Error("malformed listing price")
		return err
	}
	// overpayment is accepted and credited in full
	if paid.LessThan(price) {
		return domain.ErrPriceNotMet
	}

	// effects before the external transfer. the listing is cleared and the
	// seller credited first, then the registry call; on failure both are
	// rolled back by compensating writes
	if err := im.listingRepo.Remove(ctx, id); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Remove")
		return err
	}

	prevAmount, err := im.creditProceeds(ctx, id.ChainId, listing.Seller, paid)
	if err != nil {
		// listing removed but seller not credited, restore the listing
		im.restoreListing(ctx, listing)
		return err
	}

	if err := im.transferItem(ctx, listing, buyer); err != nil {
		im.restoreProceeds(ctx, id.ChainId, listing.Seller, prevAmount)
		im.restoreListing(ctx, listing)
		return domain.ErrTransferFailed
	}

	im.emitActivity(ctx, &marketplace.Activity{
		Type:       marketplace.ActivityTypeBuy,
		ChainId:    id.ChainId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     listing.Seller,
		Buyer:      buyer,
		Price:      listing.Price,
		Paid:       paid.String(),
	})

	return nil
}

func (im *impl) CancelListing(ctx ctx.Ctx, caller domain.Address, id marketplace.ListingId) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	caller = caller.ToLower()
	id = id.LowerCase()

	listing, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return err
	}

	if !listing.Seller.Equals(caller) {
		return domain.ErrNotOwner
	}

	if err := im.listingRepo.Remove(ctx, id); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Remove")
		return err
	}

	im.emitActivity(ctx, &marketplace.Activity{
		Type:       marketplace.ActivityTypeCancel,
		ChainId:    id.ChainId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     caller,
	})

	return nil
}

func (im *impl) UpdateListing(ctx ctx.Ctx, caller domain.Address, id marketplace.ListingId, newPrice decimal.Decimal) (*marketplace.Listing, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	caller = caller.ToLower()
	id = id.LowerCase()

	if !newPrice.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	listing, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}

	if !listing.Seller.Equals(caller) {
		return nil, domain.ErrNotOwner
	}

	now := time.Now()
	price := newPrice.String()
	patchable := marketplace.ListingPatchable{
		Price:     &price,
		UpdatedAt: &now,
	}
	if err := im.listingRepo.Patch(ctx, id, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.Patch")
		return nil, err
	}

	listing.Price = price
	listing.UpdatedAt = now

	// new terms reuse the listed notification
	im.emitActivity(ctx, &marketplace.Activity{
		Type:       marketplace.ActivityTypeList,
		ChainId:    id.ChainId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Seller:     caller,
		Price:      price,
	})

	return listing, nil
}

func (im *impl) WithdrawProceeds(ctx ctx.Ctx, caller domain.Address, chainId domain.ChainId) (decimal.Decimal, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	caller = caller.ToLower()

	proceeds, err := im.proceedsRepo.FindOne(ctx, marketplace.ProceedsId{ChainId: chainId, Address: caller})
	if err == domain.ErrNotFound {
		return decimal.Zero, domain.ErrNoProceeds
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"caller":  caller,
			"chainId": chainId,
		}).Error("failed to proceedsRepo.FindOne")
		return decimal.Zero, err
	}

	amount, err := proceeds.AmountDecimal()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"amount": proceeds.Amount,
		}).Error("malformed proceeds amount")
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrNoProceeds
	}

	// zero the balance before the outbound transfer, restore it if the
	// transfer fails
	if err := im.setProceeds(ctx, chainId, caller, decimal.Zero); err != nil {
		return decimal.Zero, err
	}

	if err := im.payout.Transfer(ctx, chainId, caller, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"to":     caller,
			"amount": amount,
		}).Error("failed to payout.Transfer")
		im.restoreProceeds(ctx, chainId, caller, amount)
		return decimal.Zero, domain.ErrTransferFailed
	}

	im.emitActivity(ctx, &marketplace.Activity{
		Type:    marketplace.ActivityTypeWithdraw,
		ChainId: chainId,
		Seller:  caller,
		Paid:    amount.String(),
	})

	return amount, nil
}

func (im *impl) GetListing(ctx ctx.Ctx, id marketplace.ListingId) (*marketplace.Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	listing, err := im.listingRepo.FindOne(ctx, id.LowerCase())
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotListed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	return listing, nil
}

func (im *impl) GetListings(ctx ctx.Ctx, opts ...marketplace.ListingFindAllOptionsFunc) ([]*marketplace.Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listingRepo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetProceeds(ctx ctx.Ctx, id marketplace.ProceedsId) (decimal.Decimal, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	proceeds, err := im.proceedsRepo.FindOne(ctx, id.LowerCase())
	if err == domain.ErrNotFound {
		// never accrued anything, balance is zero
		return decimal.Zero, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to proceedsRepo.FindOne")
		return decimal.Zero, err
	}
	return proceeds.AmountDecimal()
}

func (im *impl) GetActivities(ctx ctx.Ctx, opts ...marketplace.ActivityFindAllOptionsFunc) ([]*marketplace.Activity, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res, err := im.activityRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to activityRepo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) checkOwnerAndApproval(ctx ctx.Ctx, caller domain.Address, id marketplace.ListingId) error {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": id.TokenId,
		}).Error("failed to TokenId.ToBigInt")
		return domain.ErrBadParamInput
	}

	owner, err := im.erc721.OwnerOf(ctx, int32(id.ChainId), id.Collection.ToLowerStr(), tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to erc721.OwnerOf")
		return err
	}
	if !caller.Equals(domain.Address(owner)) {
		return domain.ErrNotOwner
	}

	operator, err := im.erc721.Operator(int32(id.ChainId))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": id.ChainId,
		}).Error("failed to erc721.Operator")
		return err
	}

	approved, err := im.erc721.GetApproved(ctx, int32(id.ChainId), id.Collection.ToLowerStr(), tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to erc721.GetApproved")
		return err
	}
	if strings.EqualFold(approved, operator) {
		return nil
	}

	// fall back to the collection-wide approval
	approvedForAll, err := im.erc721.IsApprovedForAll(ctx, int32(id.ChainId), id.Collection.ToLowerStr(), caller.ToLowerStr(), operator)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to erc721.IsApprovedForAll")
		return err
	}
	if !approvedForAll {
		return domain.ErrNotApproved
	}

	return nil
}

func (im *impl) transferItem(ctx ctx.Ctx, listing *marketplace.Listing, buyer domain.Address) error {
	tokenId, err := listing.TokenId.ToBigInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": listing.TokenId,
		}).Error("failed to TokenId.ToBigInt")
		return err
	}

	if err := im.erc721.TransferFrom(ctx, int32(listing.ChainId), listing.Collection.ToLowerStr(), listing.Seller.ToLowerStr(), buyer.ToLowerStr(), tokenId); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"buyer": buyer,
		}).Error("failed to erc721.TransferFrom")
		return err
	}

	return nil
}

// creditProceeds adds amount to the seller balance and returns the previous
// amount so a failed purchase can restore it
func (im *impl) creditProceeds(ctx ctx.Ctx, chainId domain.ChainId, seller domain.Address, amount decimal.Decimal) (decimal.Decimal, error) {
	prev := decimal.Zero
	cur, err := im.proceedsRepo.FindOne(ctx, marketplace.ProceedsId{ChainId: chainId, Address: seller})
	if err != nil && err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("failed to proceedsRepo.FindOne")
		return prev, err
	}
	if cur != nil {
		if prev, err = cur.AmountDecimal(); err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"amount": cur.Amount,
			}).Error("malformed proceeds amount")
			return decimal.Zero, err
		}
	}

	if err := im.setProceeds(ctx, chainId, seller, prev.Add(amount)); err != nil {
		return prev, err
	}
	return prev, nil
}

func (im *impl) setProceeds(ctx ctx.Ctx, chainId domain.ChainId, address domain.Address, amount decimal.Decimal) error {
	proceeds := &marketplace.Proceeds{
		ChainId:   chainId,
		Address:   address,
		Amount:    amount.String(),
		UpdatedAt: time.Now(),
	}
	if err := im.proceedsRepo.Upsert(ctx, proceeds); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"proceeds": proceeds,
		}).Error("failed to proceedsRepo.Upsert")
		return err
	}
	return nil
}

func (im *impl) restoreListing(ctx ctx.Ctx, listing *marketplace.Listing) {
	if err := im.listingRepo.Upsert(ctx, listing); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("failed to restore listing")
	}
}

func (im *impl) restoreProceeds(ctx ctx.Ctx, chainId domain.ChainId, address domain.Address, amount decimal.Decimal) {
	if err := im.setProceeds(ctx, chainId, address, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to restore proceeds")
	}
}

// emitActivity records the notification feed entry. The feed is advisory so
// a write failure only logs, it never fails the operation.
func (im *impl) emitActivity(ctx ctx.Ctx, activity *marketplace.Activity) {
	activity.Id = uuid.New().String()
	activity.Time = time.Now()
	if err := im.activityRepo.Insert(ctx, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": activity,
		}).Error("failed to activityRepo.Insert")
	}
}
