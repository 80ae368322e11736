package marketplace

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

// ListingId identifies a listing by asset key
type ListingId struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenID"`
}

func (id ListingId) LowerCase() ListingId {
	id.Collection = id.Collection.ToLower()
	return id
}

// Listing is an active offer to sell one token at a fixed price.
// A listing exists only while the seller keeps ownership and transfer
// approval at the registry; price is a positive decimal string.
type Listing struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenID"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	Price      string         `json:"price" bson:"price"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() ListingId {
	return ListingId{
		ChainId:    l.ChainId,
		Collection: l.Collection,
		TokenId:    l.TokenId,
	}
}

func (l *Listing) LowerCase() {
	l.Collection = l.Collection.ToLower()
	l.Seller = l.Seller.ToLower()
}

func (l *Listing) PriceDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(l.Price)
}

type ListingPatchable struct {
	Price     *string    `json:"price" bson:"price,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type ListingFindAllOptions struct {
	ChainId    *domain.ChainId
	Collection *domain.Address
	Seller     *domain.Address
	Offset     *int32
	Limit      *int32
	Sort       *string
}

type ListingFindAllOptionsFunc func(*ListingFindAllOptions) error

func GetListingFindAllOptions(opts ...ListingFindAllOptionsFunc) (ListingFindAllOptions, error) {
	res := ListingFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ListingWithChainId(chainId domain.ChainId) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func ListingWithCollection(collection domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

func ListingWithSeller(seller domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func ListingWithPagination(offset, limit int32) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func ListingWithSort(sort string) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// ListingRepo is the persistence layer of the listing ledger.
// The usecase is the sole writer.
type ListingRepo interface {
	FindOne(ctx.Ctx, ListingId) (*Listing, error)
	FindAll(ctx.Ctx, ...ListingFindAllOptionsFunc) ([]*Listing, error)
	Upsert(ctx.Ctx, *Listing) error
	Patch(ctx.Ctx, ListingId, ListingPatchable) error
	Remove(ctx.Ctx, ListingId) error
}
