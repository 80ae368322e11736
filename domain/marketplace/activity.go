package marketplace

import (
	"time"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

type ActivityType string

const (
	ActivityTypeList     ActivityType = "list"
	ActivityTypeBuy      ActivityType = "buy"
	ActivityTypeCancel   ActivityType = "cancel"
	ActivityTypeWithdraw ActivityType = "withdraw"
)

// Activity is a persisted marketplace notification (ItemListed, ItemBought,
// ItemCanceled and withdrawal records), queryable as a feed
type Activity struct {
	Id         string         `json:"id" bson:"activityId"`
	Type       ActivityType   `json:"type" bson:"type"`
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenID"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	Buyer      domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Price      string         `json:"price,omitempty" bson:"price,omitempty"`
	Paid       string         `json:"paid,omitempty" bson:"paid,omitempty"`
	Time       time.Time      `json:"time" bson:"time"`
}

type ActivityFindAllOptions struct {
	ChainId    *domain.ChainId
	Collection *domain.Address
	TokenId    *domain.TokenId
	Account    *domain.Address
	Type       *ActivityType
	Offset     *int32
	Limit      *int32
}

type ActivityFindAllOptionsFunc func(*ActivityFindAllOptions) error

func GetActivityFindAllOptions(opts ...ActivityFindAllOptionsFunc) (ActivityFindAllOptions, error) {
	res := ActivityFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ActivityWithChainId(chainId domain.ChainId) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func ActivityWithToken(collection domain.Address, tokenId domain.TokenId) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

func ActivityWithAccount(account domain.Address) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Account = account.ToLowerPtr()
		return nil
	}
}

func ActivityWithType(typ ActivityType) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

func ActivityWithPagination(offset, limit int32) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ActivityRepo interface {
	Insert(ctx.Ctx, *Activity) error
	FindAll(ctx.Ctx, ...ActivityFindAllOptionsFunc) ([]*Activity, error)
}
