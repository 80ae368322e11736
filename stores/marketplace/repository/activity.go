package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/service/query"
)

type activityRepoImpl struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) marketplace.ActivityRepo {
	return &activityRepoImpl{q}
}

func (im *activityRepoImpl) makeQuery(opts ...marketplace.ActivityFindAllOptionsFunc) (bson.M, error) {
	options, err := marketplace.GetActivityFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.Collection != nil {
		query["collection"] = *options.Collection
	}

	if options.TokenId != nil {
		query["tokenID"] = *options.TokenId
	}

	if options.Account != nil {
		// an account shows up either side of a sale
		query["$or"] = bson.A{
			bson.M{"seller": *options.Account},
			bson.M{"buyer": *options.Account},
		}
	}

	if options.Type != nil {
		query["type"] = *options.Type
	}

	return query, nil
}

func (im *activityRepoImpl) Insert(ctx ctx.Ctx, activity *marketplace.Activity) error {
	activity.Collection = activity.Collection.ToLower()
	activity.Seller = activity.Seller.ToLower()
	activity.Buyer = activity.Buyer.ToLower()

	if err := im.q.Insert(ctx, domain.TableActivities, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": activity,
		}).Error("failed to q.Insert")
		return err
	}

	return nil
}

func (im *activityRepoImpl) FindAll(ctx ctx.Ctx, opts ...marketplace.ActivityFindAllOptionsFunc) ([]*marketplace.Activity, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, err := marketplace.GetActivityFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*marketplace.Activity{}
	if err := im.q.Search(ctx, domain.TableActivities, int(offset), int(limit), "-time", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
