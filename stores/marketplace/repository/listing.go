package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) marketplace.ListingRepo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...marketplace.ListingFindAllOptionsFunc) (bson.M, error) {
	options, err := marketplace.GetListingFindAllOptions(opts...)
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

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id marketplace.ListingId) (*marketplace.Listing, error) {
	qry, err := mongoclient.MakeBsonM(id.LowerCase())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := &marketplace.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...marketplace.ListingFindAllOptionsFunc) ([]*marketplace.Listing, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, err := marketplace.GetListingFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	sort := "_id"

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*marketplace.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, int(offset), int(limit), sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) Upsert(ctx ctx.Ctx, listing *marketplace.Listing) error {
	listing.LowerCase()

	qry, err := mongoclient.MakeBsonM(listing.ToId())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Upsert(ctx, domain.TableListings, qry, listing); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Upsert")
		return err
	}

	return nil
}

func (im *listingRepoImpl) Patch(ctx ctx.Ctx, id marketplace.ListingId, patchable marketplace.ListingPatchable) error {
	qry, err := mongoclient.MakeBsonM(id.LowerCase())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableListings, qry, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"query":     qry,
			"patchable": patchable,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *listingRepoImpl) Remove(ctx ctx.Ctx, id marketplace.ListingId) error {
	qry, err := mongoclient.MakeBsonM(id.LowerCase())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Remove(ctx, domain.TableListings, qry); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}
