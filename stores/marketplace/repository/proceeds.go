package repository

import (
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/service/query"
)

type proceedsRepoImpl struct {
	q query.Mongo
}

func NewProceedsRepo(q query.Mongo) marketplace.ProceedsRepo {
	return &proceedsRepoImpl{q}
}

func (im *proceedsRepoImpl) FindOne(ctx ctx.Ctx, id marketplace.ProceedsId) (*marketplace.Proceeds, error) {
	qry, err := mongoclient.MakeBsonM(id.LowerCase())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := &marketplace.Proceeds{}
	if err := im.q.FindOne(ctx, domain.TableProceeds, qry, res); err == query.ErrNotFound {
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

func (im *proceedsRepoImpl) Upsert(ctx ctx.Ctx, proceeds *marketplace.Proceeds) error {
	proceeds.Address = proceeds.Address.ToLower()

	qry, err := mongoclient.MakeBsonM(proceeds.ToId())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"proceeds": proceeds,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Upsert(ctx, domain.TableProceeds, qry, proceeds); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Upsert")
		return err
	}

	return nil
}
