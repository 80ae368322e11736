package usecase

import (
	"github.com/openmarket/goapi/base/ctx"
	hcdomain "github.com/openmarket/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.Repo
}

func New(repo hcdomain.Repo) hcdomain.Usecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingDB(context); err != nil {
		return err
	}
	return im.repo.PingCache(context)
}
