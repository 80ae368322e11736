package healthcheck

import (
	"github.com/openmarket/goapi/base/ctx"
)

// Usecase represents the healthcheck's usecases
type Usecase interface {
	Check(context ctx.Ctx) error
}

// Repo is repository layer of healthcheck
type Repo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}
