package marketplace

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

type ProceedsId struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Address domain.Address `json:"address" bson:"address"`
}

func (id ProceedsId) LowerCase() ProceedsId {
	id.Address = id.Address.ToLower()
	return id
}

// Proceeds is a seller's accrued, unwithdrawn sale revenue. Created on
// first accrual, zeroed by withdrawal, never deleted.
type Proceeds struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Address   domain.Address `json:"address" bson:"address"`
	Amount    string         `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (p *Proceeds) ToId() ProceedsId {
	return ProceedsId{
		ChainId: p.ChainId,
		Address: p.Address,
	}
}

func (p *Proceeds) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Amount)
}

// ProceedsRepo is the persistence layer of the proceeds ledger.
// Balance arithmetic happens in the usecase under its write lock, so the
// repo only needs whole-document reads and writes.
type ProceedsRepo interface {
	FindOne(ctx.Ctx, ProceedsId) (*Proceeds, error)
	Upsert(ctx.Ctx, *Proceeds) error
}
