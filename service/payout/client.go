package payout

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrRejected        = errors.New("payout rejected")
)

// Client talks to the treasury service that actually moves funds when a
// seller withdraws accumulated proceeds
type Client interface {
	Transfer(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount decimal.Decimal) error
}

type ClientCfg struct {
	HttpClient http.Client
	Url        string
	ApiKey     string
	Timeout    time.Duration
}

type transferReq struct {
	ChainId int32  `json:"chainId"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
}

type transferResp struct {
	Status string `json:"status"`
	TxHash string `json:"txHash"`
}
