package payout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/domain"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		url:     cfg.Url,
		apiKey:  cfg.ApiKey,
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	url     string
	apiKey  string
	timeout time.Duration
}

func (c *client) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount decimal.Decimal) error {
	body, err := json.Marshal(transferReq{
		ChainId: int32(chainId),
		To:      to.ToLowerStr(),
		Amount:  amount.String(),
	})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	url := fmt.Sprintf("%s/v1/transfers", c.url)
	data, err := c.post(ctx, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return err
	}

	resp := transferResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	if resp.Status != "completed" {
		ctx.WithFields(log.Fields{
			"status": resp.Status,
			"txHash": resp.TxHash,
		}).Error("transfer not completed")
		return ErrRejected
	}
	return nil
}

func (c *client) post(ctx bCtx.Ctx, url string, body []byte) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if len(c.apiKey) > 0 {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
