package payout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/openmarket/goapi/base/ctx"
)

func TestTransfer(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("POST", r.Method)
		req.Equal("/v1/transfers", r.URL.Path)
		req.Equal("test-key", r.Header.Get("X-Api-Key"))

		body := transferReq{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal(int32(1), body.ChainId)
		req.Equal("42", body.Amount)

		json.NewEncoder(w).Encode(transferResp{Status: "completed", TxHash: "0xabc"})
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Url:        srv.URL,
		ApiKey:     "test-key",
		Timeout:    5 * time.Second,
	})

	err := c.Transfer(bCtx.Background(), 1, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369", decimal.NewFromInt(42))
	req.NoError(err)
}

func TestTransferRejected(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transferResp{Status: "rejected"})
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Url:        srv.URL,
		Timeout:    5 * time.Second,
	})

	err := c.Transfer(bCtx.Background(), 1, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369", decimal.NewFromInt(1))
	req.ErrorIs(err, ErrRejected)
}

func TestTransferStatusCodeNotOk(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Url:        srv.URL,
		Timeout:    5 * time.Second,
	})

	err := c.Transfer(bCtx.Background(), 1, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369", decimal.NewFromInt(1))
	req.ErrorIs(err, ErrStatusCodeNotOk)
}
