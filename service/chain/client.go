package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNoOperatorKey    = errors.New("no operator key for chain")
	ErrTxReverted       = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKeys holds hex private keys of the marketplace operator, the
	// account that must be approved at the registry and signs transferFrom
	OperatorKeys map[int32]string
}

type Client interface {
	// Call performs a read-only contract call
	Call(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact sends a signed state-changing call from the operator account
	// and waits until it is mined. A mined-but-reverted transaction is
	// returned as ErrTxReverted.
	Transact(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) (*types.Receipt, error)
	// Operator returns the operator address for the chain
	Operator(int32) (common.Address, error)
}

type clientImpl struct {
	clients   map[int32]*ethclient.Client
	operators map[int32]*ecdsa.PrivateKey
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	operators := make(map[int32]*ecdsa.PrivateKey)
	for chainId, hexkey := range cfg.OperatorKeys {
		key, err := crypto.HexToECDSA(hexkey)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
			}).Error("invalid operator key")
			return nil, err
		}
		operators[chainId] = key
	}

	return &clientImpl{
		clients:   clients,
		operators: operators,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	key, ok := c.operators[chainId]
	if !ok {
		return nil, ErrNoOperatorKey
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		// estimation already simulates the call, so a transfer the registry
		// would reject fails here
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return nil, err
	}

	tx := types.NewTransaction(nonce, addr, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signed.Hash().Hex(),
		}).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("txHash", signed.Hash().Hex()).Error("transaction reverted")
		return receipt, ErrTxReverted
	}
	return receipt, nil
}

func (c *clientImpl) Operator(chainId int32) (common.Address, error) {
	key, ok := c.operators[chainId]
	if !ok {
		return common.Address{}, ErrNoOperatorKey
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}
