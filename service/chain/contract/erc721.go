package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/openmarket/goapi/base/abi"
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/service/chain"
)

// Erc721Contract is the asset-ownership registry: the source of truth for
// custody and transfer approval of each token
type Erc721Contract interface {
	OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error)
	GetApproved(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error)
	IsApprovedForAll(ctx bCtx.Ctx, chainId int32, addr string, owner, operator string) (bool, error)
	// TransferFrom moves the token via the operator account. The registry
	// enforces approval; failures surface as errors after the ledger has
	// already mutated, so callers must compensate.
	TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from, to string, tokenId *big.Int) error
	Operator(chainId int32) (string, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(common.Address).String(), nil
}

func (e *Erc721) GetApproved(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error) {
	method := "getApproved"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(common.Address).String(), nil
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId int32, addr string, owner, operator string) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(owner), common.HexToAddress(operator))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from, to string, tokenId *big.Int) error {
	method := "transferFrom"
	_, err := e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(from), common.HexToAddress(to), tokenId)
	return err
}

func (e *Erc721) Operator(chainId int32) (string, error) {
	operator, err := e.chainService.Operator(chainId)
	if err != nil {
		return "", err
	}
	return operator.String(), nil
}
