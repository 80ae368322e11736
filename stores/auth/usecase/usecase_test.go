package usecase_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/stores/auth/usecase"
)

const signingMsg = "Welcome to OpenMarket. Sign this message to log in."

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)
	tkn, err := u.SignToken(ctx, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0xce4468e7ce84aceb74363f4ea64e5a038176f369", ads)
}

func TestParseTokenWithWrongSecret(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)
	tkn, err := u.SignToken(ctx, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369")
	require.NoError(t, err)

	other := usecase.New("other-secret", signingMsg)
	_, err = other.ParseToken(ctx, tkn)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	sig, err := crypto.Sign(accounts.TextHash([]byte(signingMsg)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	tkn, err := u.Login(ctx, domain.Address(address), hexutil.Encode(sig))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
}

func TestLoginWithWrongSigner(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(signingMsg)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	// claimed address does not match the key that signed
	_, err = u.Login(ctx, "0xCE4468e7Ce84acEb74363f4EA64e5A038176F369", hexutil.Encode(sig))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestLoginWithInvalidAddress(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)

	_, err := u.Login(ctx, "not-an-address", "0x00")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}
