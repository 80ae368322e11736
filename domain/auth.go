package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/openmarket/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// Login verifies a personal-sign signature over the signing message and
	// issues an access token for the recovered address
	Login(ctx ctx.Ctx, address Address, signature string) (string, error)
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
