package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/justunlock/goapi/base/ctx"
)

// LoginMsgTemplate is the message a wallet signs to open a session. %s is
// the wallet address.
const LoginMsgTemplate = "JustUnlock login: %s"

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies the wallet signature over the login message and
	// issues a session token for the address.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
