package unlock

import (
	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
)

// SigningMsgTemplate binds an unlock signature to one content id. %s is the
// listing slug.
const SigningMsgTemplate = "Unlock content for link: %s"

// DeploymentCfg describes one paywall contract deployment. It is injected
// from config so redeployments are a config change.
type DeploymentCfg struct {
	ChainId         domain.ChainId
	ContractAddress domain.Address
	// StablecoinAddress is the accepted token contract; StablecoinDecimals
	// its smallest-unit exponent (6 for USDC).
	StablecoinAddress  domain.Address
	StablecoinDecimals int32
	NativeDecimals     int32
}

type UnlockParams struct {
	ContentId       string         `json:"contentId" validate:"required"`
	TransactionHash domain.TxHash  `json:"transactionHash" validate:"required"`
	WalletAddress   domain.Address `json:"walletAddress" validate:"required"`
	Signature       string         `json:"signature" validate:"required"`
}

type UnlockResult struct {
	TargetUrl   string             `json:"targetUrl"`
	ContentType domain.ContentType `json:"contentType"`
}

type Usecase interface {
	Unlock(c ctx.Ctx, params UnlockParams) (*UnlockResult, error)
}
