package chain

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/justunlock/goapi/base/ctx"
	bEthereum "github.com/justunlock/goapi/base/ethereum"
	"github.com/justunlock/goapi/base/log"
	"github.com/justunlock/goapi/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const maxInflightRpcCalls = 16

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

// Receipt is the finalized view of a transaction the unlock flow needs:
// whether it succeeded and what it emitted. The emitting contract is
// checked per log, so the transaction destination is not carried.
type Receipt struct {
	Success bool
	Logs    []*types.Log
}

// Client fetches transaction receipts. A transaction the provider has not
// indexed yet maps to domain.ErrNotFound; the caller decides retry policy.
type Client interface {
	TransactionReceipt(c bCtx.Ctx, chainId domain.ChainId, hash domain.TxHash) (*Receipt, error)
}

type clientImpl struct {
	clients map[domain.ChainId]*bEthereum.ThrottledClient
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]*bEthereum.ThrottledClient)
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
		clients[chainId] = bEthereum.NewThrottledClient(client, maxInflightRpcCalls)
	}
	return &clientImpl{clients: clients}, anyerr
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, chainId domain.ChainId, hash domain.TxHash) (*Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	h := common.HexToHash(string(hash))
	receipt, err := client.TransactionReceipt(ctx, h)
	if err == ethereum.NotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": hash,
		}).Error("client.TransactionReceipt failed")
		return nil, xerrors.Errorf("fetch receipt: %w", err)
	}

	return &Receipt{
		Success: receipt.Status == types.ReceiptStatusSuccessful,
		Logs:    receipt.Logs,
	}, nil
}
