package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var PaywallABI abi.ABI

var paywallABI = `[{"type":"event","anonymous":false,"name":"Paid","inputs":[{"type":"address","name":"payer","indexed":true},{"type":"address","name":"receiver","indexed":true},{"type":"string","name":"linkId","indexed":true},{"type":"uint256","name":"amount"},{"type":"address","name":"token"}]}]`

var ErrNotPaidLog = errors.New("not a Paid event log")

func init() {
	_abi, err := abi.JSON(strings.NewReader(paywallABI))
	if err != nil {
		panic("Failed to parse paywall abi")
	}
	PaywallABI = _abi
}

// PaidLog is the decoded payment event. LinkIdHash is keccak256 of the link
// slug because indexed strings are stored as their hash.
type PaidLog struct {
	Payer      common.Address // indexed
	Receiver   common.Address // indexed
	LinkIdHash common.Hash    // indexed
	Amount     *big.Int
	Token      common.Address
}

func ToPaidLog(log *types.Log) (*PaidLog, error) {
	if len(log.Topics) != 4 || log.Topics[0] != PaywallABI.Events["Paid"].ID {
		return nil, ErrNotPaidLog
	}
	var paid PaidLog
	if err := PaywallABI.UnpackIntoInterface(&paid, "Paid", log.Data); err != nil {
		return nil, err
	}
	paid.Payer = common.BytesToAddress(log.Topics[1].Bytes())
	paid.Receiver = common.BytesToAddress(log.Topics[2].Bytes())
	paid.LinkIdHash = log.Topics[3]
	return &paid, nil
}

// HashLinkId computes the on-chain digest of a link slug.
func HashLinkId(id string) common.Hash {
	return crypto.Keccak256Hash([]byte(id))
}
