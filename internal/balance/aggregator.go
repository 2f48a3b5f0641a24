// Package balance reads the native balances of an account's chain addresses.
package balance

import (
	"context"
	"sync"

	"github.com/AlexZinkM/rail-wallet/ethereum"
	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/logger"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/solana"
	"github.com/AlexZinkM/rail-wallet/xrpl"

	"go.uber.org/zap"
)

const (
	zero        = "0"
	unavailable = "balance unavailable"
)

// Aggregator queries every chain of an account.
type Aggregator struct {
	eth ethereum.BalanceReader
	sol solana.BalanceReader
	xrp xrpl.BalanceReader
	log *zap.Logger
}

func NewAggregator(eth ethereum.BalanceReader, sol solana.BalanceReader, xrp xrpl.BalanceReader) *Aggregator {
	return &Aggregator{eth: eth, sol: sol, xrp: xrp, log: logger.Component("balance")}
}

type chainQuery struct {
	chain string
	read  func(context.Context) (string, error)
	out   *string
	err   error
}

// GetBalances queries the chains concurrently. A failed query does not fail
// the call: that chain reads "0" and the failure is reported in Errors.
func (a *Aggregator) GetBalances(ctx context.Context, acct *model.Account) (*model.Balances, error) {
	if acct == nil || acct.SolanaAddress == "" || acct.XRPLAddress == "" {
		return nil, apperr.WalletNotInitialized("wallet")
	}

	out := &model.Balances{}
	queries := []*chainQuery{
		{chain: "ETH", out: &out.ETH, read: func(ctx context.Context) (string, error) {
			return ethereum.GetBalance(ctx, a.eth, acct.EthereumAddress)
		}},
		{chain: "SOL", out: &out.SOL, read: func(ctx context.Context) (string, error) {
			return solana.GetBalance(ctx, a.sol, acct.SolanaAddress)
		}},
		{chain: "XRP", out: &out.XRP, read: func(ctx context.Context) (string, error) {
			return xrpl.GetBalance(ctx, a.xrp, acct.XRPLAddress)
		}},
	}

	var wg sync.WaitGroup
	for _, q := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*q.out, q.err = q.read(ctx)
		}()
	}
	wg.Wait()

	for _, q := range queries {
		if q.err == nil {
			continue
		}
		*q.out = zero
		if out.Errors == nil {
			out.Errors = map[string]string{}
		}
		out.Errors[q.chain] = unavailable
		a.log.Warn("balance unavailable",
			zap.String("chain", q.chain),
			zap.String("owner_id", acct.OwnerID),
			zap.Error(q.err))
	}
	return out, nil
}
