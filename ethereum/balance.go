package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/rail-wallet/internal/common"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// BalanceReader is the part of ethclient.Client used for balances.
type BalanceReader interface {
	BalanceAt(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error)
}

// GetBalance returns the ETH balance of address at the latest block as an
// 18-decimal string.
func GetBalance(ctx context.Context, reader BalanceReader, address string) (string, error) {
	if !IsValidAddress(address) {
		return "", fmt.Errorf("invalid Ethereum address %q", address)
	}
	wei, err := reader.BalanceAt(ctx, ethcommon.HexToAddress(address), nil)
	if err != nil {
		return "", fmt.Errorf("failed to get ETH balance: %w", err)
	}
	return common.FormatWei(wei), nil
}
