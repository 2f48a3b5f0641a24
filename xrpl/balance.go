package xrpl

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/rail-wallet/internal/common"
)

// BalanceReader reads native balances in drops.
type BalanceReader interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
}

// GetBalance returns the XRP balance of address as a 6-decimal string.
func GetBalance(ctx context.Context, reader BalanceReader, address string) (string, error) {
	drops, err := reader.GetBalance(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get XRP balance: %w", err)
	}
	return common.DropsToXRP(drops), nil
}
