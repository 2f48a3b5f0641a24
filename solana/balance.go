package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/rail-wallet/internal/common"
)

// BalanceReader reads native balances in lamports.
type BalanceReader interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
}

// GetBalance returns the SOL balance of address as a 9-decimal string.
func GetBalance(ctx context.Context, reader BalanceReader, address string) (string, error) {
	lamports, err := reader.GetBalance(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return common.LamportsToSOL(lamports), nil
}
