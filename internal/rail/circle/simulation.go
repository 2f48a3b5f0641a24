package circle

import (
	"github.com/AlexZinkM/rail-wallet/internal/common"
	"github.com/AlexZinkM/rail-wallet/internal/rail"
)

const simSeed = "1000.00"

// NewSimulation returns the simulated USDC rail. Wallets start at 1000.00.
func NewSimulation(ledger *rail.Ledger, chain string) *rail.SimStablecoin {
	return rail.NewSimStablecoin(rail.SimConfig{
		Provider:     providerName,
		Chain:        chain,
		WalletPrefix: "sim-wallet-",
		TxPrefix:     "0xsim",
		Seed:         simSeed,
		Decimals:     common.USDCDecimals,
	}, ledger)
}
