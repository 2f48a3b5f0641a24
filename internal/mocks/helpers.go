//go:generate mockgen -destination=xrpl_node.go -package=mocks -mock_names=Node=MockXRPLNode github.com/AlexZinkM/rail-wallet/xrpl Node
//go:generate mockgen -destination=solana_node.go -package=mocks -mock_names=Node=MockSolanaNode,BalanceReader=MockBalanceReader github.com/AlexZinkM/rail-wallet/solana Node,BalanceReader
//go:generate mockgen -destination=eth_node.go -package=mocks -mock_names=BalanceReader=MockEthBalanceReader github.com/AlexZinkM/rail-wallet/ethereum BalanceReader
//go:generate mockgen -destination=rail.go -package=mocks github.com/AlexZinkM/rail-wallet/internal/rail Stablecoin,CardIssuer,ChainPayer
//go:generate mockgen -destination=store.go -package=mocks github.com/AlexZinkM/rail-wallet/internal/store Store

package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockXRPLNodeForTest creates a new mock xrpl Node for testing
func NewMockXRPLNodeForTest(t *testing.T) *MockXRPLNode {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockXRPLNode(ctrl)
}

// NewMockSolanaNodeForTest creates a new mock solana Node for testing
func NewMockSolanaNodeForTest(t *testing.T) *MockSolanaNode {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSolanaNode(ctrl)
}

// NewMockBalanceReaderForTest creates a new mock BalanceReader for testing
func NewMockBalanceReaderForTest(t *testing.T) *MockBalanceReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBalanceReader(ctrl)
}

// NewMockEthBalanceReaderForTest creates a new mock ethereum BalanceReader for testing
func NewMockEthBalanceReaderForTest(t *testing.T) *MockEthBalanceReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEthBalanceReader(ctrl)
}

// NewMockStablecoinForTest creates a new mock Stablecoin for testing
func NewMockStablecoinForTest(t *testing.T) *MockStablecoin {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStablecoin(ctrl)
}

// NewMockCardIssuerForTest creates a new mock CardIssuer for testing
func NewMockCardIssuerForTest(t *testing.T) *MockCardIssuer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCardIssuer(ctrl)
}

// NewMockChainPayerForTest creates a new mock ChainPayer for testing
func NewMockChainPayerForTest(t *testing.T) *MockChainPayer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainPayer(ctrl)
}

// NewMockStoreForTest creates a new mock Store for testing
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}
