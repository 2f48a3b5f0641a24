package balance

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/mocks"
	"github.com/AlexZinkM/rail-wallet/internal/model"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var account = &model.Account{
	OwnerID:         "user-1",
	EthereumAddress: "0x52908400098527886E0F7030069857D2E4169EE7",
	SolanaAddress:   "11111111111111111111111111111111",
	XRPLAddress:     "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
}

type readers struct {
	eth *mocks.MockEthBalanceReader
	sol *mocks.MockBalanceReader
	xrp *mocks.MockBalanceReader
}

func newReaders(t *testing.T) readers {
	return readers{
		eth: mocks.NewMockEthBalanceReaderForTest(t),
		sol: mocks.NewMockBalanceReaderForTest(t),
		xrp: mocks.NewMockBalanceReaderForTest(t),
	}
}

func (r readers) aggregator() *Aggregator {
	return NewAggregator(r.eth, r.sol, r.xrp)
}

func TestGetBalances(t *testing.T) {
	r := newReaders(t)
	r.eth.EXPECT().BalanceAt(gomock.Any(), ethcommon.HexToAddress(account.EthereumAddress), gomock.Nil()).
		Return(big.NewInt(250_000_000_000_000_000), nil)
	r.sol.EXPECT().GetBalance(gomock.Any(), account.SolanaAddress).Return(uint64(24981836), nil)
	r.xrp.EXPECT().GetBalance(gomock.Any(), account.XRPLAddress).Return(uint64(25000001), nil)

	got, err := r.aggregator().GetBalances(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "0.250000000000000000", got.ETH)
	assert.Equal(t, "0.024981836", got.SOL)
	assert.Equal(t, "25.000001", got.XRP)
	assert.Empty(t, got.Errors)
}

func TestGetBalances_PartialFailure(t *testing.T) {
	r := newReaders(t)
	r.eth.EXPECT().BalanceAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(0), nil)
	r.sol.EXPECT().GetBalance(gomock.Any(), account.SolanaAddress).Return(uint64(0), errors.New("rpc down"))
	r.xrp.EXPECT().GetBalance(gomock.Any(), account.XRPLAddress).Return(uint64(1_500000), nil)

	got, err := r.aggregator().GetBalances(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "0.000000000000000000", got.ETH)
	assert.Equal(t, "0", got.SOL)
	assert.Equal(t, "1.500000", got.XRP)
	assert.Contains(t, got.Errors, "SOL")
	assert.NotContains(t, got.Errors, "XRP")
	assert.NotContains(t, got.Errors, "ETH")
}

func TestGetBalances_AllFail(t *testing.T) {
	r := newReaders(t)
	r.eth.EXPECT().BalanceAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))
	r.sol.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(0), errors.New("rpc down"))
	r.xrp.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(0), context.DeadlineExceeded)

	got, err := r.aggregator().GetBalances(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "0", got.ETH)
	assert.Equal(t, "0", got.SOL)
	assert.Equal(t, "0", got.XRP)
	assert.Len(t, got.Errors, 3)
}

func TestGetBalances_AccountWithoutEthereumAddress(t *testing.T) {
	r := newReaders(t)
	r.sol.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	r.xrp.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(uint64(1), nil)

	legacy := *account
	legacy.EthereumAddress = ""
	got, err := r.aggregator().GetBalances(context.Background(), &legacy)
	require.NoError(t, err)
	assert.Equal(t, "0", got.ETH)
	assert.Equal(t, map[string]string{"ETH": unavailable}, got.Errors)
}

func TestGetBalances_RunsConcurrently(t *testing.T) {
	r := newReaders(t)

	// every reader waits for all three to start; a sequential join would time out
	var started sync.WaitGroup
	started.Add(3)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()
	wait := func() error {
		started.Done()
		select {
		case <-allStarted:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("not concurrent")
		}
	}

	r.eth.EXPECT().BalanceAt(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ethcommon.Address, *big.Int) (*big.Int, error) {
			return big.NewInt(1), wait()
		})
	r.sol.EXPECT().GetBalance(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (uint64, error) {
		return 1, wait()
	})
	r.xrp.EXPECT().GetBalance(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (uint64, error) {
		return 1, wait()
	})

	got, err := r.aggregator().GetBalances(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, got.Errors)
}

func TestGetBalances_NotInitialized(t *testing.T) {
	r := newReaders(t)

	_, err := r.aggregator().GetBalances(context.Background(), &model.Account{SolanaAddress: "x"})
	assert.True(t, apperr.Is(err, apperr.CodeWalletNotInitialized))

	_, err = r.aggregator().GetBalances(context.Background(), nil)
	assert.True(t, apperr.Is(err, apperr.CodeWalletNotInitialized))
}
