package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/AlexZinkM/rail-wallet/internal/mocks"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestGetBalance(t *testing.T) {
	reader := mocks.NewMockEthBalanceReaderForTest(t)
	wei, _ := new(big.Int).SetString("1500000000000000001", 10)
	reader.EXPECT().BalanceAt(gomock.Any(), ethcommon.HexToAddress(testAddress), gomock.Nil()).Return(wei, nil)

	bal, err := GetBalance(context.Background(), reader, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "1.500000000000000001", bal)
}

func TestGetBalance_Errors(t *testing.T) {
	reader := mocks.NewMockEthBalanceReaderForTest(t)
	reader.EXPECT().BalanceAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))

	_, err := GetBalance(context.Background(), reader, testAddress)
	assert.ErrorContains(t, err, "rpc down")

	_, err = GetBalance(context.Background(), reader, "not-an-address")
	assert.Error(t, err)
}
