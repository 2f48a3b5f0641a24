package xrpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlexZinkM/rail-wallet/internal/apperr"
	"github.com/AlexZinkM/rail-wallet/internal/client"
	"github.com/AlexZinkM/rail-wallet/internal/mocks"
	"github.com/AlexZinkM/rail-wallet/internal/model"
	"github.com/AlexZinkM/rail-wallet/internal/rail"

	binarycodec "github.com/Peersyst/xrpl-go/binary-codec"
	txhash "github.com/Peersyst/xrpl-go/xrpl/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func payRequest() rail.ChainTransferRequest {
	return rail.ChainTransferRequest{
		Secret:         []byte(fixtureSeed),
		FromAddress:    fixtureAddress,
		ToAddress:      genesisAddress,
		Amount:         1_000_000,
		IdempotencyKey: "XRP-user-1",
	}
}

func expectAutofill(node *mocks.MockXRPLNode) {
	node.EXPECT().AccountInfo(gomock.Any(), fixtureAddress).
		Return(&client.AccountInfo{Balance: 50_000_000, Sequence: 5}, nil)
	node.EXPECT().Fee(gomock.Any()).Return(uint64(12), nil)
	node.EXPECT().LedgerCurrent(gomock.Any()).Return(uint32(80), nil)
}

func newTestPayer(t *testing.T) (*Payer, *mocks.MockXRPLNode) {
	node := mocks.NewMockXRPLNodeForTest(t)
	return NewPayer(node, WithConfirmation(50*time.Millisecond, 5*time.Millisecond)), node
}

func TestPay_Validated(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)

	var blob string
	node.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBlob string) (*client.SubmitResult, error) {
			blob = txBlob
			return &client.SubmitResult{EngineResult: "tesSUCCESS"}, nil
		})
	var polled []string
	node.EXPECT().Tx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h string) (*client.TxStatus, error) {
			polled = append(polled, h)
			if len(polled) == 1 {
				return nil, client.ErrTxNotFound
			}
			return &client.TxStatus{Validated: true, TransactionResult: "tesSUCCESS", LedgerIndex: 81}, nil
		}).Times(2)

	res, err := payer.Pay(context.Background(), payRequest())
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, res.Status)
	assert.Equal(t, "tesSUCCESS", res.RawStatus)

	// the polled id is the hash of the submitted blob
	want, err := txhash.SignTxBlob(blob)
	require.NoError(t, err)
	assert.Equal(t, want, res.TxHash)
	assert.Equal(t, []string{want, want}, polled)

	decoded, err := binarycodec.Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, fixtureAddress, decoded["Account"])
	assert.Equal(t, "1000000", decoded["Amount"])
	assert.Equal(t, "12", decoded["Fee"])
	assert.Equal(t, uint32(5), decoded["Sequence"])
	assert.Equal(t, uint32(100), decoded["LastLedgerSequence"])
}

func TestPay_ValidatedFailure(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)
	node.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&client.SubmitResult{EngineResult: "tecNO_DST_INSUF_XRP", Hash: "ABC"}, nil)
	node.EXPECT().Tx(gomock.Any(), "ABC").
		Return(&client.TxStatus{Validated: true, TransactionResult: "tecNO_DST_INSUF_XRP"}, nil)

	res, err := payer.Pay(context.Background(), payRequest())
	require.NoError(t, err)
	assert.Equal(t, model.TransferFailed, res.Status)
	assert.Equal(t, "tecNO_DST_INSUF_XRP", res.RawStatus)
}

func TestPay_PendingAfterTimeout(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)
	node.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&client.SubmitResult{EngineResult: "terQUEUED", Hash: "ABC"}, nil)
	node.EXPECT().Tx(gomock.Any(), "ABC").Return(&client.TxStatus{Validated: false}, nil).AnyTimes()

	res, err := payer.Pay(context.Background(), payRequest())
	require.NoError(t, err)
	assert.Equal(t, model.TransferPending, res.Status)
	assert.Equal(t, "ABC", res.TxHash)
}

func TestPay_MalformedIsDefinitive(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)
	node.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&client.SubmitResult{EngineResult: "temBAD_FEE", EngineResultMessage: "invalid fee"}, nil)

	_, err := payer.Pay(context.Background(), payRequest())
	require.Error(t, err)
	assert.True(t, rail.IsDefinitive(err))
}

func TestPay_SubmitTransportErrorIsAmbiguous(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)
	node.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := payer.Pay(context.Background(), payRequest())
	pe, ok := rail.AsProviderError(err)
	require.True(t, ok)
	assert.False(t, pe.Definitive)
}

func TestPay_UnfundedAccount(t *testing.T) {
	payer, node := newTestPayer(t)
	node.EXPECT().AccountInfo(gomock.Any(), fixtureAddress).Return(nil, client.ErrAccountNotFound)

	_, err := payer.Pay(context.Background(), payRequest())
	assert.True(t, rail.IsDefinitive(err))
}

func TestPay_InsufficientBalance(t *testing.T) {
	payer, node := newTestPayer(t)
	node.EXPECT().AccountInfo(gomock.Any(), fixtureAddress).
		Return(&client.AccountInfo{Balance: 1_000_000, Sequence: 5}, nil)
	node.EXPECT().Fee(gomock.Any()).Return(uint64(12), nil)
	node.EXPECT().LedgerCurrent(gomock.Any()).Return(uint32(80), nil)

	_, err := payer.Pay(context.Background(), payRequest())
	pe, ok := rail.AsProviderError(err)
	require.True(t, ok)
	assert.True(t, pe.Definitive)
	assert.Equal(t, "tecUNFUNDED_PAYMENT", pe.Code)
}

func TestPay_AmountAboveSupply(t *testing.T) {
	payer, _ := newTestPayer(t)
	req := payRequest()
	req.Amount = ^uint64(0) - 5

	// rejected before any node call
	_, err := payer.Pay(context.Background(), req)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestPay_BalanceCheckDoesNotWrap(t *testing.T) {
	payer, node := newTestPayer(t)
	expectAutofill(node)
	req := payRequest()
	req.Amount = MaxDrops

	_, err := payer.Pay(context.Background(), req)
	pe, ok := rail.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "tecUNFUNDED_PAYMENT", pe.Code)
}

func TestPay_SeedMustMatchSource(t *testing.T) {
	payer, _ := newTestPayer(t)
	req := payRequest()
	req.FromAddress = genesisAddress

	_, err := payer.Pay(context.Background(), req)
	assert.True(t, rail.IsDefinitive(err))
}
