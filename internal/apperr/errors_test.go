package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("send: %w", Wrap(CodeProvider, "provider unavailable", cause))

	assert.Equal(t, CodeProvider, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeProvider))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, CodeInternal, CodeOf(cause))
	assert.False(t, Is(nil, CodeInternal))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad amount"), http.StatusBadRequest},
		{WalletNotInitialized("wallet"), http.StatusBadRequest},
		{New(CodeUnauthorized, "no identity"), http.StatusUnauthorized},
		{New(CodeRateLimited, "slow down"), http.StatusTooManyRequests},
		{New(CodeKeyCustody, "corrupt"), http.StatusUnprocessableEntity},
		{New(CodeProvider, "down"), http.StatusBadGateway},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestPublicMessage_HidesInternalDetail(t *testing.T) {
	err := Internal(errors.New("pq: connection refused at 10.0.0.3"))
	assert.Equal(t, "internal error", PublicMessage(err))
	assert.Equal(t, "internal error", PublicMessage(errors.New("raw")))
	assert.Equal(t, "wallet not initialized", PublicMessage(WalletNotInitialized("wallet")))
}
