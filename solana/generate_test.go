package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	w := NewWallet()
	require.Len(t, w.PrivateKey, 64)
	assert.True(t, IsValidAddress(w.Address))

	address, err := AddressFromPrivateKey(w.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, w.Address, address)

	assert.NotEqual(t, w.Address, NewWallet().Address)
}

func TestAddressFromPrivateKey_RejectsShortKey(t *testing.T) {
	_, err := AddressFromPrivateKey(make([]byte, 32))
	assert.Error(t, err)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("11111111111111111111111111111111"))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("0x52908400098527886E0F7030069857D2E4169EE7"))
	assert.False(t, IsValidAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))
}
