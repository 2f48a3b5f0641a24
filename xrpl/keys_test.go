package xrpl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed, key and address triples published with the xrpl.js wallet fixtures.
const (
	fixtureSeed    = "sEd7io6yt5dFJrcePgRiFVHvmkJhJD1"
	fixtureAddress = "rn5M6BQCmQAzBxms9A84qEpx1Fdn9y7jdD"
	fixturePubKey  = "EDC9DA1AA7513D891B58B3C9BEBAE3EB12620AFF4ABBA806B23BB3FA62109CE87F"
	genesisAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

func TestWalletFromSeed_KnownVectors(t *testing.T) {
	tests := []struct {
		seed, pubKey, address string
	}{
		{fixtureSeed, fixturePubKey, fixtureAddress},
		{"sEdTLE1G6QVc8znymeRZD3s5oajQcY5", "ED676AD70576E126B46F6AF52D908FAB8F352F3A0BA05F48613DF017F6B83205B6", "r9D79PwpT5Z5xztgiQQgmxcYbF249PefnW"},
		{"sEd71D6u2LkA36TMfJ5rApVsgZXQE9F", "ED0A8A14F3226B2109047662605898F96F61764A9269B7823453A04A7B4F524C0E", "rs7cvHcsEF54DEs2y24Tpph3Xf71xUUrFu"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			w, err := WalletFromSeed(tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.address, w.Address)
			assert.Equal(t, tt.pubKey, w.PublicKeyHex())
			assert.Equal(t, tt.seed, w.Seed)
		})
	}
}

func TestWallet_Wipe(t *testing.T) {
	w, err := WalletFromSeed(fixtureSeed)
	require.NoError(t, err)

	w.Wipe()
	assert.Empty(t, w.Seed)
	assert.Empty(t, w.keys.PrivateKey)
	assert.Equal(t, fixtureAddress, w.Address)
}

func TestNewWallet(t *testing.T) {
	a, err := NewWallet()
	require.NoError(t, err)
	b, err := NewWallet()
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)
	assert.True(t, IsValidAddress(a.Address))
	assert.True(t, strings.HasPrefix(a.Seed, "sEd"))
	assert.True(t, strings.HasPrefix(a.PublicKeyHex(), "ED"))

	again, err := WalletFromSeed(a.Seed)
	require.NoError(t, err)
	assert.Equal(t, a.Address, again.Address)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress(genesisAddress))
	assert.True(t, IsValidAddress(fixtureAddress))

	// last character changed breaks the checksum
	assert.False(t, IsValidAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTj"))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("not-an-address"))
	// a seed is not an address
	assert.False(t, IsValidAddress(fixtureSeed))
	// solana base58 alphabet differs
	assert.False(t, IsValidAddress("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"))
}

func TestWalletFromSeed_Errors(t *testing.T) {
	for _, seed := range []string{
		fixtureAddress,
		"sEd7io6yt5dFJrcePgRiFVHvmkJhJD2",
		"",
		"sEd",
	} {
		_, err := WalletFromSeed(seed)
		assert.ErrorIs(t, err, ErrInvalidSeed, seed)
	}
}
