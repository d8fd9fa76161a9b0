package passes

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAccount_RoundTrip(t *testing.T) {
	admin, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	mint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	escrowToken, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	escrowSol, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	feeWallet, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	expected := &ConfigAccount{
		Admin:                  admin,
		PaymentMint:            mint,
		EscrowTokenWallet:      escrowToken,
		EscrowSolWallet:        escrowSol,
		ProtocolFeePct:         20_000_000,
		OwnerFeePct:            20_000_000,
		ProtocolFeeTokenWallet: feeWallet,
		Bump:                   254,
	}

	data := expected.Marshal()
	require.Len(t, data, ConfigAccountSize)

	var actual ConfigAccount
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, expected.String(), actual.String())
}

func TestAccounts_InvalidData(t *testing.T) {
	var config ConfigAccount
	assert.Equal(t, ErrInvalidAccountData, config.Unmarshal(make([]byte, ConfigAccountSize-1)))
	assert.Equal(t, ErrInvalidAccountData, config.Unmarshal(make([]byte, ConfigAccountSize)))

	var supply PassesSupplyAccount
	assert.Equal(t, ErrInvalidAccountData, supply.Unmarshal(make([]byte, PassesSupplyAccountSize-1)))

	// A supply image must not deserialize as a balance
	supply.Amount = 42
	var balance PassesBalanceAccount
	assert.Equal(t, ErrInvalidAccountData, balance.Unmarshal(supply.Marshal()))
}
