package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var (
	configPrefix  = []byte("config")
	escrowPrefix  = []byte("escrow")
	supplyPrefix  = []byte("supply")
	balancePrefix = []byte("balance")
)

// GetConfigAddress derives the singleton config account.
func GetConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		configPrefix,
	)
}

type GetEscrowTokenWalletAddressArgs struct {
	PaymentMint ed25519.PublicKey
}

// GetEscrowTokenWalletAddress derives the shared escrow vault for the
// payment mint rail.
func GetEscrowTokenWalletAddress(args *GetEscrowTokenWalletAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		escrowPrefix,
		args.PaymentMint,
	)
}

// GetEscrowSolWalletAddress derives the shared escrow vault for the
// native SOL rail.
func GetEscrowSolWalletAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		escrowPrefix,
	)
}

type GetPassesSupplyAddressArgs struct {
	Owner ed25519.PublicKey
}

// GetPassesSupplyAddress derives the per-owner passes supply account.
func GetPassesSupplyAddress(args *GetPassesSupplyAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		supplyPrefix,
		args.Owner,
	)
}

type GetPassesBalanceAddressArgs struct {
	Owner  ed25519.PublicKey
	Holder ed25519.PublicKey
}

// GetPassesBalanceAddress derives the per-(owner, holder) passes balance
// account.
func GetPassesBalanceAddress(args *GetPassesBalanceAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		balancePrefix,
		args.Owner,
		args.Holder,
	)
}
