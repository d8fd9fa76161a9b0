package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var buyPassesInstructionDiscriminator = instructionDiscriminator("buy_passes")

const (
	BuyPassesInstructionArgsSize = 8 // amount
)

type BuyPassesInstructionArgs struct {
	Amount uint64
}

type BuyPassesInstructionAccounts struct {
	Buyer             ed25519.PublicKey
	PassesSupply      ed25519.PublicKey
	PassesBalance     ed25519.PublicKey
	Config            ed25519.PublicKey
	OwnerFeeWallet    ed25519.PublicKey
	EscrowWallet      ed25519.PublicKey
	PassesOwner       ed25519.PublicKey
	PaymentMint       ed25519.PublicKey
	ProtocolFeeWallet ed25519.PublicKey
	BuyerWallet       ed25519.PublicKey
}

func NewBuyPassesInstruction(
	accounts *BuyPassesInstructionAccounts,
	args *BuyPassesInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+BuyPassesInstructionArgsSize)

	putDiscriminator(data, buyPassesInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Buyer, true),
		solana.NewAccountMeta(accounts.PassesSupply, false),
		solana.NewAccountMeta(accounts.PassesBalance, false),
		solana.NewReadonlyAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.OwnerFeeWallet, false),
		solana.NewAccountMeta(accounts.EscrowWallet, false),
		solana.NewReadonlyAccountMeta(accounts.PassesOwner, false),
		solana.NewReadonlyAccountMeta(accounts.PaymentMint, false),
		solana.NewAccountMeta(accounts.ProtocolFeeWallet, false),
		solana.NewAccountMeta(accounts.BuyerWallet, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
	)
}
