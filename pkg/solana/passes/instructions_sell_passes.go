package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var sellPassesInstructionDiscriminator = instructionDiscriminator("sell_passes")

const (
	SellPassesInstructionArgsSize = 8 // amount
)

type SellPassesInstructionArgs struct {
	Amount uint64
}

type SellPassesInstructionAccounts struct {
	Seller            ed25519.PublicKey
	PassesSupply      ed25519.PublicKey
	PassesBalance     ed25519.PublicKey
	Config            ed25519.PublicKey
	OwnerFeeWallet    ed25519.PublicKey
	EscrowWallet      ed25519.PublicKey
	PassesOwner       ed25519.PublicKey
	PaymentMint       ed25519.PublicKey
	ProtocolFeeWallet ed25519.PublicKey
	SellerWallet      ed25519.PublicKey
}

func NewSellPassesInstruction(
	accounts *SellPassesInstructionAccounts,
	args *SellPassesInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+SellPassesInstructionArgsSize)

	putDiscriminator(data, sellPassesInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Seller, true),
		solana.NewAccountMeta(accounts.PassesSupply, false),
		solana.NewAccountMeta(accounts.PassesBalance, false),
		solana.NewReadonlyAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.OwnerFeeWallet, false),
		solana.NewAccountMeta(accounts.EscrowWallet, false),
		solana.NewReadonlyAccountMeta(accounts.PassesOwner, false),
		solana.NewReadonlyAccountMeta(accounts.PaymentMint, false),
		solana.NewAccountMeta(accounts.ProtocolFeeWallet, false),
		solana.NewAccountMeta(accounts.SellerWallet, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(ASSOCIATED_TOKEN_PROGRAM_ID, false),
	)
}
