package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var sellPassesSolInstructionDiscriminator = instructionDiscriminator("sell_passes_sol")

const (
	SellPassesSolInstructionArgsSize = 8 // amount
)

type SellPassesSolInstructionArgs struct {
	Amount uint64
}

type SellPassesSolInstructionAccounts struct {
	Seller            ed25519.PublicKey
	PassesSupply      ed25519.PublicKey
	PassesBalance     ed25519.PublicKey
	Config            ed25519.PublicKey
	EscrowWallet      ed25519.PublicKey
	PassesOwner       ed25519.PublicKey
	ProtocolFeeWallet ed25519.PublicKey
}

func NewSellPassesSolInstruction(
	accounts *SellPassesSolInstructionAccounts,
	args *SellPassesSolInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+SellPassesSolInstructionArgsSize)

	putDiscriminator(data, sellPassesSolInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Seller, true),
		solana.NewAccountMeta(accounts.PassesSupply, false),
		solana.NewAccountMeta(accounts.PassesBalance, false),
		solana.NewReadonlyAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.EscrowWallet, false),
		solana.NewAccountMeta(accounts.PassesOwner, false),
		solana.NewAccountMeta(accounts.ProtocolFeeWallet, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}
