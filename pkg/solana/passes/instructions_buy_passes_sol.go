package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var buyPassesSolInstructionDiscriminator = instructionDiscriminator("buy_passes_sol")

const (
	BuyPassesSolInstructionArgsSize = 8 // amount
)

type BuyPassesSolInstructionArgs struct {
	Amount uint64
}

type BuyPassesSolInstructionAccounts struct {
	Buyer             ed25519.PublicKey
	PassesSupply      ed25519.PublicKey
	PassesBalance     ed25519.PublicKey
	Config            ed25519.PublicKey
	EscrowWallet      ed25519.PublicKey
	PassesOwner       ed25519.PublicKey
	ProtocolFeeWallet ed25519.PublicKey
}

func NewBuyPassesSolInstruction(
	accounts *BuyPassesSolInstructionAccounts,
	args *BuyPassesSolInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+BuyPassesSolInstructionArgsSize)

	putDiscriminator(data, buyPassesSolInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Buyer, true),
		solana.NewAccountMeta(accounts.PassesSupply, false),
		solana.NewAccountMeta(accounts.PassesBalance, false),
		solana.NewReadonlyAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.EscrowWallet, false),
		solana.NewAccountMeta(accounts.PassesOwner, false),
		solana.NewAccountMeta(accounts.ProtocolFeeWallet, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}
