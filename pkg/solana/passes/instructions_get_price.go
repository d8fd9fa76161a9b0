package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var (
	getPriceInstructionDiscriminator    = instructionDiscriminator("get_price")
	getPriceSolInstructionDiscriminator = instructionDiscriminator("get_price_sol")
)

const (
	GetPriceInstructionArgsSize = (8 + // supply
		8) // amount
)

type GetPriceInstructionArgs struct {
	Supply uint64
	Amount uint64
}

type GetPriceInstructionAccounts struct {
	Invoker ed25519.PublicKey
}

func NewGetPriceInstruction(
	accounts *GetPriceInstructionAccounts,
	args *GetPriceInstructionArgs,
) solana.Instruction {
	return newGetPriceInstruction(getPriceInstructionDiscriminator, accounts, args)
}

func NewGetPriceSolInstruction(
	accounts *GetPriceInstructionAccounts,
	args *GetPriceInstructionArgs,
) solana.Instruction {
	return newGetPriceInstruction(getPriceSolInstructionDiscriminator, accounts, args)
}

func newGetPriceInstruction(
	discriminator []byte,
	accounts *GetPriceInstructionAccounts,
	args *GetPriceInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+GetPriceInstructionArgsSize)

	putDiscriminator(data, discriminator, &offset)
	putUint64(data, args.Supply, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Invoker, true),
	)
}
