package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var (
	setProtocolFeePctInstructionDiscriminator = instructionDiscriminator("set_protocol_fee_pct")
	setOwnerFeePctInstructionDiscriminator    = instructionDiscriminator("set_owner_fee_pct")
)

const (
	SetFeePctInstructionArgsSize = 8 // fee_pct
)

type SetFeePctInstructionArgs struct {
	FeePct uint64
}

type SetFeePctInstructionAccounts struct {
	Admin  ed25519.PublicKey
	Config ed25519.PublicKey
}

func NewSetProtocolFeePctInstruction(
	accounts *SetFeePctInstructionAccounts,
	args *SetFeePctInstructionArgs,
) solana.Instruction {
	return newSetFeePctInstruction(setProtocolFeePctInstructionDiscriminator, accounts, args)
}

func NewSetOwnerFeePctInstruction(
	accounts *SetFeePctInstructionAccounts,
	args *SetFeePctInstructionArgs,
) solana.Instruction {
	return newSetFeePctInstruction(setOwnerFeePctInstructionDiscriminator, accounts, args)
}

func newSetFeePctInstruction(
	discriminator []byte,
	accounts *SetFeePctInstructionAccounts,
	args *SetFeePctInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+SetFeePctInstructionArgsSize)

	putDiscriminator(data, discriminator, &offset)
	putUint64(data, args.FeePct, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Admin, true),
		solana.NewAccountMeta(accounts.Config, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}
