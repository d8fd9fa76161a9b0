package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var setProtocolFeeDstInstructionDiscriminator = instructionDiscriminator("set_protocol_fee_dst")

type SetProtocolFeeDstInstructionAccounts struct {
	Admin                  ed25519.PublicKey
	Config                 ed25519.PublicKey
	ProtocolFeeTokenWallet ed25519.PublicKey
}

func NewSetProtocolFeeDstInstruction(
	accounts *SetProtocolFeeDstInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 8)

	putDiscriminator(data, setProtocolFeeDstInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Admin, true),
		solana.NewAccountMeta(accounts.Config, false),
		solana.NewReadonlyAccountMeta(accounts.ProtocolFeeTokenWallet, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}
