package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var initInstructionDiscriminator = instructionDiscriminator("init")

const (
	InitInstructionArgsSize = (8 + // protocol_fee_pct
		8) // owner_fee_pct
)

type InitInstructionArgs struct {
	ProtocolFeePct uint64
	OwnerFeePct    uint64
}

type InitInstructionAccounts struct {
	Admin             ed25519.PublicKey
	Config            ed25519.PublicKey
	EscrowTokenWallet ed25519.PublicKey
	EscrowSolWallet   ed25519.PublicKey
	ProtocolFeeWallet ed25519.PublicKey
	PaymentMint       ed25519.PublicKey
}

func NewInitInstruction(
	accounts *InitInstructionAccounts,
	args *InitInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+InitInstructionArgsSize)

	putDiscriminator(data, initInstructionDiscriminator, &offset)
	putUint64(data, args.ProtocolFeePct, &offset)
	putUint64(data, args.OwnerFeePct, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Admin, true),
		solana.NewAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.EscrowTokenWallet, false),
		solana.NewAccountMeta(accounts.EscrowSolWallet, false),
		solana.NewAccountMeta(accounts.ProtocolFeeWallet, false),
		solana.NewReadonlyAccountMeta(accounts.PaymentMint, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(ASSOCIATED_TOKEN_PROGRAM_ID, false),
	)
}
