package passes

import (
	"crypto/ed25519"

	"github.com/sol-pie/passes/pkg/solana"
)

var issuePassesInstructionDiscriminator = instructionDiscriminator("issue_passes")

const (
	IssuePassesInstructionArgsSize = 8 // amount
)

type IssuePassesInstructionArgs struct {
	Amount uint64
}

type IssuePassesInstructionAccounts struct {
	Owner          ed25519.PublicKey
	PassesSupply   ed25519.PublicKey
	PassesBalance  ed25519.PublicKey
	Config         ed25519.PublicKey
	OwnerFeeWallet ed25519.PublicKey
	PaymentMint    ed25519.PublicKey
}

func NewIssuePassesInstruction(
	accounts *IssuePassesInstructionAccounts,
	args *IssuePassesInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+IssuePassesInstructionArgsSize)

	putDiscriminator(data, issuePassesInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ADDRESS,
		data,
		solana.NewAccountMeta(accounts.Owner, true),
		solana.NewAccountMeta(accounts.PassesSupply, false),
		solana.NewAccountMeta(accounts.PassesBalance, false),
		solana.NewReadonlyAccountMeta(accounts.Config, false),
		solana.NewAccountMeta(accounts.OwnerFeeWallet, false),
		solana.NewReadonlyAccountMeta(accounts.PaymentMint, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(ASSOCIATED_TOKEN_PROGRAM_ID, false),
	)
}
