package passes

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	ConfigAccountSize = (8 + // discriminator
		32 + // admin
		32 + // payment_mint
		32 + // escrow_token_wallet
		32 + // escrow_sol_wallet
		8 + // protocol_fee_pct
		8 + // owner_fee_pct
		32 + // protocol_fee_token_wallet
		1) // bump
)

var ConfigAccountDiscriminator = accountDiscriminator("Config")

// ConfigAccount is the protocol-wide singleton holding the admin
// authority, fee percentages and custody account identities.
type ConfigAccount struct {
	Admin                  ed25519.PublicKey
	PaymentMint            ed25519.PublicKey
	EscrowTokenWallet      ed25519.PublicKey
	EscrowSolWallet        ed25519.PublicKey
	ProtocolFeePct         uint64
	OwnerFeePct            uint64
	ProtocolFeeTokenWallet ed25519.PublicKey
	Bump                   uint8
}

func (obj *ConfigAccount) Marshal() []byte {
	data := make([]byte, ConfigAccountSize)

	var offset int

	putDiscriminator(data, ConfigAccountDiscriminator, &offset)
	putKey(data, obj.Admin, &offset)
	putKey(data, obj.PaymentMint, &offset)
	putKey(data, obj.EscrowTokenWallet, &offset)
	putKey(data, obj.EscrowSolWallet, &offset)
	putUint64(data, obj.ProtocolFeePct, &offset)
	putUint64(data, obj.OwnerFeePct, &offset)
	putKey(data, obj.ProtocolFeeTokenWallet, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *ConfigAccount) Unmarshal(data []byte) error {
	if len(data) < ConfigAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ConfigAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Admin, &offset)
	getKey(data, &obj.PaymentMint, &offset)
	getKey(data, &obj.EscrowTokenWallet, &offset)
	getKey(data, &obj.EscrowSolWallet, &offset)
	getUint64(data, &obj.ProtocolFeePct, &offset)
	getUint64(data, &obj.OwnerFeePct, &offset)
	getKey(data, &obj.ProtocolFeeTokenWallet, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *ConfigAccount) String() string {
	return fmt.Sprintf(
		"Config{admin=%s,payment_mint=%s,escrow_token_wallet=%s,escrow_sol_wallet=%s,protocol_fee_pct=%d,owner_fee_pct=%d,protocol_fee_token_wallet=%s,bump=%d}",
		base58.Encode(obj.Admin),
		base58.Encode(obj.PaymentMint),
		base58.Encode(obj.EscrowTokenWallet),
		base58.Encode(obj.EscrowSolWallet),
		obj.ProtocolFeePct,
		obj.OwnerFeePct,
		base58.Encode(obj.ProtocolFeeTokenWallet),
		obj.Bump,
	)
}
