package passes

import (
	"bytes"
	"fmt"
)

const (
	PassesBalanceAccountSize = (8 + // discriminator
		8 + // amount
		1) // bump
)

var PassesBalanceAccountDiscriminator = accountDiscriminator("PassesBalance")

// PassesBalanceAccount tracks the passes a holder owns of an owner's
// stream.
type PassesBalanceAccount struct {
	Amount uint64
	Bump   uint8
}

func (obj *PassesBalanceAccount) Marshal() []byte {
	data := make([]byte, PassesBalanceAccountSize)

	var offset int

	putDiscriminator(data, PassesBalanceAccountDiscriminator, &offset)
	putUint64(data, obj.Amount, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *PassesBalanceAccount) Unmarshal(data []byte) error {
	if len(data) < PassesBalanceAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, PassesBalanceAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint64(data, &obj.Amount, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *PassesBalanceAccount) String() string {
	return fmt.Sprintf("PassesBalance{amount=%d,bump=%d}", obj.Amount, obj.Bump)
}
