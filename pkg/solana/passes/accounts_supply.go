package passes

import (
	"bytes"
	"fmt"
)

const (
	PassesSupplyAccountSize = (8 + // discriminator
		8 + // amount
		1) // bump
)

var PassesSupplyAccountDiscriminator = accountDiscriminator("PassesSupply")

// PassesSupplyAccount tracks the total passes issued for an owner's
// stream.
type PassesSupplyAccount struct {
	Amount uint64
	Bump   uint8
}

func (obj *PassesSupplyAccount) Marshal() []byte {
	data := make([]byte, PassesSupplyAccountSize)

	var offset int

	putDiscriminator(data, PassesSupplyAccountDiscriminator, &offset)
	putUint64(data, obj.Amount, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *PassesSupplyAccount) Unmarshal(data []byte) error {
	if len(data) < PassesSupplyAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, PassesSupplyAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint64(data, &obj.Amount, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *PassesSupplyAccount) String() string {
	return fmt.Sprintf("PassesSupply{amount=%d,bump=%d}", obj.Amount, obj.Bump)
}
