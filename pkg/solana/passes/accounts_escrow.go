package passes

import (
	"bytes"
	"fmt"
)

const (
	EscrowSolAccountSize = (8 + // discriminator
		1) // bump
)

var EscrowSolAccountDiscriminator = accountDiscriminator("EscrowSOL")

// EscrowSolAccount is the shared native-rail vault. Its lamport balance
// backs outstanding passes bought with SOL.
type EscrowSolAccount struct {
	Bump uint8
}

func (obj *EscrowSolAccount) Marshal() []byte {
	data := make([]byte, EscrowSolAccountSize)

	var offset int

	putDiscriminator(data, EscrowSolAccountDiscriminator, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *EscrowSolAccount) Unmarshal(data []byte) error {
	if len(data) < EscrowSolAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, EscrowSolAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *EscrowSolAccount) String() string {
	return fmt.Sprintf("EscrowSOL{bump=%d}", obj.Bump)
}
