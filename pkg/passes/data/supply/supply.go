package supply

import (
	"time"

	"github.com/pkg/errors"
)

// Record tracks the total number of passes issued for an owner.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Owner  string
	Amount uint64

	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("supply address is required")
	}

	if len(r.Owner) == 0 {
		return errors.New("owner address is required")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id:            r.Id,
		Address:       r.Address,
		Bump:          r.Bump,
		Owner:         r.Owner,
		Amount:        r.Amount,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id
	dst.Address = r.Address
	dst.Bump = r.Bump
	dst.Owner = r.Owner
	dst.Amount = r.Amount
	dst.LastUpdatedAt = r.LastUpdatedAt
}
