package balance

import (
	"time"

	"github.com/pkg/errors"
)

// Record tracks the number of an owner's passes held by a holder.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Owner  string
	Holder string
	Amount uint64

	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("balance address is required")
	}

	if len(r.Owner) == 0 {
		return errors.New("owner address is required")
	}

	if len(r.Holder) == 0 {
		return errors.New("holder address is required")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id:            r.Id,
		Address:       r.Address,
		Bump:          r.Bump,
		Owner:         r.Owner,
		Holder:        r.Holder,
		Amount:        r.Amount,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id
	dst.Address = r.Address
	dst.Bump = r.Bump
	dst.Owner = r.Owner
	dst.Holder = r.Holder
	dst.Amount = r.Amount
	dst.LastUpdatedAt = r.LastUpdatedAt
}
