package ledger

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// MaxBalance caps ledger balances at the range of a postgres BIGINT so
// both backends behave identically.
const MaxBalance uint64 = math.MaxInt64

// Rail identifies the settlement rail a balance lives on.
type Rail string

const (
	RailSol   Rail = "sol"
	RailToken Rail = "token"
)

func (r Rail) Validate() error {
	switch r {
	case RailSol, RailToken:
		return nil
	}
	return errors.Errorf("invalid rail: %s", string(r))
}

// Record tracks the funds held by an account on a given rail. Escrow
// vaults, owner wallets and the protocol fee destination all settle
// through these records.
type Record struct {
	Id uint64

	Rail    Rail
	Account string
	Balance uint64

	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if err := r.Rail.Validate(); err != nil {
		return err
	}

	if len(r.Account) == 0 {
		return errors.New("account address is required")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id:            r.Id,
		Rail:          r.Rail,
		Account:       r.Account,
		Balance:       r.Balance,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id
	dst.Rail = r.Rail
	dst.Account = r.Account
	dst.Balance = r.Balance
	dst.LastUpdatedAt = r.LastUpdatedAt
}
