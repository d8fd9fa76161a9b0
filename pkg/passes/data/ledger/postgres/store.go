package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/ledger"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed ledger.Store
func New(db *sql.DB) ledger.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Get implements ledger.Store.Get
func (s *store) Get(ctx context.Context, rail ledger.Rail, account string) (*ledger.Record, error) {
	if err := rail.Validate(); err != nil {
		return nil, err
	}

	model, err := dbGet(ctx, s.db, rail, account)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// Credit implements ledger.Store.Credit
func (s *store) Credit(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error {
	record := &ledger.Record{
		Rail:    rail,
		Account: account,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	return dbCredit(ctx, s.db, rail, account, quarks)
}

// Debit implements ledger.Store.Debit
func (s *store) Debit(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error {
	record := &ledger.Record{
		Rail:    rail,
		Account: account,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	return dbDebit(ctx, s.db, rail, account, quarks)
}
