package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/supply"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed supply.Store
func New(db *sql.DB) supply.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Get implements supply.Store.Get
func (s *store) Get(ctx context.Context, owner string) (*supply.Record, error) {
	model, err := dbGet(ctx, s.db, owner)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// Save implements supply.Store.Save
func (s *store) Save(ctx context.Context, record *supply.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbSave(ctx, s.db); err != nil {
		return err
	}

	res := fromModel(model)
	res.CopyTo(record)

	return nil
}
