package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/config"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed config.Store
func New(db *sql.DB) config.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements config.Store.Put
func (s *store) Put(ctx context.Context, record *config.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbPut(ctx, s.db); err != nil {
		return err
	}

	res := fromModel(model)
	res.CopyTo(record)

	return nil
}

// Get implements config.Store.Get
func (s *store) Get(ctx context.Context) (*config.Record, error) {
	model, err := dbGet(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// Update implements config.Store.Update
func (s *store) Update(ctx context.Context, record *config.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbUpdate(ctx, s.db); err != nil {
		return err
	}

	res := fromModel(model)
	res.CopyTo(record)

	return nil
}
