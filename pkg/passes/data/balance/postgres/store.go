package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed balance.Store
func New(db *sql.DB) balance.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Get implements balance.Store.Get
func (s *store) Get(ctx context.Context, owner, holder string) (*balance.Record, error) {
	model, err := dbGet(ctx, s.db, owner, holder)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// GetAllByOwner implements balance.Store.GetAllByOwner
func (s *store) GetAllByOwner(ctx context.Context, owner string) ([]*balance.Record, error) {
	models, err := dbGetAllByOwner(ctx, s.db, owner)
	if err != nil {
		return nil, err
	}

	res := make([]*balance.Record, len(models))
	for i, model := range models {
		res[i] = fromModel(model)
	}
	return res, nil
}

// Save implements balance.Store.Save
func (s *store) Save(ctx context.Context, record *balance.Record) error {
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
