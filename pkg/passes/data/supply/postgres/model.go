package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/supply"
	pgutil "github.com/sol-pie/passes/pkg/database/postgres"
)

const (
	tableName = "passes__core_passessupply"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	Owner  string `db:"owner"`
	Amount uint64 `db:"amount"`

	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModel(obj *supply.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:       obj.Address,
		Bump:          obj.Bump,
		Owner:         obj.Owner,
		Amount:        obj.Amount,
		LastUpdatedAt: obj.LastUpdatedAt,
	}, nil
}

func fromModel(obj *model) *supply.Record {
	return &supply.Record{
		Id:            uint64(obj.Id.Int64),
		Address:       obj.Address,
		Bump:          obj.Bump,
		Owner:         obj.Owner,
		Amount:        obj.Amount,
		LastUpdatedAt: obj.LastUpdatedAt,
	}
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, owner, amount, last_updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (owner)
			DO UPDATE
				SET amount = $4, last_updated_at = $5
				WHERE ` + tableName + `.owner = $3
			RETURNING id, address, bump, owner, amount, last_updated_at`

		m.LastUpdatedAt = time.Now()

		return tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Owner,
			m.Amount,
			m.LastUpdatedAt.UTC(),
		).StructScan(m)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB, owner string) (*model, error) {
	res := &model{}

	query := `SELECT
		id, address, bump, owner, amount, last_updated_at
		FROM ` + tableName + `
		WHERE owner = $1
		LIMIT 1`

	err := db.GetContext(ctx, res, query, owner)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, supply.ErrNotFound)
	}
	return res, nil
}
