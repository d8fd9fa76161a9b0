package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
	pgutil "github.com/sol-pie/passes/pkg/database/postgres"
)

const (
	tableName = "passes__core_passesbalance"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	Owner  string `db:"owner"`
	Holder string `db:"holder"`
	Amount uint64 `db:"amount"`

	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModel(obj *balance.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:       obj.Address,
		Bump:          obj.Bump,
		Owner:         obj.Owner,
		Holder:        obj.Holder,
		Amount:        obj.Amount,
		LastUpdatedAt: obj.LastUpdatedAt,
	}, nil
}

func fromModel(obj *model) *balance.Record {
	return &balance.Record{
		Id:            uint64(obj.Id.Int64),
		Address:       obj.Address,
		Bump:          obj.Bump,
		Owner:         obj.Owner,
		Holder:        obj.Holder,
		Amount:        obj.Amount,
		LastUpdatedAt: obj.LastUpdatedAt,
	}
}

func (m *model) dbSave(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, owner, holder, amount, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (owner, holder)
			DO UPDATE
				SET amount = $5, last_updated_at = $6
				WHERE ` + tableName + `.owner = $3 AND ` + tableName + `.holder = $4
			RETURNING id, address, bump, owner, holder, amount, last_updated_at`

		m.LastUpdatedAt = time.Now()

		return tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Owner,
			m.Holder,
			m.Amount,
			m.LastUpdatedAt.UTC(),
		).StructScan(m)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB, owner, holder string) (*model, error) {
	res := &model{}

	query := `SELECT
		id, address, bump, owner, holder, amount, last_updated_at
		FROM ` + tableName + `
		WHERE owner = $1 AND holder = $2
		LIMIT 1`

	err := db.GetContext(ctx, res, query, owner, holder)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, balance.ErrNotFound)
	}
	return res, nil
}

func dbGetAllByOwner(ctx context.Context, db *sqlx.DB, owner string) ([]*model, error) {
	var res []*model

	query := `SELECT
		id, address, bump, owner, holder, amount, last_updated_at
		FROM ` + tableName + `
		WHERE owner = $1
		ORDER BY id ASC`

	err := db.SelectContext(ctx, &res, query, owner)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, balance.ErrNotFound)
	}
	if len(res) == 0 {
		return nil, balance.ErrNotFound
	}
	return res, nil
}
