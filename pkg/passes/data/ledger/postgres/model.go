package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/ledger"
	pgutil "github.com/sol-pie/passes/pkg/database/postgres"
)

const (
	tableName = "passes__core_vaultledger"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Rail    string `db:"rail"`
	Account string `db:"account"`
	Balance uint64 `db:"balance"`

	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func fromModel(obj *model) *ledger.Record {
	return &ledger.Record{
		Id:            uint64(obj.Id.Int64),
		Rail:          ledger.Rail(obj.Rail),
		Account:       obj.Account,
		Balance:       obj.Balance,
		LastUpdatedAt: obj.LastUpdatedAt,
	}
}

func dbGet(ctx context.Context, db *sqlx.DB, rail ledger.Rail, account string) (*model, error) {
	res := &model{}

	query := `SELECT
		id, rail, account, balance, last_updated_at
		FROM ` + tableName + `
		WHERE rail = $1 AND account = $2
		LIMIT 1`

	err := db.GetContext(ctx, res, query, string(rail), account)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, ledger.ErrNotFound)
	}
	return res, nil
}

func dbCredit(ctx context.Context, db *sqlx.DB, rail ledger.Rail, account string, quarks uint64) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelSerializable, func(tx *sqlx.Tx) error {
		selectQuery := `SELECT
			id, rail, account, balance, last_updated_at
			FROM ` + tableName + `
			WHERE rail = $1 AND account = $2
			FOR UPDATE`

		res := &model{}
		err := tx.GetContext(ctx, res, selectQuery, string(rail), account)
		if pgutil.IsNoRows(err) {
			if quarks > ledger.MaxBalance {
				return ledger.ErrOverflow
			}

			insertQuery := `INSERT INTO ` + tableName + `
				(rail, account, balance, last_updated_at)
				VALUES ($1, $2, $3, $4)`

			_, err = tx.ExecContext(ctx, insertQuery, string(rail), account, quarks, time.Now().UTC())
			return err
		} else if err != nil {
			return err
		}

		if quarks > ledger.MaxBalance-res.Balance {
			return ledger.ErrOverflow
		}

		updateQuery := `UPDATE ` + tableName + `
			SET balance = $3, last_updated_at = $4
			WHERE rail = $1 AND account = $2`

		_, err = tx.ExecContext(ctx, updateQuery, string(rail), account, res.Balance+quarks, time.Now().UTC())
		return err
	})
}

func dbDebit(ctx context.Context, db *sqlx.DB, rail ledger.Rail, account string, quarks uint64) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelSerializable, func(tx *sqlx.Tx) error {
		selectQuery := `SELECT
			id, rail, account, balance, last_updated_at
			FROM ` + tableName + `
			WHERE rail = $1 AND account = $2
			FOR UPDATE`

		res := &model{}
		err := tx.GetContext(ctx, res, selectQuery, string(rail), account)
		if err != nil {
			return pgutil.CheckNoRows(err, ledger.ErrNotFound)
		}

		if res.Balance < quarks {
			return ledger.ErrInsufficientFunds
		}

		updateQuery := `UPDATE ` + tableName + `
			SET balance = $3, last_updated_at = $4
			WHERE rail = $1 AND account = $2`

		_, err = tx.ExecContext(ctx, updateQuery, string(rail), account, res.Balance-quarks, time.Now().UTC())
		return err
	})
}
