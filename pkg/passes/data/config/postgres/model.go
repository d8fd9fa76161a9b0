package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sol-pie/passes/pkg/passes/data/config"
	pgutil "github.com/sol-pie/passes/pkg/database/postgres"
)

const (
	tableName = "passes__core_config"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint8  `db:"bump"`

	Admin       string `db:"admin"`
	PaymentMint string `db:"payment_mint"`

	EscrowTokenWallet string `db:"escrow_token_wallet"`
	EscrowSolWallet   string `db:"escrow_sol_wallet"`

	ProtocolFeePct         uint64 `db:"protocol_fee_pct"`
	OwnerFeePct            uint64 `db:"owner_fee_pct"`
	ProtocolFeeTokenWallet string `db:"protocol_fee_token_wallet"`

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModel(obj *config.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:                obj.Address,
		Bump:                   obj.Bump,
		Admin:                  obj.Admin,
		PaymentMint:            obj.PaymentMint,
		EscrowTokenWallet:      obj.EscrowTokenWallet,
		EscrowSolWallet:        obj.EscrowSolWallet,
		ProtocolFeePct:         obj.ProtocolFeePct,
		OwnerFeePct:            obj.OwnerFeePct,
		ProtocolFeeTokenWallet: obj.ProtocolFeeTokenWallet,
		CreatedAt:              obj.CreatedAt,
		LastUpdatedAt:          obj.LastUpdatedAt,
	}, nil
}

func fromModel(obj *model) *config.Record {
	return &config.Record{
		Id:                     uint64(obj.Id.Int64),
		Address:                obj.Address,
		Bump:                   obj.Bump,
		Admin:                  obj.Admin,
		PaymentMint:            obj.PaymentMint,
		EscrowTokenWallet:      obj.EscrowTokenWallet,
		EscrowSolWallet:        obj.EscrowSolWallet,
		ProtocolFeePct:         obj.ProtocolFeePct,
		OwnerFeePct:            obj.OwnerFeePct,
		ProtocolFeeTokenWallet: obj.ProtocolFeeTokenWallet,
		CreatedAt:              obj.CreatedAt,
		LastUpdatedAt:          obj.LastUpdatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, admin, payment_mint, escrow_token_wallet, escrow_sol_wallet, protocol_fee_pct, owner_fee_pct, protocol_fee_token_wallet, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, address, bump, admin, payment_mint, escrow_token_wallet, escrow_sol_wallet, protocol_fee_pct, owner_fee_pct, protocol_fee_token_wallet, created_at, last_updated_at`

		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}
		m.LastUpdatedAt = time.Now()

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Admin,
			m.PaymentMint,
			m.EscrowTokenWallet,
			m.EscrowSolWallet,
			m.ProtocolFeePct,
			m.OwnerFeePct,
			m.ProtocolFeeTokenWallet,
			m.CreatedAt.UTC(),
			m.LastUpdatedAt.UTC(),
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, config.ErrAlreadyExists)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB) (*model, error) {
	res := &model{}

	query := `SELECT
		id, address, bump, admin, payment_mint, escrow_token_wallet, escrow_sol_wallet, protocol_fee_pct, owner_fee_pct, protocol_fee_token_wallet, created_at, last_updated_at
		FROM ` + tableName + `
		LIMIT 1`

	err := db.GetContext(ctx, res, query)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, config.ErrNotFound)
	}
	return res, nil
}

func (m *model) dbUpdate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + tableName + `
			SET protocol_fee_pct = $2, owner_fee_pct = $3, protocol_fee_token_wallet = $4, last_updated_at = $5
			WHERE address = $1
			RETURNING id, address, bump, admin, payment_mint, escrow_token_wallet, escrow_sol_wallet, protocol_fee_pct, owner_fee_pct, protocol_fee_token_wallet, created_at, last_updated_at`

		m.LastUpdatedAt = time.Now()

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.ProtocolFeePct,
			m.OwnerFeePct,
			m.ProtocolFeeTokenWallet,
			m.LastUpdatedAt.UTC(),
		).StructScan(m)

		return pgutil.CheckNoRows(err, config.ErrNotFound)
	})
}
