// Package data aggregates the individual stores behind a single
// provider interface.
package data

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	pg "github.com/sol-pie/passes/pkg/database/postgres"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
	"github.com/sol-pie/passes/pkg/passes/data/config"
	"github.com/sol-pie/passes/pkg/passes/data/ledger"
	"github.com/sol-pie/passes/pkg/passes/data/supply"

	balance_memory_client "github.com/sol-pie/passes/pkg/passes/data/balance/memory"
	config_memory_client "github.com/sol-pie/passes/pkg/passes/data/config/memory"
	ledger_memory_client "github.com/sol-pie/passes/pkg/passes/data/ledger/memory"
	supply_memory_client "github.com/sol-pie/passes/pkg/passes/data/supply/memory"

	balance_postgres_client "github.com/sol-pie/passes/pkg/passes/data/balance/postgres"
	config_postgres_client "github.com/sol-pie/passes/pkg/passes/data/config/postgres"
	ledger_postgres_client "github.com/sol-pie/passes/pkg/passes/data/ledger/postgres"
	supply_postgres_client "github.com/sol-pie/passes/pkg/passes/data/supply/postgres"
)

type Provider interface {
	// Config
	// --------------------------------------------------------------------------------
	CreateConfig(ctx context.Context, record *config.Record) error
	GetConfig(ctx context.Context) (*config.Record, error)
	UpdateConfig(ctx context.Context, record *config.Record) error

	// Passes Supply
	// --------------------------------------------------------------------------------
	GetSupply(ctx context.Context, owner string) (*supply.Record, error)
	SaveSupply(ctx context.Context, record *supply.Record) error

	// Passes Balance
	// --------------------------------------------------------------------------------
	GetBalance(ctx context.Context, owner, holder string) (*balance.Record, error)
	GetBalancesByOwner(ctx context.Context, owner string) ([]*balance.Record, error)
	SaveBalance(ctx context.Context, record *balance.Record) error

	// Vault Ledger
	// --------------------------------------------------------------------------------
	GetFunds(ctx context.Context, rail ledger.Rail, account string) (*ledger.Record, error)
	CreditFunds(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error
	DebitFunds(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error

	// ExecuteInTx executes fn with a single DB transaction that is scoped to the call.
	// This enables more complex transactions that can span many calls across the provider.
	ExecuteInTx(ctx context.Context, isolation sql.IsolationLevel, fn func(ctx context.Context) error) error
}

type DatabaseProvider struct {
	config  config.Store
	supply  supply.Store
	balance balance.Store
	ledger  ledger.Store

	db *sqlx.DB

	// Serializes ExecuteInTx in memory mode, where there is no real
	// transaction to isolate concurrent instructions
	memoryTxMu sync.Mutex
}

func NewDatabaseProvider(dbConfig *pg.Config) (Provider, error) {
	db, err := pg.NewWithUsernameAndPassword(
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		fmt.Sprint(dbConfig.Port),
		dbConfig.DbName,
	)
	if err != nil {
		return nil, err
	}

	if dbConfig.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	}
	if dbConfig.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	}
	db.SetConnMaxIdleTime(time.Hour)
	db.SetConnMaxLifetime(time.Hour)

	return &DatabaseProvider{
		config:  config_postgres_client.New(db),
		supply:  supply_postgres_client.New(db),
		balance: balance_postgres_client.New(db),
		ledger:  ledger_postgres_client.New(db),

		db: sqlx.NewDb(db, "pgx"),
	}, nil
}

func NewTestDatabaseProvider() Provider {
	return &DatabaseProvider{
		config:  config_memory_client.New(),
		supply:  supply_memory_client.New(),
		balance: balance_memory_client.New(),
		ledger:  ledger_memory_client.New(),
	}
}

func (dp *DatabaseProvider) ExecuteInTx(ctx context.Context, isolation sql.IsolationLevel, fn func(ctx context.Context) error) error {
	if dp.db == nil {
		dp.memoryTxMu.Lock()
		defer dp.memoryTxMu.Unlock()

		return fn(ctx)
	}

	return pg.ExecuteTxWithinCtx(ctx, dp.db, isolation, fn)
}

// Config
// --------------------------------------------------------------------------------
func (dp *DatabaseProvider) CreateConfig(ctx context.Context, record *config.Record) error {
	return dp.config.Put(ctx, record)
}
func (dp *DatabaseProvider) GetConfig(ctx context.Context) (*config.Record, error) {
	return dp.config.Get(ctx)
}
func (dp *DatabaseProvider) UpdateConfig(ctx context.Context, record *config.Record) error {
	return dp.config.Update(ctx, record)
}

// Passes Supply
// --------------------------------------------------------------------------------
func (dp *DatabaseProvider) GetSupply(ctx context.Context, owner string) (*supply.Record, error) {
	return dp.supply.Get(ctx, owner)
}
func (dp *DatabaseProvider) SaveSupply(ctx context.Context, record *supply.Record) error {
	return dp.supply.Save(ctx, record)
}

// Passes Balance
// --------------------------------------------------------------------------------
func (dp *DatabaseProvider) GetBalance(ctx context.Context, owner, holder string) (*balance.Record, error) {
	return dp.balance.Get(ctx, owner, holder)
}
func (dp *DatabaseProvider) GetBalancesByOwner(ctx context.Context, owner string) ([]*balance.Record, error) {
	return dp.balance.GetAllByOwner(ctx, owner)
}
func (dp *DatabaseProvider) SaveBalance(ctx context.Context, record *balance.Record) error {
	return dp.balance.Save(ctx, record)
}

// Vault Ledger
// --------------------------------------------------------------------------------
func (dp *DatabaseProvider) GetFunds(ctx context.Context, rail ledger.Rail, account string) (*ledger.Record, error) {
	return dp.ledger.Get(ctx, rail, account)
}
func (dp *DatabaseProvider) CreditFunds(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error {
	return dp.ledger.Credit(ctx, rail, account, quarks)
}
func (dp *DatabaseProvider) DebitFunds(ctx context.Context, rail ledger.Rail, account string, quarks uint64) error {
	return dp.ledger.Debit(ctx, rail, account, quarks)
}
