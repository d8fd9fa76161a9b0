package engine

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"sync"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-pie/passes/pkg/passes/data"
	"github.com/sol-pie/passes/pkg/passes/data/balance"
	"github.com/sol-pie/passes/pkg/passes/data/config"
	"github.com/sol-pie/passes/pkg/passes/data/ledger"
	"github.com/sol-pie/passes/pkg/passes/data/supply"
	"github.com/sol-pie/passes/pkg/passes/fee"
)

type testEnv struct {
	ctx    context.Context
	data   data.Provider
	engine *Engine

	admin          ed25519.PublicKey
	mint           ed25519.PublicKey
	protocolFeeDst ed25519.PublicKey
}

func setup(t *testing.T) *testEnv {
	db := data.NewTestDatabaseProvider()
	return &testEnv{
		ctx:    context.Background(),
		data:   db,
		engine: New(db),

		admin:          newKey(t),
		mint:           newKey(t),
		protocolFeeDst: newKey(t),
	}
}

func setupInitialized(t *testing.T) *testEnv {
	env := setup(t)
	_, err := env.engine.Initialize(env.ctx, &InitializeArgs{
		Admin:                  env.admin,
		PaymentMint:            env.mint,
		ProtocolFeeTokenWallet: env.protocolFeeDst,
		ProtocolFeePct:         20_000_000, // 2%
		OwnerFeePct:            20_000_000, // 2%
	})
	require.NoError(t, err)
	return env
}

func newKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}

func TestInitialize(t *testing.T) {
	env := setup(t)

	args := &InitializeArgs{
		Admin:                  env.admin,
		PaymentMint:            env.mint,
		ProtocolFeeTokenWallet: env.protocolFeeDst,
		ProtocolFeePct:         20_000_000,
		OwnerFeePct:            20_000_000,
	}

	record, err := env.engine.Initialize(env.ctx, args)
	require.NoError(t, err)
	assert.NotEmpty(t, record.Address)
	assert.NotEmpty(t, record.EscrowTokenWallet)
	assert.NotEmpty(t, record.EscrowSolWallet)
	assert.EqualValues(t, 20_000_000, record.ProtocolFeePct)

	_, err = env.engine.Initialize(env.ctx, args)
	assert.Equal(t, ErrAlreadyInitialized, err)
}

func TestInitialize_InvalidFeeParameters(t *testing.T) {
	env := setup(t)

	_, err := env.engine.Initialize(env.ctx, &InitializeArgs{
		Admin:                  env.admin,
		PaymentMint:            env.mint,
		ProtocolFeeTokenWallet: env.protocolFeeDst,
		ProtocolFeePct:         600_000_000,
		OwnerFeePct:            500_000_000,
	})
	assert.Equal(t, ErrInvalidFeeParameters, err)
}

func TestInitialize_Authority(t *testing.T) {
	env := setup(t)
	env.engine = New(env.data, WithAuthority(env.admin))

	args := &InitializeArgs{
		Admin:                  newKey(t),
		PaymentMint:            env.mint,
		ProtocolFeeTokenWallet: env.protocolFeeDst,
		ProtocolFeePct:         20_000_000,
		OwnerFeePct:            20_000_000,
	}

	_, err := env.engine.Initialize(env.ctx, args)
	assert.Equal(t, ErrUnauthorized, err)

	args.Admin = env.admin
	_, err = env.engine.Initialize(env.ctx, args)
	require.NoError(t, err)
}

func TestUninitialized(t *testing.T) {
	env := setup(t)
	owner := newKey(t)
	holder := newKey(t)

	assert.Equal(t, ErrNotInitialized, env.engine.IssuePasses(env.ctx, owner, 1))
	assert.Equal(t, ErrNotInitialized, env.engine.BuyPasses(env.ctx, owner, holder, 1))
	assert.Equal(t, ErrNotInitialized, env.engine.BuyPassesSol(env.ctx, owner, holder, 1))
	assert.Equal(t, ErrNotInitialized, env.engine.SellPasses(env.ctx, owner, holder, 1))
	assert.Equal(t, ErrNotInitialized, env.engine.SetProtocolFeePct(env.ctx, env.admin, 0))
}

func TestAdminOperations(t *testing.T) {
	env := setupInitialized(t)
	attacker := newKey(t)

	assert.Equal(t, ErrUnauthorized, env.engine.SetProtocolFeePct(env.ctx, attacker, 10_000_000))
	assert.Equal(t, ErrUnauthorized, env.engine.SetOwnerFeePct(env.ctx, attacker, 10_000_000))
	assert.Equal(t, ErrUnauthorized, env.engine.SetProtocolFeeDst(env.ctx, attacker, attacker))

	assert.Equal(t, ErrInvalidFeeParameters, env.engine.SetProtocolFeePct(env.ctx, env.admin, 1_000_000_000))
	assert.Equal(t, ErrInvalidFeeParameters, env.engine.SetOwnerFeePct(env.ctx, env.admin, 980_000_000))

	require.NoError(t, env.engine.SetProtocolFeePct(env.ctx, env.admin, 30_000_000))
	require.NoError(t, env.engine.SetOwnerFeePct(env.ctx, env.admin, 10_000_000))

	newDst := newKey(t)
	require.NoError(t, env.engine.SetProtocolFeeDst(env.ctx, env.admin, newDst))

	record, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 30_000_000, record.ProtocolFeePct)
	assert.EqualValues(t, 10_000_000, record.OwnerFeePct)
}

func TestIssuePasses(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)

	assert.Equal(t, ErrZeroAmount, env.engine.IssuePasses(env.ctx, owner, 0))

	// The genesis pass is free
	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, supply)

	held, err := env.engine.GetPassesBalance(env.ctx, owner, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, held)

	// Further issuance costs payment tokens
	assert.Equal(t, ErrInsufficientFunds, env.engine.IssuePasses(env.ctx, owner, 2))

	price, err := env.engine.GetPrice(env.ctx, owner, 2)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, owner, price))
	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 2))

	supply, err = env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 3, supply)
}

func TestGetPrice(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))
	fundAndIssue(t, env, owner, 2)

	price, err := env.engine.GetPrice(env.ctx, owner, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 56250, price)

	price, err = env.engine.GetPriceSol(env.ctx, owner, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 5_625_000, price)
}

func TestBuyPassesSol(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	// Owners bootstrap their supply before anyone can buy
	assert.Equal(t, ErrZeroSupply, env.engine.BuyPassesSol(env.ctx, owner, holder, 1))

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	gross, err := env.engine.GetPriceSol(env.ctx, owner, 10)
	require.NoError(t, err)

	assert.Equal(t, ErrInsufficientFunds, env.engine.BuyPassesSol(env.ctx, owner, holder, 10))

	deposited := 2 * gross
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailSol, holder, deposited))
	require.NoError(t, env.engine.BuyPassesSol(env.ctx, owner, holder, 10))

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 11, supply)

	held, err := env.engine.GetPassesBalance(env.ctx, owner, holder)
	require.NoError(t, err)
	assert.EqualValues(t, 10, held)

	// Every lamport the holder paid landed somewhere
	record, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)

	holderFunds, err := env.engine.GetFunds(env.ctx, ledger.RailSol, holder)
	require.NoError(t, err)
	ownerFunds, err := env.engine.GetFunds(env.ctx, ledger.RailSol, owner)
	require.NoError(t, err)
	protocolFunds, err := env.engine.GetFunds(env.ctx, ledger.RailSol, env.protocolFeeDst)
	require.NoError(t, err)
	escrowFunds, err := env.data.GetFunds(env.ctx, ledger.RailSol, record.EscrowSolWallet)
	require.NoError(t, err)

	assert.Equal(t, deposited, holderFunds+ownerFunds+protocolFunds+escrowFunds.Balance)
	assert.Equal(t, deposited-gross, holderFunds)
	assert.Equal(t, gross/50, ownerFunds)    // 2%
	assert.Equal(t, gross/50, protocolFunds) // 2%
}

func TestBuyPasses_FailureLeavesStateUnchanged(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	gross, err := env.engine.GetPrice(env.ctx, owner, 5)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, gross-1))

	assert.Equal(t, ErrInsufficientFunds, env.engine.BuyPasses(env.ctx, owner, holder, 5))

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, supply)

	held, err := env.engine.GetPassesBalance(env.ctx, owner, holder)
	require.NoError(t, err)
	assert.EqualValues(t, 0, held)

	holderFunds, err := env.engine.GetFunds(env.ctx, ledger.RailToken, holder)
	require.NoError(t, err)
	assert.Equal(t, gross-1, holderFunds)
}

func TestSellPasses(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	gross, err := env.engine.GetPrice(env.ctx, owner, 10)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, gross))
	require.NoError(t, env.engine.BuyPasses(env.ctx, owner, holder, 10))

	assert.Equal(t, ErrInsufficientPasses, env.engine.SellPasses(env.ctx, owner, holder, 11))
	assert.Equal(t, ErrZeroAmount, env.engine.SellPasses(env.ctx, owner, holder, 0))

	// Selling the holder's own passes
	require.NoError(t, env.engine.SellPasses(env.ctx, owner, holder, 10))

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, supply)

	held, err := env.engine.GetPassesBalance(env.ctx, owner, holder)
	require.NoError(t, err)
	assert.EqualValues(t, 0, held)

	// The escrow paid back exactly the principal it held
	record, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	escrowFunds, err := env.data.GetFunds(env.ctx, ledger.RailToken, record.EscrowTokenWallet)
	require.NoError(t, err)
	assert.EqualValues(t, 0, escrowFunds.Balance)
}

func TestSellPasses_LastPass(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	assert.Equal(t, ErrLastPass, env.engine.SellPasses(env.ctx, owner, owner, 1))

	fundAndIssue(t, env, owner, 2)

	// Can sell down to the genesis pass, but never past it
	assert.Equal(t, ErrLastPass, env.engine.SellPasses(env.ctx, owner, owner, 3))
	require.NoError(t, env.engine.SellPasses(env.ctx, owner, owner, 2))

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, supply)
}

func TestGetHolders(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)

	records, err := env.engine.GetHolders(env.ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	for i := 0; i < 3; i++ {
		holder := newKey(t)

		gross, err := env.engine.GetPrice(env.ctx, owner, 1)
		require.NoError(t, err)
		require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, gross))
		require.NoError(t, env.engine.BuyPasses(env.ctx, owner, holder, 1))
	}

	records, err = env.engine.GetHolders(env.ctx, owner)
	require.NoError(t, err)
	assert.Len(t, records, 4) // the owner plus three buyers
}

func fundAndIssue(t *testing.T, env *testEnv, owner ed25519.PublicKey, amount uint64) {
	price, err := env.engine.GetPrice(env.ctx, owner, amount)
	require.NoError(t, err)
	if price > 0 {
		require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, owner, price))
	}
	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, amount))
}

func TestBuyPasses_RecipientAtBalanceCap(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	gross, err := env.engine.GetPrice(env.ctx, owner, 5)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, gross))

	// The protocol fee destination can't absorb another credit
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, env.protocolFeeDst, ledger.MaxBalance))

	assert.Equal(t, ErrOverflow, env.engine.BuyPasses(env.ctx, owner, holder, 5))

	// The buyer keeps their funds and no passes moved
	holderFunds, err := env.engine.GetFunds(env.ctx, ledger.RailToken, holder)
	require.NoError(t, err)
	assert.Equal(t, gross, holderFunds)

	supply, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, supply)

	held, err := env.engine.GetPassesBalance(env.ctx, owner, holder)
	require.NoError(t, err)
	assert.EqualValues(t, 0, held)
}

func TestAdminOperations_ConcurrentFeeUpdates(t *testing.T) {
	env := setupInitialized(t)

	// Each update is valid against the config it started from, but
	// committing both would break the combined-fee invariant
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = env.engine.SetProtocolFeePct(env.ctx, env.admin, 600_000_000)
	}()
	go func() {
		defer wg.Done()
		errs[1] = env.engine.SetOwnerFeePct(env.ctx, env.admin, 600_000_000)
	}()
	wg.Wait()

	record, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.Less(t, record.ProtocolFeePct+record.OwnerFeePct, uint64(fee.PercentScale))

	var failures int
	for _, err := range errs {
		if err != nil {
			assert.Equal(t, ErrInvalidFeeParameters, err)
			failures++
		}
	}
	assert.Equal(t, 1, failures)
}

func TestAccountMismatch_Supply(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.data.SaveSupply(env.ctx, &supply.Record{
		Address: "not_the_derived_address",
		Bump:    255,
		Owner:   base58.Encode(owner),
		Amount:  5,
	}))

	assert.Equal(t, ErrAccountMismatch, env.engine.IssuePasses(env.ctx, owner, 1))
	assert.Equal(t, ErrAccountMismatch, env.engine.BuyPasses(env.ctx, owner, holder, 1))
	assert.Equal(t, ErrAccountMismatch, env.engine.SellPasses(env.ctx, owner, holder, 1))

	_, err := env.engine.GetPrice(env.ctx, owner, 1)
	assert.Equal(t, ErrAccountMismatch, err)

	record, err := env.data.GetSupply(env.ctx, base58.Encode(owner))
	require.NoError(t, err)
	assert.EqualValues(t, 5, record.Amount)
}

func TestAccountMismatch_Balance(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	require.NoError(t, env.data.SaveBalance(env.ctx, &balance.Record{
		Address: "not_the_derived_address",
		Bump:    255,
		Owner:   base58.Encode(owner),
		Holder:  base58.Encode(holder),
		Amount:  0,
	}))

	gross, err := env.engine.GetPrice(env.ctx, owner, 1)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, gross))

	assert.Equal(t, ErrAccountMismatch, env.engine.BuyPasses(env.ctx, owner, holder, 1))

	holderFunds, err := env.engine.GetFunds(env.ctx, ledger.RailToken, holder)
	require.NoError(t, err)
	assert.Equal(t, gross, holderFunds)

	total, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestAccountMismatch_Config(t *testing.T) {
	env := setup(t)
	owner := newKey(t)

	require.NoError(t, env.data.CreateConfig(env.ctx, &config.Record{
		Address:                "not_the_derived_address",
		Bump:                   255,
		Admin:                  base58.Encode(env.admin),
		PaymentMint:            base58.Encode(env.mint),
		EscrowTokenWallet:      "escrow_token",
		EscrowSolWallet:        "escrow_sol",
		ProtocolFeePct:         20_000_000,
		OwnerFeePct:            20_000_000,
		ProtocolFeeTokenWallet: base58.Encode(env.protocolFeeDst),
	}))

	assert.Equal(t, ErrAccountMismatch, env.engine.IssuePasses(env.ctx, owner, 1))
	assert.Equal(t, ErrAccountMismatch, env.engine.SetProtocolFeePct(env.ctx, env.admin, 0))
}

func TestConservationOfPasses(t *testing.T) {
	env := setupInitialized(t)
	owner := newKey(t)
	holder1 := newKey(t)
	holder2 := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))
	fundAndIssue(t, env, owner, 2)
	fundAndBuy(t, env, owner, holder1, 2)
	fundAndBuy(t, env, owner, holder2, 3)
	require.NoError(t, env.engine.SellPasses(env.ctx, owner, holder1, 1))

	total, err := env.engine.GetPassesSupply(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)

	// Every issued pass is accounted for by exactly one holder
	records, err := env.engine.GetHolders(env.ctx, owner)
	require.NoError(t, err)

	var held uint64
	for _, record := range records {
		held += record.Amount
	}
	assert.Equal(t, total, held)
}

type flatCurve struct {
	price uint64
}

func (c flatCurve) Price(supply, amount uint64) (uint64, error) {
	return c.price, nil
}

func TestBuyPasses_ZeroPrice(t *testing.T) {
	env := setup(t)
	env.engine = New(env.data, WithTokenCurve(flatCurve{}))

	_, err := env.engine.Initialize(env.ctx, &InitializeArgs{
		Admin:                  env.admin,
		PaymentMint:            env.mint,
		ProtocolFeeTokenWallet: env.protocolFeeDst,
		ProtocolFeePct:         20_000_000,
		OwnerFeePct:            20_000_000,
	})
	require.NoError(t, err)

	owner := newKey(t)
	holder := newKey(t)

	require.NoError(t, env.engine.IssuePasses(env.ctx, owner, 1))

	assert.Equal(t, ErrZeroPrice, env.engine.BuyPasses(env.ctx, owner, holder, 1))
}

func fundAndBuy(t *testing.T, env *testEnv, owner, holder ed25519.PublicKey, amount uint64) {
	price, err := env.engine.GetPrice(env.ctx, owner, amount)
	require.NoError(t, err)
	require.NoError(t, env.engine.Deposit(env.ctx, ledger.RailToken, holder, price))
	require.NoError(t, env.engine.BuyPasses(env.ctx, owner, holder, amount))
}
