package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sol-pie/passes/pkg/passes/data/ledger"
)

type store struct {
	mu      sync.Mutex
	records []*ledger.Record
	last    uint64
}

// New returns a new in memory ledger.Store
func New() ledger.Store {
	return &store{}
}

// Get implements ledger.Store.Get
func (s *store) Get(_ context.Context, rail ledger.Rail, account string) (*ledger.Record, error) {
	if err := rail.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(rail, account); item != nil {
		cloned := item.Clone()
		return &cloned, nil
	}
	return nil, ledger.ErrNotFound
}

// Credit implements ledger.Store.Credit
func (s *store) Credit(_ context.Context, rail ledger.Rail, account string, quarks uint64) error {
	record := &ledger.Record{
		Rail:    rail,
		Account: account,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(rail, account)
	if item == nil {
		if quarks > ledger.MaxBalance {
			return ledger.ErrOverflow
		}

		s.last++
		record.Id = s.last
		record.Balance = quarks
		record.LastUpdatedAt = time.Now()
		s.records = append(s.records, record)
		return nil
	}

	if quarks > ledger.MaxBalance-item.Balance {
		return ledger.ErrOverflow
	}

	item.Balance += quarks
	item.LastUpdatedAt = time.Now()
	return nil
}

// Debit implements ledger.Store.Debit
func (s *store) Debit(_ context.Context, rail ledger.Rail, account string, quarks uint64) error {
	record := &ledger.Record{
		Rail:    rail,
		Account: account,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(rail, account)
	if item == nil {
		return ledger.ErrNotFound
	}

	if item.Balance < quarks {
		return ledger.ErrInsufficientFunds
	}

	item.Balance -= quarks
	item.LastUpdatedAt = time.Now()
	return nil
}

func (s *store) find(rail ledger.Rail, account string) *ledger.Record {
	for _, item := range s.records {
		if item.Rail == rail && item.Account == account {
			return item
		}
	}
	return nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.last = 0
}
