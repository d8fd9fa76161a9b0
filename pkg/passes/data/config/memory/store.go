package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sol-pie/passes/pkg/passes/data/config"
)

type store struct {
	mu     sync.Mutex
	record *config.Record
}

// New returns a new in memory config.Store
func New() config.Store {
	return &store{}
}

// Put implements config.Store.Put
func (s *store) Put(_ context.Context, data *config.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil {
		return config.ErrAlreadyExists
	}

	data.Id = 1
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	data.LastUpdatedAt = time.Now()

	cloned := data.Clone()
	s.record = &cloned

	return nil
}

// Get implements config.Store.Get
func (s *store) Get(_ context.Context) (*config.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return nil, config.ErrNotFound
	}

	cloned := s.record.Clone()
	return &cloned, nil
}

// Update implements config.Store.Update
func (s *store) Update(_ context.Context, data *config.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return config.ErrNotFound
	}

	s.record.ProtocolFeePct = data.ProtocolFeePct
	s.record.OwnerFeePct = data.OwnerFeePct
	s.record.ProtocolFeeTokenWallet = data.ProtocolFeeTokenWallet
	s.record.LastUpdatedAt = time.Now()

	s.record.CopyTo(data)

	return nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = nil
}
