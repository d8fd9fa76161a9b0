package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sol-pie/passes/pkg/passes/data/balance"
)

type store struct {
	mu      sync.Mutex
	records []*balance.Record
	last    uint64
}

// New returns a new in memory balance.Store
func New() balance.Store {
	return &store{}
}

// Get implements balance.Store.Get
func (s *store) Get(_ context.Context, owner, holder string) (*balance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(owner, holder); item != nil {
		cloned := item.Clone()
		return &cloned, nil
	}
	return nil, balance.ErrNotFound
}

// GetAllByOwner implements balance.Store.GetAllByOwner
func (s *store) GetAllByOwner(_ context.Context, owner string) ([]*balance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*balance.Record
	for _, item := range s.records {
		if item.Owner == owner {
			cloned := item.Clone()
			res = append(res, &cloned)
		}
	}

	if len(res) == 0 {
		return nil, balance.ErrNotFound
	}
	return res, nil
}

// Save implements balance.Store.Save
func (s *store) Save(_ context.Context, data *balance.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.find(data.Owner, data.Holder); item != nil {
		item.Amount = data.Amount
		item.LastUpdatedAt = time.Now()

		item.CopyTo(data)
		return nil
	}

	s.last++
	data.Id = s.last
	data.LastUpdatedAt = time.Now()

	cloned := data.Clone()
	s.records = append(s.records, &cloned)

	return nil
}

func (s *store) find(owner, holder string) *balance.Record {
	for _, item := range s.records {
		if item.Owner == owner && item.Holder == holder {
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
