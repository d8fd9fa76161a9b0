package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sol-pie/passes/pkg/passes/data/supply"
)

type store struct {
	mu      sync.Mutex
	records []*supply.Record
	last    uint64
}

// New returns a new in memory supply.Store
func New() supply.Store {
	return &store{}
}

// Get implements supply.Store.Get
func (s *store) Get(_ context.Context, owner string) (*supply.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByOwner(owner); item != nil {
		cloned := item.Clone()
		return &cloned, nil
	}
	return nil, supply.ErrNotFound
}

// Save implements supply.Store.Save
func (s *store) Save(_ context.Context, data *supply.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByOwner(data.Owner); item != nil {
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

func (s *store) findByOwner(owner string) *supply.Record {
	for _, item := range s.records {
		if item.Owner == owner {
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
