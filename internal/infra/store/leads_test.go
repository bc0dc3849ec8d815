package store_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/infra/store"
)

type memoryLeadStore struct {
	mu    sync.Mutex
	table []entity.Lead
	saves int
}

func (m *memoryLeadStore) Load() ([]entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Lead, len(m.table))
	copy(out, m.table)
	return out, nil
}

func (m *memoryLeadStore) Save(table []entity.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table = table
	m.saves++
	return nil
}

func TestLeadsMutateAppliesAndSaves(t *testing.T) {
	backend := &memoryLeadStore{}
	leads := store.NewLeads(backend)

	err := leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		return append(table, entity.Lead{ID: "lead-1"}), nil
	})

	assert.NoError(t, err)
	table, err := leads.Load()
	assert.NoError(t, err)
	assert.Len(t, table, 1)
	assert.Equal(t, 1, backend.saves)
}

func TestLeadsMutateErrorSkipsSave(t *testing.T) {
	backend := &memoryLeadStore{table: []entity.Lead{{ID: "lead-1"}}}
	leads := store.NewLeads(backend)
	boom := errors.New("boom")

	err := leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, backend.saves)
}

func TestLeadsMutateSerializesWriters(t *testing.T) {
	backend := &memoryLeadStore{}
	leads := store.NewLeads(backend)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
				return append(table, entity.Lead{ID: "x"}), nil
			})
		}()
	}
	wg.Wait()

	table, err := leads.Load()
	assert.NoError(t, err)
	assert.Len(t, table, 20, "no read-modify-write may be lost")
}
