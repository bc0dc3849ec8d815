package store

import (
	"sync"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// Leads serializes every load→mutate→save over one underlying store.
// The mutex makes each mutation one logical unit within the process;
// two handlers can never interleave a read-modify-write. Cross-process
// coordination is out of scope: the deployment is one process per file.
type Leads struct {
	mu    sync.Mutex
	store LeadStore
}

func NewLeads(store LeadStore) *Leads {
	return &Leads{store: store}
}

func (l *Leads) Load() ([]entity.Lead, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Load()
}

// Mutate loads the table, applies fn and saves the result. When fn
// returns an error nothing is written and that error comes back
// untouched, so callers can signal not-found through it.
func (l *Leads) Mutate(fn func(table []entity.Lead) ([]entity.Lead, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	table, err := l.store.Load()
	if err != nil {
		return err
	}
	next, err := fn(table)
	if err != nil {
		return err
	}
	return l.store.Save(next)
}
