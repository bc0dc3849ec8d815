package usecase_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// fakeLeadTable applies mutations to an in-memory table so tests can
// observe exactly what would have been saved.
type fakeLeadTable struct {
	table   []entity.Lead
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeLeadTable) Load() ([]entity.Lead, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]entity.Lead, len(f.table))
	copy(out, f.table)
	return out, nil
}

func (f *fakeLeadTable) Mutate(fn func([]entity.Lead) ([]entity.Lead, error)) error {
	table, err := f.Load()
	if err != nil {
		return err
	}
	next, err := fn(table)
	if err != nil {
		return err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	f.table = next
	f.saves++
	return nil
}

// MockUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Load() (map[string]entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]entity.User), args.Error(1)
}

func (m *MockUserStore) Save(users map[string]entity.User) error {
	args := m.Called(users)
	return args.Error(0)
}

type assignmentNotice struct {
	Agent string
	Count int
}

// fakeNotifier hands each notice to a channel; the assign usecase
// notifies from a goroutine, so tests receive with a timeout.
type fakeNotifier struct {
	notices chan assignmentNotice
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notices: make(chan assignmentNotice, 1)}
}

func (f *fakeNotifier) NotifyAssignment(agent string, count int) error {
	f.notices <- assignmentNotice{Agent: agent, Count: count}
	return nil
}
