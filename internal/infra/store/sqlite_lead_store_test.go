package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leads-portal/internal/infra/store"
)

func newSQLiteStore(t *testing.T) *store.SQLiteLeadStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "leads.db")
	s, err := store.NewSQLiteLeadStore(dsn)
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteFreshDatabaseIsEmpty(t *testing.T) {
	s := newSQLiteStore(t)

	table, err := s.Load()

	assert.NoError(t, err)
	assert.Empty(t, table)
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	leads := sampleLeads()

	assert.NoError(t, s.Save(leads))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, leads, loaded, "order and every column survive the round trip")
}

func TestSQLiteSaveReplacesTheWholeTable(t *testing.T) {
	s := newSQLiteStore(t)
	leads := sampleLeads()

	assert.NoError(t, s.Save(leads))
	assert.NoError(t, s.Save(leads[1:]))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, leads[1].ID, loaded[0].ID)
}
