package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/infra/store"
)

func tempUserFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "users.json")
}

func TestUserStoreMissingFileYieldsSeedAdmin(t *testing.T) {
	s := store.NewUserStore(tempUserFile(t), nil)

	users, err := s.Load()

	assert.NoError(t, err)
	assert.Equal(t, map[string]entity.User{
		"admin": {Password: "admin", Role: "admin", Active: true},
	}, users)
}

func TestUserStoreCorruptFileYieldsSeedAdmin(t *testing.T) {
	path := tempUserFile(t)
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := store.NewUserStore(path, nil)
	users, err := s.Load()

	assert.NoError(t, err)
	assert.Equal(t, entity.SeedUsers(), users)
}

func TestUserStoreBackfillsMissingActiveFlag(t *testing.T) {
	path := tempUserFile(t)
	raw := `{
		"bob":   {"password": "x", "role": "agent"},
		"carol": {"password": "y", "role": "agent", "active": false}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s := store.NewUserStore(path, nil)
	users, err := s.Load()

	assert.NoError(t, err)
	assert.True(t, users["bob"].Active, "missing active defaults to true")
	assert.False(t, users["carol"].Active, "explicit false survives")
}

func TestUserStoreSaveLoadRoundTrip(t *testing.T) {
	s := store.NewUserStore(tempUserFile(t), nil)
	users := map[string]entity.User{
		"admin": {Password: "admin", Role: entity.RoleAdmin, Active: true},
		"bob":   {Password: "$2a$10$abcdefghijklmnopqrstuv", Role: entity.RoleAgent, Active: false},
	}

	assert.NoError(t, s.Save(users))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestUserStoreSaveOverwritesWholeFile(t *testing.T) {
	s := store.NewUserStore(tempUserFile(t), nil)

	assert.NoError(t, s.Save(map[string]entity.User{
		"admin": {Password: "admin", Role: entity.RoleAdmin, Active: true},
		"bob":   {Password: "x", Role: entity.RoleAgent, Active: true},
	}))
	assert.NoError(t, s.Save(map[string]entity.User{
		"admin": {Password: "admin", Role: entity.RoleAdmin, Active: true},
	}))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.NotContains(t, loaded, "bob")
}
