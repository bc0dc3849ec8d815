package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// UserStore keeps the credential file: one JSON object per user, keyed
// by username. A missing or unparseable file falls back to the seed
// admin so a fresh install can always log in.
type UserStore struct {
	Path string
	Log  *logrus.Logger
}

func NewUserStore(path string, log *logrus.Logger) *UserStore {
	return &UserStore{Path: path, Log: log}
}

// userRecord is the wire shape. Active is a pointer so an entry written
// before the flag existed can be told apart from an explicit false and
// backfilled to true.
type userRecord struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   *bool  `json:"active,omitempty"`
}

func (s *UserStore) Load() (map[string]entity.User, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return entity.SeedUsers(), nil
	}

	var records map[string]userRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		if s.Log != nil {
			s.Log.WithField("path", s.Path).Warn("credential file unparseable, falling back to seed admin: ", err)
		}
		return entity.SeedUsers(), nil
	}
	if len(records) == 0 {
		return entity.SeedUsers(), nil
	}

	users := make(map[string]entity.User, len(records))
	for username, record := range records {
		active := true
		if record.Active != nil {
			active = *record.Active
		}
		users[username] = entity.User{Password: record.Password, Role: record.Role, Active: active}
	}
	return users, nil
}

func (s *UserStore) Save(users map[string]entity.User) error {
	records := make(map[string]userRecord, len(users))
	for username, user := range users {
		active := user.Active
		records[username] = userRecord{Password: user.Password, Role: user.Role, Active: &active}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write credential file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace credential file %s: %w", s.Path, err)
	}
	return nil
}
