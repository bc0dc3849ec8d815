// seed-admin writes a fresh credential file containing only the seed
// admin account (username "admin", password "admin", active). The
// password is intentionally left for the admin to change through the
// manage-users view, which hashes it on save.
//
// Usage:
//
//	USER_FILE=users.json go run ./cmd/seed-admin
package main

import (
	"os"

	"github.com/xavierca1/leads-portal/internal/config"
	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/infra/store"
)

func main() {
	log := config.GetLogger()
	cfg := config.Load()

	if _, err := os.Stat(cfg.UserFile); err == nil {
		log.Fatal("credential file ", cfg.UserFile, " already exists; remove it first to reseed")
	}

	users := store.NewUserStore(cfg.UserFile, log)
	if err := users.Save(entity.SeedUsers()); err != nil {
		log.Fatal("seed credential file: ", err)
	}

	log.Info("seeded ", cfg.UserFile, " with the default admin account; change its password after first login")
}
