package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type AuthenticateUseCase struct {
	Users UserStore
}

func NewAuthenticateUseCase(users UserStore) *AuthenticateUseCase {
	return &AuthenticateUseCase{Users: users}
}

// Execute checks username, password and the active flag. A disabled
// account fails exactly like a wrong password; callers never learn
// which of the three checks missed.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, username, password string) (entity.Session, error) {
	users, err := uc.Users.Load()
	if err != nil {
		return entity.Session{}, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}

	user, ok := users[username]
	if !ok || !user.Active || !passwordMatches(user.Password, password) {
		return entity.Session{}, ErrInvalidCredentials
	}

	return entity.Session{Username: username, Role: user.Role}, nil
}

// passwordMatches compares against a bcrypt hash when the stored value
// is one, and falls back to plain equality for legacy plaintext entries
// (the seed admin file among them). Accounts written through AddUser or
// UpdateUser are always hashed.
func passwordMatches(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
