package usecase

import (
	"context"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type ManageUsersUseCase struct {
	Users UserStore
}

func NewManageUsersUseCase(users UserStore) *ManageUsersUseCase {
	return &ManageUsersUseCase{Users: users}
}

// UserView is a user as reported to callers, without the password.
type UserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func (uc *ManageUsersUseCase) AddUser(ctx context.Context, input AddUserInput) error {
	if errs := ValidateAddUserInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}

	users, err := uc.Users.Load()
	if err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}
	if _, exists := users[input.Username]; exists {
		return &DomainError{Code: "USERNAME_TAKEN", Message: "username already exists"}
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password: " + err.Error()}
	}

	users[input.Username] = entity.User{Password: hashed, Role: input.Role, Active: input.Active}
	if err := uc.Users.Save(users); err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to save users: " + err.Error()}
	}
	return nil
}

// UpdateUser edits an existing account in place. Users are never
// deleted, only deactivated. An unchanged password is not re-hashed, so
// editing the role does not rotate the credential.
func (uc *ManageUsersUseCase) UpdateUser(ctx context.Context, username string, input UpdateUserInput) error {
	if input.Password == "" {
		return ValidationErrors{{Field: "password", Message: "is required"}}
	}
	if !entity.IsValidRole(input.Role) {
		return ValidationErrors{{Field: "role", Message: "must be admin, agent or team_leader"}}
	}

	users, err := uc.Users.Load()
	if err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}
	current, exists := users[username]
	if !exists {
		return ErrUserNotFound
	}

	password := current.Password
	if input.Password != current.Password {
		if password, err = hashPassword(input.Password); err != nil {
			return &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password: " + err.Error()}
		}
	}

	users[username] = entity.User{Password: password, Role: input.Role, Active: input.Active}
	if err := uc.Users.Save(users); err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to save users: " + err.Error()}
	}
	return nil
}

func (uc *ManageUsersUseCase) ListUsers(ctx context.Context) ([]UserView, error) {
	users, err := uc.Users.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}

	views := make([]UserView, 0, len(users))
	for username, user := range users {
		views = append(views, UserView{Username: username, Role: user.Role, Active: user.Active})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Username < views[j].Username })
	return views, nil
}

// ListActiveAgents returns the usernames offerable as assignment
// targets, sorted for a stable display order.
func (uc *ManageUsersUseCase) ListActiveAgents(ctx context.Context) ([]string, error) {
	users, err := uc.Users.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}
	return ActiveAgents(users), nil
}

// ActiveAgents filters a credential set down to active role=agent
// usernames, sorted alphabetically.
func ActiveAgents(users map[string]entity.User) []string {
	agents := make([]string, 0)
	for username, user := range users {
		if user.Role == entity.RoleAgent && user.Active {
			agents = append(agents, username)
		}
	}
	sort.Strings(agents)
	return agents
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
