package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// UserCollection names the shared store collection for accounts.
const UserCollection = "users"

// UserRepository provides typed access to the users collection.
type UserRepository struct {
	store *store.Store
}

// NewUserRepository constructs the repository.
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Create appends a user account, assigning an id when absent.
func (r *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return r.store.Add(UserCollection, *user)
}

// FindByEmail returns the account with the given email, case-insensitive.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, rec := range r.store.Get(UserCollection) {
		user := rec.(models.User)
		if strings.ToLower(user.Email) == email {
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

// FindByID returns the account with the given id.
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	rec, err := r.store.GetByID(UserCollection, id)
	if err != nil {
		return nil, err
	}
	user := rec.(models.User)
	return &user, nil
}

// UpdateLastLogin stamps the most recent successful login.
func (r *UserRepository) UpdateLastLogin(id string, ts time.Time) error {
	_, err := r.store.Update(UserCollection, id, func(current store.Record) store.Record {
		user := current.(models.User)
		user.LastLogin = &ts
		return user
	})
	return err
}
