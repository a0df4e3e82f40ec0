package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// Create persists a new user
func (s *UsersStore) Create(user *model.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q: %w", user.Email, store.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves one user by email
func (s *UsersStore) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %q: %w", email, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %q: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves one user by id
func (s *UsersStore) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return &user, nil
}

// BindToOrganization attaches a user to an organization
func (s *UsersStore) BindToOrganization(userID, orgID uint) error {
	err := s.db.Model(&model.User{}).Where("id = ?", userID).
		Update("organization_id", orgID).Error
	if err != nil {
		return fmt.Errorf("failed to bind user %d to organization %d: %w", userID, orgID, err)
	}
	return nil
}
