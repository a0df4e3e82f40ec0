package gorm

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Ensure OrganizationsStore implements store.OrganizationsStore
var _ store.OrganizationsStore = (*OrganizationsStore)(nil)

// OrganizationsStore implements store.OrganizationsStore using GORM
type OrganizationsStore struct {
	db *gorm.DB
}

// NewOrganizationsStore creates a new OrganizationsStore
func NewOrganizationsStore(db *gorm.DB) *OrganizationsStore {
	return &OrganizationsStore{db: db}
}

// slugify lowercases the name and collapses anything non-alphanumeric
// into single hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// Create persists a new organization, deriving a unique slug from the
// name when none is supplied. Collisions get a numeric suffix.
func (s *OrganizationsStore) Create(org *model.Organization) error {
	if org.Slug == "" {
		base := slugify(org.Name)
		if base == "" {
			return fmt.Errorf("organization name %q produces an empty slug: %w", org.Name, store.ErrValidation)
		}
		slug := base
		for i := 1; ; i++ {
			var count int64
			if err := s.db.Model(&model.Organization{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check slug %q: %w", slug, err)
			}
			if count == 0 {
				break
			}
			slug = fmt.Sprintf("%s-%d", base, i)
		}
		org.Slug = slug
	}

	if err := s.db.Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("organization slug %q: %w", org.Slug, store.ErrConflict)
		}
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// GetByID retrieves one organization by id
func (s *OrganizationsStore) GetByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := s.db.First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization %d: %w", id, err)
	}
	return &org, nil
}

// GetBySlug retrieves one organization by slug
func (s *OrganizationsStore) GetBySlug(slug string) (*model.Organization, error) {
	var org model.Organization
	err := s.db.Where("slug = ?", slug).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %q: %w", slug, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization %q: %w", slug, err)
	}
	return &org, nil
}

// List returns all organizations ordered by id
func (s *OrganizationsStore) List() ([]model.Organization, error) {
	var orgs []model.Organization
	if err := s.db.Order("id").Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// Update persists changes to an existing organization
func (s *OrganizationsStore) Update(org *model.Organization) error {
	if err := s.db.Save(org).Error; err != nil {
		return fmt.Errorf("failed to update organization %d: %w", org.ID, err)
	}
	return nil
}
