package store

import (
	"errors"
	"fmt"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"gorm.io/gorm"
)

// CreateProfile adds a tag to the profile catalog. Tags must exist here
// before users or projects can link to them.
func (s *Store) CreateProfile(name string) (uint, error) {
	if name == "" {
		return 0, &apperrors.ValidationError{
			Message:     "bad_entry",
			Description: "Profile name must not be empty",
		}
	}

	profile := models.Profile{ProfileName: name}

	if err := s.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &apperrors.ConflictError{Message: fmt.Sprintf("Error: profile %q already exists", name)}
		}
		return 0, err
	}

	return profile.ID, nil
}

// ListProfiles returns every catalog tag name, ordered alphabetically.
func (s *Store) ListProfiles() ([]string, error) {
	var names []string

	err := s.db.Model(&models.Profile{}).
		Order("profile_name asc").
		Pluck("profile_name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}
