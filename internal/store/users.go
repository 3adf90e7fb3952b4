package store

import (
	"errors"
	"fmt"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	userRequired  = []string{"email", "password"}
	userOptional  = []string{"username", "name", "web"}
	userUpdatable = []string{"username", "name", "password", "email", "web", "permissions"}
)

// CreateUser validates the payload against the creation whitelist, fills in
// defaults and stores the user with a bcrypt password hash.
func (s *Store) CreateUser(fields map[string]any) (uint, error) {
	if err := validateFields("user", fields, userRequired, userOptional); err != nil {
		return 0, err
	}

	email, err := stringField(fields, "email")
	if err != nil {
		return 0, err
	}
	password, err := stringField(fields, "password")
	if err != nil {
		return 0, err
	}
	username, err := stringField(fields, "username")
	if err != nil {
		return 0, err
	}
	name, err := stringField(fields, "name")
	if err != nil {
		return 0, err
	}
	web, err := stringField(fields, "web")
	if err != nil {
		return 0, err
	}

	// Defaults: username falls back to the email, the display name to a
	// placeholder, permissions to all-denied.
	if username == "" {
		username = email
	}
	if name == "" {
		name = "Random User"
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(passwordHash),
		Permissions:  models.PermissionsDefault,
		Email:        email,
		Web:          web,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &apperrors.ConflictError{Message: "Error: username or email already exists"}
		}
		return 0, err
	}

	return user.ID, nil
}

// GetUser returns the merged, stripped view of one user: base columns plus
// profile tags, organized project ids and joined project ids.
func (s *Store) GetUser(id uint) (map[string]any, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UnknownUserID(id)
		}
		return nil, err
	}

	return s.userView(s.db, &user)
}

// ListUsers returns the merged, stripped view of every user, ordered by id.
func (s *Store) ListUsers() ([]map[string]any, error) {
	var users []models.User

	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}

	views := make([]map[string]any, 0, len(users))
	for i := range users {
		view, err := s.userView(s.db, &users[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *Store) userView(tx *gorm.DB, user *models.User) (map[string]any, error) {
	var profiles []string
	err := tx.Model(&models.Profile{}).
		Joins("join user_profiles on user_profiles.profile_id = profiles.id").
		Where("user_profiles.user_id = ?", user.ID).
		Order("profiles.profile_name asc").
		Pluck("profiles.profile_name", &profiles).Error
	if err != nil {
		return nil, err
	}

	var organized []uint
	err = tx.Model(&models.Project{}).
		Where("organizer_id = ?", user.ID).
		Order("id asc").
		Pluck("id", &organized).Error
	if err != nil {
		return nil, err
	}

	var joined []uint
	err = tx.Model(&models.ProjectMembership{}).
		Where("user_id = ?", user.ID).
		Order("project_id asc").
		Pluck("project_id", &joined).Error
	if err != nil {
		return nil, err
	}

	return strip(map[string]any{
		"id":               user.ID,
		"username":         user.Username,
		"name":             user.Name,
		"permissions":      user.Permissions,
		"email":            user.Email,
		"web":              user.Web,
		"profiles":         profiles,
		"projects_created": organized,
		"projects_joined":  joined,
	}), nil
}

// UpdateUser applies a partial column update. Profile pseudo-fields are
// delegated to the relationship maintainer first; if nothing remains after
// that, the update is a no-op success.
func (s *Store) UpdateUser(id uint, fields map[string]any) error {
	addProfiles, err := popStringSlice(fields, "addProfiles")
	if err != nil {
		return err
	}
	delProfiles, err := popStringSlice(fields, "delProfiles")
	if err != nil {
		return err
	}

	if err := validateFields("user", fields, nil, userUpdatable); err != nil {
		return err
	}

	updates := make(map[string]any, len(fields))
	for field := range fields {
		raw, err := stringField(fields, field)
		if err != nil {
			return err
		}
		if field == "password" {
			passwordHash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			updates["password_hash"] = string(passwordHash)
		} else {
			updates[field] = raw
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.UnknownUserID(id)
			}
			return err
		}

		if err := s.AddUserProfiles(tx, id, addProfiles); err != nil {
			return err
		}
		if err := s.RemoveUserProfiles(tx, id, delProfiles); err != nil {
			return err
		}

		if len(updates) == 0 {
			return nil
		}

		err := tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "Error: username or email already exists"}
		}
		return err
	})
}

// DeleteUser removes the user, every join row referencing it and every
// project it organizes, so that no orphaned link survives.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.UnknownUserID(id)
			}
			return err
		}

		var organized []uint
		err := tx.Model(&models.Project{}).
			Where("organizer_id = ?", id).
			Pluck("id", &organized).Error
		if err != nil {
			return err
		}
		for _, projectID := range organized {
			if err := deleteProject(tx, projectID); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ProjectMembership{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}

// GetUserByIdentifier looks a user up by username or, failing that, email.
// Used by the credential checks.
func (s *Store) GetUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User

	err := s.db.Where("username = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("email = ?", identifier).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.AuthenticationError{Message: "Error: invalid username or password"}
		}
		return nil, err
	}

	return &user, nil
}

// GetUserModel returns the raw user row, without the merged view.
func (s *Store) GetUserModel(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UnknownUserID(id)
		}
		return nil, err
	}

	return &user, nil
}

// ResolveUsername maps a username to its numeric id.
func (s *Store) ResolveUsername(name string) (uint, error) {
	var user models.User

	if err := s.db.Where("username = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &apperrors.NotFoundError{Message: fmt.Sprintf("Error: unknown username %q", name)}
		}
		return 0, err
	}

	return user.ID, nil
}
