package store

import (
	"errors"
	"fmt"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"gorm.io/gorm"
)

// Relationship maintenance. Every batch is validated in full before any row
// is written: either the whole batch applies or nothing does. All operations
// run on the caller's transaction; the composite unique indexes on the join
// tables turn a lost race between concurrent requests into a ConflictError
// instead of a duplicate link.

// AddParticipants links the given users to a project. Every id must reference
// an existing user and none may already be a participant.
func (s *Store) AddParticipants(tx *gorm.DB, projectID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	var existing int64
	err := tx.Model(&models.User{}).Where("id in ?", userIDs).Count(&existing).Error
	if err != nil {
		return err
	}
	if existing != int64(len(userIDs)) {
		return &apperrors.NotFoundError{Message: fmt.Sprintf("Error: nonexisting user in %v", userIDs)}
	}

	var linked int64
	err = tx.Model(&models.ProjectMembership{}).
		Where("project_id = ? and user_id in ?", projectID, userIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != 0 {
		return &apperrors.ConflictError{Message: "Error: tried to add an already existing participant"}
	}

	memberships := make([]models.ProjectMembership, 0, len(userIDs))
	for _, userID := range userIDs {
		memberships = append(memberships, models.ProjectMembership{
			UserID:    userID,
			ProjectID: projectID,
		})
	}

	if err := tx.Create(&memberships).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "Error: tried to add an already existing participant"}
		}
		return err
	}
	return nil
}

// RemoveParticipants unlinks the given users from a project. Every id must
// currently be a participant.
func (s *Store) RemoveParticipants(tx *gorm.DB, projectID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	var linked int64
	err := tx.Model(&models.ProjectMembership{}).
		Where("project_id = ? and user_id in ?", projectID, userIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != int64(len(userIDs)) {
		return &apperrors.NotFoundError{Message: fmt.Sprintf("Error: nonexisting user in %v", userIDs)}
	}

	return tx.Where("project_id = ? and user_id in ?", projectID, userIDs).
		Delete(&models.ProjectMembership{}).Error
}

// AddRequestedProfiles links profile tags to a project. Every tag must exist
// in the catalog and none may already be requested.
func (s *Store) AddRequestedProfiles(tx *gorm.DB, projectID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	profileIDs, err := resolveProfiles(tx, names)
	if err != nil {
		return err
	}

	var linked int64
	err = tx.Model(&models.ProjectRequestedProfile{}).
		Where("project_id = ? and profile_id in ?", projectID, profileIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != 0 {
		return &apperrors.ConflictError{Message: "Error: tried to add an already requested profile"}
	}

	links := make([]models.ProjectRequestedProfile, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		links = append(links, models.ProjectRequestedProfile{
			ProjectID: projectID,
			ProfileID: profileID,
		})
	}

	if err := tx.Create(&links).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "Error: tried to add an already requested profile"}
		}
		return err
	}
	return nil
}

// RemoveRequestedProfiles unlinks profile tags from a project. Every tag must
// currently be requested.
func (s *Store) RemoveRequestedProfiles(tx *gorm.DB, projectID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	profileIDs, err := resolveProfiles(tx, names)
	if err != nil {
		return err
	}

	var linked int64
	err = tx.Model(&models.ProjectRequestedProfile{}).
		Where("project_id = ? and profile_id in ?", projectID, profileIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != int64(len(profileIDs)) {
		return &apperrors.NotFoundError{Message: fmt.Sprintf("Error: nonexisting profile in %v", names)}
	}

	return tx.Where("project_id = ? and profile_id in ?", projectID, profileIDs).
		Delete(&models.ProjectRequestedProfile{}).Error
}

// AddUserProfiles links skill tags to a user, with the same contract as
// AddRequestedProfiles.
func (s *Store) AddUserProfiles(tx *gorm.DB, userID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	profileIDs, err := resolveProfiles(tx, names)
	if err != nil {
		return err
	}

	var linked int64
	err = tx.Model(&models.UserProfile{}).
		Where("user_id = ? and profile_id in ?", userID, profileIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != 0 {
		return &apperrors.ConflictError{Message: "Error: tried to add an already linked profile"}
	}

	links := make([]models.UserProfile, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		links = append(links, models.UserProfile{
			UserID:    userID,
			ProfileID: profileID,
		})
	}

	if err := tx.Create(&links).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "Error: tried to add an already linked profile"}
		}
		return err
	}
	return nil
}

// RemoveUserProfiles unlinks skill tags from a user.
func (s *Store) RemoveUserProfiles(tx *gorm.DB, userID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	profileIDs, err := resolveProfiles(tx, names)
	if err != nil {
		return err
	}

	var linked int64
	err = tx.Model(&models.UserProfile{}).
		Where("user_id = ? and profile_id in ?", userID, profileIDs).
		Count(&linked).Error
	if err != nil {
		return err
	}
	if linked != int64(len(profileIDs)) {
		return &apperrors.NotFoundError{Message: fmt.Sprintf("Error: nonexisting profile in %v", names)}
	}

	return tx.Where("user_id = ? and profile_id in ?", userID, profileIDs).
		Delete(&models.UserProfile{}).Error
}

// resolveProfiles maps tag names to catalog ids, failing if any name is
// missing from the catalog.
func resolveProfiles(tx *gorm.DB, names []string) ([]uint, error) {
	var profileIDs []uint
	err := tx.Model(&models.Profile{}).
		Where("profile_name in ?", names).
		Pluck("id", &profileIDs).Error
	if err != nil {
		return nil, err
	}
	if len(profileIDs) != len(names) {
		return nil, &apperrors.NotFoundError{Message: fmt.Sprintf("Error: nonexisting profile in %v", names)}
	}
	return profileIDs, nil
}
