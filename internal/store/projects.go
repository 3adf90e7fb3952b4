package store

import (
	"errors"
	"fmt"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"gorm.io/gorm"
)

var (
	projectRequired  = []string{"name", "summary", "needs", "description"}
	projectOptional  = []string{"id", "url", "img_bg", "img1", "img2"}
	projectUpdatable = []string{"name", "summary", "description", "needs", "url", "img_bg", "img1", "img2"}
)

// CreateProject stores a project organized by the given user. The payload may
// carry an explicit id; otherwise the store assigns one.
func (s *Store) CreateProject(organizerID uint, fields map[string]any) (uint, error) {
	if err := validateFields("project", fields, projectRequired, projectOptional); err != nil {
		return 0, err
	}

	id, err := uintField(fields, "id")
	if err != nil {
		return 0, err
	}

	text := make(map[string]string, len(fields))
	for _, field := range []string{"name", "summary", "needs", "description", "url", "img_bg", "img1", "img2"} {
		value, err := stringField(fields, field)
		if err != nil {
			return 0, err
		}
		text[field] = value
	}

	project := models.Project{
		ID:          id,
		OrganizerID: organizerID,
		Name:        text["name"],
		Summary:     text["summary"],
		Description: text["description"],
		Needs:       text["needs"],
		URL:         text["url"],
		ImgBg:       text["img_bg"],
		Img1:        text["img1"],
		Img2:        text["img2"],
	}

	if err := s.db.Create(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &apperrors.ConflictError{Message: fmt.Sprintf("Error: project id %d already exists", id)}
		}
		return 0, err
	}

	return project.ID, nil
}

// GetProject returns the merged, stripped view of one project: base columns
// plus participant ids and requested profile tags.
func (s *Store) GetProject(id uint) (map[string]any, error) {
	var project models.Project

	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UnknownProjectID(id)
		}
		return nil, err
	}

	return s.projectView(s.db, &project)
}

// ListProjects returns the merged, stripped view of every project, ordered by id.
func (s *Store) ListProjects() ([]map[string]any, error) {
	var projects []models.Project

	if err := s.db.Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}

	views := make([]map[string]any, 0, len(projects))
	for i := range projects {
		view, err := s.projectView(s.db, &projects[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *Store) projectView(tx *gorm.DB, project *models.Project) (map[string]any, error) {
	var participants []uint
	err := tx.Model(&models.ProjectMembership{}).
		Where("project_id = ?", project.ID).
		Order("user_id asc").
		Pluck("user_id", &participants).Error
	if err != nil {
		return nil, err
	}

	var requested []string
	err = tx.Model(&models.Profile{}).
		Joins("join project_requested_profiles on project_requested_profiles.profile_id = profiles.id").
		Where("project_requested_profiles.project_id = ?", project.ID).
		Order("profiles.profile_name asc").
		Pluck("profiles.profile_name", &requested).Error
	if err != nil {
		return nil, err
	}

	return strip(map[string]any{
		"id":                 project.ID,
		"organizer":          project.OrganizerID,
		"name":               project.Name,
		"summary":            project.Summary,
		"description":        project.Description,
		"needs":              project.Needs,
		"url":                project.URL,
		"img_bg":             project.ImgBg,
		"img1":               project.Img1,
		"img2":               project.Img2,
		"participants":       participants,
		"requested_profiles": requested,
	}), nil
}

// UpdateProject applies relationship pseudo-fields and the remaining column
// update inside one transaction, so concurrent requests against the same
// project cannot interleave between validation and mutation.
func (s *Store) UpdateProject(id uint, fields map[string]any) error {
	addParticipants, err := popUintSlice(fields, "addParticipants")
	if err != nil {
		return err
	}
	delParticipants, err := popUintSlice(fields, "delParticipants")
	if err != nil {
		return err
	}
	addProfiles, err := popStringSlice(fields, "addProfiles")
	if err != nil {
		return err
	}
	delProfiles, err := popStringSlice(fields, "delProfiles")
	if err != nil {
		return err
	}

	if err := validateFields("project", fields, nil, projectUpdatable); err != nil {
		return err
	}

	updates := make(map[string]any, len(fields))
	for field := range fields {
		value, err := stringField(fields, field)
		if err != nil {
			return err
		}
		updates[field] = value
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.UnknownProjectID(id)
			}
			return err
		}

		if err := s.AddParticipants(tx, id, addParticipants); err != nil {
			return err
		}
		if err := s.RemoveParticipants(tx, id, delParticipants); err != nil {
			return err
		}
		if err := s.AddRequestedProfiles(tx, id, addProfiles); err != nil {
			return err
		}
		if err := s.RemoveRequestedProfiles(tx, id, delProfiles); err != nil {
			return err
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error
	})
}

// DeleteProject removes the project and every join row referencing it.
func (s *Store) DeleteProject(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.UnknownProjectID(id)
			}
			return err
		}

		return deleteProject(tx, id)
	})
}

// deleteProject cascades within the caller's transaction.
func deleteProject(tx *gorm.DB, id uint) error {
	if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMembership{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.ProjectRequestedProfile{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Project{}, id).Error
}

// GetProjectModel returns the raw project row, without the merged view.
func (s *Store) GetProjectModel(id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UnknownProjectID(id)
		}
		return nil, err
	}

	return &project, nil
}

// ResolveProjectName maps a project name to its numeric id.
func (s *Store) ResolveProjectName(name string) (uint, error) {
	var project models.Project

	if err := s.db.Where("name = ?", name).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &apperrors.NotFoundError{Message: fmt.Sprintf("Error: unknown project name %q", name)}
		}
		return 0, err
	}

	return project.ID, nil
}
