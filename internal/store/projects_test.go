package store

import (
	"testing"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectExplicitID(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")

	id, err := s.CreateProject(organizerID, map[string]any{
		"id":          float64(1000),
		"name":        "Test project",
		"summary":     "This is a summary.",
		"needs":       "We need nothing here.",
		"description": "This is an empty description.",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1000), id)

	view, err := s.GetProject(1000)
	require.NoError(t, err)
	assert.Equal(t, organizerID, view["organizer"])
	assert.Equal(t, "Test project", view["name"])
	assert.NotContains(t, view, "url", "empty fields are stripped")
	assert.NotContains(t, view, "participants")
	assert.NotContains(t, view, "requested_profiles")
}

func TestCreateProjectAssignedID(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	require.NotZero(t, id)

	view, err := s.GetUser(organizerID)
	require.NoError(t, err)
	assert.Equal(t, []uint{id}, view["projects_created"])
}

func TestCreateProjectDuplicateID(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")

	payload := map[string]any{
		"id":          float64(1000),
		"name":        "Test project",
		"summary":     "s",
		"needs":       "n",
		"description": "d",
	}

	_, err := s.CreateProject(organizerID, payload)
	require.NoError(t, err)

	_, err = s.CreateProject(organizerID, payload)
	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestCreateProjectMissingRequired(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")

	_, err := s.CreateProject(organizerID, map[string]any{"name": "Test project"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "project_missing_required", validationErr.Message)
}

func TestCreateProjectUnknownField(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")

	_, err := s.CreateProject(organizerID, map[string]any{
		"name":        "Test project",
		"summary":     "s",
		"needs":       "n",
		"description": "d",
		"organizer":   float64(99),
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "bad_entry", validationErr.Message)
}

func TestUpdateProjectRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	require.NoError(t, s.UpdateProject(id, map[string]any{"name": "changed"}))

	view, err := s.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, "changed", view["name"])
	assert.Equal(t, "This is a summary.", view["summary"])
}

func TestUpdateProjectUnknownField(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	// organizer is immutable after creation, so it is outside the whitelist.
	err := s.UpdateProject(id, map[string]any{"organizer": float64(99)})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateProjectUnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateProject(42, map[string]any{"name": "changed"})

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

// Full participant lifecycle: add through the pseudo-field, see the id in
// the merged views of both the project and the user, remove it again.
func TestProjectParticipantLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	participantID := mustCreateUser(t, s, "participant@ucm.es")

	_, err := s.CreateProject(organizerID, map[string]any{
		"id":          float64(1000),
		"name":        "Test project",
		"summary":     "s",
		"needs":       "n",
		"description": "d",
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateProject(1000, map[string]any{
		"addParticipants": []any{float64(participantID)},
	}))

	view, err := s.GetProject(1000)
	require.NoError(t, err)
	assert.Equal(t, []uint{participantID}, view["participants"])

	userView, err := s.GetUser(participantID)
	require.NoError(t, err)
	assert.Equal(t, []uint{uint(1000)}, userView["projects_joined"])

	require.NoError(t, s.UpdateProject(1000, map[string]any{
		"delParticipants": []any{float64(participantID)},
	}))

	view, err = s.GetProject(1000)
	require.NoError(t, err)
	assert.NotContains(t, view, "participants")
}

func TestUpdateProjectMixedColumnsAndPseudoFields(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	participantID := mustCreateUser(t, s, "participant@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	require.NoError(t, s.UpdateProject(id, map[string]any{
		"name":            "changed",
		"addParticipants": []any{float64(participantID)},
	}))

	view, err := s.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, "changed", view["name"])
	assert.Equal(t, []uint{participantID}, view["participants"])
}

func TestDeleteProjectCascades(t *testing.T) {
	s, gdb := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	participantID := mustCreateUser(t, s, "participant@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	_, err := s.CreateProfile("python")
	require.NoError(t, err)
	require.NoError(t, s.UpdateProject(id, map[string]any{
		"addParticipants": []any{float64(participantID)},
		"addProfiles":     []any{"python"},
	}))

	require.NoError(t, s.DeleteProject(id))

	_, err = s.GetProject(id)
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	var memberships, requested int64
	require.NoError(t, gdb.Model(&models.ProjectMembership{}).Count(&memberships).Error)
	require.NoError(t, gdb.Model(&models.ProjectRequestedProfile{}).Count(&requested).Error)
	assert.Zero(t, memberships)
	assert.Zero(t, requested)

	// Participant survives; only links to the project are gone.
	_, err = s.GetUser(participantID)
	assert.NoError(t, err)
}

func TestDeleteProjectUnknown(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.DeleteProject(42)

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestResolveProjectName(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")
	id := mustCreateProject(t, s, organizerID, "Test project")

	resolved, err := s.ResolveProjectName("Test project")
	require.NoError(t, err)
	assert.Equal(t, id, resolved)

	_, err = s.ResolveProjectName("nothing here")
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListProjectsOrdered(t *testing.T) {
	s, _ := newTestStore(t)

	organizerID := mustCreateUser(t, s, "organizer@ucm.es")

	_, err := s.CreateProject(organizerID, map[string]any{
		"id": float64(2000), "name": "b", "summary": "s", "needs": "n", "description": "d",
	})
	require.NoError(t, err)
	_, err = s.CreateProject(organizerID, map[string]any{
		"id": float64(1000), "name": "a", "summary": "s", "needs": "n", "description": "d",
	})
	require.NoError(t, err)

	views, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(1000), views[0]["id"])
	assert.Equal(t, uint(2000), views[1]["id"])
}
