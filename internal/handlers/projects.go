package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/store"
	"github.com/skillbridge-dev/skillbridge/internal/utils"
)

type Projects struct {
	store *store.Store
}

func NewProjects(s *store.Store) *Projects {
	return &Projects{store: s}
}

func (h *Projects) List(ctx *gin.Context) {
	views, err := h.store.ListProjects()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

func (h *Projects) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	view, err := h.store.GetProject(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// Create stores a new project with the authenticated caller as organizer.
func (h *Projects) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	fields, ok := bindFields(ctx)
	if !ok {
		return
	}

	id, err := h.store.CreateProject(currentUser.ID, fields)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "ok", "id": id})
}

// Update applies relationship pseudo-fields and the partial column update.
// Organizer or admin only.
func (h *Projects) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	project, err := h.store.GetProjectModel(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if project.OrganizerID != currentUser.ID && !currentUser.Admin() {
		respondError(ctx, &apperrors.AuthorizationError{Message: "Error: no permission to modify"})
		return
	}

	fields, ok := bindFields(ctx)
	if !ok {
		return
	}

	if err := h.store.UpdateProject(id, fields); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Delete removes a project and its join rows. Organizer or admin only.
func (h *Projects) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	project, err := h.store.GetProjectModel(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if project.OrganizerID != currentUser.ID && !currentUser.Admin() {
		respondError(ctx, &apperrors.AuthorizationError{Message: "Error: no permission to delete"})
		return
	}

	if err := h.store.DeleteProject(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}
