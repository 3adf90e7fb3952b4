package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"github.com/skillbridge-dev/skillbridge/internal/store"
	"github.com/skillbridge-dev/skillbridge/internal/utils"
)

type Users struct {
	store *store.Store
}

func NewUsers(s *store.Store) *Users {
	return &Users{store: s}
}

func (h *Users) List(ctx *gin.Context) {
	views, err := h.store.ListUsers()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

func (h *Users) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	view, err := h.store.GetUser(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (h *Users) Create(ctx *gin.Context) {
	fields, ok := bindFields(ctx)
	if !ok {
		return
	}

	id, err := h.store.CreateUser(fields)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "ok", "id": id})
}

// Update modifies a user record. Only the user itself or an administrator may
// do so, and only an administrator may touch the permissions field.
func (h *Users) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	if currentUser.ID != id && !currentUser.Admin() {
		respondError(ctx, &apperrors.AuthorizationError{Message: "Error: no permission to modify"})
		return
	}

	fields, ok := bindFields(ctx)
	if !ok {
		return
	}

	if _, found := fields["permissions"]; found && !currentUser.Admin() {
		respondError(ctx, &apperrors.AuthorizationError{Message: "Error: no permission to change permissions"})
		return
	}

	if err := h.store.UpdateUser(id, fields); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Delete removes a user and everything that references it, including the
// projects it organizes. Self or admin only.
func (h *Users) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	if currentUser.ID != id && !currentUser.Admin() {
		respondError(ctx, &apperrors.AuthorizationError{Message: "Error: no permission to delete"})
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// idParam parses the numeric path id, answering 400 on garbage.
func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error: invalid id in path"})
		return 0, false
	}
	return uint(id), true
}

// bindFields decodes the request body into a field map for the store's
// whitelist validation, answering 400 on malformed or missing JSON.
func bindFields(ctx *gin.Context) (map[string]any, bool) {
	var fields map[string]any

	if err := ctx.ShouldBindJSON(&fields); err != nil || fields == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error: missing json content"})
		return nil, false
	}

	return fields, true
}
