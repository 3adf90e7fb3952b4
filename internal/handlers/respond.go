package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
)

// respondError maps the error taxonomy to transport status codes in one
// place: validation and uniqueness conflicts 400, authentication 401,
// authorization 403, unknown entity ids 409. Anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		body := gin.H{"message": validationErr.Message}
		if validationErr.Description != "" {
			body["description"] = validationErr.Description
		}
		ctx.JSON(http.StatusBadRequest, body)
		return
	}

	var authnErr *apperrors.AuthenticationError
	if errors.As(err, &authnErr) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": authnErr.Message})
		return
	}

	var authzErr *apperrors.AuthorizationError
	if errors.As(err, &authzErr) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": authzErr.Message})
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		ctx.JSON(http.StatusConflict, gin.H{"message": notFoundErr.Message})
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": conflictErr.Message})
		return
	}

	log.Printf("Internal error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error: internal server error"})
}
