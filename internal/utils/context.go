package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (types.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(types.AuthenticatedUser)

	if !ok {
		return types.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}
