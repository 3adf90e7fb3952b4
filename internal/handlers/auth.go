package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/auth"
	"github.com/skillbridge-dev/skillbridge/internal/store"
	"github.com/skillbridge-dev/skillbridge/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	store *store.Store
}

func NewAuth(s *store.Store) *Auth {
	return &Auth{store: s}
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// Login checks the credentials and issues a bearer token. The same 401 is
// returned whether the identifier or the password was wrong.
func (h *Auth) Login(ctx *gin.Context) {
	var body loginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error: invalid request body"})
		return
	}

	user, err := h.store.GetUserByIdentifier(body.UsernameOrEmail)

	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password))
	}
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: invalid username or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error: internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// Info returns the merged record of the authenticated caller, identical to
// reading /users/{id} with the caller's own id.
func (h *Auth) Info(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Error: user not authenticated"})
		return
	}

	view, err := h.store.GetUser(currentUser.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}
