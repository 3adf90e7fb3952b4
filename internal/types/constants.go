package types

import (
	"os"
	"strings"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "user"

// AuthenticatedUser is the identity the auth middleware binds to a request.
type AuthenticatedUser struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Permissions string `json:"-"`
}

// Admin reports whether the administrative capability bit is set.
func (u AuthenticatedUser) Admin() bool {
	return len(u.Permissions) > 0 && u.Permissions[0] == 'a'
}

// AllowedOrigins returns the CORS origin whitelist: localhost development
// origins plus whatever ALLOWED_ORIGINS (comma-separated) adds.
func AllowedOrigins() []string {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
