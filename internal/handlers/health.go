package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const description = `Keep the data of users and projects, and present a REST api to talk
to the world.

REST call examples:
  GET    /users       Get all users
  GET    /users/{id}  Get the user information identified by "id"
  POST   /users       Create a new user
  PUT    /users/{id}  Update the user information identified by "id"
  DELETE /users/{id}  Delete user by "id"
`

// Description serves a plain summary of the API at the root path.
func Description(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.String(http.StatusOK, "<html>\n<head>\n<title>Description</title>\n</head>\n<body>\n<pre>"+description+"</pre>\n</body>\n</html>")
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
