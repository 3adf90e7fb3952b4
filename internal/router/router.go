package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skillbridge-dev/skillbridge/internal/handlers"
	"github.com/skillbridge-dev/skillbridge/internal/middleware"
	"github.com/skillbridge-dev/skillbridge/internal/store"
	"github.com/skillbridge-dev/skillbridge/internal/types"
	"gorm.io/gorm"
)

// New wires the store and handlers onto the route table. Reads are public;
// every mutating route and /info require authentication.
func New(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := store.New(db)
	authHandler := handlers.NewAuth(s)
	usersHandler := handlers.NewUsers(s)
	projectsHandler := handlers.NewProjects(s)
	resolveHandler := handlers.NewResolve(s)

	authRequired := middleware.Auth(s)

	r.GET("/", handlers.Description)
	r.GET("/health", handlers.HealthCheck)

	r.POST("/login", authHandler.Login)
	r.GET("/info", authRequired, authHandler.Info)
	r.GET("/id/*name", resolveHandler.Name)

	users := r.Group("/users")
	{
		users.GET("", usersHandler.List)
		users.GET("/:id", usersHandler.Get)
		users.POST("", usersHandler.Create)
		users.PUT("/:id", authRequired, usersHandler.Update)
		users.DELETE("/:id", authRequired, usersHandler.Delete)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", projectsHandler.List)
		projects.GET("/:id", projectsHandler.Get)
		projects.POST("", authRequired, projectsHandler.Create)
		projects.PUT("/:id", authRequired, projectsHandler.Update)
		projects.DELETE("/:id", authRequired, projectsHandler.Delete)
	}

	return r
}
