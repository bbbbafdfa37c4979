package handlers

import (
	"notesapi/internal/logger"
	"notesapi/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints (public)
	h.registerAuthRoutes(router)

	// Note endpoints (token-protected)
	h.registerNoteRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerNoteRoutes(r *gin.Engine) {
	notes := r.Group("/notes", h.userIDMiddleware)
	{
		notes.GET("/", h.listNotes)
		notes.GET("/:id", h.getNote)
		notes.POST("/", h.createNote)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
		notes.POST("/:id/share", h.shareNote)
	}

	search := r.Group("/search", h.userIDMiddleware)
	{
		search.GET("/:query", h.searchNotes)
	}
}
