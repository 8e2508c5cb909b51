// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	goalController           *controller.GoalController
	recommendationController *controller.RecommendationController
	rateLimiter              *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// rateLimiter may be nil to disable request limiting.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	recommendationController *controller.RecommendationController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		goalController:           goalController,
		recommendationController: recommendationController,
		rateLimiter:              rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	users := v1.Group("/users/:user_id")
	users.Use(middleware.UserScope())
	if r.rateLimiter != nil {
		users.Use(r.rateLimiter.Middleware())
	}

	if r.goalController != nil {
		goals := users.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/export", r.goalController.Export)
			goals.POST("/import", r.goalController.Import)
			goals.POST("/check-conflicts", r.goalController.CheckConflicts)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/status", r.goalController.UpdateStatus)
			goals.GET("/:id/validation", r.goalController.Validate)
		}
	}

	if r.recommendationController != nil {
		recommendations := users.Group("/recommendations")
		{
			recommendations.POST("", r.recommendationController.Recommend)
			recommendations.POST("/accept", r.recommendationController.Accept)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
