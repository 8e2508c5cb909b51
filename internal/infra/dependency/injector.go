// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/infra/server/router"
	"github.com/goal-planner/backend/internal/integration/cache"
	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/goal-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// Options holds the optional collaborators of the injector.
type Options struct {
	// Redis backs the recommendation cache. Nil disables caching.
	Redis *redis.Client
	// DatabaseHealth and CacheHealth are exposed on /health.
	DatabaseHealth controller.HealthChecker
	CacheHealth    controller.HealthChecker
	// Clock overrides the planner clock from the configuration.
	Clock func() time.Time
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	now := opts.Clock
	if now == nil {
		now = cfg.Planner.Now()
	}
	redisClient := opts.Redis
	currency := cfg.Planner.DefaultCurrency

	// Create repositories and adapters
	goalRepo := persistence.NewGoalRepository(db)

	var recommendationCache adapter.RecommendationCache
	if redisClient != nil {
		recommendationCache = cache.NewRecommendationCache(redisClient, cfg.Redis.TTL)
	}

	// Create domain services
	validator := service.NewGoalValidationService()
	calculator := service.NewGoalCalculationService(service.WithClock(now))
	recommender := service.NewGoalRecommendationService()

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, validator, currency)
	goalController := controller.NewGoalController(controller.GoalUseCases{
		List:           goal.NewListGoalsUseCase(goalRepo, validator),
		Create:         createGoalUseCase,
		Get:            goal.NewGetGoalUseCase(goalRepo, calculator),
		Update:         goal.NewUpdateGoalUseCase(goalRepo),
		UpdateStatus:   goal.NewUpdateGoalStatusUseCase(goalRepo),
		Delete:         goal.NewDeleteGoalUseCase(goalRepo),
		Validate:       goal.NewValidateGoalUseCase(goalRepo, validator, calculator),
		CheckConflicts: goal.NewCheckGoalConflictsUseCase(goalRepo, validator, currency),
		Import:         goal.NewImportGoalsUseCase(createGoalUseCase),
	})

	// Create recommendation use cases
	recommendationController := controller.NewRecommendationController(
		goal.NewRecommendGoalsUseCase(goalRepo, recommender, recommendationCache, currency),
		goal.NewAcceptRecommendationUseCase(createGoalUseCase, now),
	)

	healthController := controller.NewHealthController(opts.DatabaseHealth, opts.CacheHealth)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && cfg.Server.Environment != "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	r := router.NewRouter(healthController, goalController, recommendationController, rateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		RateLimiter: rateLimiter,
		Router:      r,
	}
}
