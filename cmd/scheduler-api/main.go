package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/agathon991/class-schedule-creator/api/swagger"
	"github.com/agathon991/class-schedule-creator/internal/catalog"
	"github.com/agathon991/class-schedule-creator/internal/handler"
	"github.com/agathon991/class-schedule-creator/internal/middleware"
	"github.com/agathon991/class-schedule-creator/internal/repository"
	"github.com/agathon991/class-schedule-creator/internal/service"
	"github.com/agathon991/class-schedule-creator/pkg/cache"
	"github.com/agathon991/class-schedule-creator/pkg/config"
	"github.com/agathon991/class-schedule-creator/pkg/database"
	"github.com/agathon991/class-schedule-creator/pkg/logger"
	corsmiddleware "github.com/agathon991/class-schedule-creator/pkg/middleware/cors"
	reqidmiddleware "github.com/agathon991/class-schedule-creator/pkg/middleware/requestid"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// @title Class Schedule Creator API
// @version 1.0.0
// @description Resource planning and timetable generation for a four-year high school
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	cat, err := loadCatalog(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("catalog load failed", "error", err)
	}

	var planCache *repository.PlanCache
	if cfg.Scheduler.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, plan cache disabled", "error", err)
		} else {
			planCache = repository.NewPlanCache(redisClient, cfg.Scheduler.PlanCacheTTL)
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	runStore := service.NewRunStore(cfg.Scheduler.RunTTL)

	var calc *service.ResourceCalculatorService
	if planCache != nil {
		calc = service.NewResourceCalculatorService(cat, planCache, validate, logr)
	} else {
		calc = service.NewResourceCalculatorService(cat, nil, validate, logr)
	}
	scheduler := service.NewSchedulerService(cat, calc, runStore, metricsSvc, validate, logr)
	capacity := service.NewCapacityService(calc, validate, logr)
	catalogSvc := service.NewCatalogService(cat, logr)
	reports := service.NewReportService(cat, logr)

	handlers := apiHandlers{
		catalog:  handler.NewCatalogHandler(catalogSvc),
		plan:     handler.NewPlanHandler(calc, reports),
		schedule: handler.NewScheduleHandler(scheduler, reports),
		capacity: handler.NewCapacityHandler(capacity),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := newRouter(cfg, logr, metricsSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "catalog", cfg.Catalog.Source)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

type apiHandlers struct {
	catalog  *handler.CatalogHandler
	plan     *handler.PlanHandler
	schedule *handler.ScheduleHandler
	capacity *handler.CapacityHandler
}

// newRouter assembles the middleware chain and routes. Operational
// endpoints stay at the root; the API proper lives under the configured
// prefix so a gateway can route by path.
func newRouter(cfg *config.Config, logr *zap.Logger, metricsSvc *service.MetricsService, h apiHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	api.GET("/catalog/courses", h.catalog.ListCourses)
	api.GET("/catalog/courses/:code", h.catalog.GetCourse)
	api.GET("/catalog/paths", h.catalog.ListPaths)
	api.GET("/catalog/facilities", h.catalog.Facilities)

	guarded := api.Group("", middleware.JWT(cfg.JWT.Secret, cfg.JWT.Expiration))
	guarded.POST("/resource-plan", h.plan.Compute)
	guarded.POST("/schedule", h.schedule.Build)
	guarded.POST("/capacity/check", h.capacity.Check)

	api.GET("/resource-plan/export", h.plan.Export)
	api.GET("/schedule/:runId", h.schedule.Get)
	api.GET("/schedule/:runId/export", h.schedule.Export)
	api.GET("/schedule/:runId/teachers/export", h.schedule.ExportTeacherLoad)
	api.GET("/capacity/max-enrollment", h.capacity.MaxEnrollment)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}

// loadCatalog resolves the course catalog from the configured source.
// The builtin catalog works with no external services; the postgres
// source pulls offerings from a registrar database at startup.
func loadCatalog(cfg *config.Config, logr *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		defer db.Close()

		repo := repository.NewCatalogRepository(db)
		ctx := context.Background()
		courses, err := repo.LoadCourses(ctx)
		if err != nil {
			return nil, err
		}
		paths, err := repo.LoadPaths(ctx)
		if err != nil {
			return nil, err
		}
		logr.Sugar().Infow("catalog loaded from database", "courses", len(courses), "paths", len(paths))
		return catalog.New(courses, paths)
	default:
		return catalog.Builtin()
	}
}
