package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/LeoNarD1812/backendpruebas/api/swagger"
	"github.com/LeoNarD1812/backendpruebas/internal/handler"
	"github.com/LeoNarD1812/backendpruebas/internal/middleware"
	"github.com/LeoNarD1812/backendpruebas/internal/repository"
	"github.com/LeoNarD1812/backendpruebas/internal/service"
	"github.com/LeoNarD1812/backendpruebas/pkg/cache"
	"github.com/LeoNarD1812/backendpruebas/pkg/config"
	"github.com/LeoNarD1812/backendpruebas/pkg/database"
	"github.com/LeoNarD1812/backendpruebas/pkg/jobs"
	"github.com/LeoNarD1812/backendpruebas/pkg/logger"
	corsmiddleware "github.com/LeoNarD1812/backendpruebas/pkg/middleware/cors"
	reqidmiddleware "github.com/LeoNarD1812/backendpruebas/pkg/middleware/requestid"
)

// @title Sysasistencia API
// @version 1.0.0
// @description Event attendance backend: sessions, small groups, attendance and navigation menus
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Menu.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, menu cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Menu.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	validate := validator.New()

	personRepo := repository.NewPersonRepository(db)
	eventRepo := repository.NewEventRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	accessRepo := repository.NewAccessRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	personSvc := service.NewPersonService(personRepo, validate, logr)
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	groupSvc := service.NewGroupService(groupRepo, eventRepo, validate, logr)
	participantSvc := service.NewParticipantService(participantRepo, groupRepo, personRepo, db, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, eventRepo, personRepo, participantRepo, validate, logr)
	menuSvc := service.NewMenuService(accessRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(attendanceSvc, eventRepo, logr)

	sweepSvc := service.NewSweepService(attendanceRepo, eventRepo, nil, logr)
	sweepQueue := jobs.NewQueue("absence-sweep", sweepSvc.HandleJob, jobs.QueueConfig{
		Workers:    cfg.Sweep.Workers,
		MaxRetries: cfg.Sweep.MaxRetries,
		RetryDelay: cfg.Sweep.RetryDelay,
		Logger:     logr,
	})
	sweepSvc.AttachQueue(sweepQueue)
	sweepQueue.Start(context.Background())
	defer sweepQueue.Stop()

	authHandler := handler.NewAuthHandler(authSvc)
	personHandler := handler.NewPersonHandler(personSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	groupHandler := handler.NewGroupHandler(groupSvc)
	participantHandler := handler.NewParticipantHandler(participantSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc, sweepSvc, exportSvc)
	menuHandler := handler.NewMenuHandler(menuSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/personas", personHandler.List)
		protected.GET("/personas/:id", personHandler.Get)
		protected.POST("/personas", personHandler.Create)
		protected.GET("/personas/:id/asistencias", attendanceHandler.ListByPerson)

		protected.GET("/eventos", eventHandler.ListGeneral)
		protected.GET("/eventos/:id", eventHandler.GetGeneral)
		protected.POST("/eventos", eventHandler.CreateGeneral)
		protected.GET("/eventos/:id/sesiones", eventHandler.ListSessions)
		protected.GET("/eventos/:id/grupos", groupHandler.ListByGeneralEvent)
		protected.GET("/eventos/:id/reporte", attendanceHandler.Report)
		protected.GET("/eventos/:id/reporte/export", attendanceHandler.ExportReport)

		protected.GET("/sesiones/:id", eventHandler.GetSession)
		protected.POST("/sesiones", eventHandler.CreateSession)
		protected.GET("/sesiones/:id/asistencias", attendanceHandler.ListBySession)
		protected.POST("/sesiones/:id/cerrar", attendanceHandler.CloseSession)

		protected.GET("/grupos/:id", groupHandler.Get)
		protected.POST("/grupos", groupHandler.Create)
		protected.GET("/grupos/:id/participantes", participantHandler.ListByGroup)
		protected.POST("/grupos/:id/participantes", participantHandler.Add)
		protected.DELETE("/participantes/:id", participantHandler.Remove)

		protected.POST("/asistencias", attendanceHandler.Register)

		protected.GET("/menu/web", menuHandler.Web)
		protected.GET("/menu/movil", menuHandler.Mobile)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
