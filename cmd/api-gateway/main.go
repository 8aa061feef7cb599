package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hostelhub/hostelhub-api/api/swagger"
	"github.com/hostelhub/hostelhub-api/internal/handler"
	"github.com/hostelhub/hostelhub-api/internal/middleware"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/seed"
	"github.com/hostelhub/hostelhub-api/internal/service"
	"github.com/hostelhub/hostelhub-api/internal/store"
	"github.com/hostelhub/hostelhub-api/pkg/cache"
	"github.com/hostelhub/hostelhub-api/pkg/config"
	"github.com/hostelhub/hostelhub-api/pkg/jobs"
	"github.com/hostelhub/hostelhub-api/pkg/logger"
	corsmiddleware "github.com/hostelhub/hostelhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hostelhub/hostelhub-api/pkg/middleware/requestid"
)

// @title HostelHub API
// @version 1.0.0
// @description Multi-role hostel management backend
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

	sharedStore := store.New()
	if cfg.Seed.Enabled {
		seed.Load(sharedStore, logr)
	}

	metricsSvc := service.NewMetricsService()
	observeStoreOperations(sharedStore, metricsSvc)

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled && redisClient != nil)

	queue := jobs.NewQueue("notifications", deliverNotification(logr), jobs.QueueConfig{
		Workers:    cfg.Notifications.Workers,
		BufferSize: cfg.Notifications.BufferSize,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		Logger:     logr,
	})
	queue.Start(context.Background())
	defer queue.Stop()

	userRepo := repository.NewUserRepository(sharedStore)
	studentRepo := repository.NewStudentRepository(sharedStore)
	roomRepo := repository.NewRoomRepository(sharedStore)
	staffRepo := repository.NewStaffRepository(sharedStore)
	leaveRepo := repository.NewLeaveRepository(sharedStore)
	complaintRepo := repository.NewComplaintRepository(sharedStore)
	feeRepo := repository.NewFeeRepository(sharedStore)
	healthRepo := repository.NewHealthRepository(sharedStore)
	feedbackRepo := repository.NewFeedbackRepository(sharedStore)
	notificationRepo := repository.NewNotificationRepository(sharedStore)

	validate := validator.New()

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	leaveSvc := service.NewLeaveService(leaveRepo, notificationRepo, queue, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	roomSvc := service.NewRoomService(roomRepo, studentRepo, validate, logr)
	staffSvc := service.NewStaffService(staffRepo, validate, logr)
	complaintSvc := service.NewComplaintService(complaintRepo, studentRepo, validate, logr)
	feeSvc := service.NewFeeService(feeRepo, studentRepo, validate, logr)
	healthSvc := service.NewHealthService(healthRepo, studentRepo, validate, logr)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, studentRepo, validate, logr)
	notificationSvc := service.NewNotificationService(notificationRepo, queue, validate, logr)
	dashboardSvc := service.NewDashboardService(
		leaveRepo, leaveSvc, complaintRepo, notificationRepo,
		studentRepo, roomRepo, feeSvc,
		cacheSvc, cfg.Dashboard.CacheTTL, logr,
	)

	h := &handlers{
		auth:          handler.NewAuthHandler(authSvc),
		leaves:        handler.NewLeaveHandler(leaveSvc),
		students:      handler.NewStudentHandler(studentSvc),
		rooms:         handler.NewRoomHandler(roomSvc),
		staff:         handler.NewStaffHandler(staffSvc),
		complaints:    handler.NewComplaintHandler(complaintSvc),
		fees:          handler.NewFeeHandler(feeSvc),
		health:        handler.NewHealthRecordHandler(healthSvc),
		feedback:      handler.NewFeedbackHandler(feedbackSvc),
		notifications: handler.NewNotificationHandler(notificationSvc),
		dashboard:     handler.NewDashboardHandler(dashboardSvc, metricsSvc),
	}

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

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r, cfg, authSvc, h)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// observeStoreOperations feeds collection change events into the metrics
// registry.
func observeStoreOperations(s *store.Store, metrics *service.MetricsService) {
	collections := []string{
		repository.UserCollection,
		repository.StudentCollection,
		repository.RoomCollection,
		repository.StaffCollection,
		repository.LeaveCollection,
		repository.ComplaintCollection,
		repository.FeeCollection,
		repository.HealthCollection,
		repository.FeedbackCollection,
		repository.NotificationCollection,
	}
	for _, collection := range collections {
		s.Subscribe(collection, func(ev store.Event) {
			metrics.RecordStoreOperation(ev.Collection, string(ev.Type))
		})
	}
}

// deliverNotification is the queue handler. Delivery is a log line; the
// notification record itself is already in the store by the time the job
// is enqueued.
func deliverNotification(logr *zap.Logger) jobs.Handler {
	return func(ctx context.Context, job jobs.Job) error {
		n, ok := job.Payload.(models.Notification)
		if !ok {
			logr.Sugar().Warnw("unexpected notification payload", "job_id", job.ID, "type", job.Type)
			return nil
		}
		logr.Sugar().Infow("notification delivered",
			"job_id", job.ID,
			"job_type", job.Type,
			"target_student", n.TargetStudentID,
			"title", n.Title)
		return nil
	}
}
