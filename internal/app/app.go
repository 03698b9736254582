package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hire_assess_backend/internal/config"
	"hire_assess_backend/internal/controller"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/service"
	"hire_assess_backend/pkg/configwatcher"
	"hire_assess_backend/pkg/database"
	"hire_assess_backend/pkg/logger"
	"hire_assess_backend/pkg/monitoring"
	"hire_assess_backend/pkg/security"
	"hire_assess_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user                repository.UserRepository
	company             repository.CompanyRepository
	question            repository.QuestionRepository
	assessment          repository.AssessmentRepository
	candidateAssessment repository.CandidateAssessmentRepository
}

type services struct {
	auth                *service.AuthService
	user                *service.UserService
	company             *service.CompanyService
	question            *service.QuestionService
	assessment          *service.AssessmentService
	candidateAssessment *service.CandidateAssessmentService
	storage             *service.StorageService
}

type controllers struct {
	auth                *controller.AuthController
	user                *controller.UserController
	company             *controller.CompanyController
	question            *controller.QuestionController
	assessment          *controller.AssessmentController
	candidateAssessment *controller.CandidateAssessmentController
	health              *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:                repository.NewUserRepository(db),
		company:             repository.NewCompanyRepository(db),
		question:            repository.NewQuestionRepository(db),
		assessment:          repository.NewAssessmentRepository(db),
		candidateAssessment: repository.NewCandidateAssessmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.company = service.NewCompanyService(repos.company)
	s.question = service.NewQuestionService(repos.question)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.question)
	s.candidateAssessment = service.NewCandidateAssessmentService(
		repos.candidateAssessment,
		repos.user,
		repos.assessment,
		repos.question,
		rdb,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:                controller.NewAuthController(s.auth, s.user),
		user:                controller.NewUserController(s.user, s.storage),
		company:             controller.NewCompanyController(s.company),
		question:            controller.NewQuestionController(s.question),
		assessment:          controller.NewAssessmentController(s.assessment),
		candidateAssessment: controller.NewCandidateAssessmentController(s.candidateAssessment),
		health:              controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// Hot-reload config edits; registered callbacks pick up the new values.
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(newCfg interface{}) {
		updated, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		for _, callback := range a.configCallbacks {
			callback(updated)
		}
		logger.Log.Info("configuration reloaded")
	})

	// Sweep in_progress runs past their assessment time limit into expired.
	go func() {
		interval := time.Duration(a.Config.Lifecycle.ExpirySweepSeconds) * time.Second
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if err := s.candidateAssessment.ExpireOverdue(); err != nil {
				logger.Log.Error("expiry sweep error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("hiring-assessment-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
