// @title Quiz Assign API
// @version 1.0
// @description Teachers pick a quiz template, edit its details and audience, and assign it.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-assign/cmd/api/docs"
	"quiz-assign/internal/adapter"
	"quiz-assign/internal/cache"
	"quiz-assign/internal/catalog"
	"quiz-assign/internal/config"
	"quiz-assign/internal/database"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/handler"
	"quiz-assign/internal/logger"
	"quiz-assign/internal/middleware"
	"quiz-assign/internal/notify"
	"quiz-assign/internal/repository"
	"quiz-assign/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		appLogger.Fatal("Invalid timezone", zap.Error(err))
	}

	templates, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.Fatal("Failed to load template catalog", zap.Error(err))
	}
	appLogger.Info("Template catalog loaded", zap.Int("templates", templates.Len()), zap.String("path", cfg.Catalog.Path))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis가 설정되지 않으면 단일 인스턴스용 메모리 캐시 사용
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		cacheAdapter = adapter.NewMemoryCacheAdapter()
		appLogger.Warn("Redis address not configured, using in-memory cache")
	}

	db, err := database.NewSQLXOracleDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	txManager := repository.NewTransactionManagerAdapter(db)
	quizRepository := repository.NewQuizRecordDatabaseAdapter(db, txManager)
	sessionStore := repository.NewCacheSessionStore(cacheAdapter, cfg.Session.TTL)

	// Notifications
	feed := notify.NewCacheNotifier(cacheAdapter)
	notifier := notify.NewMultiNotifier(notify.NewLogNotifier(), feed)

	// Services
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	assignmentService := service.NewAssignmentService(templates, sessionStore, quizRepository, notifier, feed, loc)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	registerRoutes(app, authService, authHandler, assignmentHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}

func registerRoutes(app *fiber.App, authService service.AuthService, authHandler *handler.AuthHandler, assignmentHandler *handler.AssignmentHandler) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// 템플릿 목록은 로그인 없이 조회 가능
	api.Get("/templates", middleware.OptionalAuth(authService), assignmentHandler.GetTemplates)

	assignments := api.Group("/assignments", middleware.Protected(authService))
	assignments.Post("/", assignmentHandler.OpenSession)
	assignments.Get("/:id", assignmentHandler.GetSession)
	assignments.Put("/:id/template", assignmentHandler.SelectTemplate)
	assignments.Patch("/:id/details", assignmentHandler.UpdateDetails)
	assignments.Put("/:id/audience", assignmentHandler.SetAudience)
	assignments.Post("/:id/submit", assignmentHandler.Submit)
	assignments.Delete("/:id", assignmentHandler.CloseSession)

	api.Get("/quizzes", middleware.Protected(authService), assignmentHandler.ListQuizzes)
	api.Get("/notifications", middleware.Protected(authService), assignmentHandler.ListNotifications)
}
