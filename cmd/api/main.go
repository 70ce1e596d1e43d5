// @title Quiz Zone API
// @version 1.0
// @description Public catalog, horoscope and history API of Quiz Zone, plus the admin panel API.
// @contact.name Quiz Zone
// @license.name MIT
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey AdminSession
// @in cookie
// @name admin_session
// @description Session cookie set by POST /admin/login.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-zone/cmd/api/docs"
	"quiz-zone/internal/adapter"
	"quiz-zone/internal/adapter/imagegen"
	"quiz-zone/internal/adapter/llmgen"
	"quiz-zone/internal/cache"
	"quiz-zone/internal/config"
	"quiz-zone/internal/database"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/handler"
	"quiz-zone/internal/logger"
	"quiz-zone/internal/middleware"
	"quiz-zone/internal/repository"
	"quiz-zone/internal/service"
	"quiz-zone/internal/util"
	"quiz-zone/internal/validation"
	"quiz-zone/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.Options{MaxOpenConns: cfg.DB.MaxOpen, MaxIdleConns: cfg.DB.MaxIdle})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	tagRepository := repository.NewTagDatabaseAdapter(db)
	horoscopeRepository := repository.NewHoroscopeDatabaseAdapter(db)
	pastEventRepository := repository.NewPastEventDatabaseAdapter(db)
	statsRepository := repository.NewStatsDatabaseAdapter(db)

	// Redis is optional; without it every read goes to the database
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize services
	validator := validation.NewValidator()
	catalogService := service.NewCatalogService(service.CatalogRepositories{
		Categories: categoryRepository,
		Quizzes:    quizRepository,
		Horoscopes: horoscopeRepository,
		PastEvents: pastEventRepository,
		Stats:      statsRepository,
	}, cacheAdapter, cfg, appLogger)

	adminService := service.NewAdminService(service.AdminRepositories{
		Categories: categoryRepository,
		Quizzes:    quizRepository,
		Tags:       tagRepository,
		Stats:      statsRepository,
	}, cacheAdapter, validator, time.Now, appLogger)

	authService, err := service.NewAuthService(cfg.Admin, time.Now)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	renderer, err := imagegen.NewCardRenderer(cfg.Site.Name)
	if err != nil {
		appLogger.Fatal("Failed to create card renderer", zap.Error(err))
	}

	jobRunner := service.NewJobRunner(appLogger)
	if model, err := llmgen.NewModel(cfg.LLM); err != nil {
		appLogger.Warn("LLM not configured, manual generation jobs disabled", zap.Error(err))
	} else {
		generator := llmgen.NewGenerator(model, cfg.LLM, validator, appLogger)
		jobRunner = service.NewJobRunner(appLogger,
			service.NewQuizGenerationService(categoryRepository, quizRepository, generator, util.Rand{}, cfg.Generation, appLogger),
			service.NewHoroscopeGenerationService(horoscopeRepository, generator, cacheAdapter, time.Now, cfg.Generation, appLogger),
			service.NewPastEventGenerationService(pastEventRepository, generator, cfg.Generation, appLogger),
		)
	}

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)
	apiHandler := handler.NewAPIHandler(catalogService)
	pageHandler := handler.NewPageHandler(catalogService, cfg.Site)
	imageHandler := handler.NewImageHandler(catalogService, renderer)
	sitemapHandler := handler.NewSitemapHandler(catalogService, cfg.Site.BaseURL)
	adminHandler := handler.NewAdminHandler(adminService)
	authHandler := handler.NewAuthHandler(authService, cfg.Admin.SecureCookie)
	jobHandler := handler.NewJobHandler(jobRunner)
	validationMiddleware := middleware.NewValidationMiddleware(time.Now)

	engine := html.NewFileSystem(http.FS(web.Views()), ".html")
	engine.AddFunc("inc", func(i int) int { return i + 1 })

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use("/api", cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(web.Static()), MaxAge: 86400}))

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// JSON API
	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/home", apiHandler.Home)
	apiGroup.Get("/categories", apiHandler.Categories)
	apiGroup.Get("/categories/:slug", validationMiddleware.ValidatePage(), apiHandler.CategoryPage)
	apiGroup.Get("/quizzes/:slug", apiHandler.Quiz)
	apiGroup.Post("/quizzes/:slug/score", apiHandler.Score)
	apiGroup.Get("/horoscopes", validationMiddleware.ValidateDate(), apiHandler.Horoscopes)
	apiGroup.Get("/horoscopes/:sign", validationMiddleware.ValidateDate(), apiHandler.Horoscope)
	apiGroup.Get("/history", validationMiddleware.ValidateCalendarDay(), apiHandler.HistoryDay)
	apiGroup.Get("/history/categories", apiHandler.HistoryCategories)
	apiGroup.Get("/history/category/:category", apiHandler.HistoryByCategory)

	// Sitemaps and images before the page routes that share their prefixes
	app.Get("/sitemap.xml", sitemapHandler.Quizzes)
	app.Get("/category/sitemap.xml", sitemapHandler.Categories)
	app.Get("/quiz/:slug/opengraph-image.png", imageHandler.QuizImage)
	app.Get("/horoscope/:sign/image.png", validationMiddleware.ValidateDate(), imageHandler.HoroscopeImage)

	// Pages
	app.Get("/", pageHandler.Home)
	app.Get("/category", pageHandler.Categories)
	app.Get("/category/:slug", validationMiddleware.ValidatePage(), pageHandler.Category)
	app.Get("/quiz/:slug", pageHandler.Quiz)
	app.Get("/horoscope", validationMiddleware.ValidateDate(), pageHandler.Horoscope)
	app.Get("/this-day-in-history", validationMiddleware.ValidateCalendarDay(), pageHandler.History)

	// Admin panel
	adminGroup := app.Group("/admin", middleware.AdminSession(authService))
	adminGroup.Get("/login", authHandler.LoginPage)
	adminGroup.Post("/login", authHandler.Login)
	adminGroup.Post("/logout", authHandler.Logout)
	adminGroup.Get("/", adminHandler.Dashboard)

	adminAPI := adminGroup.Group("/api")
	adminAPI.Get("/analytics", adminHandler.Analytics)
	adminAPI.Get("/quizzes", adminHandler.ListQuizzes)
	adminAPI.Post("/quizzes", adminHandler.CreateQuiz)
	adminAPI.Get("/quizzes/:id", adminHandler.GetQuiz)
	adminAPI.Put("/quizzes/:id", adminHandler.UpdateQuiz)
	adminAPI.Delete("/quizzes/:id", adminHandler.DeleteQuiz)
	adminAPI.Post("/quizzes/:id/toggle-publish", adminHandler.TogglePublish)
	adminAPI.Get("/categories", adminHandler.ListCategories)
	adminAPI.Post("/categories", adminHandler.CreateCategory)
	adminAPI.Put("/categories/:id", adminHandler.UpdateCategory)
	adminAPI.Delete("/categories/:id", adminHandler.DeleteCategory)
	adminAPI.Get("/categories/:id/subcategories", adminHandler.ListSubCategories)
	adminAPI.Post("/categories/:id/subcategories", adminHandler.CreateSubCategory)
	adminAPI.Get("/tags", adminHandler.ListTags)
	adminAPI.Post("/tags", adminHandler.CreateTag)
	adminAPI.Post("/jobs/:name", jobHandler.Trigger)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env), zap.Strings("jobs", jobRunner.Names()))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
