package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/config"
	"github.com/hoangnln/testtrack/database"
	"github.com/hoangnln/testtrack/internal/controller"
	"github.com/hoangnln/testtrack/internal/logger"
	"github.com/hoangnln/testtrack/internal/middleware"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @title TestTrack API
// @version 1.0
// @description Test case management and execution tracking API.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewProjectRepository,
			repository.NewModuleRepository,
			repository.NewVersionRepository,
			repository.NewTestCaseRepository,
			repository.NewTestRunRepository,
			repository.NewBugRepository,
			repository.NewReportRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewUserService,
			service.NewProjectService,
			service.NewModuleService,
			service.NewVersionService,
			service.NewTestCaseService,
			service.NewTestRunService,
			service.NewBugService,
			service.NewReportService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewProjectController,
			controller.NewModuleController,
			controller.NewVersionController,
			controller.NewTestCaseController,
			controller.NewTestRunController,
			controller.NewBugController,
			controller.NewReportController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdminUser),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle. Everything except login and refresh sits behind auth.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	projectCtrl *controller.ProjectController,
	moduleCtrl *controller.ModuleController,
	versionCtrl *controller.VersionController,
	testCaseCtrl *controller.TestCaseController,
	testRunCtrl *controller.TestRunController,
	bugCtrl *controller.BugController,
	reportCtrl *controller.ReportController,
) {
	api := router.Group("/api/v1")

	api.GET("/health", controller.Health)

	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.Refresh)

	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	{
		protected.GET("/auth/me", authCtrl.Me)
		protected.POST("/auth/logout", authCtrl.Logout)

		protected.POST("/users", userCtrl.Create)
		protected.GET("/users", userCtrl.List)
		protected.GET("/users/:id", userCtrl.Get)
		protected.PUT("/users/:id", userCtrl.Update)
		protected.DELETE("/users/:id", userCtrl.Delete)

		protected.POST("/projects", projectCtrl.Create)
		protected.GET("/projects", projectCtrl.List)
		protected.GET("/projects/:id", projectCtrl.Get)
		protected.PUT("/projects/:id", projectCtrl.Update)
		protected.DELETE("/projects/:id", projectCtrl.Delete)

		protected.POST("/modules", moduleCtrl.Create)
		protected.GET("/modules", moduleCtrl.List)
		protected.GET("/modules/:id", moduleCtrl.Get)
		protected.PUT("/modules/:id", moduleCtrl.Update)
		protected.DELETE("/modules/:id", moduleCtrl.Delete)

		protected.POST("/versions", versionCtrl.Create)
		protected.GET("/versions", versionCtrl.List)
		protected.GET("/versions/:id", versionCtrl.Get)
		protected.PUT("/versions/:id", versionCtrl.Update)
		protected.DELETE("/versions/:id", versionCtrl.Delete)

		protected.POST("/test-cases", testCaseCtrl.Create)
		protected.GET("/test-cases", testCaseCtrl.List)
		protected.GET("/test-cases/stats", testCaseCtrl.Stats)
		protected.GET("/test-cases/:id", testCaseCtrl.Get)
		protected.PUT("/test-cases/:id", testCaseCtrl.Update)
		protected.DELETE("/test-cases/:id", testCaseCtrl.Delete)

		protected.POST("/test-runs", testRunCtrl.Create)
		protected.GET("/test-runs", testRunCtrl.List)
		protected.GET("/test-runs/:id", testRunCtrl.Get)
		protected.PUT("/test-runs/:id", testRunCtrl.Update)
		protected.DELETE("/test-runs/:id", testRunCtrl.Delete)

		protected.POST("/bugs", bugCtrl.Create)
		protected.GET("/bugs", bugCtrl.List)
		protected.GET("/bugs/:id", bugCtrl.Get)
		protected.PUT("/bugs/:id", bugCtrl.Update)
		protected.DELETE("/bugs/:id", bugCtrl.Delete)
		protected.POST("/bugs/:id/comments", bugCtrl.AddComment)

		protected.GET("/reports/dashboard", reportCtrl.Dashboard)
		protected.GET("/reports/test-coverage", reportCtrl.Coverage)
		protected.GET("/reports/bug-analytics", reportCtrl.BugAnalytics)
		protected.GET("/reports/user-activity", reportCtrl.UserActivity)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TestTrack API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Module{},
		&model.Version{},
		&model.TestCase{},
		&model.TestStep{},
		&model.TestRun{},
		&model.TestStepResult{},
		&model.Bug{},
		&model.BugComment{},
		&model.CaseCodeCounter{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedAdminUser creates the initial admin account on an empty users table so
// a fresh deployment has a way to log in.
func SeedAdminUser(userRepo repository.UserRepository) error {
	count, err := userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		Username:     "admin",
		Email:        "admin@testtrack.local",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(&admin); err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
		return err
	}
	log.Info().Str("username", admin.Username).Msg("Seeded initial admin user; change the default password")
	return nil
}
