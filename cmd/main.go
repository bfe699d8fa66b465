package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/vehicle-inspection/config"
	"github.com/lshigami/vehicle-inspection/database"
	_ "github.com/lshigami/vehicle-inspection/docs" // Swagger docs
	adminctrl "github.com/lshigami/vehicle-inspection/internal/controller/admin"
	inspectionctrl "github.com/lshigami/vehicle-inspection/internal/controller/inspection"
	"github.com/lshigami/vehicle-inspection/internal/logger"
	"github.com/lshigami/vehicle-inspection/internal/metrics"
	"github.com/lshigami/vehicle-inspection/internal/middleware"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/lshigami/vehicle-inspection/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Vehicle Inspection API
// @version 1.0
// @description Serves the vehicle inspection checklist per car, pre-filled from the car's previous inspection, and stores completed checklist submissions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init("info", true)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			metrics.New,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewInspectionRepository,
			repository.NewAnswerRepository,
			repository.NewPhotoRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewAdminQuestionService,
			service.NewInspectionService,
		),

		fx.Provide(
			inspectionctrl.NewInspectionController,
			adminctrl.NewAdminQuestionController,
		),

		// Order matters: the logger is configured before the schema is touched, and
		// the catalog is seeded before the server accepts requests.
		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedQuestions),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// ConfigureLogger re-initialises the global logger once the configuration is known.
func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel, cfg.IsDevelopment())
}

func NewGinEngine(cfg *config.Config, m *metrics.Metrics) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 || (len(cfg.Server.CORSAllowedOrigins) == 1 && cfg.Server.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	inspectionCtrl *inspectionctrl.InspectionController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	api := router.Group("/api/v1")
	inspectionCtrl.RegisterRoutes(api)
	adminQuestionCtrl.RegisterRoutes(api.Group("/admin"))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Vehicle inspection server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedQuestions(cfg *config.Config, adminQuestionService service.AdminQuestionService) error {
	if !cfg.Seed.Questions {
		return nil
	}
	seeded, err := adminQuestionService.SeedDefaultQuestions(context.Background())
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Info().Int("questions", seeded).Msg("Seeded default inspection checklist")
	}
	return nil
}
