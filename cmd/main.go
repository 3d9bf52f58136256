package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quolls/config"
	"github.com/lshigami/Quolls/database"
	_ "github.com/lshigami/Quolls/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Quolls/internal/controller/admin"
	userctrl "github.com/lshigami/Quolls/internal/controller/user"
	"github.com/lshigami/Quolls/internal/logger"
	"github.com/lshigami/Quolls/internal/middleware"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/lshigami/Quolls/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Assessment Session API
// @version 1.0
// @description Timed, attemptable assessments: attempt lifecycle, weighted-option scoring, retake enforcement and result reads.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewAttemptRepository,
			repository.NewTrackingRepository,
		),

		// Services layer
		fx.Provide(
			service.NewDefinitionCache,
			service.NewDefinitionLoader,
			service.NewRetakePolicyService,
			service.NewSessionService,
			service.NewScoringService,
			service.NewResultService,
			service.NewTrackingService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAssessmentController,
			adminctrl.NewTrackingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	assessmentCtrl *userctrl.AssessmentController,
	trackingCtrl *adminctrl.TrackingController,
) {
	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.Auth(cfg))
	{
		assessments := apiGroup.Group("/assessments")
		assessments.GET("/:assessment_id/read", assessmentCtrl.ReadAssessment)
		assessments.POST("/submit", assessmentCtrl.SubmitAssessment)
		assessments.POST("/result/read", assessmentCtrl.ReadAssessmentResult)

		adminGroup := apiGroup.Group("/admin/assessments")
		adminGroup.POST("", trackingCtrl.CreateTracking)
		adminGroup.GET("", trackingCtrl.ListTracking)
		adminGroup.GET("/:assessment_id", trackingCtrl.GetTracking)
		adminGroup.PUT("/:assessment_id", trackingCtrl.UpdateTracking)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment session API starting on port %s", cfg.Server.Port)
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
		&model.AttemptRecord{},
		&model.AssessmentTracking{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// The store, not the application, guards the single-active-attempt
	// invariant: only one NOT_SUBMITTED generation may exist per key.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_attempt_single_active
		ON attempt_records (user_id, assessment_id, content_id, version_key)
		WHERE status = 'NOT_SUBMITTED' AND deleted_at IS NULL`).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to create single-active-attempt index")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
