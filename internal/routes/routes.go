package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	"github.com/thefaderoom/faderoom-api/internal/config"
	"github.com/thefaderoom/faderoom-api/internal/handlers"
	infraRepo "github.com/thefaderoom/faderoom-api/internal/infra/repository"
	"github.com/thefaderoom/faderoom-api/internal/middleware"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
	"github.com/thefaderoom/faderoom-api/internal/stash"
	"github.com/thefaderoom/faderoom-api/internal/storage"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	stashStore := stash.NewStore(rdb, time.Duration(cfg.StashTTLMinutes)*time.Minute)
	broker := realtime.NewBroker(rdb)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	availabilityUC := ucReservation.NewGetAvailability(reservationRepo)

	createCustomerUC := ucReservation.NewCreateCustomerReservation(
		reservationRepo,
		auditDispatcher,
		broker,
	)

	createAdminUC := ucReservation.NewCreateAdminReservation(
		reservationRepo,
		auditDispatcher,
		broker,
	)

	updateStatusUC := ucReservation.NewUpdateStatus(
		reservationRepo,
		auditDispatcher,
		broker,
	)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	analyticsUC := ucReservation.NewAnalytics(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, stashStore, createCustomerUC)
	meHandler := handlers.NewMeHandler(db, reservationRepo, createCustomerUC)
	publicHandler := handlers.NewPublicHandler(db, stashStore, availabilityUC)

	reservationHandler := handlers.NewReservationHandler(
		listReservationsUC,
		createAdminUC,
		updateStatusUC,
		availabilityUC,
		broker,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, uploader, auditDispatcher)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/working-hours", publicHandler.ListWorkingHours)
			publicAPI.GET("/gallery", publicHandler.ListGallery)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/reservations/stash", publicHandler.StashReservation)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CUSTOMER (JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/reservations", meHandler.ListMyReservations)
			secured.POST("/me/reservations", meHandler.CreateReservation)
		}

		// ------------------------------
		// ADMIN (JWT + admin role)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin(db))
		{
			admin.GET("/reservations", reservationHandler.List)
			admin.GET("/reservations/stream", reservationHandler.Stream)
			admin.POST("/reservations", reservationHandler.Create)
			admin.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)

			admin.GET("/availability", reservationHandler.Availability)

			admin.GET("/working-hours", workingHoursHandler.List)
			admin.PATCH("/working-hours/:day", workingHoursHandler.UpdateDay)

			admin.GET("/working-hours/presets", workingHoursHandler.ListPresets)
			admin.POST("/working-hours/presets", workingHoursHandler.CreatePreset)
			admin.POST("/working-hours/presets/:id/apply", workingHoursHandler.ApplyPreset)
			admin.DELETE("/working-hours/presets/:id", workingHoursHandler.DeletePreset)

			admin.GET("/analytics", analyticsHandler.Get)
			admin.GET("/audit-logs", auditLogsHandler.List)

			admin.POST("/gallery", galleryHandler.Upload)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)
		}
	}
}
