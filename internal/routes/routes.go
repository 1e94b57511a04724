package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/audit"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/cache"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/config"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/esthetic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/booking"
	ucConfig "github.com/BruksfildServices01/esthetic-scheduler/internal/usecase/calendarcfg"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	configCache := cache.NewConfigCache(rdb, 10*time.Minute)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — CONFIG
	// ======================================================
	resolveConfigUC := ucConfig.NewResolve(bookingRepo, configCache)

	updateConfigUC := ucConfig.NewUpdate(
		bookingRepo,
		configCache,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		resolveConfigUC,
		auditDispatcher,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		resolveConfigUC,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		resolveConfigUC,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		transitionBookingUC,
		listBookingsUC,
	)

	disponibilidadeHandler := handlers.NewDisponibilidadeHandler(availabilityUC)
	configHandler := handlers.NewConfigHandler(resolveConfigUC, updateConfigUC)

	servicoHandler := handlers.NewServicoHandler(db)
	profissionalHandler := handlers.NewProfissionalHandler(db)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 AGENDAMENTOS (recepção)
		// ------------------------------
		api.GET("/agendamentos", agendamentoHandler.List)
		api.POST("/agendamentos", agendamentoHandler.Create)
		api.PUT("/agendamentos/:id", agendamentoHandler.Update)
		api.DELETE("/agendamentos/:id", agendamentoHandler.Cancel)
		api.PATCH("/agendamentos/:id/status", agendamentoHandler.ChangeStatus)

		// ------------------------------
		// 🗓️ DISPONIBILIDADE
		// ------------------------------
		api.GET("/disponibilidade/:profissional_id/:data", disponibilidadeHandler.Get)

		// ------------------------------
		// ⚙️ CONFIG / CATÁLOGO (leitura)
		// ------------------------------
		api.GET("/config", configHandler.Get)

		api.GET("/servicos", servicoHandler.List)
		api.GET("/servicos/:id", servicoHandler.Get)

		api.GET("/profissionais", profissionalHandler.List)
		api.GET("/profissionais/:id", profissionalHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA (admin)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PUT("/config", configHandler.Update)

			secured.POST("/servicos", servicoHandler.Create)
			secured.PATCH("/servicos/:id", servicoHandler.Update)

			secured.POST("/profissionais", profissionalHandler.Create)
			secured.PATCH("/profissionais/:id", profissionalHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
