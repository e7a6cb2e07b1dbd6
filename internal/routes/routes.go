package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	"github.com/VioletaEstudio/salon-scheduler/internal/config"
	"github.com/VioletaEstudio/salon-scheduler/internal/handlers"
	infraRepo "github.com/VioletaEstudio/salon-scheduler/internal/infra/repository"
	"github.com/VioletaEstudio/salon-scheduler/internal/middleware"
	"github.com/VioletaEstudio/salon-scheduler/internal/reconciler"
	ucBooking "github.com/VioletaEstudio/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slotCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	rec *reconciler.Reconciler,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	assignWorkerUC := ucBooking.NewAssignWorker(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		auditDispatcher,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(
		bookingRepo,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		slotCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workerHandler := handlers.NewWorkerHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	holidayHandler := handlers.NewHolidayHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		assignWorkerUC,
		confirmBookingUC,
		rejectBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsByDateUC,
		listBookingsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	reconcilerHandler := handlers.NewReconcilerHandler(rec)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/workers", publicHandler.ListWorkers)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/workers", workerHandler.List)
			secured.POST("/me/workers", workerHandler.Create)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/holidays", holidayHandler.List)
			secured.POST("/me/holidays", holidayHandler.Create)
			secured.DELETE("/me/holidays/:id", holidayHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/assign", bookingHandler.Assign)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/reject", bookingHandler.Reject)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/me/reconciliation", reconcilerHandler.Status)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
