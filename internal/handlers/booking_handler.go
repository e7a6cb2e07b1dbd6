package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/middleware"
	usecase "github.com/VioletaEstudio/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *usecase.CreateBooking
	assignUC   *usecase.AssignWorker
	confirmUC  *usecase.ConfirmBooking
	rejectUC   *usecase.RejectBooking
	cancelUC   *usecase.CancelBooking
	completeUC *usecase.CompleteBooking
	byDateUC   *usecase.ListBookingsByDate
	byMonthUC  *usecase.ListBookingsByMonth
}

func NewBookingHandler(
	createUC *usecase.CreateBooking,
	assignUC *usecase.AssignWorker,
	confirmUC *usecase.ConfirmBooking,
	rejectUC *usecase.RejectBooking,
	cancelUC *usecase.CancelBooking,
	completeUC *usecase.CompleteBooking,
	byDateUC *usecase.ListBookingsByDate,
	byMonthUC *usecase.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		assignUC:   assignUC,
		confirmUC:  confirmUC,
		rejectUC:   rejectUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	WorkerID    *uint  `json:"worker_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
	Policy      string `json:"cancellation_policy"`
}

type RejectBookingRequest struct {
	Motive string `json:"motive"`
}

type AssignWorkerRequest struct {
	WorkerID uint `json:"worker_id" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingError traduce los errores de negocio del caso de uso a
// respuestas HTTP; cualquier otro error es un 500 genérico.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio inválido.")
	case httperr.IsBusiness(err, "worker_not_found"):
		httperr.BadRequest(c, "worker_not_found", "Profesional no encontrada.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválidas.")
	case httperr.IsBusiness(err, "invalid_service_duration"):
		httperr.BadRequest(c, "invalid_service_duration", "El servicio no tiene duración configurada.")
	case httperr.IsBusiness(err, "invalid_cancellation_policy"):
		httperr.BadRequest(c, "invalid_cancellation_policy", "Política de cancelación inválida.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "La reserva requiere más antelación.")
	case httperr.IsBusiness(err, "salon_closed"):
		httperr.BadRequest(c, "salon_closed", "El salón está cerrado ese día.")
	case httperr.IsBusiness(err, "outside_opening_hours"):
		httperr.BadRequest(c, "outside_opening_hours", "Fuera del horario de apertura.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fuera del horario de la profesional.")
	case httperr.IsBusiness(err, "worker_cannot_perform_service"):
		httperr.BadRequest(c, "worker_cannot_perform_service", "La profesional no realiza ese servicio.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Ya existe una reserva en ese horario.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "La reserva no admite esa transición.")
	default:
		httperr.Internal(c, "booking_operation_failed", "Error al procesar la reserva.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), usecase.CreateBookingInput{
		SalonID:     salonID,
		WorkerID:    req.WorkerID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Policy:      req.Policy,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Assign(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := paramID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	var req AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.assignUC.Execute(c.Request.Context(), salonID, userID, bookingID, req.WorkerID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := paramID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), salonID, userID, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := paramID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	var req RejectBookingRequest
	_ = c.ShouldBindJSON(&req) // motive es opcional

	b, err := h.rejectUC.Execute(c.Request.Context(), salonID, userID, bookingID, req.Motive)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := paramID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, penalty, err := h.cancelUC.Execute(c.Request.Context(), salonID, userID, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"penalty": penalty,
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := paramID(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), salonID, userID, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.byDateUC.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar las reservas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_period", "Año o mes inválidos.")
		return
	}

	out, err := h.byMonthUC.Execute(c.Request.Context(), salonID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar las reservas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}
