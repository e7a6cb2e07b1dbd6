package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
	"github.com/VioletaEstudio/salon-scheduler/internal/timezone"
	usecase "github.com/VioletaEstudio/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *usecase.GetAvailability
	createUC       *usecase.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *usecase.GetAvailability,
	createUC *usecase.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	WorkerID    *uint  `json:"worker_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salón no encontrado.")
		return nil, false
	}
	return &salon, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := domain.NormalizeCategory(c.Query("category"))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// WORKERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListWorkers(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var workers []models.User
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&workers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_workers", "Error al listar profesionales.")
		return
	}

	if category := c.Query("category"); category != "" {
		workers = domain.FilterWorkersByCategory(workers, category)
	}

	out := make([]gin.H, 0, len(workers))
	for i := range workers {
		w := &workers[i]
		out = append(out, gin.H{
			"id":          w.ID,
			"name":        w.Name,
			"category":    w.Category,
			"specialties": domain.ParseSpecialties(w.Specialties),
		})
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DEL CASO DE USO)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	workerIDStr := c.Query("worker_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y servicio son obligatorios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	var workerIDs []uint
	if workerIDStr != "" {
		workerID, err := strconv.ParseUint(workerIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_worker_id", "Profesional inválida.")
			return
		}
		workerIDs = []uint{uint(workerID)}
	} else {
		// sin profesional elegida, la disponibilidad es la unión de las
		// que pueden atender el servicio
		ids, ok := h.capableWorkerIDs(c, salon.ID, uint(serviceID))
		if !ok {
			return
		}
		workerIDs = ids
	}

	merged := map[string]domain.Slot{}
	for _, workerID := range workerIDs {
		slots, err := h.availabilityUC.Execute(
			c.Request.Context(),
			domain.AvailabilityInput{
				SalonID:   salon.ID,
				WorkerID:  workerID,
				ServiceID: uint(serviceID),
				Date:      date,
			},
		)
		if err != nil {
			if httperr.IsBusiness(err, "service_not_found") ||
				httperr.IsBusiness(err, "invalid_service_duration") {
				httperr.BadRequest(c, "service_not_found", "Servicio inválido.")
				return
			}
			if httperr.IsBusiness(err, "worker_not_found") {
				httperr.BadRequest(c, "worker_not_found", "Profesional no encontrada.")
				return
			}
			if httperr.IsBusiness(err, "worker_cannot_perform_service") {
				httperr.BadRequest(c, "worker_cannot_perform_service", "La profesional no realiza ese servicio.")
				return
			}

			httperr.Internal(c, "availability_failed", "Error al calcular los huecos.")
			return
		}

		for _, s := range slots {
			merged[s.Start] = s
		}
	}

	out := make([]domain.Slot, 0, len(merged))
	for _, s := range merged {
		out = append(out, s)
	}
	// "HH:MM" con cero a la izquierda ordena bien como texto
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}

// capableWorkerIDs resuelve las profesionales del salón que pueden atender
// el servicio, en orden estable.
func (h *PublicHandler) capableWorkerIDs(c *gin.Context, salonID, serviceID uint) ([]uint, bool) {
	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {

		httperr.BadRequest(c, "service_not_found", "Servicio inválido.")
		return nil, false
	}

	var workers []models.User
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&workers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_workers", "Error al listar profesionales.")
		return nil, false
	}

	capable := domain.FilterWorkersByCategory(workers, service.Category)
	ids := make([]uint, 0, len(capable))
	for _, w := range capable {
		ids = append(ids, w.ID)
	}
	return ids, true
}

////////////////////////////////////////////////////////
// CREATE BOOKING (PUBLIC → REUSA EL CASO DE USO PRIVADO)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		usecase.CreateBookingInput{
			SalonID:     salon.ID,
			WorkerID:    req.WorkerID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ref":    b.Ref,
		"status": b.Status,
		"date":   req.Date,
		"time":   req.Time,
	})
}
