package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/middleware"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
	"github.com/VioletaEstudio/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonConfigRequest struct {
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Timezone          *string `json:"timezone"`
	OpeningDays       *string `json:"opening_days"`
	OpensAt           *string `json:"opens_at"`
	ClosesAt          *string `json:"closes_at"`
	DefaultPolicy     *string `json:"default_policy"`
}

func (h *SalonHandler) GetMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salón no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Error al cargar el salón.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salón no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Error al cargar el salón.")
		return
	}

	var req UpdateSalonConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "La antelación mínima debe ser cero o positiva (en minutos).")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria inválida.")
			return
		}
		salon.Timezone = *req.Timezone
	}

	if req.OpeningDays != nil {
		salon.OpeningDays = *req.OpeningDays
	}

	if req.OpensAt != nil {
		if _, err := domain.ParseClock(*req.OpensAt); err != nil {
			httperr.BadRequest(c, "invalid_opening_hours", "Hora de apertura inválida.")
			return
		}
		salon.OpensAt = *req.OpensAt
	}

	if req.ClosesAt != nil {
		if _, err := domain.ParseClock(*req.ClosesAt); err != nil {
			httperr.BadRequest(c, "invalid_opening_hours", "Hora de cierre inválida.")
			return
		}
		salon.ClosesAt = *req.ClosesAt
	}

	if req.DefaultPolicy != nil {
		if !domain.CancellationPolicy(*req.DefaultPolicy).Valid() {
			httperr.BadRequest(c, "invalid_cancellation_policy", "Política de cancelación inválida.")
			return
		}
		salon.DefaultPolicy = *req.DefaultPolicy
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Error al guardar la configuración del salón.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
