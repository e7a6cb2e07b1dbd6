package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/httpresp"
	"github.com/VioletaEstudio/salon-scheduler/internal/middleware"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

type HolidayHandler struct {
	db *gorm.DB
}

func NewHolidayHandler(db *gorm.DB) *HolidayHandler {
	return &HolidayHandler{db: db}
}

type CreateHolidayRequest struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Label string `json:"label"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var holidays []models.Holiday
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("date ASC").
		Find(&holidays).Error; err != nil {

		httperr.Internal(c, "failed_to_list_holidays", "Error al listar festivos.")
		return
	}

	httpresp.List(c, holidays)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salón no encontrado.")
		return
	}

	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseDateInSalon(&salon, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	holiday := models.Holiday{
		SalonID: salonID,
		Date:    date,
		Label:   req.Label,
	}

	if err := h.db.Create(&holiday).Error; err != nil {
		httperr.Internal(c, "failed_to_create_holiday", "Error al crear el festivo.")
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Holiday{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_holiday", "Error al borrar el festivo.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "holiday_not_found", "Festivo no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
