package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/middleware"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

type WorkerHandler struct {
	db *gorm.DB
}

func NewWorkerHandler(db *gorm.DB) *WorkerHandler {
	return &WorkerHandler{db: db}
}

// --------- Requests ---------

type CreateWorkerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone"`
	Category    string `json:"category" binding:"required"`
	Specialties string `json:"specialties"`
}

// --------- Handlers ---------

// List devuelve las profesionales del salón; con ?category= aplica el
// matching de capacidades preservando el orden.
func (h *WorkerHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var workers []models.User
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&workers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_workers"})
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
			"phone":       w.Phone,
			"role":        w.Role,
			"category":    w.Category,
			"specialties": domain.ParseSpecialties(w.Specialties),
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *WorkerHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := domain.NormalizeCategory(req.Category)
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	worker := models.User{
		SalonID:      salonID,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "worker",
		Category:     category,
		Specialties:  strings.Join(domain.ParseSpecialties(req.Specialties), ","),
	}

	if err := h.db.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_worker"})
		return
	}

	c.JSON(http.StatusCreated, userPayload(&worker))
}
