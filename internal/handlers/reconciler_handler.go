package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VioletaEstudio/salon-scheduler/internal/reconciler"
)

type ReconcilerHandler struct {
	rec *reconciler.Reconciler
}

func NewReconcilerHandler(rec *reconciler.Reconciler) *ReconcilerHandler {
	return &ReconcilerHandler{rec: rec}
}

// Status expone el resumen de la última pasada de reconciliación.
func (h *ReconcilerHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.rec.Status())
}
