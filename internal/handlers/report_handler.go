package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// @Summary      Task report
// @Description  PDF with per-status totals and the current task list
// @Tags         Reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  map[string]string
// @Router       /reports/tasks [get]
func (h *ReportHandler) TaskReport(c *gin.Context) {
	data, err := h.Service.TaskReport(c.Request.Context())
	if err != nil {
		log.Printf("[report][tasks][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.Header("Content-Disposition", `inline; filename="tasks.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
