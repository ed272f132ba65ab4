package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// ReportHandlers handles reporting HTTP requests
type ReportHandlers struct {
	reportSvc domain.ReportService
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportSvc domain.ReportService) *ReportHandlers {
	return &ReportHandlers{reportSvc: reportSvc}
}

// DailySales handles GET /api/reports/sales/daily?date=YYYY-MM-DD
func (h *ReportHandlers) DailySales(c *gin.Context) {
	storeID, ok := storeScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No store in scope"})
		return
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	report, err := h.reportSvc.DailySales(c.Request.Context(), storeID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}
