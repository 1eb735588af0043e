package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaushal774/jewelbill-api/internal/application/service"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report and export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Export streams an XLSX workbook of bills in a date range
func (h *ReportHandler) Export(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "start_date must be provided as YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "end_date must be provided as YYYY-MM-DD")
		return
	}
	// Include the whole end day
	to = to.Add(24*time.Hour - time.Second)

	f, err := h.reportService.ExportBills(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("bills_%s_%s.xlsx", from.Format("02-01-2006"), to.Format("02-01-2006"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}

// DailySummary returns aggregate figures for one day's bills
func (h *ReportHandler) DailySummary(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "date must be provided as YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.reportService.Summarize(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved successfully", summary)
}
