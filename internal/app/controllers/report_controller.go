package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/app/services"
	"github.com/rtorralba/schooldesk/internal/middleware"
)

// ReportController serves the read-time aggregation views
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetPaymentMatrix renders the per-student paid-period checklist
// @Summary Payment matrix
// @Description For each student, one boolean cell per canonical exam period, true iff a payment with that period exists
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PaymentMatrixResponse} "Payment matrix computed successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/payment-matrix [get]
func (c *ReportController) GetPaymentMatrix(ctx *gin.Context) {
	matrix, err := c.reportService.PaymentMatrix(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matrix,
		Timestamp: time.Now(),
	})
}

// GetStatusDistribution renders the enrollment status pie-chart data
// @Summary Status distribution
// @Description Partitions all students by status with fixed chart colors; students without a status fall into the Unknown partition
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatusDistributionResponse} "Status distribution computed successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/status-distribution [get]
func (c *ReportController) GetStatusDistribution(ctx *gin.Context) {
	distribution, err := c.reportService.StatusDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      distribution,
		Timestamp: time.Now(),
	})
}
