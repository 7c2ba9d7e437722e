package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/app/services"
	"github.com/rtorralba/schooldesk/internal/middleware"
)

// PaymentController handles tuition payment operations
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// RecordPayment records one payment for a student and exam period
// @Summary Record a payment
// @Description Records a payment against a student and exam period and recomputes the student's totals in the same transaction
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.Payment} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data or unknown exam period"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Payment for this exam period already recorded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [post]
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payment, err := c.paymentService.RecordPayment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      payment,
		Timestamp: time.Now(),
	})
}

// GetStudentPayments retrieves payments of one student
// @Summary Get a student's payments
// @Description Retrieves every payment recorded for the given student number
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query string true "Student number"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment} "Payments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing student number"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [get]
func (c *PaymentController) GetStudentPayments(ctx *gin.Context) {
	studentID := ctx.Query("studentId")
	if studentID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentId query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payments, err := c.paymentService.GetStudentPayments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      payments,
		Timestamp: time.Now(),
	})
}

// GetAllPayments retrieves every payment grouped by student
// @Summary Get all payments grouped by student
// @Description Retrieves all payments grouped by student, one row per student with their identity summary and payment list
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search query over student number and full name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentPaymentsResponse} "Grouped payments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/all [get]
func (c *PaymentController) GetAllPayments(ctx *gin.Context) {
	rows, err := c.paymentService.GetAllPayments(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}
