package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/app/services"
	"github.com/rtorralba/schooldesk/internal/middleware"
)

// UploadController handles student document uploads
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadStudentFile accepts one file for one student
// @Summary Upload a student document
// @Description Accepts one JPEG or PDF up to 10 MiB, stores it under the student's predictable download path and records its metadata on the student
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param studentId formData string true "Student number"
// @Param file formData file true "Document to upload (JPEG or PDF)"
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse} "File uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Disallowed file type, oversized file, or missing fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload [post]
func (c *UploadController) UploadStudentFile(ctx *gin.Context) {
	studentID := ctx.PostForm("studentId")
	if studentID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentId form field is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.uploadService.UploadStudentFile(ctx, studentID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
