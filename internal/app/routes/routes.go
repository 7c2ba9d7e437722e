package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rtorralba/schooldesk/internal/app/controllers"
	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController,
	eventController *controllers.EventController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Student records
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.RegisterStudent)
			students.GET("/:studentId", studentController.GetStudent)
			students.PUT("/:studentId", studentController.UpdateStudent)
			students.GET("/:studentId/pdf", studentController.DownloadRegistrationForm)
		}

		// Payments against the fixed exam periods
		payments := authenticated.Group("/payments")
		{
			payments.POST("", paymentController.RecordPayment)
			payments.GET("", paymentController.GetStudentPayments)
			payments.GET("/all", paymentController.GetAllPayments)
		}

		// Aggregated dashboard views
		reports := authenticated.Group("/reports")
		{
			reports.GET("/payment-matrix", reportController.GetPaymentMatrix)
			reports.GET("/status-distribution", reportController.GetStatusDistribution)
		}

		// Campus events
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.POST("", eventController.CreateEvent)
			events.GET("/:id", eventController.GetEventByID)
			events.PUT("/:id", eventController.UpdateEvent)
			// Only admins may remove events; registrars manage everything else.
			events.DELETE("/:id", authMiddleware.RoleRequired(string(models.RoleAdmin)), eventController.DeleteEvent)
		}

		// Student document uploads
		authenticated.POST("/upload", uploadController.UploadStudentFile)
	}
}
