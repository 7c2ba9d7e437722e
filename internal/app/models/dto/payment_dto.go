package dto

import (
	"time"

	"github.com/rtorralba/schooldesk/internal/app/models"
)

// CreatePaymentRequest records one payment against a student and exam period.
type CreatePaymentRequest struct {
	StudentID   string    `json:"studentId" binding:"required"` // student number, not row id
	ExamPeriod  string    `json:"examPeriod" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time `json:"paymentDate"`
}

// StudentPaymentsResponse is one row of the grouped all-payments view:
// the student's identity summary plus every payment recorded for them.
type StudentPaymentsResponse struct {
	StudentID  string            `json:"studentId"`
	FullName   string            `json:"fullName"`
	Course     string            `json:"course,omitempty"`
	Education  string            `json:"education,omitempty"`
	YearLevel  string            `json:"yearLevel"`
	SchoolYear string            `json:"schoolYear"`
	Semester   string            `json:"semester,omitempty"`
	Payments   []*models.Payment `json:"payments"`
}
