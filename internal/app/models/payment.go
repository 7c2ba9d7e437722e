package models

import "time"

// Payment represents one payment event tied to one student and one exam period.
// Payments are immutable after creation.
type Payment struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"-" db:"student_id"` // internal FK to students.id
	ExamPeriod  ExamPeriod `json:"examPeriod" db:"exam_period" example:"Prelim"`
	Amount      float64    `json:"amount" db:"amount"`
	PaymentDate time.Time  `json:"paymentDate" db:"payment_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
