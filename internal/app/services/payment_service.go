package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
)

// PaymentRepository is the persistence surface the payment service depends on.
type PaymentRepository interface {
	CreateWithTotals(ctx context.Context, payment *models.Payment) (int64, error)
	GetByStudent(ctx context.Context, studentRowID int64) ([]*models.Payment, error)
	GetAllGroupedByStudent(ctx context.Context) (map[int64][]*models.Payment, error)
}

// PaymentStudentReader resolves student numbers and lists students for
// payment views.
type PaymentStudentReader interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// PaymentService defines the interface for payment record operations
type PaymentService interface {
	RecordPayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error)
	GetStudentPayments(ctx context.Context, studentID string) ([]*models.Payment, error)
	GetAllPayments(ctx context.Context, search string) ([]*dto.StudentPaymentsResponse, error)
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	paymentRepo PaymentRepository
	studentRepo PaymentStudentReader
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo PaymentRepository, studentRepo PaymentStudentReader) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// RecordPayment records one payment against a student and exam period. The
// insert and the recomputation of the student's totals happen in one
// transaction; a second payment for the same period is rejected.
func (s *paymentServiceImpl) RecordPayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	period := models.ExamPeriod(strings.TrimSpace(req.ExamPeriod))
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidExamPeriod, req.ExamPeriod)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := &models.Payment{
		StudentID:   student.ID,
		ExamPeriod:  period,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
	}

	if _, err := s.paymentRepo.CreateWithTotals(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// sortByPeriod orders payments by canonical exam period position, regardless
// of the sequence they were recorded in.
func sortByPeriod(payments []*models.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].ExamPeriod.Index() < payments[j].ExamPeriod.Index()
	})
}

// GetStudentPayments retrieves all payments of one student in canonical
// period order.
func (s *paymentServiceImpl) GetStudentPayments(ctx context.Context, studentID string) ([]*models.Payment, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.GetByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}
	sortByPeriod(payments)
	return payments, nil
}

// GetAllPayments groups every payment by student, producing one row per
// student with their identity summary and payment list. The optional search
// query filters over student number and full name.
func (s *paymentServiceImpl) GetAllPayments(ctx context.Context, search string) ([]*dto.StudentPaymentsResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	grouped, err := s.paymentRepo.GetAllGroupedByStudent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}

	rows := []*dto.StudentPaymentsResponse{}
	for _, student := range students {
		if !matchesSearch(search, student.StudentID, student.FullName()) {
			continue
		}
		payments := grouped[student.ID]
		if payments == nil {
			payments = []*models.Payment{}
		} else {
			sortByPeriod(payments)
		}
		rows = append(rows, &dto.StudentPaymentsResponse{
			StudentID:  student.StudentID,
			FullName:   student.FullName(),
			Course:     student.Course,
			Education:  student.Education,
			YearLevel:  student.YearLevel,
			SchoolYear: student.SchoolYear,
			Semester:   student.Semester,
			Payments:   payments,
		})
	}
	return rows, nil
}
