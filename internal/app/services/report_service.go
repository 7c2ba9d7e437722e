package services

import (
	"context"
	"fmt"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
)

// ReportService computes read-time aggregation views. Nothing derived is
// persisted; every call recomputes from the stores.
type ReportService interface {
	PaymentMatrix(ctx context.Context) (*dto.PaymentMatrixResponse, error)
	StatusDistribution(ctx context.Context) (*dto.StatusDistributionResponse, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	studentRepo PaymentStudentReader
	paymentRepo PaymentRepository
}

// NewReportService creates a new report service instance
func NewReportService(studentRepo PaymentStudentReader, paymentRepo PaymentRepository) ReportService {
	return &reportServiceImpl{
		studentRepo: studentRepo,
		paymentRepo: paymentRepo,
	}
}

// PaymentMatrix produces one row per student with one boolean cell per
// canonical exam period, true iff a payment with that period exists.
func (s *reportServiceImpl) PaymentMatrix(ctx context.Context) (*dto.PaymentMatrixResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	grouped, err := s.paymentRepo.GetAllGroupedByStudent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}

	periods := models.ExamPeriods()
	periodNames := make([]string, len(periods))
	for i, p := range periods {
		periodNames[i] = string(p)
	}

	rows := make([]dto.PaymentMatrixRow, 0, len(students))
	for _, student := range students {
		paidPeriods := map[models.ExamPeriod]bool{}
		for _, payment := range grouped[student.ID] {
			paidPeriods[payment.ExamPeriod] = true
		}

		paid := make([]bool, len(periods))
		for i, period := range periods {
			paid[i] = paidPeriods[period]
		}
		rows = append(rows, dto.PaymentMatrixRow{
			StudentID: student.StudentID,
			FullName:  student.FullName(),
			Paid:      paid,
		})
	}

	return &dto.PaymentMatrixResponse{
		Periods: periodNames,
		Rows:    rows,
	}, nil
}

// StatusDistribution partitions all students by status and counts membership
// per partition. Students without a status fall into the "Unknown" partition.
// Only partitions with members produce a data point.
func (s *reportServiceImpl) StatusDistribution(ctx context.Context) (*dto.StatusDistributionResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	counts := map[string]int{}
	for _, student := range students {
		label := string(student.Status)
		if label == "" || !student.Status.IsValid() {
			label = models.StatusUnknownLabel
		}
		counts[label]++
	}

	// Canonical status order first, then Unknown, so the chart legend is stable.
	data := []dto.StatusCount{}
	for _, status := range models.AllStudentStatuses() {
		if n := counts[string(status)]; n > 0 {
			data = append(data, dto.StatusCount{
				Name:  string(status),
				Value: n,
				Color: models.StatusColor(string(status)),
			})
		}
	}
	if n := counts[models.StatusUnknownLabel]; n > 0 {
		data = append(data, dto.StatusCount{
			Name:  models.StatusUnknownLabel,
			Value: n,
			Color: models.StatusColor(models.StatusUnknownLabel),
		})
	}

	return &dto.StatusDistributionResponse{
		TotalStudents: len(students),
		Data:          data,
	}, nil
}
