package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtorralba/schooldesk/internal/app/models"
)

func TestPaymentMatrix(t *testing.T) {
	ctx := context.Background()
	students := &fakeStudentRepo{students: []*models.Student{
		{ID: 1, StudentID: "2024-0001", FirstName: "John", LastName: "Smith"},
		{ID: 2, StudentID: "2024-0002", FirstName: "Maria", LastName: "Santos"},
	}}
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: 1, StudentID: 1, ExamPeriod: models.PeriodDownpayment, Amount: 500},
		{ID: 2, StudentID: 1, ExamPeriod: models.PeriodMidterm, Amount: 1000},
	}}
	svc := NewReportService(students, payments)

	matrix, err := svc.PaymentMatrix(ctx)
	require.NoError(t, err)

	require.Len(t, matrix.Periods, 9)
	assert.Equal(t, "downpayment", matrix.Periods[0])
	assert.Equal(t, "Finals", matrix.Periods[8])

	require.Len(t, matrix.Rows, 2)

	john := matrix.Rows[0]
	assert.Equal(t, "John Smith", john.FullName)
	require.Len(t, john.Paid, 9)
	assert.True(t, john.Paid[0], "downpayment is paid")
	assert.True(t, john.Paid[4], "midterm is paid")
	paidCount := 0
	for _, paid := range john.Paid {
		if paid {
			paidCount++
		}
	}
	assert.Equal(t, 2, paidCount)

	maria := matrix.Rows[1]
	for i, paid := range maria.Paid {
		assert.False(t, paid, "period %d should be unpaid", i)
	}
}

func TestPaymentMatrixEmpty(t *testing.T) {
	svc := NewReportService(&fakeStudentRepo{}, &fakePaymentRepo{})

	matrix, err := svc.PaymentMatrix(context.Background())
	require.NoError(t, err)
	assert.Len(t, matrix.Periods, 9, "period columns are fixed even with no students")
	assert.Empty(t, matrix.Rows)
}

func TestStatusDistribution(t *testing.T) {
	ctx := context.Background()
	students := &fakeStudentRepo{students: []*models.Student{
		{ID: 1, Status: models.StatusEnrolled},
		{ID: 2, Status: models.StatusEnrolled},
		{ID: 3, Status: models.StatusGraduated},
		{ID: 4, Status: models.StatusMissingFiles},
		{ID: 5, Status: ""},
		{ID: 6, Status: "bogus"},
	}}
	svc := NewReportService(students, &fakePaymentRepo{})

	dist, err := svc.StatusDistribution(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, dist.TotalStudents)
	require.Len(t, dist.Data, 4, "dropped has no members so it produces no slice")

	assert.Equal(t, "enrolled", dist.Data[0].Name)
	assert.Equal(t, 2, dist.Data[0].Value)
	assert.Equal(t, "#4CAF50", dist.Data[0].Color)

	assert.Equal(t, "graduated", dist.Data[1].Name)
	assert.Equal(t, 1, dist.Data[1].Value)

	assert.Equal(t, "missing files", dist.Data[2].Name)
	assert.Equal(t, 1, dist.Data[2].Value)

	// Empty and unrecognized statuses fall into the Unknown partition, last.
	assert.Equal(t, "Unknown", dist.Data[3].Name)
	assert.Equal(t, 2, dist.Data[3].Value)
	assert.Equal(t, "#9E9E9E", dist.Data[3].Color)

	total := 0
	for _, d := range dist.Data {
		total += d.Value
	}
	assert.Equal(t, dist.TotalStudents, total)
}

func TestStatusDistributionEmpty(t *testing.T) {
	svc := NewReportService(&fakeStudentRepo{}, &fakePaymentRepo{})

	dist, err := svc.StatusDistribution(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dist.TotalStudents)
	assert.Empty(t, dist.Data)
}
