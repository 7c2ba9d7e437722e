package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
)

// fakePaymentRepo is an in-memory PaymentRepository enforcing the
// one-payment-per-period rule.
type fakePaymentRepo struct {
	payments []*models.Payment
	nextID   int64
}

func (f *fakePaymentRepo) CreateWithTotals(_ context.Context, payment *models.Payment) (int64, error) {
	for _, existing := range f.payments {
		if existing.StudentID == payment.StudentID && existing.ExamPeriod == payment.ExamPeriod {
			return 0, apperrors.ErrDuplicatePayment
		}
	}
	f.nextID++
	payment.ID = f.nextID
	f.payments = append(f.payments, payment)
	return f.nextID, nil
}

func (f *fakePaymentRepo) GetByStudent(_ context.Context, studentRowID int64) ([]*models.Payment, error) {
	out := []*models.Payment{}
	for _, p := range f.payments {
		if p.StudentID == studentRowID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetAllGroupedByStudent(_ context.Context) (map[int64][]*models.Payment, error) {
	grouped := map[int64][]*models.Payment{}
	for _, p := range f.payments {
		grouped[p.StudentID] = append(grouped[p.StudentID], p)
	}
	return grouped, nil
}

func paymentFixtures() (*fakeStudentRepo, *fakePaymentRepo) {
	students := &fakeStudentRepo{
		nextID: 2,
		students: []*models.Student{
			{ID: 1, StudentID: "2024-0001", FirstName: "John", LastName: "Smith", Course: "BSIT"},
			{ID: 2, StudentID: "2024-0002", FirstName: "Maria", LastName: "Santos", Course: "BSED"},
		},
	}
	return students, &fakePaymentRepo{}
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		paid := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		payment, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
			StudentID:   "2024-0001",
			ExamPeriod:  "Midterm",
			Amount:      1500,
			PaymentDate: paid,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), payment.StudentID, "payment is linked to the student row")
		assert.Equal(t, models.PeriodMidterm, payment.ExamPeriod)
		assert.Equal(t, float64(1500), payment.Amount)
		assert.Equal(t, paid, payment.PaymentDate)
	})

	t.Run("payment date defaults to now", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		payment, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
			StudentID:  "2024-0001",
			ExamPeriod: "downpayment",
			Amount:     500,
		})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), payment.PaymentDate, time.Minute)
	})

	t.Run("unknown exam period", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
			StudentID:  "2024-0001",
			ExamPeriod: "5th Periodic",
			Amount:     1500,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidExamPeriod)
		assert.Empty(t, payments.payments)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		for _, amount := range []float64{0, -10} {
			_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
				StudentID:  "2024-0001",
				ExamPeriod: "Prelim",
				Amount:     amount,
			})
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
			StudentID:  "2024-9999",
			ExamPeriod: "Prelim",
			Amount:     1500,
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("duplicate period for same student", func(t *testing.T) {
		students, payments := paymentFixtures()
		svc := NewPaymentService(payments, students)

		req := &dto.CreatePaymentRequest{StudentID: "2024-0001", ExamPeriod: "Finals", Amount: 2000}
		_, err := svc.RecordPayment(ctx, req)
		require.NoError(t, err)

		_, err = svc.RecordPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrDuplicatePayment)

		// Same period for a different student is fine.
		_, err = svc.RecordPayment(ctx, &dto.CreatePaymentRequest{
			StudentID: "2024-0002", ExamPeriod: "Finals", Amount: 2000,
		})
		assert.NoError(t, err)
	})
}

func TestGetStudentPayments(t *testing.T) {
	ctx := context.Background()
	students, payments := paymentFixtures()
	svc := NewPaymentService(payments, students)

	_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{StudentID: "2024-0001", ExamPeriod: "Prelim", Amount: 1000})
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, &dto.CreatePaymentRequest{StudentID: "2024-0002", ExamPeriod: "Prelim", Amount: 900})
	require.NoError(t, err)

	got, err := svc.GetStudentPayments(ctx, "2024-0001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, float64(1000), got[0].Amount)

	_, err = svc.GetStudentPayments(ctx, "2024-9999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetStudentPaymentsCanonicalOrder(t *testing.T) {
	ctx := context.Background()
	students, payments := paymentFixtures()
	svc := NewPaymentService(payments, students)

	// Recorded out of sequence on purpose.
	for _, period := range []string{"Midterm", "downpayment", "Finals", "Prelim"} {
		_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{StudentID: "2024-0001", ExamPeriod: period, Amount: 500})
		require.NoError(t, err)
	}

	got, err := svc.GetStudentPayments(ctx, "2024-0001")
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []models.ExamPeriod{models.PeriodDownpayment, models.PeriodPrelim, models.PeriodMidterm, models.PeriodFinals}
	for i, period := range want {
		assert.Equal(t, period, got[i].ExamPeriod)
	}

	rows, err := svc.GetAllPayments(ctx, "smith")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Payments, 4)
	for i, period := range want {
		assert.Equal(t, period, rows[0].Payments[i].ExamPeriod, "grouped view follows the same order")
	}
}

func TestGetAllPayments(t *testing.T) {
	ctx := context.Background()
	students, payments := paymentFixtures()
	svc := NewPaymentService(payments, students)

	_, err := svc.RecordPayment(ctx, &dto.CreatePaymentRequest{StudentID: "2024-0002", ExamPeriod: "Midterm", Amount: 750})
	require.NoError(t, err)

	t.Run("one row per student", func(t *testing.T) {
		rows, err := svc.GetAllPayments(ctx, "")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "John Smith", rows[0].FullName)
		assert.Empty(t, rows[0].Payments, "students without payments still get a row")
		assert.NotNil(t, rows[0].Payments)

		assert.Equal(t, "Maria Santos", rows[1].FullName)
		require.Len(t, rows[1].Payments, 1)
		assert.Equal(t, models.PeriodMidterm, rows[1].Payments[0].ExamPeriod)
	})

	t.Run("search by name", func(t *testing.T) {
		rows, err := svc.GetAllPayments(ctx, "santos")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-0002", rows[0].StudentID)
	})

	t.Run("search by student number", func(t *testing.T) {
		rows, err := svc.GetAllPayments(ctx, "2024-0001")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "John Smith", rows[0].FullName)
	})
}
