package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/db"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/dberrors"
	"github.com/rtorralba/schooldesk/internal/pkg/logger"
)

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithTotals inserts a payment and recomputes the owning student's
// denormalized totals in the same transaction. A duplicate (student, period)
// pair fails with ErrDuplicatePayment; the unique index on payments enforces
// one payment per exam period per student.
func (r *PaymentRepository) CreateWithTotals(ctx context.Context, payment *models.Payment) (int64, error) {
	insertSQL, insertArgs, err := r.sb.Insert("payments").
		Columns("student_id", "exam_period", "amount", "payment_date", "created_at").
		Values(payment.StudentID, payment.ExamPeriod, payment.Amount, payment.PaymentDate, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create payment SQL")
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&id); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "payments_student_period_key") {
				return apperrors.ErrDuplicatePayment
			}
			logger.Error().Err(err).Int64("studentRowID", payment.StudentID).Msg("Error executing create payment query")
			return fmt.Errorf("error creating payment: %w", err)
		}

		// Recompute totals from the payment rows rather than incrementing the
		// cached value, so the denormalized fields converge even if they drifted.
		updateSQL := `
			UPDATE students
			SET total_paid = totals.paid,
			    balance = students.tuition_fee - totals.paid,
			    updated_at = $2
			FROM (SELECT COALESCE(SUM(amount), 0) AS paid FROM payments WHERE student_id = $1) AS totals
			WHERE students.id = $1`
		cmdTag, err := tx.Exec(ctx, updateSQL, payment.StudentID, time.Now())
		if err != nil {
			logger.Error().Err(err).Int64("studentRowID", payment.StudentID).Msg("Error recomputing payment totals")
			return fmt.Errorf("error recomputing payment totals: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	payment.ID = id
	return id, nil
}

// GetByStudent retrieves all payments of one student in recording order.
// The service layer reorders them by canonical exam period for the views.
func (r *PaymentRepository) GetByStudent(ctx context.Context, studentRowID int64) ([]*models.Payment, error) {
	sqlStr, args, err := r.sb.Select("id", "student_id", "exam_period", "amount", "payment_date", "created_at").
		From("payments").
		Where(squirrel.Eq{"student_id": studentRowID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get payments SQL")
		return nil, fmt.Errorf("failed to build get payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.ExamPeriod, &p.Amount, &p.PaymentDate, &p.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning payment row")
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating payment rows")
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// GetAllGroupedByStudent retrieves every payment keyed by student row ID.
// The aggregation layer joins this against the student list at read time.
func (r *PaymentRepository) GetAllGroupedByStudent(ctx context.Context) (map[int64][]*models.Payment, error) {
	sqlStr, args, err := r.sb.Select("id", "student_id", "exam_period", "amount", "payment_date", "created_at").
		From("payments").
		OrderBy("student_id ASC", "created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all payments SQL")
		return nil, fmt.Errorf("failed to build get all payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	grouped := map[int64][]*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.ExamPeriod, &p.Amount, &p.PaymentDate, &p.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning payment row during get all")
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		grouped[p.StudentID] = append(grouped[p.StudentID], p)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating payment rows")
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return grouped, nil
}
