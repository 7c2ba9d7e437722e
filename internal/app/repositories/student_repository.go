package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/dberrors"
	"github.com/rtorralba/schooldesk/internal/pkg/helpers"
	"github.com/rtorralba/schooldesk/internal/pkg/logger"
)

// studentColumns is the canonical column list scanned by scanStudent.
var studentColumns = []string{
	"id", "student_id", "lrn",
	"fname", "mname", "lname",
	"address", "mobile", "landline", "facebook",
	"birthdate", "birthplace", "nationality", "religion", "sex",
	"father", "mother", "guardian", "guardian_occupation",
	"registration_date", "education", "course",
	"year_level", "school_year", "semester", "email",
	"status", "schooling", "files",
	"tuition_fee", "total_paid", "balance",
	"created_at", "updated_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent scans one row in studentColumns order, decoding the embedded
// schooling and files sub-documents from JSONB.
func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var (
		lrn           sql.NullString
		schoolingJSON []byte
		filesJSON     []byte
	)

	err := row.Scan(
		&s.ID, &s.StudentID, &lrn,
		&s.FirstName, &s.MiddleName, &s.LastName,
		&s.Address, &s.Mobile, &s.Landline, &s.Facebook,
		&s.Birthdate, &s.Birthplace, &s.Nationality, &s.Religion, &s.Sex,
		&s.Father, &s.Mother, &s.Guardian, &s.GuardianOccupation,
		&s.RegistrationDate, &s.Education, &s.Course,
		&s.YearLevel, &s.SchoolYear, &s.Semester, &s.Email,
		&s.Status, &schoolingJSON, &filesJSON,
		&s.TuitionFee, &s.TotalPaid, &s.Balance,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.LRN = lrn.String
	if len(schoolingJSON) > 0 {
		if err := json.Unmarshal(schoolingJSON, &s.Schooling); err != nil {
			return nil, fmt.Errorf("error decoding schooling history: %w", err)
		}
	}
	s.Files = []models.StudentFile{}
	if len(filesJSON) > 0 {
		if err := json.Unmarshal(filesJSON, &s.Files); err != nil {
			return nil, fmt.Errorf("error decoding file metadata: %w", err)
		}
	}
	return s, nil
}

// mapStudentConstraintError translates unique-violation errors into the
// field-specific sentinel errors surfaced by the API.
func mapStudentConstraintError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "students_student_id_key"):
		return apperrors.ErrStudentIDAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "students_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "students_lrn_key"):
		return apperrors.ErrLRNAlreadyExists
	}
	return nil
}

// Create inserts a new student and returns its row ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	schoolingJSON, err := json.Marshal(student.Schooling)
	if err != nil {
		return 0, fmt.Errorf("error encoding schooling history: %w", err)
	}
	filesJSON, err := json.Marshal(student.Files)
	if err != nil {
		return 0, fmt.Errorf("error encoding file metadata: %w", err)
	}

	now := time.Now()
	sqlStr, args, err := r.sb.Insert("students").
		Columns(
			"student_id", "lrn",
			"fname", "mname", "lname",
			"address", "mobile", "landline", "facebook",
			"birthdate", "birthplace", "nationality", "religion", "sex",
			"father", "mother", "guardian", "guardian_occupation",
			"registration_date", "education", "course",
			"year_level", "school_year", "semester", "email",
			"status", "schooling", "files",
			"tuition_fee", "total_paid", "balance",
			"created_at", "updated_at",
		).
		Values(
			student.StudentID, helpers.GetContentNullString(student.LRN),
			student.FirstName, student.MiddleName, student.LastName,
			student.Address, student.Mobile, student.Landline, student.Facebook,
			student.Birthdate, student.Birthplace, student.Nationality, student.Religion, student.Sex,
			student.Father, student.Mother, student.Guardian, student.GuardianOccupation,
			student.RegistrationDate, student.Education, student.Course,
			student.YearLevel, student.SchoolYear, student.Semester, student.Email,
			student.Status, schoolingJSON, filesJSON,
			student.TuitionFee, student.TotalPaid, student.Balance,
			now, now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if mapped := mapStudentConstraintError(err); mapped != nil {
			return 0, mapped
		}
		logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetAll retrieves all students ordered by last name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sqlStr, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("lname ASC", "fname ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByStudentID retrieves a student by student number.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sqlStr, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentId", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// Update applies a partial field update to a student identified by student
// number and returns the updated document. Fields not present in the map are
// left unchanged.
func (r *StudentRepository) Update(ctx context.Context, studentID string, fields map[string]interface{}) (*models.Student, error) {
	if len(fields) == 0 {
		return r.GetByStudentID(ctx, studentID)
	}
	fields["updated_at"] = time.Now()

	sqlStr, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		if mapped := mapStudentConstraintError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Str("studentId", studentID).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	return r.GetByStudentID(ctx, studentID)
}

// ReplaceFiles overwrites the embedded file-metadata list of a student.
func (r *StudentRepository) ReplaceFiles(ctx context.Context, studentID string, files []models.StudentFile) error {
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("error encoding file metadata: %w", err)
	}

	sqlStr, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"files":      filesJSON,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building replace files SQL")
		return fmt.Errorf("failed to build replace files query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Error executing replace files query")
		return fmt.Errorf("error replacing student files: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
