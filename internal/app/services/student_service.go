package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/validation"
)

// StudentRepository is the persistence surface the student service depends on.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, studentID string, fields map[string]interface{}) (*models.Student, error)
}

// StudentService defines the interface for student record operations
type StudentService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context, search string) ([]*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateRegistration validates registration data before database operations.
func (s *studentServiceImpl) validateRegistration(req *dto.RegisterStudentRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return fmt.Errorf("%w: studentId is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: email is invalid", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidLRN(req.LRN) {
		return fmt.Errorf("%w: lrn must be 12 digits", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidMobile(req.Mobile) {
		return fmt.Errorf("%w: mobile number is invalid", apperrors.ErrValidationFailed)
	}
	if !models.Sex(req.Sex).IsValid() {
		return fmt.Errorf("%w: sex must be Male, Female or Other", apperrors.ErrValidationFailed)
	}
	if req.Birthdate.IsZero() {
		return fmt.Errorf("%w: birthdate is required", apperrors.ErrValidationFailed)
	}
	if req.TuitionFee < 0 {
		return fmt.Errorf("%w: tuitionFee cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// RegisterStudent creates a new student record. The registration date defaults
// to creation time and a new student starts in "missing files" status with an
// untouched tuition balance.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:          strings.TrimSpace(req.StudentID),
		LRN:                strings.TrimSpace(req.LRN),
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Address:            req.Address,
		Mobile:             req.Mobile,
		Landline:           req.Landline,
		Facebook:           req.Facebook,
		Birthdate:          req.Birthdate,
		Birthplace:         req.Birthplace,
		Nationality:        req.Nationality,
		Religion:           req.Religion,
		Sex:                models.Sex(req.Sex),
		Father:             req.Father,
		Mother:             req.Mother,
		Guardian:           req.Guardian,
		GuardianOccupation: req.GuardianOccupation,
		RegistrationDate:   time.Now(),
		Education:          req.Education,
		Course:             req.Course,
		YearLevel:          req.YearLevel,
		SchoolYear:         req.SchoolYear,
		Semester:           req.Semester,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Status:             models.StatusMissingFiles,
		Schooling:          req.Schooling,
		Files:              []models.StudentFile{},
		TuitionFee:         req.TuitionFee,
		TotalPaid:          0,
		Balance:            req.TuitionFee,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentIDAlreadyExists, apperrors.ErrEmailAlreadyExists, apperrors.ErrLRNAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error registering student: %w", err)
	}

	student.ID = id
	return student, nil
}

// ListStudents returns all students, filtered by the optional search query
// over name, email and student number.
func (s *studentServiceImpl) ListStudents(ctx context.Context, search string) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	if search == "" {
		return students, nil
	}

	filtered := []*models.Student{}
	for _, student := range students {
		if matchesSearch(search, student.FirstName, student.LastName, student.Email, student.StudentID) {
			filtered = append(filtered, student)
		}
	}
	return filtered, nil
}

// GetStudent retrieves one student by student number.
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: studentId is required", apperrors.ErrValidationFailed)
	}
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent applies a partial update to a student and returns the updated
// document. Concurrent updates are last-write-wins.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: studentId is required", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		if !models.StudentStatus(*req.Status).IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Mobile != nil {
		fields["mobile"] = *req.Mobile
	}
	if req.Landline != nil {
		fields["landline"] = *req.Landline
	}
	if req.Facebook != nil {
		fields["facebook"] = *req.Facebook
	}
	if req.Guardian != nil {
		fields["guardian"] = *req.Guardian
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.YearLevel != nil {
		fields["year_level"] = *req.YearLevel
	}
	if req.SchoolYear != nil {
		fields["school_year"] = *req.SchoolYear
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}
	if req.TuitionFee != nil {
		if *req.TuitionFee < 0 {
			return nil, fmt.Errorf("%w: tuitionFee cannot be negative", apperrors.ErrValidationFailed)
		}
		fields["tuition_fee"] = *req.TuitionFee
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields provided", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.Update(ctx, studentID, fields)
	if err != nil {
		return nil, err
	}
	return student, nil
}
