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

// fakeStudentRepo is an in-memory StudentRepository for service tests.
type fakeStudentRepo struct {
	students  []*models.Student
	nextID    int64
	createErr error
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, existing := range f.students {
		if existing.StudentID == student.StudentID {
			return 0, apperrors.ErrStudentIDAlreadyExists
		}
		if existing.Email == student.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if student.LRN != "" && existing.LRN == student.LRN {
			return 0, apperrors.ErrLRNAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	f.students = append(f.students, student)
	return f.nextID, nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	for _, s := range f.students {
		if s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) Update(ctx context.Context, studentID string, fields map[string]interface{}) (*models.Student, error) {
	student, err := f.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if status, ok := fields["status"]; ok {
		student.Status = models.StudentStatus(status.(string))
	}
	if address, ok := fields["address"]; ok {
		student.Address = address.(string)
	}
	if fee, ok := fields["tuition_fee"]; ok {
		student.TuitionFee = fee.(float64)
	}
	return student, nil
}

func validRegistration() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		StudentID:   "2024-0001",
		LRN:         "123456789012",
		FirstName:   "John",
		LastName:    "Smith",
		Address:     "Quezon City",
		Mobile:      "09171234567",
		Birthdate:   time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC),
		Birthplace:  "Manila",
		Nationality: "Filipino",
		Sex:         "Male",
		YearLevel:   "1st Year",
		SchoolYear:  "2024-2025",
		Email:       "John.Smith@example.com",
		TuitionFee:  25000,
	}
}

func TestRegisterStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("sets defaults on success", func(t *testing.T) {
		repo := &fakeStudentRepo{}
		svc := NewStudentService(repo)

		student, err := svc.RegisterStudent(ctx, validRegistration())
		require.NoError(t, err)

		assert.Equal(t, int64(1), student.ID)
		assert.Equal(t, models.StatusMissingFiles, student.Status)
		assert.Equal(t, "john.smith@example.com", student.Email, "email is stored lowercased")
		assert.Equal(t, float64(0), student.TotalPaid)
		assert.Equal(t, float64(25000), student.Balance, "balance starts at the full tuition fee")
		assert.NotNil(t, student.Files)
		assert.Empty(t, student.Files)
		assert.False(t, student.RegistrationDate.IsZero())
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*dto.RegisterStudentRequest)
		}{
			{"missing student id", func(r *dto.RegisterStudentRequest) { r.StudentID = "  " }},
			{"bad email", func(r *dto.RegisterStudentRequest) { r.Email = "not-an-email" }},
			{"short lrn", func(r *dto.RegisterStudentRequest) { r.LRN = "12345" }},
			{"malformed mobile", func(r *dto.RegisterStudentRequest) { r.Mobile = "call me" }},
			{"empty mobile", func(r *dto.RegisterStudentRequest) { r.Mobile = "" }},
			{"unknown sex", func(r *dto.RegisterStudentRequest) { r.Sex = "unknown" }},
			{"zero birthdate", func(r *dto.RegisterStudentRequest) { r.Birthdate = time.Time{} }},
			{"negative tuition", func(r *dto.RegisterStudentRequest) { r.TuitionFee = -1 }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &fakeStudentRepo{}
				svc := NewStudentService(repo)

				req := validRegistration()
				tt.mutate(req)

				_, err := svc.RegisterStudent(ctx, req)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				assert.Empty(t, repo.students, "nothing is persisted on validation failure")
			})
		}
	})

	t.Run("empty lrn is allowed", func(t *testing.T) {
		svc := NewStudentService(&fakeStudentRepo{})

		req := validRegistration()
		req.LRN = ""

		student, err := svc.RegisterStudent(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, student.LRN)
	})

	t.Run("duplicate student id", func(t *testing.T) {
		repo := &fakeStudentRepo{}
		svc := NewStudentService(repo)

		_, err := svc.RegisterStudent(ctx, validRegistration())
		require.NoError(t, err)

		dup := validRegistration()
		dup.Email = "other@example.com"
		dup.LRN = "210987654321"
		_, err = svc.RegisterStudent(ctx, dup)
		assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeStudentRepo{}
		svc := NewStudentService(repo)

		_, err := svc.RegisterStudent(ctx, validRegistration())
		require.NoError(t, err)

		dup := validRegistration()
		dup.StudentID = "2024-0002"
		dup.LRN = "210987654321"
		_, err = svc.RegisterStudent(ctx, dup)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestListStudents(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStudentRepo{students: []*models.Student{
		{StudentID: "2024-0001", FirstName: "John", LastName: "Smith", Email: "john@example.com"},
		{StudentID: "2024-0002", FirstName: "Maria", LastName: "Santos", Email: "maria@example.com"},
		{StudentID: "2024-0003", FirstName: "Pedro", LastName: "Johnson", Email: "pedro@example.com"},
	}}
	svc := NewStudentService(repo)

	t.Run("empty query returns everyone", func(t *testing.T) {
		students, err := svc.ListStudents(ctx, "")
		require.NoError(t, err)
		assert.Len(t, students, 3)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		students, err := svc.ListStudents(ctx, "john")
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, "Smith", students[0].LastName)
		assert.Equal(t, "Johnson", students[1].LastName)
	})

	t.Run("search by student number", func(t *testing.T) {
		students, err := svc.ListStudents(ctx, "2024-0002")
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Maria", students[0].FirstName)
	})

	t.Run("no matches", func(t *testing.T) {
		students, err := svc.ListStudents(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, students)
	})
}

func TestGetStudent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStudentRepo{students: []*models.Student{
		{StudentID: "2024-0001", FirstName: "John", LastName: "Smith"},
	}}
	svc := NewStudentService(repo)

	student, err := svc.GetStudent(ctx, "2024-0001")
	require.NoError(t, err)
	assert.Equal(t, "John", student.FirstName)

	_, err = svc.GetStudent(ctx, "2024-9999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.GetStudent(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	newRepo := func() *fakeStudentRepo {
		return &fakeStudentRepo{students: []*models.Student{
			{StudentID: "2024-0001", FirstName: "John", LastName: "Smith", Status: models.StatusMissingFiles},
		}}
	}

	t.Run("status change", func(t *testing.T) {
		svc := NewStudentService(newRepo())

		status := "enrolled"
		student, err := svc.UpdateStudent(ctx, "2024-0001", &dto.UpdateStudentRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.StatusEnrolled, student.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewStudentService(newRepo())

		status := "expelled"
		_, err := svc.UpdateStudent(ctx, "2024-0001", &dto.UpdateStudentRequest{Status: &status})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		svc := NewStudentService(newRepo())

		_, err := svc.UpdateStudent(ctx, "2024-0001", &dto.UpdateStudentRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing student", func(t *testing.T) {
		svc := NewStudentService(newRepo())

		status := "enrolled"
		_, err := svc.UpdateStudent(ctx, "2024-9999", &dto.UpdateStudentRequest{Status: &status})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
