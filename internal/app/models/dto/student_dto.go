package dto

import (
	"time"

	"github.com/rtorralba/schooldesk/internal/app/models"
)

// RegisterStudentRequest carries the fields required to register a student.
// Optional fields mirror the student document's optional attributes.
type RegisterStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	LRN       string `json:"lrn"`

	FirstName  string `json:"fname" binding:"required"`
	MiddleName string `json:"mname"`
	LastName   string `json:"lname" binding:"required"`

	Address  string `json:"address" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Landline string `json:"landline"`
	Facebook string `json:"facebook"`

	Birthdate   time.Time `json:"birthdate" binding:"required"`
	Birthplace  string    `json:"birthplace" binding:"required"`
	Nationality string    `json:"nationality" binding:"required"`
	Religion    string    `json:"religion"`
	Sex         string    `json:"sex" binding:"required"`

	Father             string `json:"father"`
	Mother             string `json:"mother"`
	Guardian           string `json:"guardian"`
	GuardianOccupation string `json:"guardianOccupation"`

	Education  string `json:"education"`
	Course     string `json:"course"`
	YearLevel  string `json:"yearLevel" binding:"required"`
	SchoolYear string `json:"schoolYear" binding:"required"`
	Semester   string `json:"semester"`
	Email      string `json:"email" binding:"required,email"`

	Schooling  models.SchoolingHistory `json:"schooling"`
	TuitionFee float64                 `json:"tuitionFee"`
}

// UpdateStudentRequest carries a partial student update. Nil pointers mean
// "leave unchanged". Covers the status mutation issued by the list view.
type UpdateStudentRequest struct {
	Status     *string  `json:"status"`
	Address    *string  `json:"address"`
	Mobile     *string  `json:"mobile"`
	Landline   *string  `json:"landline"`
	Facebook   *string  `json:"facebook"`
	Guardian   *string  `json:"guardian"`
	Education  *string  `json:"education"`
	Course     *string  `json:"course"`
	YearLevel  *string  `json:"yearLevel"`
	SchoolYear *string  `json:"schoolYear"`
	Semester   *string  `json:"semester"`
	TuitionFee *float64 `json:"tuitionFee"`
}

// StudentResponse is the API representation of a student document.
type StudentResponse struct {
	*models.Student
	FullName string `json:"fullName"`
}

// NewStudentResponse wraps a student with its derived display fields.
func NewStudentResponse(s *models.Student) *StudentResponse {
	return &StudentResponse{Student: s, FullName: s.FullName()}
}

// NewStudentListResponse maps a student slice to API representations.
func NewStudentListResponse(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
