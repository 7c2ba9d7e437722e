package models

import "time"

// SchoolRecord is one entry of a student's prior-schooling history.
type SchoolRecord struct {
	SchoolName   string `json:"schoolName"`
	YearAttended string `json:"yearAttended"`
}

// SchoolingHistory groups the prior-schooling entries embedded on a student.
type SchoolingHistory struct {
	Nursery    SchoolRecord `json:"nursery"`
	Elementary SchoolRecord `json:"elementary"`
	JuniorHigh SchoolRecord `json:"juniorHigh"`
	SeniorHigh SchoolRecord `json:"seniorHigh"`
}

// StudentFile is the metadata of one uploaded file, embedded on a student.
type StudentFile struct {
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// Student defines the student model based on the 'students' table.
// Schooling history and file metadata are embedded sub-documents (JSONB columns).
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	StudentID string `json:"studentId" db:"student_id" example:"2024-00123"` // Student number, unique
	LRN       string `json:"lrn,omitempty" db:"lrn"`                         // Learner reference number, unique

	FirstName  string `json:"fname" db:"fname" example:"Juan"`
	MiddleName string `json:"mname,omitempty" db:"mname"`
	LastName   string `json:"lname" db:"lname" example:"Dela Cruz"`

	Address  string `json:"address" db:"address"`
	Mobile   string `json:"mobile" db:"mobile"`
	Landline string `json:"landline,omitempty" db:"landline"`
	Facebook string `json:"facebook,omitempty" db:"facebook"`

	Birthdate   time.Time `json:"birthdate" db:"birthdate"`
	Birthplace  string    `json:"birthplace" db:"birthplace"`
	Nationality string    `json:"nationality" db:"nationality"`
	Religion    string    `json:"religion,omitempty" db:"religion"`
	Sex         Sex       `json:"sex" db:"sex" example:"Male"`

	Father             string `json:"father,omitempty" db:"father"`
	Mother             string `json:"mother,omitempty" db:"mother"`
	Guardian           string `json:"guardian,omitempty" db:"guardian"`
	GuardianOccupation string `json:"guardianOccupation,omitempty" db:"guardian_occupation"`

	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
	Education        string    `json:"education,omitempty" db:"education"`
	Course           string    `json:"course,omitempty" db:"course"`
	YearLevel        string    `json:"yearLevel" db:"year_level" example:"Grade 11"`
	SchoolYear       string    `json:"schoolYear" db:"school_year" example:"2024-2025"`
	Semester         string    `json:"semester,omitempty" db:"semester"`
	Email            string    `json:"email" db:"email"` // Unique

	Status    StudentStatus    `json:"status" db:"status" example:"enrolled"`
	Schooling SchoolingHistory `json:"schooling" db:"schooling"`
	Files     []StudentFile    `json:"files" db:"files"`

	// Denormalized payment tracking. Recomputed inside the payment-creation
	// transaction, never trusted as an input.
	TuitionFee float64 `json:"tuitionFee" db:"tuition_fee"`
	TotalPaid  float64 `json:"totalPaid" db:"total_paid"`
	Balance    float64 `json:"balance" db:"balance"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Payments []*Payment `json:"payments,omitempty"`
}

// FullName returns the display name used by list and payment views.
func (s *Student) FullName() string {
	if s.MiddleName != "" {
		return s.FirstName + " " + s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}
