package models

// StudentStatus is the enrollment lifecycle label of a student.
type StudentStatus string

const (
	StatusEnrolled     StudentStatus = "enrolled"
	StatusGraduated    StudentStatus = "graduated"
	StatusDropped      StudentStatus = "dropped"
	StatusMissingFiles StudentStatus = "missing files"
)

// StatusUnknownLabel is the reporting label used for students without a status.
const StatusUnknownLabel = "Unknown"

// AllStudentStatuses lists every valid status value.
func AllStudentStatuses() []StudentStatus {
	return []StudentStatus{StatusEnrolled, StatusGraduated, StatusDropped, StatusMissingFiles}
}

// IsValid reports whether s is one of the known status values.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusEnrolled, StatusGraduated, StatusDropped, StatusMissingFiles:
		return true
	}
	return false
}

// StatusColor returns the fixed chart color for a status label.
// The label may be a StudentStatus value or the "Unknown" reporting label.
func StatusColor(label string) string {
	switch label {
	case string(StatusEnrolled):
		return "#4CAF50" // green
	case string(StatusGraduated):
		return "#F44336" // red
	case string(StatusDropped):
		return "#FFEB3B" // yellow
	case string(StatusMissingFiles):
		return "#2196F3" // blue
	default:
		return "#9E9E9E" // gray
	}
}

// ExamPeriod is one of the nine fixed billing milestones of a school term.
type ExamPeriod string

const (
	PeriodDownpayment ExamPeriod = "downpayment"
	Period1stPeriodic ExamPeriod = "1st Periodic"
	PeriodPrelim      ExamPeriod = "Prelim"
	Period2ndPeriodic ExamPeriod = "2nd Periodic"
	PeriodMidterm     ExamPeriod = "Midterm"
	Period3rdPeriodic ExamPeriod = "3rd Periodic"
	PeriodPrefinal    ExamPeriod = "Pre-final"
	Period4thPeriodic ExamPeriod = "4th Periodic"
	PeriodFinals      ExamPeriod = "Finals"
)

// ExamPeriods returns the canonical ordered period sequence. Payment views and
// matrices must always render columns in this order.
func ExamPeriods() []ExamPeriod {
	return []ExamPeriod{
		PeriodDownpayment,
		Period1stPeriodic,
		PeriodPrelim,
		Period2ndPeriodic,
		PeriodMidterm,
		Period3rdPeriodic,
		PeriodPrefinal,
		Period4thPeriodic,
		PeriodFinals,
	}
}

// Index returns the position of p in the canonical period sequence, or -1
// for an unknown period.
func (p ExamPeriod) Index() int {
	for i, known := range ExamPeriods() {
		if p == known {
			return i
		}
	}
	return -1
}

// IsValid reports whether p is one of the nine canonical periods.
func (p ExamPeriod) IsValid() bool {
	return p.Index() >= 0
}

// Sex is the registered sex of a student.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// IsValid reports whether s is a known sex value.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale, SexOther:
		return true
	}
	return false
}

// RoleType defines the dashboard user role type
type RoleType string

const (
	RoleAdmin     RoleType = "ADMIN"
	RoleRegistrar RoleType = "REGISTRAR"
)
