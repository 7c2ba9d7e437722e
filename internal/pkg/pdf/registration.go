package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/helpers"
)

// RegistrationForm renders a student's registration record as a PDF document.
func RegistrationForm(student *models.Student) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Student Registration Form", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Student Registration Form", "", 1, "C", false, 0, "")
	doc.Ln(4)

	writeRow := func(label, value string) {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	writeSection := func(title string) {
		doc.Ln(3)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
		doc.Ln(1)
	}

	writeSection("Student Information")
	writeRow("Student ID", student.StudentID)
	if student.LRN != "" {
		writeRow("LRN", student.LRN)
	}
	writeRow("Name", student.FullName())
	writeRow("Sex", string(student.Sex))
	writeRow("Birthdate", helpers.FormatLongDate(student.Birthdate))
	writeRow("Birthplace", student.Birthplace)
	writeRow("Nationality", student.Nationality)
	if student.Religion != "" {
		writeRow("Religion", student.Religion)
	}

	writeSection("Contact Information")
	writeRow("Address", student.Address)
	writeRow("Mobile", student.Mobile)
	if student.Landline != "" {
		writeRow("Landline", student.Landline)
	}
	writeRow("Email", student.Email)

	writeSection("Family")
	writeRow("Father", student.Father)
	writeRow("Mother", student.Mother)
	writeRow("Guardian", student.Guardian)
	writeRow("Guardian Occupation", student.GuardianOccupation)

	writeSection("Enrollment")
	writeRow("Education", student.Education)
	writeRow("Course", student.Course)
	writeRow("Year Level", student.YearLevel)
	writeRow("School Year", student.SchoolYear)
	writeRow("Semester", student.Semester)
	writeRow("Status", string(student.Status))
	writeRow("Registration Date", helpers.FormatLongDate(student.RegistrationDate))

	writeSection("Prior Schooling")
	writeSchool := func(level string, rec models.SchoolRecord) {
		if rec.SchoolName == "" {
			return
		}
		writeRow(level, fmt.Sprintf("%s (%s)", rec.SchoolName, rec.YearAttended))
	}
	writeSchool("Nursery", student.Schooling.Nursery)
	writeSchool("Elementary", student.Schooling.Elementary)
	writeSchool("Junior High", student.Schooling.JuniorHigh)
	writeSchool("Senior High", student.Schooling.SeniorHigh)

	writeSection("Tuition")
	writeRow("Tuition Fee", fmt.Sprintf("%.2f", student.TuitionFee))
	writeRow("Total Paid", fmt.Sprintf("%.2f", student.TotalPaid))
	writeRow("Balance", fmt.Sprintf("%.2f", student.Balance))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render registration form: %w", err)
	}
	return buf.Bytes(), nil
}
