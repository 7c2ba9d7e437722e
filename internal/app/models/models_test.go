package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamPeriodsOrder(t *testing.T) {
	periods := ExamPeriods()
	require.Len(t, periods, 9)

	want := []ExamPeriod{
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
	assert.Equal(t, want, periods)
	assert.Equal(t, ExamPeriod("downpayment"), periods[0])
	assert.Equal(t, ExamPeriod("Finals"), periods[8])
}

func TestExamPeriodIndex(t *testing.T) {
	for i, p := range ExamPeriods() {
		assert.Equal(t, i, p.Index(), string(p))
	}
	assert.Equal(t, -1, ExamPeriod("").Index())
	assert.Equal(t, -1, ExamPeriod("5th Periodic").Index())
}

func TestExamPeriodIsValid(t *testing.T) {
	for _, p := range ExamPeriods() {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, ExamPeriod("").IsValid())
	assert.False(t, ExamPeriod("midterm").IsValid(), "periods are case sensitive")
	assert.False(t, ExamPeriod("5th Periodic").IsValid())
}

func TestStudentStatusIsValid(t *testing.T) {
	for _, s := range AllStudentStatuses() {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, StudentStatus("").IsValid())
	assert.False(t, StudentStatus("Enrolled").IsValid(), "statuses are case sensitive")
	assert.False(t, StudentStatus("expelled").IsValid())
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"enrolled", "#4CAF50"},
		{"graduated", "#F44336"},
		{"dropped", "#FFEB3B"},
		{"missing files", "#2196F3"},
		{"Unknown", "#9E9E9E"},
		{"whatever", "#9E9E9E"},
		{"", "#9E9E9E"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusColor(tt.label), tt.label)
	}
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Juan", LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Dela Cruz", s.FullName())

	s = &Student{FirstName: "Juan", MiddleName: "Protacio", LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Protacio Dela Cruz", s.FullName())
}
