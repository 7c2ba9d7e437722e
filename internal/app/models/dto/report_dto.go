package dto

// PaymentMatrixRow is one row of the payment matrix: a student plus one
// boolean cell per canonical exam period, in canonical order.
type PaymentMatrixRow struct {
	StudentID string `json:"studentId"`
	FullName  string `json:"fullName"`
	Paid      []bool `json:"paid"` // parallel to PaymentMatrixResponse.Periods
}

// PaymentMatrixResponse is the full payment matrix view.
type PaymentMatrixResponse struct {
	Periods []string           `json:"periods"`
	Rows    []PaymentMatrixRow `json:"rows"`
}

// StatusCount is one data point of the status distribution chart.
type StatusCount struct {
	Name  string `json:"name" example:"enrolled"`
	Value int    `json:"value" example:"42"`
	Color string `json:"color" example:"#4CAF50"`
}

// StatusDistributionResponse is the status pie-chart view.
type StatusDistributionResponse struct {
	TotalStudents int           `json:"totalStudents"`
	Data          []StatusCount `json:"data"`
}
