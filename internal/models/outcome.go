// internal/models/outcome.go
package models

// Forecast is the success payload of one prediction call, mirroring the
// predict endpoint's response body field for field.
type Forecast struct {
	ProjectedAge          int      `json:"projected_age"`
	HealthIncreasePercent float64  `json:"health_increase_percent"`
	PredictedSalary       Salary   `json:"predicted_salary"`
	RecommendedJobs       []string `json:"recommended_jobs"`
	TimeProjectionMonths  int      `json:"time_projection_months"`
}

// PredictionOutcome is the tagged result of one prediction attempt.
// Exactly one variant is populated: Forecast on success, FailureMessage
// otherwise. Outcomes are created once per attempt and never mutated.
type PredictionOutcome struct {
	Forecast       *Forecast
	FailureMessage string
}

func SuccessOutcome(f *Forecast) PredictionOutcome {
	return PredictionOutcome{Forecast: f}
}

func FailureOutcome(message string) PredictionOutcome {
	return PredictionOutcome{FailureMessage: message}
}

func (o PredictionOutcome) Succeeded() bool {
	return o.Forecast != nil
}
