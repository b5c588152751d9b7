// internal/models/profile.go
package models

// ProfileInput is the user profile submitted for one prediction. It is
// built fresh from the form state for every request and never mutated
// afterwards.
type ProfileInput struct {
	Age           int     `json:"age"`
	TenureMonths  int     `json:"tenure_months"`
	RemoteFlag    int     `json:"remote_flag"`
	Education     string  `json:"education"`
	Location      string  `json:"location"`
	Title         string  `json:"title"`
	Industry      string  `json:"industry"`
	AvgSleepHours float64 `json:"avg_sleep_hours"`
}

// PredictionRequest is the envelope posted to the predict endpoint.
type PredictionRequest struct {
	UserData         ProfileInput `json:"user_data"`
	ProjectionMonths int          `json:"projection_months"`
}

// Horizon is the projection horizon in months.
type Horizon int

const (
	HorizonHalfYear  Horizon = 6
	HorizonTwoYears  Horizon = 24
	HorizonFiveYears Horizon = 60
)

// Horizons lists the horizons the prediction service accepts. The client
// does not enforce membership; the server rejects anything else.
var Horizons = []Horizon{HorizonHalfYear, HorizonTwoYears, HorizonFiveYears}

func (h Horizon) Months() int { return int(h) }

// Valid reports whether h is one of the accepted horizons.
func (h Horizon) Valid() bool {
	for _, known := range Horizons {
		if h == known {
			return true
		}
	}
	return false
}
