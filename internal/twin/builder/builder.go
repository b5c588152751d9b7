// internal/twin/builder/builder.go
package builder

import (
	"strconv"
	"strings"

	"foresight/internal/common/errors"
	"foresight/internal/models"
)

// FormValues carries the raw form fields as entered. Numeric fields stay
// strings until Build parses them.
type FormValues struct {
	Age           string
	TenureMonths  string
	RemoteWork    bool
	Education     string
	Location      string
	Title         string
	Industry      string
	AvgSleepHours string
	Horizon       models.Horizon
}

// Build turns raw form values into a prediction request. A numeric field
// that fails to parse yields a validation error and no request; there are
// no range or enum checks beyond that.
func Build(form FormValues) (*models.PredictionRequest, error) {
	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if err != nil {
		return nil, errors.NewInputParseFailedError("age", form.Age)
	}

	tenure, err := strconv.Atoi(strings.TrimSpace(form.TenureMonths))
	if err != nil {
		return nil, errors.NewInputParseFailedError("tenure_months", form.TenureMonths)
	}

	sleep, err := strconv.ParseFloat(strings.TrimSpace(form.AvgSleepHours), 64)
	if err != nil {
		return nil, errors.NewInputParseFailedError("avg_sleep_hours", form.AvgSleepHours)
	}

	remoteFlag := 0
	if form.RemoteWork {
		remoteFlag = 1
	}

	return &models.PredictionRequest{
		UserData: models.ProfileInput{
			Age:           age,
			TenureMonths:  tenure,
			RemoteFlag:    remoteFlag,
			Education:     form.Education,
			Location:      form.Location,
			Title:         form.Title,
			Industry:      form.Industry,
			AvgSleepHours: sleep,
		},
		ProjectionMonths: form.Horizon.Months(),
	}, nil
}
