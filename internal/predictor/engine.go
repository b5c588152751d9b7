// internal/predictor/engine.go
package predictor

import (
	"math"

	"foresight/internal/common/errors"
	"foresight/internal/common/logger"
	"foresight/internal/models"
)

const recommendedJobCount = 3

// Engine produces a forecast from a profile and a projection horizon.
// Career model failures degrade the affected field to its not-applicable
// form instead of failing the whole forecast.
type Engine struct {
	salary *salaryModel
	jobs   *jobModel
	logger logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	e := &Engine{
		logger: log.WithFields(map[string]interface{}{
			"component": "predictor",
		}),
	}

	salary, err := loadSalaryModel()
	if err != nil {
		e.logger.Error("salary model unavailable", map[string]interface{}{
			"error": errors.NewModelUnavailableError("salary", err).Error(),
		})
	} else {
		e.salary = salary
	}

	jobs, err := loadJobModel()
	if err != nil {
		e.logger.Error("job model unavailable", map[string]interface{}{
			"error": errors.NewModelUnavailableError("job", err).Error(),
		})
	} else {
		e.jobs = jobs
	}

	return e
}

// Forecast projects the profile forward by the horizon and scores the
// career models against the projected twin.
func (e *Engine) Forecast(input *models.ProfileInput, horizon models.Horizon) *models.Forecast {
	months := horizon.Months()

	projected := *input
	projected.Age = input.Age + months/12
	projected.TenureMonths = input.TenureMonths + months

	salary := models.SalaryNotApplicable()
	if e.salary != nil {
		salary = models.SalaryOf(round2(e.salary.Predict(&projected)))
	}

	jobs := []string{"N/A"}
	if e.jobs != nil {
		jobs = e.jobs.TopTitles(&projected, recommendedJobCount)
	}

	return &models.Forecast{
		ProjectedAge:          projected.Age,
		HealthIncreasePercent: HealthIncreasePercent(input.AvgSleepHours),
		PredictedSalary:       salary,
		RecommendedJobs:       jobs,
		TimeProjectionMonths:  months,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
