// internal/predictor/salary_model.go
package predictor

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"foresight/internal/models"
)

//go:embed modeldata/salary_model.json
var salaryModelData []byte

// salaryModel is a linear regression over the numeric profile features
// plus learned weights for each categorical value. Unknown categories fall
// back to a neutral weight rather than failing the prediction.
type salaryModel struct {
	Intercept      float64            `json:"intercept"`
	AgeCoef        float64            `json:"age_coef"`
	TenureCoef     float64            `json:"tenure_coef"`
	RemoteCoef     float64            `json:"remote_coef"`
	FallbackWeight float64            `json:"fallback_weight"`
	Education      map[string]float64 `json:"education"`
	Location       map[string]float64 `json:"location"`
	Title          map[string]float64 `json:"title"`
	Industry       map[string]float64 `json:"industry"`
}

func loadSalaryModel() (*salaryModel, error) {
	var m salaryModel
	if err := json.Unmarshal(salaryModelData, &m); err != nil {
		return nil, fmt.Errorf("load salary model: %w", err)
	}
	if len(m.Education) == 0 || len(m.Title) == 0 {
		return nil, fmt.Errorf("salary model has empty weight tables")
	}
	return &m, nil
}

// Predict scores a projected profile. The caller projects age and tenure
// forward before scoring.
func (m *salaryModel) Predict(p *models.ProfileInput) float64 {
	salary := m.Intercept
	salary += m.AgeCoef * float64(p.Age)
	salary += m.TenureCoef * float64(p.TenureMonths)
	salary += m.RemoteCoef * float64(p.RemoteFlag)
	salary += m.categoryWeight(m.Education, p.Education)
	salary += m.categoryWeight(m.Location, p.Location)
	salary += m.categoryWeight(m.Title, p.Title)
	salary += m.categoryWeight(m.Industry, p.Industry)
	return salary
}

func (m *salaryModel) categoryWeight(table map[string]float64, value string) float64 {
	if w, ok := table[normalizeCategory(value)]; ok {
		return w
	}
	return m.FallbackWeight
}

func normalizeCategory(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
