// internal/predictor/job_model.go
package predictor

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"foresight/internal/models"
)

//go:embed modeldata/job_model.json
var jobModelData []byte

// jobModel ranks a fixed candidate title list against a projected profile.
// Each candidate carries a base score plus per-feature affinities.
type jobModel struct {
	Candidates []jobCandidate `json:"candidates"`
}

type jobCandidate struct {
	Title             string             `json:"title"`
	Base              float64            `json:"base"`
	TenureCoef        float64            `json:"tenure_coef"`
	AgeCoef           float64            `json:"age_coef"`
	RemoteBoost       float64            `json:"remote_boost"`
	EducationAffinity map[string]float64 `json:"education_affinity"`
	IndustryAffinity  map[string]float64 `json:"industry_affinity"`
}

func loadJobModel() (*jobModel, error) {
	var m jobModel
	if err := json.Unmarshal(jobModelData, &m); err != nil {
		return nil, fmt.Errorf("load job model: %w", err)
	}
	if len(m.Candidates) == 0 {
		return nil, fmt.Errorf("job model has no candidates")
	}
	return &m, nil
}

// TopTitles returns the n highest-scoring candidate titles for a projected
// profile, best first. Ties resolve by candidate order, which keeps the
// ranking deterministic.
func (m *jobModel) TopTitles(p *models.ProfileInput, n int) []string {
	type scored struct {
		title string
		score float64
		index int
	}

	ranked := make([]scored, 0, len(m.Candidates))
	for i, c := range m.Candidates {
		score := c.Base
		score += c.TenureCoef * float64(p.TenureMonths)
		score += c.AgeCoef * float64(p.Age)
		if p.RemoteFlag == 1 {
			score += c.RemoteBoost
		}
		score += c.EducationAffinity[normalizeCategory(p.Education)]
		score += c.IndustryAffinity[normalizeCategory(p.Industry)]
		ranked = append(ranked, scored{title: c.Title, score: score, index: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	titles := make([]string, 0, n)
	for _, r := range ranked[:n] {
		titles = append(titles, r.title)
	}
	return titles
}
