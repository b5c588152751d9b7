// internal/server/handler_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foresight/internal/common/logger"
	"foresight/internal/common/observability"
	"foresight/internal/models"
	"foresight/internal/predictor"
)

// One registry-backed instance for the whole package; re-registering the
// collectors per test would trip the prometheus duplicate check.
var testObs = observability.New("foresight-server-test")

func newTestRouter(t *testing.T) *mux.Router {
	log := logger.NewTestLogger(t)
	router := mux.NewRouter()
	NewHandler(predictor.NewEngine(log), testObs, log).RegisterRoutes(router)
	return router
}

func validUserData() map[string]interface{} {
	return map[string]interface{}{
		"age":             30,
		"tenure_months":   36,
		"remote_flag":     1,
		"education":       "Master",
		"location":        "Metro",
		"title":           "Software Engineer",
		"industry":        "Technology",
		"avg_sleep_hours": 7.5,
	}
}

func postPredict(t *testing.T, router *mux.Router, body string, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict_twin", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postPredictJSON(t *testing.T, router *mux.Router, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return postPredict(t, router, string(body), "application/json")
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp, "error")
	return resp["error"]
}

func TestHandlePredict_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := postPredictJSON(t, router, map[string]interface{}{
		"user_data":         validUserData(),
		"projection_months": 24,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var forecast models.Forecast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forecast))
	assert.Equal(t, 32, forecast.ProjectedAge)
	assert.Equal(t, 10.0, forecast.HealthIncreasePercent)
	assert.True(t, forecast.PredictedSalary.Applicable)
	assert.Len(t, forecast.RecommendedJobs, 3)
	assert.Equal(t, 24, forecast.TimeProjectionMonths)
}

func TestHandlePredict_AllHorizons(t *testing.T) {
	router := newTestRouter(t)

	for _, months := range []int{6, 24, 60} {
		rec := postPredictJSON(t, router, map[string]interface{}{
			"user_data":         validUserData(),
			"projection_months": months,
		})
		require.Equal(t, http.StatusOK, rec.Code, "months=%d", months)

		var forecast models.Forecast
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forecast))
		assert.Equal(t, months, forecast.TimeProjectionMonths)
	}
}

func TestHandlePredict_RejectsNonJSONContentType(t *testing.T) {
	router := newTestRouter(t)

	rec := postPredict(t, router, "age=30", "application/x-www-form-urlencoded")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request must be JSON", errorMessage(t, rec))
}

func TestHandlePredict_AcceptsContentTypeWithCharset(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"user_data":         validUserData(),
		"projection_months": 6,
	})
	require.NoError(t, err)

	rec := postPredict(t, router, string(body), "application/json; charset=utf-8")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePredict_MalformedJSONBody(t *testing.T) {
	router := newTestRouter(t)

	rec := postPredict(t, router, "{not json", "application/json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request must be JSON", errorMessage(t, rec))
}

func TestHandlePredict_MissingTopLevelKeys(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{name: "missing user_data", payload: map[string]interface{}{"projection_months": 24}},
		{name: "missing projection_months", payload: map[string]interface{}{"user_data": validUserData()}},
		{name: "empty body object", payload: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postPredictJSON(t, newTestRouter(t), tt.payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Missing 'user_data' or 'projection_months'.", errorMessage(t, rec))
		})
	}
}

func TestHandlePredict_InvalidHorizon(t *testing.T) {
	tests := []struct {
		name   string
		months interface{}
	}{
		{name: "unsupported value", months: 12},
		{name: "zero", months: 0},
		{name: "negative", months: -6},
		{name: "string", months: "24"},
		{name: "fractional", months: 24.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postPredictJSON(t, newTestRouter(t), map[string]interface{}{
				"user_data":         validUserData(),
				"projection_months": tt.months,
			})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid 'projection_months'. Must be 6, 24, or 60.", errorMessage(t, rec))
		})
	}
}

func TestHandlePredict_UserDataSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{name: "missing field", mutate: func(u map[string]interface{}) { delete(u, "avg_sleep_hours") }},
		{name: "age as string", mutate: func(u map[string]interface{}) { u["age"] = "thirty" }},
		{name: "remote_flag out of enum", mutate: func(u map[string]interface{}) { u["remote_flag"] = 2 }},
		{name: "education as number", mutate: func(u map[string]interface{}) { u["education"] = 7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userData := validUserData()
			tt.mutate(userData)

			rec := postPredictJSON(t, newTestRouter(t), map[string]interface{}{
				"user_data":         userData,
				"projection_months": 24,
			})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorMessage(t, rec), "Invalid 'user_data'")
		})
	}
}

func TestHandlePredict_UserDataNotAnObject(t *testing.T) {
	rec := postPredictJSON(t, newTestRouter(t), map[string]interface{}{
		"user_data":         []int{1, 2, 3},
		"projection_months": 24,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "Invalid 'user_data'")
}

func TestHandlePredict_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/predict_twin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestValidateUserData_ListsEveryViolation(t *testing.T) {
	raw, err := json.Marshal(map[string]interface{}{
		"age":           "thirty",
		"tenure_months": 36,
	})
	require.NoError(t, err)

	verr := validateUserData(raw)
	require.Error(t, verr)
	// Both the type violation and the missing fields show up.
	assert.Contains(t, verr.Error(), "age")
	assert.Contains(t, verr.Error(), "avg_sleep_hours")
}
