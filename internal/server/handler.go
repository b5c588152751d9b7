// internal/server/handler.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	commonerrors "foresight/internal/common/errors"
	"foresight/internal/common/logger"
	"foresight/internal/common/observability"
	"foresight/internal/models"
	"foresight/internal/predictor"
)

// Handler provides the prediction HTTP API.
type Handler struct {
	engine *predictor.Engine
	obs    *observability.Observability
	logger logger.Logger
}

func NewHandler(engine *predictor.Engine, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		engine: engine,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{
			"component": "api",
		}),
	}
}

// RegisterRoutes sets up all API routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/predict_twin", h.handlePredict).Methods(http.MethodPost)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// predictRequest keeps user_data raw so it can be schema-validated before
// it is mapped onto the profile struct.
type predictRequest struct {
	UserData         json.RawMessage `json:"user_data"`
	ProjectionMonths json.RawMessage `json:"projection_months"`
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	log := h.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
	})

	status := "error"
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("prediction handler panicked", map[string]interface{}{
				"panic": fmt.Sprintf("%v", rec),
			})
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", rec))
		}
		h.obs.RecordPrediction(r.Context(), status)
		h.obs.RecordPredictionDuration(r.Context(), time.Since(start), status)
	}()

	if !isJSONRequest(r) {
		respondError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}

	if len(req.UserData) == 0 || len(req.ProjectionMonths) == 0 {
		respondError(w, http.StatusBadRequest, "Missing 'user_data' or 'projection_months'.")
		return
	}

	var months int
	if err := json.Unmarshal(req.ProjectionMonths, &months); err != nil || !models.Horizon(months).Valid() {
		respondError(w, http.StatusBadRequest, commonerrors.NewInvalidHorizonError().Message)
		return
	}

	if err := validateUserData(req.UserData); err != nil {
		respondError(w, http.StatusBadRequest, commonerrors.DisplayMessage(err))
		return
	}

	var profile models.ProfileInput
	if err := json.Unmarshal(req.UserData, &profile); err != nil {
		respondError(w, http.StatusBadRequest, commonerrors.DisplayMessage(
			commonerrors.NewSchemaValidationFailedError(err.Error())))
		return
	}

	forecast := h.engine.Forecast(&profile, models.Horizon(months))

	log.Info("forecast produced", map[string]interface{}{
		"projectionMonths": months,
		"projectedAge":     forecast.ProjectedAge,
		"durationMs":       time.Since(start).Milliseconds(),
	})

	status = "success"
	respondJSON(w, http.StatusOK, forecast)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// isJSONRequest mirrors the content-type gate of the original API.
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "application/json")
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error response in the {"error": ...} shape the
// client contract expects for every failure.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
