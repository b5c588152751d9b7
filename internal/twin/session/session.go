// internal/twin/session/session.go
package session

import (
	"context"
	"errors"
	"sync"

	commonerrors "foresight/internal/common/errors"
	"foresight/internal/common/logger"
	"foresight/internal/models"
	"foresight/internal/twin/builder"
)

// State is the lifecycle of a single prediction attempt:
// Idle -> Sending -> {Success, Failure}. There is no automatic transition
// back to Sending; only a new Submit starts another attempt.
type State int

const (
	StateIdle State = iota
	StateSending
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ErrRequestInFlight is returned by Submit while a prior attempt is still
// in the Sending state.
var ErrRequestInFlight = errors.New("prediction request already in flight")

// Snapshot is an immutable view of the session handed to subscribers and
// pollers. Outcome is nil until the attempt reaches a terminal state.
type Snapshot struct {
	State   State
	Outcome *models.PredictionOutcome
}

// Predictor is the single network dependency of a session.
type Predictor interface {
	Predict(ctx context.Context, req *models.PredictionRequest) models.PredictionOutcome
}

// Session owns the mutable prediction state the presentation layer reads.
// All updates go through defined transitions; consumers observe them via
// Subscribe or Snapshot, never through shared variables.
type Session struct {
	mu      sync.Mutex
	state   State
	outcome *models.PredictionOutcome
	subs    []chan Snapshot

	predictor Predictor
	logger    logger.Logger
}

func New(predictor Predictor, log logger.Logger) *Session {
	return &Session{
		state:     StateIdle,
		predictor: predictor,
		logger: log.WithFields(map[string]interface{}{
			"component": "twin-session",
		}),
	}
}

// Submit runs one prediction attempt to completion. It returns
// ErrRequestInFlight when called while a prior attempt is still sending;
// every other failure mode resolves the session to the Failure state.
// A builder validation failure resolves immediately with no network call.
func (s *Session) Submit(ctx context.Context, form builder.FormValues) error {
	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return ErrRequestInFlight
	}

	req, err := builder.Build(form)
	if err != nil {
		outcome := models.FailureOutcome(commonerrors.DisplayMessage(err))
		s.resolveLocked(StateFailure, &outcome)
		s.mu.Unlock()
		return nil
	}

	s.state = StateSending
	s.outcome = nil
	s.publishLocked()
	s.mu.Unlock()

	s.logger.Info("prediction submitted", map[string]interface{}{
		"projectionMonths": req.ProjectionMonths,
	})

	outcome := s.predictor.Predict(ctx, req)

	s.mu.Lock()
	if outcome.Succeeded() {
		s.resolveLocked(StateSuccess, &outcome)
	} else {
		s.resolveLocked(StateFailure, &outcome)
	}
	s.mu.Unlock()

	return nil
}

// Snapshot returns the current state for polling consumers.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, Outcome: s.outcome}
}

// Subscribe registers for state transitions. The channel is buffered; a
// subscriber that falls behind misses intermediate snapshots rather than
// blocking the session.
func (s *Session) Subscribe() <-chan Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Snapshot, 4)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Session) resolveLocked(state State, outcome *models.PredictionOutcome) {
	s.state = state
	s.outcome = outcome
	s.publishLocked()
}

func (s *Session) publishLocked() {
	snap := Snapshot{State: s.state, Outcome: s.outcome}
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
