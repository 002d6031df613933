package v1alpha1

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// StartSession creates a session. The body is optional.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.journeyService.StartSession(r.Context(), &journey.StartSessionInput{Name: req.Name})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, StartSessionResponse{
		SessionID: out.SessionID,
		Character: convertCharacter(out.Character),
	})
}

// GetTimeline lists the session's events with their status
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	out, err := h.journeyService.GetTimeline(r.Context(), &journey.GetTimelineInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, convertTimeline(out))
}

// GetEvent opens an event and lists its decisions
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	out, err := h.journeyService.GetEvent(r.Context(), &journey.GetEventInput{
		SessionID: chi.URLParam(r, "sessionID"),
		EventID:   chi.URLParam(r, "eventID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, convertGetEvent(out))
}

// ProcessDecision applies the chosen decision to the session
func (h *Handler) ProcessDecision(w http.ResponseWriter, r *http.Request) {
	var req ProcessDecisionRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.journeyService.ProcessDecision(r.Context(), &journey.ProcessDecisionInput{
		SessionID:  chi.URLParam(r, "sessionID"),
		EventID:    chi.URLParam(r, "eventID"),
		DecisionID: req.DecisionID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, convertProcessDecision(out))
}

// GetCharacterState returns the protagonist and decision counts
func (h *Handler) GetCharacterState(w http.ResponseWriter, r *http.Request) {
	out, err := h.journeyService.GetCharacterState(r.Context(), &journey.GetCharacterStateInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, convertCharacterState(out))
}

// GetSessionHistory lists the decisions made so far
func (h *Handler) GetSessionHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.journeyService.GetSessionHistory(r.Context(), &journey.GetSessionHistoryInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, convertHistory(out))
}

// Health reports narrator availability. It answers 200 even when the
// narrator is down because decisions still succeed with fallback prose.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	out, err := h.journeyService.Health(r.Context(), &journey.HealthInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, HealthResponse{
		Status:            "ok",
		NarratorAvailable: out.NarratorAvailable,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if optional && stderrors.Is(err, io.EOF) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}
