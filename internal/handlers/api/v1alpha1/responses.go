package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorStatus(w, errors.GetCode(err).HTTPStatus(), err)
}

func writeErrorStatus(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   errors.GetMessage(err),
		Code:    errors.GetCode(err).String(),
		Kind:    errors.GetKind(err),
		Reason:  errors.GetReason(err),
	}); encErr != nil {
		slog.Error("failed to encode error response", "error", encErr)
	}
}

// CharacterStateResponse is the JSON view of journey.CharacterState
type CharacterStateResponse struct {
	ID                 string `json:"id"`
	SessionID          string `json:"session_id"`
	Name               string `json:"name"`
	Title              string `json:"title"`
	TitleDisplayName   string `json:"title_display_name"`
	TitleDescription   string `json:"title_description"`
	LightSide          int    `json:"light_side"`
	DarkSide           int    `json:"dark_side"`
	Emotion            string `json:"emotion"`
	EmotionDisplayName string `json:"emotion_display_name"`
	EmotionDescription string `json:"emotion_description"`
	Alignment          string `json:"alignment"`
	IsInConflict       bool   `json:"is_in_conflict"`
	HasFallen          bool   `json:"has_fallen"`
	HasAchievedMastery bool   `json:"has_achieved_mastery"`
}

func convertCharacter(c journey.CharacterState) CharacterStateResponse {
	return CharacterStateResponse{
		ID:                 c.ID,
		SessionID:          c.SessionID,
		Name:               c.Name,
		Title:              string(c.Title),
		TitleDisplayName:   c.TitleDisplayName,
		TitleDescription:   c.TitleDescription,
		LightSide:          c.LightSide,
		DarkSide:           c.DarkSide,
		Emotion:            string(c.Emotion),
		EmotionDisplayName: c.EmotionDisplayName,
		EmotionDescription: c.EmotionDescription,
		Alignment:          string(c.Alignment),
		IsInConflict:       c.IsInConflict,
		HasFallen:          c.HasFallen,
		HasAchievedMastery: c.HasAchievedMastery,
	}
}

// StartSessionRequest is the optional body of POST /api/v1/sessions
type StartSessionRequest struct {
	Name string `json:"name"`
}

// StartSessionResponse is returned by POST /api/v1/sessions
type StartSessionResponse struct {
	SessionID string                 `json:"session_id"`
	Character CharacterStateResponse `json:"character"`
}

// TimelineEventResponse is one event on the timeline
type TimelineEventResponse struct {
	ID                      string `json:"id"`
	Title                   string `json:"title"`
	Description             string `json:"description"`
	Era                     string `json:"era"`
	EraDisplayName          string `json:"era_display_name"`
	ChronologicalOrder      int    `json:"chronological_order"`
	IsKeyMoment             bool   `json:"is_key_moment"`
	RequiredPreviousEventID string `json:"required_previous_event_id,omitempty"`
	Status                  string `json:"status"`
}

// TimelineEraResponse groups timeline events by era
type TimelineEraResponse struct {
	Era         string                  `json:"era"`
	DisplayName string                  `json:"display_name"`
	Events      []TimelineEventResponse `json:"events"`
}

// TimelineResponse is returned by GET .../timeline
type TimelineResponse struct {
	Events          []TimelineEventResponse `json:"events"`
	Eras            []TimelineEraResponse   `json:"eras"`
	TotalEvents     int                     `json:"total_events"`
	CompletedEvents int                     `json:"completed_events"`
	Progress        int                     `json:"progress"`
	CurrentEra      string                  `json:"current_era"`
	JourneyComplete bool                    `json:"journey_complete"`
}

func convertTimelineEvents(in []journey.TimelineEvent) []TimelineEventResponse {
	out := make([]TimelineEventResponse, 0, len(in))
	for _, e := range in {
		out = append(out, TimelineEventResponse{
			ID:                      e.ID,
			Title:                   e.Title,
			Description:             e.Description,
			Era:                     string(e.Era),
			EraDisplayName:          e.EraDisplayName,
			ChronologicalOrder:      e.ChronologicalOrder,
			IsKeyMoment:             e.IsKeyMoment,
			RequiredPreviousEventID: e.RequiredPreviousEventID,
			Status:                  string(e.Status),
		})
	}
	return out
}

func convertTimeline(t *journey.GetTimelineOutput) TimelineResponse {
	eras := make([]TimelineEraResponse, 0, len(t.Eras))
	for _, era := range t.Eras {
		eras = append(eras, TimelineEraResponse{
			Era:         string(era.Era),
			DisplayName: era.DisplayName,
			Events:      convertTimelineEvents(era.Events),
		})
	}
	return TimelineResponse{
		Events:          convertTimelineEvents(t.Events),
		Eras:            eras,
		TotalEvents:     t.TotalEvents,
		CompletedEvents: t.CompletedEvents,
		Progress:        t.Progress,
		CurrentEra:      t.CurrentEra,
		JourneyComplete: t.JourneyComplete,
	}
}

// EventResponse describes an opened event
type EventResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Era                string `json:"era"`
	EraDisplayName     string `json:"era_display_name"`
	ChronologicalOrder int    `json:"chronological_order"`
	IsKeyMoment        bool   `json:"is_key_moment"`
}

// DecisionOptionResponse is a decision offered to the player, without its alignment
type DecisionOptionResponse struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	NarrativeContext string `json:"narrative_context"`
	DisplayOrder     int    `json:"display_order"`
}

// GetEventResponse is returned by GET .../events/{eventID}
type GetEventResponse struct {
	Event     EventResponse            `json:"event"`
	Decisions []DecisionOptionResponse `json:"decisions"`
	Character CharacterStateResponse   `json:"character"`
}

func convertGetEvent(out *journey.GetEventOutput) GetEventResponse {
	decisions := make([]DecisionOptionResponse, 0, len(out.Decisions))
	for _, d := range out.Decisions {
		decisions = append(decisions, DecisionOptionResponse{
			ID:               d.ID,
			Text:             d.Text,
			NarrativeContext: d.NarrativeContext,
			DisplayOrder:     d.DisplayOrder,
		})
	}
	e := out.Event
	return GetEventResponse{
		Event: EventResponse{
			ID:                 e.ID,
			Title:              e.Title,
			Description:        e.Description,
			Era:                string(e.Era),
			EraDisplayName:     e.EraDisplayName(),
			ChronologicalOrder: e.ChronologicalOrder,
			IsKeyMoment:        e.IsKeyMoment,
		},
		Decisions: decisions,
		Character: convertCharacter(out.Character),
	}
}

// ProcessDecisionRequest is the body of POST .../decisions
type ProcessDecisionRequest struct {
	DecisionID string `json:"decision_id"`
}

// ProgressionResponse reports what the decision changed
type ProgressionResponse struct {
	TitleChanged        bool   `json:"title_changed"`
	PreviousTitle       string `json:"previous_title"`
	NewTitle            string `json:"new_title"`
	TriggeredFall       bool   `json:"triggered_fall"`
	TriggeredRedemption bool   `json:"triggered_redemption"`
	MoralShift          string `json:"moral_shift"`
}

// NarrativeResponse is the prose for the decision
type NarrativeResponse struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
	TokenCount  int       `json:"token_count"`
	Fallback    bool      `json:"fallback"`
}

// ProcessDecisionResponse is returned by POST .../decisions
type ProcessDecisionResponse struct {
	RecordID                 string                 `json:"record_id"`
	Character                CharacterStateResponse `json:"character"`
	PreviousTitleDisplayName string                 `json:"previous_title_display_name"`
	Progression              ProgressionResponse    `json:"progression"`
	Narrative                NarrativeResponse      `json:"narrative"`
	Event                    struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Era   string `json:"era"`
	} `json:"event"`
	Decision struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Alignment string `json:"alignment"`
	} `json:"decision"`
}

func convertProcessDecision(out *journey.ProcessDecisionOutput) ProcessDecisionResponse {
	resp := ProcessDecisionResponse{
		RecordID:                 out.RecordID,
		Character:                convertCharacter(out.Character),
		PreviousTitleDisplayName: out.PreviousTitleDisplayName,
		Progression: ProgressionResponse{
			TitleChanged:        out.Progression.TitleChanged,
			PreviousTitle:       string(out.Progression.PreviousTitle),
			NewTitle:            string(out.Progression.NewTitle),
			TriggeredFall:       out.Progression.TriggeredFall,
			TriggeredRedemption: out.Progression.TriggeredRedemption,
			MoralShift:          string(out.Progression.MoralShift),
		},
		Narrative: NarrativeResponse{
			Text:        out.Narrative.Text,
			GeneratedAt: out.Narrative.GeneratedAt,
			TokenCount:  out.Narrative.TokenCount,
			Fallback:    out.Narrative.Fallback,
		},
	}
	resp.Event.ID = out.Event.ID
	resp.Event.Title = out.Event.Title
	resp.Event.Era = string(out.Event.Era)
	resp.Decision.ID = out.Decision.ID
	resp.Decision.Text = out.Decision.Text
	resp.Decision.Alignment = string(out.Decision.Alignment)
	return resp
}

// CharacterResponse is returned by GET .../character
type CharacterResponse struct {
	Character CharacterStateResponse `json:"character"`
	Stats     struct {
		DecisionsCount int `json:"decisions_count"`
		LightDecisions int `json:"light_decisions"`
		DarkDecisions  int `json:"dark_decisions"`
	} `json:"stats"`
}

func convertCharacterState(out *journey.GetCharacterStateOutput) CharacterResponse {
	resp := CharacterResponse{Character: convertCharacter(out.Character)}
	resp.Stats.DecisionsCount = out.Stats.DecisionsCount
	resp.Stats.LightDecisions = out.Stats.LightDecisions
	resp.Stats.DarkDecisions = out.Stats.DarkDecisions
	return resp
}

// HistoryEntryResponse is one processed decision
type HistoryEntryResponse struct {
	RecordID        string    `json:"record_id"`
	EventID         string    `json:"event_id"`
	EventTitle      string    `json:"event_title"`
	Era             string    `json:"era,omitempty"`
	DecisionID      string    `json:"decision_id"`
	DecisionText    string    `json:"decision_text"`
	Shift           int       `json:"shift"`
	Alignment       string    `json:"alignment"`
	LightSideBefore int       `json:"light_side_before"`
	LightSideAfter  int       `json:"light_side_after"`
	DarkSideBefore  int       `json:"dark_side_before"`
	DarkSideAfter   int       `json:"dark_side_after"`
	EmotionAfter    string    `json:"emotion_after"`
	TitleBefore     string    `json:"title_before"`
	TitleAfter      string    `json:"title_after"`
	TriggeredFall   bool      `json:"triggered_fall"`
	Narrative       string    `json:"narrative"`
	CreatedAt       time.Time `json:"created_at"`
}

// HistorySummaryResponse aggregates the history entries
type HistorySummaryResponse struct {
	TotalDecisions   int     `json:"total_decisions"`
	LightDecisions   int     `json:"light_decisions"`
	DarkDecisions    int     `json:"dark_decisions"`
	NeutralDecisions int     `json:"neutral_decisions"`
	AverageShift     float64 `json:"average_shift"`
	OverallTendency  string  `json:"overall_tendency"`
}

// HistoryResponse is returned by GET .../history
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Summary HistorySummaryResponse `json:"summary"`
}

func convertHistory(out *journey.GetSessionHistoryOutput) HistoryResponse {
	entries := make([]HistoryEntryResponse, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, HistoryEntryResponse{
			RecordID:        e.RecordID,
			EventID:         e.EventID,
			EventTitle:      e.EventTitle,
			Era:             string(e.Era),
			DecisionID:      e.DecisionID,
			DecisionText:    e.DecisionText,
			Shift:           e.Shift,
			Alignment:       string(e.Alignment),
			LightSideBefore: e.LightSideBefore,
			LightSideAfter:  e.LightSideAfter,
			DarkSideBefore:  e.DarkSideBefore,
			DarkSideAfter:   e.DarkSideAfter,
			EmotionAfter:    string(e.EmotionAfter),
			TitleBefore:     string(e.TitleBefore),
			TitleAfter:      string(e.TitleAfter),
			TriggeredFall:   e.TriggeredFall,
			Narrative:       e.Narrative,
			CreatedAt:       e.CreatedAt,
		})
	}
	s := out.Summary
	return HistoryResponse{
		Entries: entries,
		Summary: HistorySummaryResponse{
			TotalDecisions:   s.TotalDecisions,
			LightDecisions:   s.LightDecisions,
			DarkDecisions:    s.DarkDecisions,
			NeutralDecisions: s.NeutralDecisions,
			AverageShift:     s.AverageShift,
			OverallTendency:  string(s.OverallTendency),
		},
	}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status            string `json:"status"`
	NarratorAvailable bool   `json:"narrator_available"`
}
