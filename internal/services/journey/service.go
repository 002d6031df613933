// Package journey defines the interface for a player's walk through the saga
package journey

//go:generate mockgen -destination=mock/mock_service.go -package=journeymock github.com/KirkDiggler/rpg-saga/internal/services/journey Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Service defines the interface for journey operations.
// Every operation but StartSession and Health is scoped to an existing session.
type Service interface {
	// Session lifecycle
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Reads
	GetTimeline(ctx context.Context, input *GetTimelineInput) (*GetTimelineOutput, error)
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)
	GetCharacterState(ctx context.Context, input *GetCharacterStateInput) (*GetCharacterStateOutput, error)
	GetSessionHistory(ctx context.Context, input *GetSessionHistoryInput) (*GetSessionHistoryOutput, error)

	// The one write after session start
	ProcessDecision(ctx context.Context, input *ProcessDecisionInput) (*ProcessDecisionOutput, error)

	// Health reports collaborator availability and never fails because of it
	Health(ctx context.Context, input *HealthInput) (*HealthOutput, error)
}

// Shared views

// CharacterState is the display snapshot of a character
type CharacterState struct {
	ID                 string
	SessionID          string
	Name               string
	Title              entities.Title
	TitleDisplayName   string
	TitleDescription   string
	LightSide          int
	DarkSide           int
	Emotion            entities.Emotion
	EmotionDisplayName string
	EmotionDescription string
	Alignment          entities.Alignment
	IsInConflict       bool
	HasFallen          bool
	HasAchievedMastery bool
}

// NewCharacterState builds the display snapshot
func NewCharacterState(c entities.Character) CharacterState {
	m := c.MoralState
	return CharacterState{
		ID:                 c.ID,
		SessionID:          c.SessionID,
		Name:               c.Name,
		Title:              c.Title,
		TitleDisplayName:   c.Title.DisplayName(),
		TitleDescription:   c.Title.Description(),
		LightSide:          m.LightSide(),
		DarkSide:           m.DarkSide(),
		Emotion:            c.Emotion,
		EmotionDisplayName: c.Emotion.DisplayName(),
		EmotionDescription: c.Emotion.Description(),
		Alignment:          m.DominantAlignment(),
		IsInConflict:       m.IsInConflict(),
		HasFallen:          m.HasFallen(),
		HasAchievedMastery: m.HasAchievedMastery(),
	}
}

// Session lifecycle types

// StartSessionInput defines the request for starting a session
type StartSessionInput struct {
	// Name is optional; the configured protagonist name is used when empty
	Name string
}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	SessionID string
	Character CharacterState
}

// Timeline types

// TimelineEvent is an event with its status for the session
type TimelineEvent struct {
	ID                      string
	Title                   string
	Description             string
	Era                     entities.Era
	EraDisplayName          string
	ChronologicalOrder      int
	IsKeyMoment             bool
	RequiredPreviousEventID string
	Status                  engine.EventStatus
}

// TimelineEra groups timeline events under one arc
type TimelineEra struct {
	Era         entities.Era
	DisplayName string
	Events      []TimelineEvent
}

// GetTimelineInput defines the request for a session's timeline
type GetTimelineInput struct {
	SessionID string
}

// GetTimelineOutput defines the response for a session's timeline
type GetTimelineOutput struct {
	Events          []TimelineEvent
	Eras            []TimelineEra
	TotalEvents     int
	CompletedEvents int
	Progress        int
	CurrentEra      string
	JourneyComplete bool
}

// Event types

// DecisionOption is a decision as offered to the player. The alignment
// tag is withheld so the choice is made on its text alone.
type DecisionOption struct {
	ID               string
	Text             string
	NarrativeContext string
	DisplayOrder     int
}

// GetEventInput defines the request for opening an event
type GetEventInput struct {
	SessionID string
	EventID   string
}

// GetEventOutput defines the response for opening an event
type GetEventOutput struct {
	Event     entities.CanonicalEvent
	Decisions []DecisionOption
	Character CharacterState
}

// Decision types

// ProcessDecisionInput defines the request for making a decision
type ProcessDecisionInput struct {
	SessionID  string
	EventID    string
	DecisionID string
}

// ProgressionReport describes the transition in display terms
type ProgressionReport struct {
	TitleChanged        bool
	PreviousTitle       entities.Title
	NewTitle            entities.Title
	TriggeredFall       bool
	TriggeredRedemption bool
	MoralShift          entities.MoralShift
}

// NarrativeResult is the prose for a decision. Fallback is set when the
// narrator failed and a canned line was used instead.
type NarrativeResult struct {
	Text        string
	GeneratedAt time.Time
	TokenCount  int
	Fallback    bool
}

// EventSummary identifies the resolved event
type EventSummary struct {
	ID    string
	Title string
	Era   entities.Era
}

// DecisionSummary identifies the chosen decision
type DecisionSummary struct {
	ID        string
	Text      string
	Alignment entities.Alignment
}

// ProcessDecisionOutput defines the response for making a decision
type ProcessDecisionOutput struct {
	RecordID                 string
	Character                CharacterState
	PreviousTitleDisplayName string
	Progression              ProgressionReport
	Narrative                NarrativeResult
	Event                    EventSummary
	Decision                 DecisionSummary
}

// Character state types

// CharacterStats counts the session's decisions by their effect on the light side
type CharacterStats struct {
	DecisionsCount int
	LightDecisions int
	DarkDecisions  int
}

// GetCharacterStateInput defines the request for a character snapshot
type GetCharacterStateInput struct {
	SessionID string
}

// GetCharacterStateOutput defines the response for a character snapshot
type GetCharacterStateOutput struct {
	Character CharacterState
	Stats     CharacterStats
}

// History types

// Placeholders used when a record refers to content that is gone
const (
	UnknownEventTitle    = "Unknown event"
	UnknownDecisionText  = "Unknown decision"
	UnavailableNarrative = "Narrative unavailable"
	tendencyThreshold   = 2.0
)

// HistoryEntry is one processed decision joined with its content
type HistoryEntry struct {
	RecordID        string
	EventID         string
	EventTitle      string
	Era             entities.Era
	DecisionID      string
	DecisionText    string
	Shift           int
	Alignment       entities.Alignment
	LightSideBefore int
	LightSideAfter  int
	DarkSideBefore  int
	DarkSideAfter   int
	EmotionAfter    entities.Emotion
	TitleBefore     entities.Title
	TitleAfter      entities.Title
	TriggeredFall   bool
	Narrative       string
	CreatedAt       time.Time
}

// HistorySummary aggregates a session's entries
type HistorySummary struct {
	TotalDecisions   int
	LightDecisions   int
	DarkDecisions    int
	NeutralDecisions int
	AverageShift     float64
	OverallTendency  entities.Alignment
}

// UnknownEra stands in for the arc of an event that is gone
const UnknownEra entities.Era = "unknown"

// TendencyFor classifies an average light side shift
func TendencyFor(averageShift float64) entities.Alignment {
	switch {
	case averageShift > tendencyThreshold:
		return entities.AlignmentLight
	case averageShift < -tendencyThreshold:
		return entities.AlignmentDark
	default:
		return entities.AlignmentBalanced
	}
}

// GetSessionHistoryInput defines the request for a session's history
type GetSessionHistoryInput struct {
	SessionID string
}

// GetSessionHistoryOutput defines the response for a session's history
type GetSessionHistoryOutput struct {
	Entries []HistoryEntry
	Summary HistorySummary
}

// Health types

// HealthInput defines the request for a health probe
type HealthInput struct{}

// HealthOutput defines the response for a health probe
type HealthOutput struct {
	NarratorAvailable bool
}
