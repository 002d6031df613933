package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// DecisionImpact is the fixed numeric effect of choosing a decision
type DecisionImpact struct {
	LightSideDelta   int     `json:"light_side_delta" yaml:"light"`
	DarkSideDelta    int     `json:"dark_side_delta" yaml:"dark"`
	ResultingEmotion Emotion `json:"resulting_emotion" yaml:"emotion"`
}

// Decision is one of the choices offered at a CanonicalEvent.
// Alignment selects the update formula; the deltas only set its magnitude.
type Decision struct {
	ID               string         `json:"id" yaml:"id"`
	EventID          string         `json:"event_id" yaml:"-"`
	Text             string         `json:"text" yaml:"text"`
	Alignment        Alignment      `json:"alignment" yaml:"alignment"`
	Impact           DecisionImpact `json:"impact" yaml:"impact"`
	NarrativeContext string         `json:"narrative_context" yaml:"context"`
	DisplayOrder     int            `json:"display_order" yaml:"order"`
}

// NetMoralWeight is lightSideDelta minus darkSideDelta
func (d Decision) NetMoralWeight() int {
	return d.Impact.LightSideDelta - d.Impact.DarkSideDelta
}

// BelongsTo reports whether the decision is offered at eventID
func (d Decision) BelongsTo(eventID string) bool {
	return d.EventID == eventID
}

// Validate rejects unknown tags and missing identity
func (d Decision) Validate() error {
	if d.ID == "" {
		return errors.InvariantViolation("decision id is required")
	}
	if d.EventID == "" {
		return errors.InvariantViolationf("decision %s: event id is required", d.ID)
	}
	if d.Text == "" {
		return errors.InvariantViolationf("decision %s: text is required", d.ID)
	}
	if _, err := ParseDecisionAlignment(string(d.Alignment)); err != nil {
		return errors.Wrapf(err, "decision %s", d.ID)
	}
	if _, err := ParseEmotion(string(d.Impact.ResultingEmotion)); err != nil {
		return errors.Wrapf(err, "decision %s", d.ID)
	}
	return nil
}
