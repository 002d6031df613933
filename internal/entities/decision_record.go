package entities

import "time"

// UserDecisionRecord is the append-only audit entry for one processed decision.
// The distinct EventIDs of a session's records are its completed events.
type UserDecisionRecord struct {
	ID                 string    `json:"id"`
	SessionID          string    `json:"session_id"`
	CharacterID        string    `json:"character_id"`
	EventID            string    `json:"event_id"`
	DecisionID         string    `json:"decision_id"`
	LightSideBefore    int       `json:"light_side_before"`
	LightSideAfter     int       `json:"light_side_after"`
	DarkSideBefore     int       `json:"dark_side_before"`
	DarkSideAfter      int       `json:"dark_side_after"`
	EmotionBefore      Emotion   `json:"emotion_before"`
	EmotionAfter       Emotion   `json:"emotion_after"`
	TitleBefore        Title     `json:"title_before"`
	TitleAfter         Title     `json:"title_after"`
	GeneratedNarrative string    `json:"generated_narrative"`
	CreatedAt          time.Time `json:"created_at"`
}

// LightShift is lightSideAfter minus lightSideBefore
func (r UserDecisionRecord) LightShift() int {
	return r.LightSideAfter - r.LightSideBefore
}

// TriggeredFall reports whether this decision crossed the fall threshold
func (r UserDecisionRecord) TriggeredFall() bool {
	return r.DarkSideBefore < FallThreshold && r.DarkSideAfter >= FallThreshold
}

// AlignmentShift is the change in balance caused by the decision
func (r UserDecisionRecord) AlignmentShift() int {
	before := r.LightSideBefore - r.DarkSideBefore
	after := r.LightSideAfter - r.DarkSideAfter
	return after - before
}

// TitleChanged reports a rank change
func (r UserDecisionRecord) TitleChanged() bool {
	return r.TitleBefore != r.TitleAfter
}
