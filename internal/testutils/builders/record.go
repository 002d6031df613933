package builders

import (
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Record builds a decision record for the given session and event
func Record(id, sessionID, eventID, decisionID string) entities.UserDecisionRecord {
	return entities.UserDecisionRecord{
		ID:                 id,
		SessionID:          sessionID,
		CharacterID:        "char_test",
		EventID:            eventID,
		DecisionID:         decisionID,
		LightSideBefore:    entities.InitialLightSide,
		LightSideAfter:     entities.InitialLightSide + 10,
		DarkSideBefore:     entities.InitialDarkSide,
		DarkSideAfter:      entities.InitialDarkSide,
		EmotionBefore:      entities.EmotionHope,
		EmotionAfter:       entities.EmotionPeace,
		TitleBefore:        entities.TitleApprentice,
		TitleAfter:         entities.TitleApprentice,
		GeneratedNarrative: "The path goes on.",
		CreatedAt:          FixedTime,
	}
}
