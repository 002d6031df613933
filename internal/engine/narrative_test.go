package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

type NarrativeTestSuite struct {
	suite.Suite
	event    entities.CanonicalEvent
	decision entities.Decision
	start    entities.Character
}

func TestNarrativeSuite(t *testing.T) {
	suite.Run(t, new(NarrativeTestSuite))
}

func (s *NarrativeTestSuite) SetupTest() {
	s.event = entities.CanonicalEvent{
		ID:                 "the-burning-archive",
		Title:              "The Burning Archive",
		Description:        "The archive is on fire and the scrolls are within reach.",
		Era:                entities.EraShadowWar,
		ChronologicalOrder: 5,
		IsKeyMoment:        true,
	}
	s.decision = entities.Decision{
		ID:               "let-it-burn",
		EventID:          s.event.ID,
		Text:             "Let it burn",
		Alignment:        entities.AlignmentDark,
		Impact:           entities.DecisionImpact{DarkSideDelta: 20, ResultingEmotion: entities.EmotionAnger},
		NarrativeContext: "Knowledge hoarded is knowledge wasted",
	}
	s.start = entities.NewProtagonist("char-1", "session-1", "Kael Varyn", time.Unix(0, 0).UTC())
	s.start.MoralState = entities.NewMoralState(45, 45)
	s.start.Title = entities.TitleKnight
}

func (s *NarrativeTestSuite) TestBuildNarrativeContext() {
	result := engine.ApplyDecision(s.start, s.decision, time.Unix(60, 0).UTC())
	before := result.Character

	nc := engine.BuildNarrativeContext(result.Character, s.event, s.decision, result)

	s.Equal("Kael Varyn", nc.Character.Name)
	s.Equal("Fallen Knight", nc.Character.Title)
	s.Equal(25, nc.Character.LightSide)
	s.Equal(65, nc.Character.DarkSide)
	s.Equal("Anger", nc.Character.Emotion)
	s.Equal("anger", nc.Character.EmotionTag)
	s.Equal("dark", nc.Character.Alignment)
	s.False(nc.Character.HasFallen)
	s.Equal("The Shadow War", nc.Event.Era)
	s.True(nc.Event.IsKeyMoment)
	s.Equal("dark", nc.Decision.Alignment)
	s.True(nc.Progression.TitleChanged)
	s.Equal("Knight", nc.Progression.PreviousTitle)
	s.Equal("Fallen Knight", nc.Progression.NewTitle)
	s.Equal("toward_dark", nc.Progression.MoralShift)

	// Building the context leaves the character untouched
	s.Equal(before, result.Character)
}

func (s *NarrativeTestSuite) TestPromptTemplate() {
	result := engine.ApplyDecision(s.start, s.decision, time.Unix(60, 0).UTC())
	prompt := engine.PromptTemplate(engine.BuildNarrativeContext(result.Character, s.event, s.decision, result))

	s.Contains(prompt, "You are the inner voice of Kael Varyn.")
	s.Contains(prompt, "- Dark side: 65/100")
	s.Contains(prompt, "\"The Burning Archive\" (The Shadow War)")
	s.Contains(prompt, "This is a turning point of the story.")
	s.Contains(prompt, "Title changed from Knight to Fallen Knight")
	s.Contains(prompt, "Moral shift: toward_dark")
	s.NotContains(prompt, "THE FALL HAS BEGUN")
	s.Contains(prompt, "You never make decisions or change state.")
}

func (s *NarrativeTestSuite) TestFallbackNarrative() {
	testCases := []struct {
		name     string
		result   engine.ProgressionResult
		expected string
	}{
		{"fall wins over shift", engine.ProgressionResult{TriggeredFall: true, MoralShift: entities.ShiftTowardLight}, engine.FallbackFall},
		{"toward dark", engine.ProgressionResult{MoralShift: entities.ShiftTowardDark}, engine.FallbackTowardDark},
		{"toward light", engine.ProgressionResult{MoralShift: entities.ShiftTowardLight}, engine.FallbackTowardLight},
		{"stable", engine.ProgressionResult{MoralShift: entities.ShiftStable}, engine.FallbackBalanced},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.FallbackNarrative(tc.result))
		})
	}
}
