package narrator_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
)

type StaticTestSuite struct {
	suite.Suite
	static *narrator.Static
	now    time.Time
}

func (s *StaticTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.static = narrator.NewStatic(clock.NewFixed(s.now))
}

func (s *StaticTestSuite) generate(progression engine.NarrativeProgression, emotion entities.Emotion) *narrator.Narrative {
	nc := engine.NarrativeContext{
		Character:   engine.NarrativeCharacter{EmotionTag: string(emotion)},
		Progression: progression,
	}
	out, err := s.static.Generate(context.Background(), nc, "ignored")
	s.Require().NoError(err)
	return out
}

func (s *StaticTestSuite) TestPicksProseByTransition() {
	fall := s.generate(engine.NarrativeProgression{
		TriggeredFall: true,
		MoralShift:    string(entities.ShiftTowardDark),
	}, entities.EmotionHatred)
	dark := s.generate(engine.NarrativeProgression{MoralShift: string(entities.ShiftTowardDark)}, entities.EmotionHatred)
	light := s.generate(engine.NarrativeProgression{MoralShift: string(entities.ShiftTowardLight)}, entities.EmotionHope)
	stable := s.generate(engine.NarrativeProgression{MoralShift: string(entities.ShiftStable)}, entities.EmotionHope)

	texts := map[string]bool{fall.Text: true, dark.Text: true, light.Text: true, stable.Text: true}
	s.Len(texts, 4, "each transition gets distinct prose")
	s.Contains(fall.Text, "warmth goes out")
	s.Equal(s.now, fall.GeneratedAt)
	s.Equal(len(strings.Fields(fall.Text)), fall.TokenCount)
}

func (s *StaticTestSuite) TestEmotionCoda() {
	base := s.generate(engine.NarrativeProgression{MoralShift: string(entities.ShiftStable)}, entities.EmotionHope)

	for _, emotion := range []entities.Emotion{entities.EmotionFear, entities.EmotionAnger, entities.EmotionLove} {
		s.Run(string(emotion), func() {
			out := s.generate(engine.NarrativeProgression{MoralShift: string(entities.ShiftStable)}, emotion)
			s.True(strings.HasPrefix(out.Text, base.Text))
			s.Greater(len(out.Text), len(base.Text))
		})
	}
}

func (s *StaticTestSuite) TestAlwaysAvailable() {
	s.True(s.static.IsAvailable(context.Background()))
}

func TestStaticTestSuite(t *testing.T) {
	suite.Run(t, new(StaticTestSuite))
}
