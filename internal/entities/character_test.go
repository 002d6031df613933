package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	now time.Time
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *CharacterTestSuite) TestNewProtagonist() {
	c := entities.NewProtagonist("char-1", "session-1", "", s.now)

	s.Equal(entities.DefaultProtagonistName, c.Name)
	s.Equal(entities.InitialMoralState(), c.MoralState)
	s.Equal(entities.EmotionHope, c.Emotion)
	s.Equal(entities.TitleApprentice, c.Title)
	s.Equal(int64(0), c.Version)
	s.Equal("char-1", c.GetID())
	s.Equal(entities.EntityTypeCharacter, c.GetType())
	s.NoError(c.Validate())
}

func (s *CharacterTestSuite) TestWithUpdatesLeaveOriginal() {
	original := entities.NewProtagonist("char-1", "session-1", "Ilsa", s.now)
	later := s.now.Add(time.Minute)

	updated := original.
		WithMoralState(entities.NewMoralState(10, 90), later).
		WithEmotion(entities.EmotionHatred, later).
		WithTitle(entities.TitleCorruptedLord, later)

	s.Equal(entities.InitialMoralState(), original.MoralState)
	s.Equal(entities.EmotionHope, original.Emotion)
	s.Equal(entities.TitleApprentice, original.Title)
	s.Equal(s.now, original.UpdatedAt)

	s.True(updated.HasFallen())
	s.Equal(entities.TitleCorruptedLord, updated.Title)
	s.Equal(later, updated.UpdatedAt)
	s.Equal(s.now, updated.CreatedAt)
}

func (s *CharacterTestSuite) TestValidate() {
	c := entities.NewProtagonist("char-1", "session-1", "Ilsa", s.now)

	c.Title = "emperor"
	s.True(errors.IsInvariantViolation(c.Validate()))

	c.Title = entities.TitleKnight
	c.Emotion = "boredom"
	s.True(errors.IsInvariantViolation(c.Validate()))

	c.Emotion = entities.EmotionPeace
	c.SessionID = ""
	s.True(errors.IsInvariantViolation(c.Validate()))
}

func (s *CharacterTestSuite) TestEventValidate() {
	valid := entities.CanonicalEvent{
		ID:                 "the-summons",
		Title:              "The Summons",
		Era:                entities.EraAwakening,
		ChronologicalOrder: 1,
		IsKeyMoment:        true,
	}
	s.NoError(valid.Validate())
	s.False(valid.HasPrerequisite())
	s.Equal("The Awakening", valid.EraDisplayName())
	s.Equal(entities.EntityTypeEvent, valid.GetType())

	testCases := []struct {
		name   string
		mutate func(*entities.CanonicalEvent)
	}{
		{"missing id", func(e *entities.CanonicalEvent) { e.ID = "" }},
		{"missing title", func(e *entities.CanonicalEvent) { e.Title = "" }},
		{"unknown era", func(e *entities.CanonicalEvent) { e.Era = "future" }},
		{"zero order", func(e *entities.CanonicalEvent) { e.ChronologicalOrder = 0 }},
		{"self prerequisite", func(e *entities.CanonicalEvent) { e.RequiredPreviousEventID = e.ID }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := valid
			tc.mutate(&e)
			s.True(errors.IsInvariantViolation(e.Validate()))
		})
	}
}

func (s *CharacterTestSuite) TestDecision() {
	d := entities.Decision{
		ID:        "answer-the-call",
		EventID:   "the-summons",
		Text:      "Answer the call",
		Alignment: entities.AlignmentLight,
		Impact: entities.DecisionImpact{
			LightSideDelta:   10,
			DarkSideDelta:    2,
			ResultingEmotion: entities.EmotionHope,
		},
	}
	s.NoError(d.Validate())
	s.Equal(8, d.NetMoralWeight())
	s.True(d.BelongsTo("the-summons"))
	s.False(d.BelongsTo("other"))

	bad := d
	bad.Alignment = "balanced"
	s.True(errors.IsInvariantViolation(bad.Validate()))

	bad = d
	bad.Impact.ResultingEmotion = "boredom"
	s.True(errors.IsInvariantViolation(bad.Validate()))
}

func (s *CharacterTestSuite) TestDecisionRecordDerivations() {
	r := entities.UserDecisionRecord{
		LightSideBefore: 35,
		LightSideAfter:  10,
		DarkSideBefore:  70,
		DarkSideAfter:   95,
		TitleBefore:     entities.TitleFallen,
		TitleAfter:      entities.TitleCorruptedLord,
	}
	s.Equal(-25, r.LightShift())
	s.True(r.TriggeredFall())
	s.Equal(-50, r.AlignmentShift())
	s.True(r.TitleChanged())

	r.DarkSideBefore = 80
	s.False(r.TriggeredFall())
}
