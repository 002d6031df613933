package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

type MoralRulesTestSuite struct {
	suite.Suite
	now time.Time
}

func TestMoralRulesSuite(t *testing.T) {
	suite.Run(t, new(MoralRulesTestSuite))
}

func (s *MoralRulesTestSuite) SetupTest() {
	s.now = time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
}

func (s *MoralRulesTestSuite) character(light, dark int, title entities.Title) entities.Character {
	c := entities.NewProtagonist("char-1", "session-1", "Kael Varyn", s.now.Add(-time.Hour))
	c.MoralState = entities.NewMoralState(light, dark)
	c.Title = title
	return c
}

func decision(alignment entities.Alignment, lightDelta, darkDelta int, emotion entities.Emotion) entities.Decision {
	return entities.Decision{
		ID:        "decision-1",
		EventID:   "event-1",
		Text:      "a choice",
		Alignment: alignment,
		Impact: entities.DecisionImpact{
			LightSideDelta:   lightDelta,
			DarkSideDelta:    darkDelta,
			ResultingEmotion: emotion,
		},
	}
}

func (s *MoralRulesTestSuite) TestDetermineTitle() {
	testCases := []struct {
		name     string
		current  entities.Title
		light    int
		dark     int
		expected entities.Title
	}{
		{"dark 80 corrupts unconditionally", entities.TitleMaster, 100, 80, entities.TitleCorruptedLord},
		{"corruption beats mastery", entities.TitleApprentice, 90, 85, entities.TitleCorruptedLord},
		{"dark 60 falls", entities.TitleKnight, 70, 60, entities.TitleFallen},
		{"dark 59 does not fall", entities.TitleKnight, 70, 59, entities.TitleKnight},
		{"corrupted lord stays above 60", entities.TitleCorruptedLord, 20, 65, entities.TitleCorruptedLord},
		{"corrupted lord kept below 60", entities.TitleCorruptedLord, 50, 40, entities.TitleCorruptedLord},
		{"master at 85/30", entities.TitleApprentice, 85, 30, entities.TitleMaster},
		{"no master at 84", entities.TitleApprentice, 84, 30, entities.TitleApprentice},
		{"no master at dark 31", entities.TitleApprentice, 95, 31, entities.TitleApprentice},
		{"fallen kept when dark recedes", entities.TitleFallen, 50, 40, entities.TitleFallen},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.DetermineTitle(tc.current, tc.light, tc.dark))
		})
	}
}

func (s *MoralRulesTestSuite) TestBalancedImpactFormula() {
	testCases := []struct {
		name      string
		alignment entities.Alignment
		light     int
		dark      int
		wantLight int
		wantDark  int
	}{
		{"light uses the larger delta", entities.AlignmentLight, 10, 3, 70, 10},
		{"dark moves both axes", entities.AlignmentDark, 0, 12, 48, 32},
		{"neutral raises both", entities.AlignmentNeutral, 5, 3, 65, 25},
		{"negative deltas use magnitude", entities.AlignmentLight, -8, 0, 68, 12},
		{"light clamps dark at zero", entities.AlignmentLight, 30, 0, 90, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			start := s.character(60, 20, entities.TitleApprentice)
			result := engine.ApplyDecision(start, decision(tc.alignment, tc.light, tc.dark, entities.EmotionHope), s.now)
			s.Equal(tc.wantLight, result.Character.MoralState.LightSide())
			s.Equal(tc.wantDark, result.Character.MoralState.DarkSide())
		})
	}
}

func (s *MoralRulesTestSuite) TestApplyDecisionSetsEmotionAndTimestamp() {
	start := s.character(60, 20, entities.TitleApprentice)
	result := engine.ApplyDecision(start, decision(entities.AlignmentNeutral, 5, 5, entities.EmotionConfusion), s.now)

	s.Equal(entities.EmotionConfusion, result.Character.Emotion)
	s.Equal(s.now, result.Character.UpdatedAt)
	s.Equal(entities.EmotionHope, start.Emotion)
	s.Equal(entities.InitialMoralState(), start.MoralState)
}

func (s *MoralRulesTestSuite) TestApplyDecisionIsDeterministic() {
	start := s.character(47, 52, entities.TitleKnight)
	d := decision(entities.AlignmentDark, 3, 14, entities.EmotionAnger)

	first := engine.ApplyDecision(start, d, s.now)
	second := engine.ApplyDecision(start, d, s.now)
	s.Equal(first, second)
}

func (s *MoralRulesTestSuite) TestFallFiresOnlyOnTheEdge() {
	c := s.character(40, 70, entities.TitleFallen)
	d := decision(entities.AlignmentDark, 0, 15, entities.EmotionHatred)

	first := engine.ApplyDecision(c, d, s.now)
	s.Equal(85, first.Character.MoralState.DarkSide())
	s.True(first.TriggeredFall)

	second := engine.ApplyDecision(first.Character, d, s.now)
	s.Equal(100, second.Character.MoralState.DarkSide())
	s.False(second.TriggeredFall)
}

func (s *MoralRulesTestSuite) TestRedemption() {
	testCases := []struct {
		name      string
		dark      int
		intensity int
		wantDark  int
		redeemed  bool
	}{
		{"drop of 19 never redeems", 85, 19, 66, false},
		{"drop of 20 landing at 60 does not redeem", 80, 20, 60, false},
		{"drop of 21 landing at 59 redeems", 80, 21, 59, true},
		{"large drop landing at 59 redeems", 90, 31, 59, true},
		{"large drop landing at 60 does not redeem", 90, 30, 60, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.character(30, tc.dark, entities.TitleCorruptedLord)
			result := engine.ApplyDecision(c, decision(entities.AlignmentLight, tc.intensity, 0, entities.EmotionGuilt), s.now)
			s.Equal(tc.wantDark, result.Character.MoralState.DarkSide())
			s.Equal(tc.redeemed, result.TriggeredRedemption)
		})
	}

	s.Run("not fallen before never redeems", func() {
		c := s.character(30, 79, entities.TitleFallen)
		result := engine.ApplyDecision(c, decision(entities.AlignmentLight, 40, 0, entities.EmotionPeace), s.now)
		s.Equal(39, result.Character.MoralState.DarkSide())
		s.False(result.TriggeredRedemption)
	})
}

func (s *MoralRulesTestSuite) TestMoralShiftDeadband() {
	testCases := []struct {
		name      string
		alignment entities.Alignment
		light     int
		dark      int
		intensity int
		expected  entities.MoralShift
	}{
		// Clamped at the bounds, a light decision of 5 only moves balance by 5
		{"swing of 5 is stable", entities.AlignmentLight, 95, 0, 5, entities.ShiftStable},
		{"swing of 6 is toward light", entities.AlignmentLight, 94, 0, 6, entities.ShiftTowardLight},
		{"swing of -6 is toward dark", entities.AlignmentDark, 0, 94, 6, entities.ShiftTowardDark},
		{"swing of -5 is stable", entities.AlignmentDark, 0, 95, 5, entities.ShiftStable},
		{"neutral away from bounds is stable", entities.AlignmentNeutral, 50, 50, 10, entities.ShiftStable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.character(tc.light, tc.dark, entities.TitleKnight)
			result := engine.ApplyDecision(c, decision(tc.alignment, tc.intensity, 0, entities.EmotionPride), s.now)
			s.Equal(tc.expected, result.MoralShift)
		})
	}
}

func (s *MoralRulesTestSuite) TestTitleChangeReport() {
	c := s.character(60, 50, entities.TitleKnight)
	result := engine.ApplyDecision(c, decision(entities.AlignmentDark, 0, 10, entities.EmotionAnger), s.now)

	s.True(result.TitleChanged)
	s.Equal(entities.TitleKnight, result.PreviousTitle)
	s.Equal(entities.TitleFallen, result.NewTitle)
	s.Equal(entities.TitleFallen, result.Character.Title)

	same := engine.ApplyDecision(c, decision(entities.AlignmentLight, 1, 0, entities.EmotionPeace), s.now)
	s.False(same.TitleChanged)
	s.Equal(same.PreviousTitle, same.NewTitle)
}

func (s *MoralRulesTestSuite) TestEndToEndDarkPath() {
	c := entities.NewProtagonist("char-1", "session-1", "Kael Varyn", s.now)
	s.Require().Equal(60, c.MoralState.LightSide())
	s.Require().Equal(20, c.MoralState.DarkSide())
	s.Require().Equal(entities.TitleApprentice, c.Title)

	darkChoice := decision(entities.AlignmentDark, 0, 25, entities.EmotionAnger)

	first := engine.ApplyDecision(c, darkChoice, s.now)
	s.Equal(35, first.Character.MoralState.LightSide())
	s.Equal(45, first.Character.MoralState.DarkSide())
	s.Equal(entities.TitleApprentice, first.Character.Title)
	s.False(first.TitleChanged)
	s.False(first.TriggeredFall)
	// Balance goes from +40 to -10
	s.Equal(entities.ShiftTowardDark, first.MoralShift)

	wantDark := []int{70, 95, 100}
	wantTitle := []entities.Title{entities.TitleFallen, entities.TitleCorruptedLord, entities.TitleCorruptedLord}
	wantFall := []bool{false, true, false}

	current := first.Character
	falls := 0
	for i := range wantDark {
		result := engine.ApplyDecision(current, darkChoice, s.now)
		s.Equal(wantDark[i], result.Character.MoralState.DarkSide(), "step %d", i)
		s.Equal(wantTitle[i], result.Character.Title, "step %d", i)
		s.Equal(wantFall[i], result.TriggeredFall, "step %d", i)
		if result.TriggeredFall {
			falls++
		}
		current = result.Character
	}

	s.Equal(1, falls)
	s.Equal(0, current.MoralState.LightSide())
	s.True(current.HasFallen())
}
