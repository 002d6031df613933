package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

type EventRulesTestSuite struct {
	suite.Suite
	events    []entities.CanonicalEvent
	character entities.Character
}

func TestEventRulesSuite(t *testing.T) {
	suite.Run(t, new(EventRulesTestSuite))
}

func (s *EventRulesTestSuite) SetupTest() {
	// Deliberately out of order
	s.events = []entities.CanonicalEvent{
		{ID: "c", Title: "C", Era: entities.EraShadowWar, ChronologicalOrder: 3, IsKeyMoment: true, RequiredPreviousEventID: "b"},
		{ID: "a", Title: "A", Era: entities.EraAwakening, ChronologicalOrder: 1, IsKeyMoment: true},
		{ID: "side", Title: "Side", Era: entities.EraAwakening, ChronologicalOrder: 2},
		{ID: "b", Title: "B", Era: entities.EraApprenticeship, ChronologicalOrder: 2, IsKeyMoment: false, RequiredPreviousEventID: "a"},
	}
	s.character = entities.NewProtagonist("char-1", "session-1", "", time.Now())
}

func (s *EventRulesTestSuite) TestCanAccessEventChain() {
	b := s.events[3]

	denied := engine.CanAccessEvent(b, engine.NewCompletedSet(), s.character)
	s.False(denied.Granted)
	s.Equal(engine.ReasonPreviousEventNotCompleted, denied.Reason)

	granted := engine.CanAccessEvent(b, engine.NewCompletedSet("a"), s.character)
	s.True(granted.Granted)
	s.Empty(granted.Reason)

	s.True(engine.CanAccessEvent(s.events[1], engine.NewCompletedSet(), s.character).Granted)
}

func (s *EventRulesTestSuite) TestMoralStateDoesNotGateAccess() {
	fallen := s.character.WithMoralState(entities.NewMoralState(0, 100), time.Now())
	s.True(engine.CanAccessEvent(s.events[3], engine.NewCompletedSet("a"), fallen).Granted)
}

func (s *EventRulesTestSuite) TestNextAvailableEvents() {
	next := engine.NextAvailableEvents(s.events, engine.NewCompletedSet(), s.character)
	s.Equal([]string{"a", "side"}, ids(next))

	next = engine.NextAvailableEvents(s.events, engine.NewCompletedSet("a"), s.character)
	s.Equal([]string{"b", "side"}, ids(next))

	next = engine.NextAvailableEvents(s.events, engine.NewCompletedSet("a", "b", "c", "side"), s.character)
	s.Empty(next)
}

func (s *EventRulesTestSuite) TestStatusOf() {
	completed := engine.NewCompletedSet("a")
	s.Equal(engine.StatusCompleted, engine.StatusOf(s.events[1], completed, s.character))
	s.Equal(engine.StatusAvailable, engine.StatusOf(s.events[3], completed, s.character))
	s.Equal(engine.StatusLocked, engine.StatusOf(s.events[0], completed, s.character))
}

func (s *EventRulesTestSuite) TestCalculateProgress() {
	testCases := []struct {
		total     int
		completed int
		expected  int
	}{
		{3, 1, 33},
		{3, 2, 67},
		{0, 0, 0},
		{8, 8, 100},
		{8, 1, 13},
		{200, 1, 1},
		{-1, 0, 0},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, engine.CalculateProgress(tc.total, tc.completed), "%d of %d", tc.completed, tc.total)
	}
}

func (s *EventRulesTestSuite) TestIsJourneyComplete() {
	s.False(engine.IsJourneyComplete(s.events, engine.NewCompletedSet("a")))
	// The side event and b are not key moments
	s.True(engine.IsJourneyComplete(s.events, engine.NewCompletedSet("a", "c")))
	s.True(engine.IsJourneyComplete(nil, engine.NewCompletedSet()))
}

func (s *EventRulesTestSuite) TestCompletedSetDeduplicates() {
	set := engine.NewCompletedSet("a", "a", "b")
	s.Equal(2, set.Len())
	s.True(set.Has("a"))
	s.False(set.Has("c"))
}

func (s *EventRulesTestSuite) TestGroupEventsByEra() {
	events := append([]entities.CanonicalEvent{}, s.events...)
	events = append(events, entities.CanonicalEvent{ID: "z", Era: "unknown", ChronologicalOrder: 9})

	groups := engine.GroupEventsByEra(events)
	s.Require().Len(groups, 4)

	s.Equal(entities.EraAwakening, groups[0].Era)
	s.Equal([]string{"a", "side"}, ids(groups[0].Events))
	s.Equal(entities.EraApprenticeship, groups[1].Era)
	s.Equal(entities.EraShadowWar, groups[2].Era)
	s.Equal(entities.Era("unknown"), groups[3].Era)
}

func (s *EventRulesTestSuite) TestSortDecisions() {
	decisions := []entities.Decision{
		{ID: "y", DisplayOrder: 2},
		{ID: "b", DisplayOrder: 1},
		{ID: "a", DisplayOrder: 1},
	}
	engine.SortDecisions(decisions)
	s.Equal("a", decisions[0].ID)
	s.Equal("b", decisions[1].ID)
	s.Equal("y", decisions[2].ID)
}

func ids(events []entities.CanonicalEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
