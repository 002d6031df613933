package journey_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	journeyorch "github.com/KirkDiggler/rpg-saga/internal/orchestrators/journey"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
	characterrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	historyrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/history"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
	"github.com/KirkDiggler/rpg-saga/internal/testutils"
	"github.com/KirkDiggler/rpg-saga/internal/testutils/builders"
)

// JourneyIntegrationTestSuite runs the orchestrator against miniredis,
// a temporary SQLite content store seeded from the embedded saga, and
// the static narrator.
type JourneyIntegrationTestSuite struct {
	suite.Suite
	ctx          context.Context
	cleanup      func()
	store        *contentrepo.Store
	config       journeyorch.Config
	orchestrator *journeyorch.Orchestrator
}

// cancellingNarrator cancels the caller's context mid-generation, the way
// a client hanging up during narration does
type cancellingNarrator struct {
	cancel context.CancelFunc
}

func (n *cancellingNarrator) Generate(context.Context, engine.NarrativeContext, string) (*narrator.Narrative, error) {
	n.cancel()
	return nil, errors.Unavailable("caller went away")
}

func (n *cancellingNarrator) IsAvailable(context.Context) bool { return true }

func (s *JourneyIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	history, err := historyrepo.NewRedis(&historyrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	store, err := contentrepo.Open(s.ctx, filepath.Join(s.T().TempDir(), "content.db"))
	s.Require().NoError(err)
	s.store = store

	catalog, err := contentrepo.DefaultCatalog()
	s.Require().NoError(err)
	_, err = store.Seed(s.ctx, contentrepo.SeedInput{Catalog: catalog})
	s.Require().NoError(err)

	fixed := clock.NewFixed(builders.FixedTime)
	bus := events.NewBus()
	journeyorch.SubscribeLogging(bus)

	s.config = journeyorch.Config{
		CharacterRepo: characters,
		HistoryRepo:   history,
		ContentRepo:   store,
		Narrator:      narrator.NewStatic(fixed),
		EventBus:      bus,
		Clock:         fixed,
	}
	o, err := journeyorch.New(&s.config)
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *JourneyIntegrationTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
	s.cleanup()
}

func (s *JourneyIntegrationTestSuite) start() string {
	out, err := s.orchestrator.StartSession(s.ctx, &journey.StartSessionInput{})
	s.Require().NoError(err)
	return out.SessionID
}

func (s *JourneyIntegrationTestSuite) decide(sessionID, eventID, decisionID string) *journey.ProcessDecisionOutput {
	out, err := s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
		SessionID:  sessionID,
		EventID:    eventID,
		DecisionID: decisionID,
	})
	s.Require().NoError(err)
	return out
}

func (s *JourneyIntegrationTestSuite) TestFreshSessionTimeline() {
	sessionID := s.start()

	out, err := s.orchestrator.GetTimeline(s.ctx, &journey.GetTimelineInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(8, out.TotalEvents)
	s.Equal(0, out.CompletedEvents)
	s.Equal(0, out.Progress)
	s.Equal(entities.EraAwakening.DisplayName(), out.CurrentEra)
	s.False(out.JourneyComplete)

	statuses := make(map[string]engine.EventStatus, len(out.Events))
	for _, e := range out.Events {
		statuses[e.ID] = e.Status
	}
	s.Equal(engine.StatusAvailable, statuses["the_calling"])
	s.Equal(engine.StatusLocked, statuses["village_burning"])
}

func (s *JourneyIntegrationTestSuite) TestWalkTwoEvents() {
	sessionID := s.start()

	first := s.decide(sessionID, "the_calling", "the_calling_demand")
	s.Equal(50, first.Character.LightSide)
	s.Equal(30, first.Character.DarkSide)
	s.Equal(entities.ShiftTowardDark, first.Progression.MoralShift)
	s.NotEmpty(first.Narrative.Text)
	s.False(first.Narrative.Fallback)

	event, err := s.orchestrator.GetEvent(s.ctx, &journey.GetEventInput{SessionID: sessionID, EventID: "village_burning"})
	s.Require().NoError(err)
	s.Len(event.Decisions, 3)
	s.Equal("village_burning_rescue", event.Decisions[0].ID)

	second := s.decide(sessionID, "village_burning", "village_burning_hunt")
	s.Equal(30, second.Character.LightSide)
	s.Equal(50, second.Character.DarkSide)
	s.Equal(entities.EmotionAnger, second.Character.Emotion)
	s.Equal(entities.TitleApprentice, second.Character.Title)

	timeline, err := s.orchestrator.GetTimeline(s.ctx, &journey.GetTimelineInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(2, timeline.CompletedEvents)
	s.Equal(25, timeline.Progress)

	state, err := s.orchestrator.GetCharacterState(s.ctx, &journey.GetCharacterStateInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(journey.CharacterStats{DecisionsCount: 2, LightDecisions: 0, DarkDecisions: 2}, state.Stats)

	history, err := s.orchestrator.GetSessionHistory(s.ctx, &journey.GetSessionHistoryInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Require().Len(history.Entries, 2)
	s.Equal("The Calling", history.Entries[0].EventTitle)
	s.Equal(-10, history.Entries[0].Shift)
	s.Equal(-20, history.Entries[1].Shift)
	s.InDelta(-15.0, history.Summary.AverageShift, 0.001)
	s.Equal(entities.AlignmentDark, history.Summary.OverallTendency)
}

func (s *JourneyIntegrationTestSuite) TestRejections() {
	sessionID := s.start()

	_, err := s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
		SessionID: sessionID, EventID: "village_burning", DecisionID: "village_burning_hunt",
	})
	s.True(errors.IsAccessDenied(err))

	_, err = s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
		SessionID: sessionID, EventID: "the_calling", DecisionID: "village_burning_hunt",
	})
	s.True(errors.IsInvariantViolation(err))

	s.decide(sessionID, "the_calling", "the_calling_follow")
	_, err = s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
		SessionID: sessionID, EventID: "the_calling", DecisionID: "the_calling_wait",
	})
	s.True(errors.IsAlreadyCompleted(err))

	_, err = s.orchestrator.GetTimeline(s.ctx, &journey.GetTimelineInput{SessionID: "session_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *JourneyIntegrationTestSuite) TestCancelledDuringNarrationStillRecords() {
	sessionID := s.start()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	cfg := s.config
	cfg.Narrator = &cancellingNarrator{cancel: cancel}
	cancelling, err := journeyorch.New(&cfg)
	s.Require().NoError(err)

	out, err := cancelling.ProcessDecision(ctx, &journey.ProcessDecisionInput{
		SessionID: sessionID, EventID: "the_calling", DecisionID: "the_calling_demand",
	})
	s.Require().NoError(err)
	s.True(out.Narrative.Fallback)
	s.Error(ctx.Err())

	state, err := s.orchestrator.GetCharacterState(s.ctx, &journey.GetCharacterStateInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(50, state.Character.LightSide)
	s.Equal(30, state.Character.DarkSide)
	s.Equal(1, state.Stats.DecisionsCount)

	_, err = s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
		SessionID: sessionID, EventID: "the_calling", DecisionID: "the_calling_demand",
	})
	s.True(errors.IsAlreadyCompleted(err))

	state, err = s.orchestrator.GetCharacterState(s.ctx, &journey.GetCharacterStateInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(30, state.Character.DarkSide)
	s.Equal(1, state.Stats.DecisionsCount)
}

func (s *JourneyIntegrationTestSuite) TestConcurrentSubmissionsRecordOnce() {
	sessionID := s.start()

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		completed int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.orchestrator.ProcessDecision(s.ctx, &journey.ProcessDecisionInput{
				SessionID: sessionID, EventID: "the_calling", DecisionID: "the_calling_follow",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.IsAlreadyCompleted(err):
				completed++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(attempts-1, completed)

	state, err := s.orchestrator.GetCharacterState(s.ctx, &journey.GetCharacterStateInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(70, state.Character.LightSide)
	s.Equal(10, state.Character.DarkSide)
	s.Equal(1, state.Stats.DecisionsCount)
}

func TestJourneyIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JourneyIntegrationTestSuite))
}
