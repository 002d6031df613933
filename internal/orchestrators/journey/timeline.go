package journey

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// JourneyCompleteEra is reported as the current era once nothing is available
const JourneyCompleteEra = "Journey Complete"

// GetTimeline lists every event with its status for the session
func (o *Orchestrator) GetTimeline(ctx context.Context, input *journey.GetTimelineInput) (_ *journey.GetTimelineOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "GetTimeline", input.SessionID)
	defer func() { endSpan(span, err) }()

	char, err := o.loadSessionCharacter(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	eventsOut, err := o.contentRepo.ListEvents(ctx, contentrepo.ListEventsInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events")
	}
	all := eventsOut.Events
	engine.SortChronologically(all)

	completedIDs, err := o.loadCompleted(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	completed := engine.NewCompletedSet(completedIDs...)

	toTimeline := func(e entities.CanonicalEvent) journey.TimelineEvent {
		return journey.TimelineEvent{
			ID:                      e.ID,
			Title:                   e.Title,
			Description:             e.Description,
			Era:                     e.Era,
			EraDisplayName:          e.EraDisplayName(),
			ChronologicalOrder:      e.ChronologicalOrder,
			IsKeyMoment:             e.IsKeyMoment,
			RequiredPreviousEventID: e.RequiredPreviousEventID,
			Status:                  engine.StatusOf(e, completed, char),
		}
	}

	timeline := make([]journey.TimelineEvent, 0, len(all))
	for _, e := range all {
		timeline = append(timeline, toTimeline(e))
	}

	groups := engine.GroupEventsByEra(all)
	eras := make([]journey.TimelineEra, 0, len(groups))
	for _, g := range groups {
		era := journey.TimelineEra{
			Era:         g.Era,
			DisplayName: g.Era.DisplayName(),
			Events:      make([]journey.TimelineEvent, 0, len(g.Events)),
		}
		for _, e := range g.Events {
			era.Events = append(era.Events, toTimeline(e))
		}
		eras = append(eras, era)
	}

	currentEra := JourneyCompleteEra
	if next := engine.NextAvailableEvents(all, completed, char); len(next) > 0 {
		currentEra = next[0].EraDisplayName()
	}

	return &journey.GetTimelineOutput{
		Events:          timeline,
		Eras:            eras,
		TotalEvents:     len(all),
		CompletedEvents: completed.Len(),
		Progress:        engine.CalculateProgress(len(all), completed.Len()),
		CurrentEra:      currentEra,
		JourneyComplete: engine.IsJourneyComplete(all, completed),
	}, nil
}

// GetEvent opens an event for decision. The event must be reachable
// and not yet completed.
func (o *Orchestrator) GetEvent(ctx context.Context, input *journey.GetEventInput) (_ *journey.GetEventOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("event_id", input.EventID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "GetEvent", input.SessionID, attribute.String("event_id", input.EventID))
	defer func() { endSpan(span, err) }()

	eventOut, err := o.contentRepo.GetEvent(ctx, contentrepo.GetEventInput{ID: input.EventID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get event")
	}
	event := eventOut.Event

	char, err := o.loadSessionCharacter(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	completedIDs, err := o.loadCompleted(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	completed := engine.NewCompletedSet(completedIDs...)

	if access := engine.CanAccessEvent(event, completed, char); !access.Granted {
		return nil, errors.AccessDenied("cannot access event "+event.ID, access.Reason)
	}
	if completed.Has(event.ID) {
		return nil, errors.AlreadyCompletedf("event %s already completed", event.ID)
	}

	decisionsOut, err := o.contentRepo.ListDecisionsForEvent(ctx, contentrepo.ListDecisionsForEventInput{EventID: event.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decisions")
	}
	decisions := decisionsOut.Decisions
	engine.SortDecisions(decisions)

	options := make([]journey.DecisionOption, 0, len(decisions))
	for _, d := range decisions {
		options = append(options, journey.DecisionOption{
			ID:               d.ID,
			Text:             d.Text,
			NarrativeContext: d.NarrativeContext,
			DisplayOrder:     d.DisplayOrder,
		})
	}

	return &journey.GetEventOutput{
		Event:     event,
		Decisions: options,
		Character: journey.NewCharacterState(char),
	}, nil
}
