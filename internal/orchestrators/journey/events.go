package journey

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// Domain events published after a decision is recorded. The source is
// the updated character and the target is the resolved event.
const (
	EventFall         = "journey.fall"
	EventRedemption   = "journey.redemption"
	EventTitleChanged = "journey.title_changed"
)

// publishTransition announces the notable parts of a transition.
// Subscriber errors are logged and never undo the decision.
func (o *Orchestrator) publishTransition(
	ctx context.Context,
	result engine.ProgressionResult,
	event entities.CanonicalEvent,
) {
	var types []string
	if result.TriggeredFall {
		types = append(types, EventFall)
	}
	if result.TriggeredRedemption {
		types = append(types, EventRedemption)
	}
	if result.TitleChanged {
		types = append(types, EventTitleChanged)
	}

	for _, t := range types {
		if err := o.eventBus.Publish(ctx, events.NewGameEvent(t, result.Character, event)); err != nil {
			slog.WarnContext(ctx, "failed to publish journey event",
				"event_type", t,
				"session_id", result.Character.SessionID,
				"error", err)
		}
	}
}

// SubscribeLogging logs every journey event on bus and returns the
// subscription IDs.
func SubscribeLogging(bus events.EventBus) []string {
	handler := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event_type", e.Type()}
		if char, ok := e.Source().(entities.Character); ok {
			attrs = append(attrs,
				"session_id", char.SessionID,
				"character_id", char.ID,
				"title", string(char.Title),
				"light_side", char.MoralState.LightSide(),
				"dark_side", char.MoralState.DarkSide())
		}
		if target := e.Target(); target != nil {
			attrs = append(attrs, "event_id", target.GetID())
		}
		slog.InfoContext(ctx, "journey milestone", attrs...)
		return nil
	}

	ids := make([]string, 0, 3)
	for _, t := range []string{EventFall, EventRedemption, EventTitleChanged} {
		ids = append(ids, bus.SubscribeFunc(t, 0, handler))
	}
	return ids
}
