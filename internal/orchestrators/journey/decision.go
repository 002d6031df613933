package journey

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	historyrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/history"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// commitTimeout bounds the writes that follow a committed character save.
// Those writes ignore caller cancellation.
const commitTimeout = 5 * time.Second

// ProcessDecision applies a decision to the session's character.
//
// Checks run in a fixed order: session, event, decision, decision
// belongs to event, event not completed, prerequisite met. The
// character is saved before narration; a narrator failure never
// loses a transition.
func (o *Orchestrator) ProcessDecision(
	ctx context.Context,
	input *journey.ProcessDecisionInput,
) (_ *journey.ProcessDecisionOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("event_id", input.EventID, vb)
	errors.ValidateRequired("decision_id", input.DecisionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "ProcessDecision", input.SessionID,
		attribute.String("event_id", input.EventID),
		attribute.String("decision_id", input.DecisionID))
	defer func() { endSpan(span, err) }()

	unlock := o.locks.lock(input.SessionID)
	defer unlock()

	char, err := o.loadSessionCharacter(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	eventOut, err := o.contentRepo.GetEvent(ctx, contentrepo.GetEventInput{ID: input.EventID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get event")
	}
	event := eventOut.Event

	decisionOut, err := o.contentRepo.GetDecision(ctx, contentrepo.GetDecisionInput{ID: input.DecisionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get decision")
	}
	decision := decisionOut.Decision

	if !decision.BelongsTo(event.ID) {
		return nil, errors.InvariantViolationf("decision %s does not belong to event %s", decision.ID, event.ID)
	}

	completedIDs, err := o.loadCompleted(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	completed := engine.NewCompletedSet(completedIDs...)

	if completed.Has(event.ID) {
		return nil, errors.AlreadyCompletedf("event %s already completed", event.ID)
	}
	if access := engine.CanAccessEvent(event, completed, char); !access.Granted {
		return nil, errors.AccessDenied("cannot access event "+event.ID, access.Reason)
	}

	now := o.clock.Now()
	result := engine.ApplyDecision(char, decision, now)

	saved, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: result.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}
	result.Character = saved.Character

	commitCtx, cancelCommit := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancelCommit()

	nc := engine.BuildNarrativeContext(result.Character, event, decision, result)
	narrative := o.narrate(ctx, nc, result)

	record := entities.UserDecisionRecord{
		ID:                 o.recordIDGen.Generate(),
		SessionID:          input.SessionID,
		CharacterID:        char.ID,
		EventID:            event.ID,
		DecisionID:         decision.ID,
		LightSideBefore:    char.MoralState.LightSide(),
		LightSideAfter:     result.Character.MoralState.LightSide(),
		DarkSideBefore:     char.MoralState.DarkSide(),
		DarkSideAfter:      result.Character.MoralState.DarkSide(),
		EmotionBefore:      char.Emotion,
		EmotionAfter:       result.Character.Emotion,
		TitleBefore:        char.Title,
		TitleAfter:         result.Character.Title,
		GeneratedNarrative: narrative.Text,
		CreatedAt:          now,
	}

	if _, err := o.historyRepo.Append(commitCtx, historyrepo.AppendInput{Record: record}); err != nil {
		o.revertCharacter(commitCtx, char, result.Character.Version)
		return nil, errors.Wrapf(err, "failed to record decision")
	}

	o.publishTransition(commitCtx, result, event)

	slog.InfoContext(ctx, "decision processed",
		"session_id", input.SessionID,
		"event_id", event.ID,
		"decision_id", decision.ID,
		"light_side", record.LightSideAfter,
		"dark_side", record.DarkSideAfter,
		"title", string(record.TitleAfter),
		"moral_shift", string(result.MoralShift),
		"triggered_fall", result.TriggeredFall,
		"narrative_fallback", narrative.Fallback)

	return &journey.ProcessDecisionOutput{
		RecordID:                 record.ID,
		Character:                journey.NewCharacterState(result.Character),
		PreviousTitleDisplayName: result.PreviousTitle.DisplayName(),
		Progression: journey.ProgressionReport{
			TitleChanged:        result.TitleChanged,
			PreviousTitle:       result.PreviousTitle,
			NewTitle:            result.NewTitle,
			TriggeredFall:       result.TriggeredFall,
			TriggeredRedemption: result.TriggeredRedemption,
			MoralShift:          result.MoralShift,
		},
		Narrative: narrative,
		Event: journey.EventSummary{
			ID:    event.ID,
			Title: event.Title,
			Era:   event.Era,
		},
		Decision: journey.DecisionSummary{
			ID:        decision.ID,
			Text:      decision.Text,
			Alignment: decision.Alignment,
		},
	}, nil
}

// narrate asks the narrator for prose within the configured timeout and
// falls back to a fixed line on any failure
func (o *Orchestrator) narrate(
	ctx context.Context,
	nc engine.NarrativeContext,
	result engine.ProgressionResult,
) journey.NarrativeResult {
	genCtx, cancel := context.WithTimeout(ctx, o.narratorTimeout)
	defer cancel()

	out, err := o.narrator.Generate(genCtx, nc, engine.PromptTemplate(nc))
	if err == nil && out != nil && strings.TrimSpace(out.Text) != "" {
		return journey.NarrativeResult{
			Text:        out.Text,
			GeneratedAt: out.GeneratedAt,
			TokenCount:  out.TokenCount,
		}
	}

	if err == nil {
		err = errors.Unavailable("narrator returned no text")
	}
	slog.WarnContext(ctx, "narrator unavailable, using fallback narrative",
		"session_id", result.Character.SessionID,
		"error", err)

	return journey.NarrativeResult{
		Text:        engine.FallbackNarrative(result),
		GeneratedAt: o.clock.Now(),
		Fallback:    true,
	}
}

// revertCharacter restores the pre-decision character after the record
// could not be appended, so the event can be retried from the same state
func (o *Orchestrator) revertCharacter(ctx context.Context, before entities.Character, savedVersion int64) {
	before.Version = savedVersion
	before.UpdatedAt = o.clock.Now()

	if _, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: before}); err != nil {
		slog.ErrorContext(ctx, "decision applied but not recorded, revert failed",
			"session_id", before.SessionID,
			"character_id", before.ID,
			"error", err)
		return
	}

	slog.WarnContext(ctx, "reverted character after failed record append",
		"session_id", before.SessionID,
		"character_id", before.ID)
}
