package journey

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	historyrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/history"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// GetCharacterState returns the character snapshot and decision counts
func (o *Orchestrator) GetCharacterState(
	ctx context.Context,
	input *journey.GetCharacterStateInput,
) (_ *journey.GetCharacterStateOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "GetCharacterState", input.SessionID)
	defer func() { endSpan(span, err) }()

	char, err := o.loadSessionCharacter(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	records, err := o.loadRecords(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	stats := journey.CharacterStats{DecisionsCount: len(records)}
	for _, r := range records {
		switch shift := r.LightShift(); {
		case shift > 0:
			stats.LightDecisions++
		case shift < 0:
			stats.DarkDecisions++
		}
	}

	return &journey.GetCharacterStateOutput{
		Character: journey.NewCharacterState(char),
		Stats:     stats,
	}, nil
}

// GetSessionHistory lists the session's decisions with their content and a summary
func (o *Orchestrator) GetSessionHistory(
	ctx context.Context,
	input *journey.GetSessionHistoryInput,
) (_ *journey.GetSessionHistoryOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "GetSessionHistory", input.SessionID)
	defer func() { endSpan(span, err) }()

	if _, err := o.loadSessionCharacter(ctx, input.SessionID); err != nil {
		return nil, err
	}

	records, err := o.loadRecords(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	eventsOut, err := o.contentRepo.ListEvents(ctx, contentrepo.ListEventsInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events")
	}
	eventsByID := make(map[string]entities.CanonicalEvent, len(eventsOut.Events))
	for _, e := range eventsOut.Events {
		eventsByID[e.ID] = e
	}

	texts, err := o.decisionTexts(ctx, records)
	if err != nil {
		return nil, err
	}

	entries := make([]journey.HistoryEntry, 0, len(records))
	summary := journey.HistorySummary{TotalDecisions: len(records)}
	totalShift := 0

	for _, r := range records {
		entry := journey.HistoryEntry{
			RecordID:        r.ID,
			EventID:         r.EventID,
			EventTitle:      journey.UnknownEventTitle,
			Era:             journey.UnknownEra,
			DecisionID:      r.DecisionID,
			DecisionText:    journey.UnknownDecisionText,
			Shift:           r.LightShift(),
			LightSideBefore: r.LightSideBefore,
			LightSideAfter:  r.LightSideAfter,
			DarkSideBefore:  r.DarkSideBefore,
			DarkSideAfter:   r.DarkSideAfter,
			EmotionAfter:    r.EmotionAfter,
			TitleBefore:     r.TitleBefore,
			TitleAfter:      r.TitleAfter,
			TriggeredFall:   r.TriggeredFall(),
			Narrative:       journey.UnavailableNarrative,
			CreatedAt:       r.CreatedAt,
		}

		if e, ok := eventsByID[r.EventID]; ok {
			entry.EventTitle = e.Title
			entry.Era = e.Era
		}

		if text, ok := texts[r.DecisionID]; ok {
			entry.DecisionText = text
		}
		if strings.TrimSpace(r.GeneratedNarrative) != "" {
			entry.Narrative = r.GeneratedNarrative
		}

		switch {
		case entry.Shift > 0:
			entry.Alignment = entities.AlignmentLight
			summary.LightDecisions++
		case entry.Shift < 0:
			entry.Alignment = entities.AlignmentDark
			summary.DarkDecisions++
		default:
			entry.Alignment = entities.AlignmentNeutral
			summary.NeutralDecisions++
		}
		totalShift += entry.Shift

		entries = append(entries, entry)
	}

	if len(records) > 0 {
		summary.AverageShift = math.Round(float64(totalShift)/float64(len(records))*100) / 100
	}
	summary.OverallTendency = journey.TendencyFor(summary.AverageShift)

	return &journey.GetSessionHistoryOutput{
		Entries: entries,
		Summary: summary,
	}, nil
}

// loadRecords returns the session's records oldest first
func (o *Orchestrator) loadRecords(ctx context.Context, sessionID string) ([]entities.UserDecisionRecord, error) {
	out, err := o.historyRepo.ListBySession(ctx, historyrepo.ListBySessionInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decision records")
	}
	records := out.Records
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// decisionTexts looks up each distinct decision once. Decisions that no
// longer exist are left out of the map.
func (o *Orchestrator) decisionTexts(
	ctx context.Context,
	records []entities.UserDecisionRecord,
) (map[string]string, error) {
	texts := make(map[string]string)
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		if _, ok := seen[r.DecisionID]; ok {
			continue
		}
		seen[r.DecisionID] = struct{}{}

		out, err := o.contentRepo.GetDecision(ctx, contentrepo.GetDecisionInput{ID: r.DecisionID})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get decision %s", r.DecisionID)
		}
		texts[r.DecisionID] = out.Decision.Text
	}

	return texts, nil
}
