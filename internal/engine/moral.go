package engine

import (
	"time"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// RedemptionDrop is the minimum single-decision dark side decrease that
// can redeem a fallen character
const RedemptionDrop = 20

// ProgressionResult reports what one decision did to a character
type ProgressionResult struct {
	Character           entities.Character
	TitleChanged        bool
	PreviousTitle       entities.Title
	NewTitle            entities.Title
	TriggeredFall       bool
	TriggeredRedemption bool
	MoralShift          entities.MoralShift
}

// DetermineTitle resolves the rank for the given axes. Dark side checks
// run first, so corruption wins over any light side promotion.
func DetermineTitle(current entities.Title, lightSide, darkSide int) entities.Title {
	switch {
	case darkSide >= entities.CorruptedLordDarkSide:
		return entities.TitleCorruptedLord
	case darkSide >= entities.FallenDarkSide && current != entities.TitleCorruptedLord:
		return entities.TitleFallen
	case lightSide >= entities.MasterLightSide && darkSide <= entities.MasterMaxDarkSide:
		return entities.TitleMaster
	default:
		return current
	}
}

// ApplyDecision applies decision to current and reports the transition.
// It assumes the decision was already validated against its event.
func ApplyDecision(current entities.Character, decision entities.Decision, now time.Time) ProgressionResult {
	before := current.MoralState
	wasFallen := before.HasFallen()

	intensity := max(abs(decision.Impact.LightSideDelta), abs(decision.Impact.DarkSideDelta))
	after := applyBalancedImpact(before, decision.Alignment, intensity)

	previousTitle := current.Title
	newTitle := DetermineTitle(previousTitle, after.LightSide(), after.DarkSide())

	next := current.
		WithMoralState(after, now).
		WithEmotion(decision.Impact.ResultingEmotion, now).
		WithTitle(newTitle, now)

	darkDrop := before.DarkSide() - after.DarkSide()

	return ProgressionResult{
		Character:     next,
		TitleChanged:  previousTitle != newTitle,
		PreviousTitle: previousTitle,
		NewTitle:      newTitle,
		TriggeredFall: !wasFallen && after.HasFallen(),
		TriggeredRedemption: wasFallen &&
			darkDrop >= RedemptionDrop &&
			after.DarkSide() < entities.FallenDarkSide,
		MoralShift: entities.ShiftFromBalance(before.Balance(), after.Balance()),
	}
}

// applyBalancedImpact moves both axes by intensity in the directions
// set by alignment. Neutral raises both axes.
func applyBalancedImpact(m entities.MoralState, alignment entities.Alignment, intensity int) entities.MoralState {
	switch alignment {
	case entities.AlignmentLight:
		return m.ApplyDelta(intensity, -intensity)
	case entities.AlignmentDark:
		return m.ApplyDelta(-intensity, intensity)
	case entities.AlignmentNeutral:
		return m.ApplyDelta(intensity, intensity)
	default:
		return m
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
