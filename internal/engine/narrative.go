package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
)

// NarrativeCharacter is the post-transition character as the narrator sees it
type NarrativeCharacter struct {
	Name               string `json:"name"`
	Title              string `json:"title"`
	LightSide          int    `json:"light_side"`
	DarkSide           int    `json:"dark_side"`
	Emotion            string `json:"emotion"`
	EmotionTag         string `json:"emotion_tag"`
	EmotionDescription string `json:"emotion_description"`
	Alignment          string `json:"alignment"`
	IsInConflict       bool   `json:"is_in_conflict"`
	HasFallen          bool   `json:"has_fallen"`
}

// NarrativeEvent is the event being resolved
type NarrativeEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Era         string `json:"era"`
	IsKeyMoment bool   `json:"is_key_moment"`
}

// NarrativeDecision is the choice that was made
type NarrativeDecision struct {
	Text             string `json:"text"`
	Alignment        string `json:"alignment"`
	NarrativeContext string `json:"narrative_context"`
}

// NarrativeProgression mirrors ProgressionResult with display names
type NarrativeProgression struct {
	TitleChanged        bool   `json:"title_changed"`
	PreviousTitle       string `json:"previous_title"`
	NewTitle            string `json:"new_title"`
	TriggeredFall       bool   `json:"triggered_fall"`
	TriggeredRedemption bool   `json:"triggered_redemption"`
	MoralShift          string `json:"moral_shift"`
}

// NarrativeContext is the flat bundle handed to the narrator.
// Building it never changes a domain value.
type NarrativeContext struct {
	Character   NarrativeCharacter   `json:"character"`
	Event       NarrativeEvent       `json:"event"`
	Decision    NarrativeDecision    `json:"decision"`
	Progression NarrativeProgression `json:"progression"`
}

// BuildNarrativeContext shapes the transition for the narrator
func BuildNarrativeContext(
	character entities.Character,
	event entities.CanonicalEvent,
	decision entities.Decision,
	result ProgressionResult,
) NarrativeContext {
	m := character.MoralState
	return NarrativeContext{
		Character: NarrativeCharacter{
			Name:               character.Name,
			Title:              character.Title.DisplayName(),
			LightSide:          m.LightSide(),
			DarkSide:           m.DarkSide(),
			Emotion:            character.Emotion.DisplayName(),
			EmotionTag:         string(character.Emotion),
			EmotionDescription: character.Emotion.Description(),
			Alignment:          string(m.DominantAlignment()),
			IsInConflict:       m.IsInConflict(),
			HasFallen:          m.HasFallen(),
		},
		Event: NarrativeEvent{
			Title:       event.Title,
			Description: event.Description,
			Era:         event.EraDisplayName(),
			IsKeyMoment: event.IsKeyMoment,
		},
		Decision: NarrativeDecision{
			Text:             decision.Text,
			Alignment:        string(decision.Alignment),
			NarrativeContext: decision.NarrativeContext,
		},
		Progression: NarrativeProgression{
			TitleChanged:        result.TitleChanged,
			PreviousTitle:       result.PreviousTitle.DisplayName(),
			NewTitle:            result.NewTitle.DisplayName(),
			TriggeredFall:       result.TriggeredFall,
			TriggeredRedemption: result.TriggeredRedemption,
			MoralShift:          string(result.MoralShift),
		},
	}
}

// PromptTemplate renders the instruction text for a generative narrator
func PromptTemplate(nc NarrativeContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the inner voice of %s.\n\n", nc.Character.Name)

	b.WriteString("CURRENT STATE:\n")
	fmt.Fprintf(&b, "- Title: %s\n", nc.Character.Title)
	fmt.Fprintf(&b, "- Light side: %d/100\n", nc.Character.LightSide)
	fmt.Fprintf(&b, "- Dark side: %d/100\n", nc.Character.DarkSide)
	fmt.Fprintf(&b, "- Dominant emotion: %s (%q)\n", nc.Character.Emotion, nc.Character.EmotionDescription)
	fmt.Fprintf(&b, "- Alignment: %s\n", nc.Character.Alignment)
	fmt.Fprintf(&b, "- In inner conflict: %s\n", yesNo(nc.Character.IsInConflict))
	fmt.Fprintf(&b, "- Has fallen: %s\n\n", yesNo(nc.Character.HasFallen))

	b.WriteString("CURRENT EVENT:\n")
	fmt.Fprintf(&b, "- %q (%s)\n", nc.Event.Title, nc.Event.Era)
	fmt.Fprintf(&b, "- %s\n", nc.Event.Description)
	if nc.Event.IsKeyMoment {
		b.WriteString("- This is a turning point of the story.\n")
	}
	b.WriteString("\n")

	b.WriteString("DECISION TAKEN:\n")
	fmt.Fprintf(&b, "- %q\n", nc.Decision.Text)
	fmt.Fprintf(&b, "- Decision alignment: %s\n", nc.Decision.Alignment)
	fmt.Fprintf(&b, "- Context: %s\n\n", nc.Decision.NarrativeContext)

	b.WriteString("CONSEQUENCES:\n")
	if nc.Progression.TitleChanged {
		fmt.Fprintf(&b, "- Title changed from %s to %s\n", nc.Progression.PreviousTitle, nc.Progression.NewTitle)
	} else {
		b.WriteString("- Title unchanged\n")
	}
	if nc.Progression.TriggeredFall {
		b.WriteString("- THE FALL HAS BEGUN\n")
	}
	if nc.Progression.TriggeredRedemption {
		b.WriteString("- A PATH TO REDEMPTION HAS OPENED\n")
	}
	fmt.Fprintf(&b, "- Moral shift: %s\n\n", nc.Progression.MoralShift)

	b.WriteString("INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Narrate the inner conflict of %s after this decision\n", nc.Character.Name)
	b.WriteString("2. Describe the emotional consequences\n")
	b.WriteString("3. Match the tone to the current moral state\n")
	b.WriteString("4. Write in the second person\n")
	b.WriteString("5. If the fall has begun, narrate the transformation\n")
	b.WriteString("6. At most three paragraphs\n\n")
	b.WriteString("You only narrate and interpret. You never make decisions or change state.")

	return b.String()
}

// Fallback narratives, chosen when the narrator cannot answer
const (
	FallbackFall        = "The darkness has finally taken your heart. The way back seems impossible now."
	FallbackTowardDark  = "You feel the darkness growing inside you. Every choice has its price."
	FallbackTowardLight = "A spark of hope remains. The light has not gone out."
	FallbackBalanced    = "The current runs through you, poised between light and shadow."
)

// FallbackNarrative picks a fixed narrative from the fall flag and the shift
func FallbackNarrative(result ProgressionResult) string {
	switch {
	case result.TriggeredFall:
		return FallbackFall
	case result.MoralShift == entities.ShiftTowardDark:
		return FallbackTowardDark
	case result.MoralShift == entities.ShiftTowardLight:
		return FallbackTowardLight
	default:
		return FallbackBalanced
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
