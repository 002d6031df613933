package narrator

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
)

const (
	staticFall = "The last of the warmth goes out of you like a lamp in a sea wind. " +
		"The name you carried from the salt flats sounds like someone else's now.\n\n" +
		"You chose, and the choice closed behind you. What wraps your heart is not armour " +
		"but guilt hammered into rage, and when a small voice inside asks what you have done, " +
		"you answer it with silence."

	staticTowardDark = "The shadows inside you stretch a little longer. Every step felt necessary " +
		"while you took it, yet something in your chest twists away from the light it used to hold.\n\n" +
		"Power hums around you, darker and stronger than before. Part of you whispers that it has a price. " +
		"Another part has already decided to pay it."

	staticTowardLight = "A stubborn spark of hope survives in you, steady as dawn over the flats. " +
		"You made the choice that lets you meet your own eyes in still water.\n\n" +
		"For a moment the current of the world runs clear through you. The conflict is not gone " +
		"and may never be, but today the light outweighs the dark."

	staticBalanced = "You walk a thread of light above a drop into dark, between two lives " +
		"you could still become.\n\n" +
		"The current does not judge. It only waits for your next step, and whichever way " +
		"you lean, it will carry you there."

	codaFear  = "Fear clings to your skin like cold sweat. You try to breathe and your chest will not loosen. Can you bear another loss?"
	codaAnger = "Anger runs through your veins like poured fire. It is honest and direct and strong, and it would be so easy to let it steer."
	codaLove  = "Love is your deepest strength and your widest wound. For it you would cross the world. For it you might burn the world down."
)

// Static is the offline narrator. It picks prose from the transition and
// never fails.
type Static struct {
	clock clock.Clock
}

// NewStatic creates a static narrator; a nil clock uses the real one
func NewStatic(c clock.Clock) *Static {
	if c == nil {
		c = clock.New()
	}
	return &Static{clock: c}
}

// Generate ignores the prompt and writes prose for the transition
func (s *Static) Generate(_ context.Context, nc engine.NarrativeContext, _ string) (*Narrative, error) {
	var text string
	switch {
	case nc.Progression.TriggeredFall:
		text = staticFall
	case nc.Progression.MoralShift == string(entities.ShiftTowardDark):
		text = staticTowardDark
	case nc.Progression.MoralShift == string(entities.ShiftTowardLight):
		text = staticTowardLight
	default:
		text = staticBalanced
	}

	switch entities.Emotion(nc.Character.EmotionTag) {
	case entities.EmotionFear:
		text += "\n\n" + codaFear
	case entities.EmotionAnger:
		text += "\n\n" + codaAnger
	case entities.EmotionLove:
		text += "\n\n" + codaLove
	}

	return &Narrative{
		Text:        text,
		GeneratedAt: s.clock.Now(),
		TokenCount:  len(strings.Fields(text)),
	}, nil
}

// IsAvailable always reports true
func (s *Static) IsAvailable(context.Context) bool {
	return true
}

var _ Client = (*Static)(nil)
