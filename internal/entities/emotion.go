package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// Emotion is the character's dominant feeling, set by each decision
type Emotion string

// The closed set of emotions
const (
	EmotionHope          Emotion = "hope"
	EmotionFear          Emotion = "fear"
	EmotionAnger         Emotion = "anger"
	EmotionLove          Emotion = "love"
	EmotionHatred        Emotion = "hatred"
	EmotionPeace         Emotion = "peace"
	EmotionDespair       Emotion = "despair"
	EmotionDetermination Emotion = "determination"
	EmotionConfusion     Emotion = "confusion"
	EmotionGuilt         Emotion = "guilt"
	EmotionPride         Emotion = "pride"
	EmotionGrief         Emotion = "grief"
)

// EmotionMetadata is the static description attached to each emotion
type EmotionMetadata struct {
	DisplayName string
	Description string
	Alignment   Alignment
	// Intensity runs 1 to 10
	Intensity int
}

var allEmotions = []Emotion{
	EmotionHope, EmotionFear, EmotionAnger, EmotionLove,
	EmotionHatred, EmotionPeace, EmotionDespair, EmotionDetermination,
	EmotionConfusion, EmotionGuilt, EmotionPride, EmotionGrief,
}

var emotionMetadata = map[Emotion]EmotionMetadata{
	EmotionHope:          {"Hope", "A light that holds steady in the dark", AlignmentLight, 6},
	EmotionFear:          {"Fear", "Fear opens the door to anger", AlignmentDark, 7},
	EmotionAnger:         {"Anger", "A flame that burns from the inside out", AlignmentDark, 8},
	EmotionLove:          {"Love", "The strongest bond there is, and the most dangerous", AlignmentNeutral, 9},
	EmotionHatred:        {"Hatred", "The last corruption of the heart", AlignmentDark, 10},
	EmotionPeace:         {"Peace", "Stillness in harmony with the world", AlignmentLight, 5},
	EmotionDespair:       {"Despair", "When every hope seems spent", AlignmentDark, 9},
	EmotionDetermination: {"Determination", "An unbending will toward a goal", AlignmentNeutral, 7},
	EmotionConfusion:     {"Confusion", "Lost between light and shadow", AlignmentNeutral, 5},
	EmotionGuilt:         {"Guilt", "The weight of choices already made", AlignmentNeutral, 6},
	EmotionPride:         {"Pride", "The arrogance that comes before the fall", AlignmentDark, 6},
	EmotionGrief:         {"Grief", "The ache of loss that echoes in the soul", AlignmentNeutral, 8},
}

// AllEmotions lists every emotion in declaration order
func AllEmotions() []Emotion {
	out := make([]Emotion, len(allEmotions))
	copy(out, allEmotions)
	return out
}

// ParseEmotion rejects tags outside the closed set
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(s)
	if !e.IsValid() {
		return "", errors.InvariantViolationf("unknown emotion %q", s)
	}
	return e, nil
}

// IsValid reports membership in the closed set
func (e Emotion) IsValid() bool {
	_, ok := emotionMetadata[e]
	return ok
}

// Metadata returns the static description; zero for unknown emotions
func (e Emotion) Metadata() EmotionMetadata {
	return emotionMetadata[e]
}

// DisplayName returns the human-readable name
func (e Emotion) DisplayName() string { return e.Metadata().DisplayName }

// Description returns the flavor text
func (e Emotion) Description() string { return e.Metadata().Description }

// Alignment is the coarse side the emotion leans toward
func (e Emotion) Alignment() Alignment { return e.Metadata().Alignment }

// Intensity is the emotion's strength from 1 to 10; zero for unknown tags
func (e Emotion) Intensity() int { return e.Metadata().Intensity }

// IsDark reports a dark-aligned emotion
func (e Emotion) IsDark() bool { return e.Alignment() == AlignmentDark }

// IsLight reports a light-aligned emotion
func (e Emotion) IsLight() bool { return e.Alignment() == AlignmentLight }

func (e Emotion) String() string { return string(e) }
