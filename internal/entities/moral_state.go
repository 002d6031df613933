package entities

import "encoding/json"

// Moral axis bounds
const (
	MinMoralValue = 0
	MaxMoralValue = 100
)

// Protagonist starting axes
const (
	InitialLightSide = 60
	InitialDarkSide  = 20
)

// Thresholds over the two axes
const (
	// AlignmentThreshold is the balance beyond which one side dominates
	AlignmentThreshold = 20
	// ConflictBalance is the widest balance still counted as internal conflict
	ConflictBalance = 30
	// ConflictMinimum is the level both axes must reach for conflict
	ConflictMinimum = 40
	// FallThreshold is the dark side level at which a character has fallen
	FallThreshold = 80
	// MasteryLightSide and MasteryDarkSide bound the mastery predicate
	MasteryLightSide = 80
	MasteryDarkSide  = 30
)

// MoralState is the pair of bounded light and dark axes.
// The zero value is a valid state at 0/0. Values are always within
// [MinMoralValue, MaxMoralValue]; every constructor clamps.
type MoralState struct {
	lightSide int
	darkSide  int
}

// NewMoralState clamps both inputs into range
func NewMoralState(lightSide, darkSide int) MoralState {
	return MoralState{
		lightSide: clamp(lightSide),
		darkSide:  clamp(darkSide),
	}
}

// InitialMoralState is where every protagonist begins
func InitialMoralState() MoralState {
	return NewMoralState(InitialLightSide, InitialDarkSide)
}

// LightSide returns the light axis
func (m MoralState) LightSide() int { return m.lightSide }

// DarkSide returns the dark axis
func (m MoralState) DarkSide() int { return m.darkSide }

// ApplyDelta returns a new state with both deltas applied and clamped
func (m MoralState) ApplyDelta(lightDelta, darkDelta int) MoralState {
	return MoralState{
		lightSide: clamp(m.lightSide + boundDelta(lightDelta)),
		darkSide:  clamp(m.darkSide + boundDelta(darkDelta)),
	}
}

// Balance is light minus dark, in [-100, 100]
func (m MoralState) Balance() int {
	return m.lightSide - m.darkSide
}

// DominantAlignment is light or dark when the balance passes the
// threshold, balanced otherwise
func (m MoralState) DominantAlignment() Alignment {
	balance := m.Balance()
	switch {
	case balance > AlignmentThreshold:
		return AlignmentLight
	case balance < -AlignmentThreshold:
		return AlignmentDark
	default:
		return AlignmentBalanced
	}
}

// IsInConflict reports a close balance with both axes elevated
func (m MoralState) IsInConflict() bool {
	return abs(m.Balance()) <= ConflictBalance &&
		m.lightSide >= ConflictMinimum &&
		m.darkSide >= ConflictMinimum
}

// HasFallen reports darkSide >= FallThreshold
func (m MoralState) HasFallen() bool {
	return m.darkSide >= FallThreshold
}

// HasAchievedMastery reports a high light side with the dark side held down
func (m MoralState) HasAchievedMastery() bool {
	return m.lightSide >= MasteryLightSide && m.darkSide <= MasteryDarkSide
}

type moralStateJSON struct {
	LightSide int `json:"light_side"`
	DarkSide  int `json:"dark_side"`
}

// MarshalJSON implements json.Marshaler
func (m MoralState) MarshalJSON() ([]byte, error) {
	return json.Marshal(moralStateJSON{LightSide: m.lightSide, DarkSide: m.darkSide})
}

// UnmarshalJSON implements json.Unmarshaler, clamping stored values
func (m *MoralState) UnmarshalJSON(data []byte) error {
	var raw moralStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = NewMoralState(raw.LightSide, raw.DarkSide)
	return nil
}

func clamp(v int) int {
	if v < MinMoralValue {
		return MinMoralValue
	}
	if v > MaxMoralValue {
		return MaxMoralValue
	}
	return v
}

// boundDelta keeps the addition from overflowing. Any delta past the
// full axis width saturates the same way.
func boundDelta(d int) int {
	const width = MaxMoralValue - MinMoralValue
	if d > width {
		return width
	}
	if d < -width {
		return -width
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
