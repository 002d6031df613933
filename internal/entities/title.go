package entities

import "github.com/KirkDiggler/rpg-saga/internal/errors"

// Title is the character's rank. The order climbs initiate, apprentice,
// knight, master; the corrupted branch runs fallen then corrupted lord.
type Title string

// The closed set of titles
const (
	TitleInitiate      Title = "initiate"
	TitleApprentice    Title = "apprentice"
	TitleKnight        Title = "knight"
	TitleMaster        Title = "master"
	TitleFallen        Title = "fallen"
	TitleCorruptedLord Title = "corrupted_lord"
)

// Title thresholds
const (
	CorruptedLordDarkSide = 80
	FallenDarkSide        = 60
	MasterLightSide       = 85
	MasterMaxDarkSide     = 30
)

// TitleMetadata is the static description attached to each title.
// Required values are zero when the title has no threshold.
type TitleMetadata struct {
	DisplayName       string
	Description       string
	Era               string
	RequiredLightSide int
	RequiredDarkSide  int
}

var titleMetadata = map[Title]TitleMetadata{
	TitleInitiate: {
		DisplayName: "Initiate",
		Description: "An outsider with a gift nobody has yet named",
		Era:         "Before the Order",
	},
	TitleApprentice: {
		DisplayName: "Apprentice",
		Description: "A student of the Order bound to a mentor",
		Era:         "Years of Apprenticeship",
	},
	TitleKnight: {
		DisplayName: "Knight",
		Description: "A sworn defender sent into the war",
		Era:         "The Shadow War",
	},
	TitleMaster: {
		DisplayName:       "Master",
		Description:       "The rank the Council withholds from all but a few",
		Era:               "Rarely reached",
		RequiredLightSide: MasterLightSide,
	},
	TitleFallen: {
		DisplayName:      "Fallen Knight",
		Description:      "Lost somewhere between light and dark",
		Era:              "The Turning",
		RequiredDarkSide: FallenDarkSide,
	},
	TitleCorruptedLord: {
		DisplayName:      "Corrupted Lord",
		Description:      "A lord of shadow in service to the Usurper",
		Era:              "The Reckoning",
		RequiredDarkSide: CorruptedLordDarkSide,
	},
}

var promotions = map[Title]Title{
	TitleInitiate:   TitleApprentice,
	TitleApprentice: TitleKnight,
	TitleKnight:     TitleMaster,
}

// ParseTitle rejects tags outside the closed set
func ParseTitle(s string) (Title, error) {
	t := Title(s)
	if !t.IsValid() {
		return "", errors.InvariantViolationf("unknown title %q", s)
	}
	return t, nil
}

// IsValid reports membership in the closed set
func (t Title) IsValid() bool {
	_, ok := titleMetadata[t]
	return ok
}

// Metadata returns the static description; zero for unknown titles
func (t Title) Metadata() TitleMetadata {
	return titleMetadata[t]
}

// DisplayName returns the human-readable name
func (t Title) DisplayName() string { return t.Metadata().DisplayName }

// Description returns the flavor text
func (t Title) Description() string { return t.Metadata().Description }

// IsCorrupted reports the corrupted lord rank
func (t Title) IsCorrupted() bool { return t == TitleCorruptedLord }

// IsOrder reports a rank on the light hierarchy past initiate
func (t Title) IsOrder() bool {
	switch t {
	case TitleApprentice, TitleKnight, TitleMaster:
		return true
	default:
		return false
	}
}

// NextPromotion returns the next rank on the light hierarchy
func (t Title) NextPromotion() (Title, bool) {
	next, ok := promotions[t]
	return next, ok
}

// CanBePromoted reports whether a next rank exists
func (t Title) CanBePromoted() bool {
	_, ok := promotions[t]
	return ok
}

func (t Title) String() string { return string(t) }
