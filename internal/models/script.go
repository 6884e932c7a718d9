package models

import "time"

const (
	MaxOpeningLine = 200
	MaxBodyScript  = 1000
	MaxClosingLine = 200
)

// ConfidenceScript is a ready-to-say script attached to a scenario.
type ConfidenceScript struct {
	ID               string    `bson:"_id,omitempty" json:"_id"`
	Scenario         string    `bson:"scenario" json:"scenario"`
	Title            string    `bson:"title" json:"title"`
	OpeningLine      string    `bson:"openingLine" json:"openingLine"`
	BodyScript       string    `bson:"bodyScript" json:"bodyScript"`
	ClosingLine      string    `bson:"closingLine" json:"closingLine"`
	Tone             string    `bson:"tone" json:"tone"`
	Tips             []string  `bson:"tips" json:"tips"`
	DoNot            []string  `bson:"doNot" json:"doNot"`
	BodyLanguageTips []string  `bson:"bodyLanguageTips" json:"bodyLanguageTips"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

var scriptTones = map[string]bool{
	"calm":      true,
	"assertive": true,
	"friendly":  true,
	"firm":      true,
}

func ValidTone(t string) bool { return scriptTones[t] }
