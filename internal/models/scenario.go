package models

import "time"

// Field length limits enforced on create.
const (
	MaxScenarioTitle       = 100
	MaxScenarioDescription = 500
	MaxEmotionalContext    = 300
)

type Scenario struct {
	ID               string    `bson:"_id,omitempty" json:"_id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	Category         string    `bson:"category" json:"category"`
	Difficulty       string    `bson:"difficulty" json:"difficulty"`
	EmotionalContext string    `bson:"emotionalContext" json:"emotionalContext"`
	Examples         []string  `bson:"examples" json:"examples"`
	Icon             string    `bson:"icon" json:"icon"`
	SuggestedScripts []string  `bson:"suggestedScripts" json:"suggestedScripts"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

var scenarioCategories = map[string]bool{
	"billing":          true,
	"safety":           true,
	"unfair-treatment": true,
	"misinformation":   true,
	"service":          true,
	"general":          true,
}

var scenarioDifficulties = map[string]bool{
	"easy":        true,
	"medium":      true,
	"challenging": true,
}

func ValidScenarioCategory(c string) bool   { return scenarioCategories[c] }
func ValidScenarioDifficulty(d string) bool { return scenarioDifficulties[d] }
