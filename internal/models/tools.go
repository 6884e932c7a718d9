package models

import "time"

type Phrase struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Category  string    `bson:"category" json:"category"`
	Icon      string    `bson:"icon" json:"icon"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Affirmation struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Text      string    `bson:"text" json:"text"`
	Icon      string    `bson:"icon" json:"icon"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type PracticeScript struct {
	ID         string    `bson:"_id,omitempty" json:"_id"`
	Text       string    `bson:"text" json:"text"`
	Category   string    `bson:"category" json:"category"`
	Difficulty string    `bson:"difficulty" json:"difficulty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
