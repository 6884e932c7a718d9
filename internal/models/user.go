package models

import "time"

type User struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"password" json:"-"` // Hide from JSON responses
	SavedScripts []string  `bson:"savedScripts" json:"savedScripts"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
