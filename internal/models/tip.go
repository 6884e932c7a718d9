package models

import "time"

const MaxTipContent = 500

type Tip struct {
	ID          string    `bson:"_id,omitempty" json:"_id"`
	Category    string    `bson:"category" json:"category"`
	Content     string    `bson:"content" json:"content"`
	Likes       int       `bson:"likes" json:"likes"`
	LikedBy     []string  `bson:"likedBy" json:"likedBy"`
	IsAnonymous bool      `bson:"isAnonymous" json:"isAnonymous"`
	IsApproved  bool      `bson:"isApproved" json:"isApproved"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

var tipCategories = map[string]bool{
	"general":       true,
	"body-language": true,
	"tone":          true,
	"timing":        true,
	"mindset":       true,
	"preparation":   true,
}

func ValidTipCategory(c string) bool { return tipCategories[c] }
