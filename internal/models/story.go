package models

import "time"

const (
	MaxStorySituation = 200
	MaxStoryWhatISaid = 500
	MaxStoryOutcome   = 300
)

// SuccessStory is a community-shared account of speaking up.
type SuccessStory struct {
	ID          string    `bson:"_id,omitempty" json:"_id"`
	Situation   string    `bson:"situation" json:"situation"`
	WhatISaid   string    `bson:"whatISaid" json:"whatISaid"`
	Outcome     string    `bson:"outcome" json:"outcome"`
	Feeling     string    `bson:"feeling" json:"feeling"`
	Category    string    `bson:"category" json:"category"`
	Likes       int       `bson:"likes" json:"likes"`
	LikedBy     []string  `bson:"likedBy" json:"likedBy"`
	IsAnonymous bool      `bson:"isAnonymous" json:"isAnonymous"`
	IsApproved  bool      `bson:"isApproved" json:"isApproved"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

var storyFeelings = map[string]bool{
	"proud":            true,
	"relieved":         true,
	"empowered":        true,
	"nervous-but-glad": true,
	"confident":        true,
}

func ValidFeeling(f string) bool { return storyFeelings[f] }
