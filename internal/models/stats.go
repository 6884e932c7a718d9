package models

// Stats is the platform-wide aggregate served by GET /api/stats.
type Stats struct {
	TotalStories        int `json:"totalStories"`
	TotalLikes          int `json:"totalLikes"`
	TotalTips           int `json:"totalTips"`
	EmpoweredPercentage int `json:"empoweredPercentage"`
}
