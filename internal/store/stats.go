package store

import (
	"math"
	"regexp"

	"github.com/speakup-app/speakup-api/internal/models"
)

func regexQuote(s string) string { return regexp.QuoteMeta(s) }

var empoweredFeelings = map[string]bool{
	"proud":     true,
	"empowered": true,
	"confident": true,
}

func computeStats(stories []models.SuccessStory, tips []models.Tip) *models.Stats {
	st := &models.Stats{
		TotalStories: len(stories),
		TotalTips:    len(tips),
	}
	empowered := 0
	for _, s := range stories {
		st.TotalLikes += s.Likes
		if empoweredFeelings[s.Feeling] {
			empowered++
		}
	}
	for _, t := range tips {
		st.TotalLikes += t.Likes
	}
	if st.TotalStories > 0 {
		st.EmpoweredPercentage = int(math.Round(float64(empowered) / float64(st.TotalStories) * 100))
	}
	return st
}
