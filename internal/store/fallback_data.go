package store

import (
	"strconv"
	"time"

	"github.com/speakup-app/speakup-api/internal/models"
)

// Default dataset served in fallback mode. IDs are sequential strings
// and createdAt carries the seed order so newest-first listings are
// deterministic. Like counters start at zero with empty likedBy sets.

func seedAt(base time.Time, i int) time.Time {
	return base.Add(time.Duration(i) * time.Minute)
}

func seedScenarios(base time.Time) []models.Scenario {
	items := []models.Scenario{
		{
			Title:            "Overcharged at Store or Restaurant",
			Description:      "You notice the bill is higher than expected, or you were charged for something you did not order or receive.",
			Category:         "billing",
			Difficulty:       "easy",
			EmotionalContext: "Fear of being seen as cheap or making a scene over money. Worry about embarrassing yourself or the staff.",
			Examples:         []string{"Wrong price on bill", "Double charged", "Hidden fees added", "Wrong item on receipt"},
			Icon:             "💳",
		},
		{
			Title:            "Someone Cutting in Line",
			Description:      "Someone pushes ahead of you or others in a queue, ignoring those who have been waiting.",
			Category:         "unfair-treatment",
			Difficulty:       "medium",
			EmotionalContext: "Fear of confrontation. Worry about being seen as petty. Uncertainty about whether it was intentional.",
			Examples:         []string{"At checkout counter", "At ticket booth", "In waiting rooms", "At food counters"},
			Icon:             "🚶",
		},
		{
			Title:            "Wrong Information Being Given",
			Description:      "You hear incorrect information being shared publicly that could mislead others.",
			Category:         "misinformation",
			Difficulty:       "medium",
			EmotionalContext: "Fear of seeming like a know-it-all. Worry about being wrong yourself. Hesitation to correct authority figures.",
			Examples:         []string{"Wrong directions", "Incorrect announcements", "Misleading instructions", "False safety information"},
			Icon:             "📢",
		},
		{
			Title:            "Unsafe Situation in Public",
			Description:      "You notice a safety hazard or dangerous situation that could harm someone.",
			Category:         "safety",
			Difficulty:       "easy",
			EmotionalContext: "Fear of overreacting. Worry about being ignored or dismissed. Uncertainty about your own judgment.",
			Examples:         []string{"Wet floor without sign", "Blocked emergency exit", "Unsafe construction", "Fire hazard"},
			Icon:             "⚠️",
		},
		{
			Title:            "Poor Customer Service",
			Description:      "You are receiving inadequate service that does not meet reasonable expectations.",
			Category:         "service",
			Difficulty:       "medium",
			EmotionalContext: "Fear of being labeled as difficult customer. Worry about retaliation. Discomfort with asserting your needs.",
			Examples:         []string{"Being ignored", "Long unexplained delays", "Rude treatment", "Unfulfilled promises"},
			Icon:             "🛎️",
		},
		{
			Title:            "Witnessing Unfair Treatment",
			Description:      "You see someone else being treated unfairly or disrespectfully.",
			Category:         "unfair-treatment",
			Difficulty:       "challenging",
			EmotionalContext: "Fear of getting involved in someone else's situation. Worry about making things worse. Uncertainty about your role.",
			Examples:         []string{"Discrimination", "Bullying behavior", "Unfair denial of service", "Verbal abuse of others"},
			Icon:             "⚖️",
		},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].CreatedAt = seedAt(base, i)
		items[i].SuggestedScripts = []string{}
	}
	return items
}

func seedScripts(base time.Time) []models.ConfidenceScript {
	items := []models.ConfidenceScript{
		{
			Scenario:         "1",
			Title:            "Calm Approach",
			OpeningLine:      "Excuse me, I noticed there might be an error on my bill.",
			BodyScript:       "I wanted to bring this to your attention because I believe there may be a discrepancy. Could you help me understand this charge?",
			ClosingLine:      "I appreciate your understanding. Thank you for your help.",
			Tone:             "calm",
			Tips:             []string{"Take a deep breath before speaking", "Focus on the issue, not the person"},
			DoNot:            []string{"Do not raise your voice", "Do not make personal accusations"},
			BodyLanguageTips: []string{"Maintain friendly eye contact", "Keep your posture open and relaxed"},
		},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].CreatedAt = seedAt(base, i)
	}
	return items
}

func seedTips(base time.Time) []models.Tip {
	contents := []struct{ category, content string }{
		{"general", "Remember: Speaking up is a skill. The more you practice, the easier it becomes. Start with small situations."},
		{"general", "You are not making trouble - you are preventing problems. The real trouble is silence when something is wrong."},
		{"general", "Most people actually respect those who speak up calmly. Silence is often mistaken for approval."},
		{"body-language", "Keep your shoulders back and chin up. Confident posture makes confident words come easier."},
		{"body-language", "Make eye contact but keep it friendly - think of talking to a friend, not staring down an opponent."},
		{"tone", "Speak slightly slower than you normally would. This conveys confidence and gives you time to think."},
		{"tone", "Use \"I noticed\" instead of \"You did\" - it focuses on the situation, not blame."},
		{"mindset", "You are not being difficult - you are being honest. There is a big difference."},
		{"preparation", "Have a go-to opening phrase ready: \"Excuse me, I noticed...\" works in almost any situation."},
	}
	items := make([]models.Tip, len(contents))
	for i, c := range contents {
		items[i] = models.Tip{
			ID:          strconv.Itoa(i + 1),
			Category:    c.category,
			Content:     c.content,
			Likes:       0,
			LikedBy:     []string{},
			IsAnonymous: true,
			IsApproved:  true,
			CreatedAt:   seedAt(base, i),
		}
	}
	return items
}

func seedStories(base time.Time) []models.SuccessStory {
	items := []models.SuccessStory{
		{
			Situation: "Restaurant overcharged me $20",
			WhatISaid: "Excuse me, I noticed this charge is incorrect.",
			Outcome:   "They fixed it immediately!",
			Feeling:   "proud",
			Category:  "billing",
		},
		{
			Situation: "Colleague kept interrupting me",
			WhatISaid: "Can I finish my thought please?",
			Outcome:   "He apologized and let me speak.",
			Feeling:   "empowered",
			Category:  "general",
		},
		{
			Situation: "Gym charged me after cancellation",
			WhatISaid: "Per my contract, I cancelled last month.",
			Outcome:   "Refund processed in 2 days.",
			Feeling:   "relieved",
			Category:  "billing",
		},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].Likes = 0
		items[i].LikedBy = []string{}
		items[i].IsAnonymous = true
		items[i].IsApproved = true
		items[i].CreatedAt = seedAt(base, i)
	}
	return items
}

func seedPhrases(base time.Time) []models.Phrase {
	items := []models.Phrase{
		{Category: "opening", Text: "Excuse me, I noticed...", Icon: "MessageSquare"},
		{Category: "opening", Text: "I need to bring something to your attention", Icon: "Rocket"},
		{Category: "questioning", Text: "Could you help me understand...", Icon: "Users"},
		{Category: "closing", Text: "I appreciate your help with this", Icon: "CheckCircle"},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].CreatedAt = seedAt(base, i)
	}
	return items
}

func seedAffirmations(base time.Time) []models.Affirmation {
	items := []models.Affirmation{
		{Text: "My voice matters and deserves to be heard", Icon: "Sparkles"},
		{Text: "I can speak up calmly and respectfully", Icon: "Mic"},
		{Text: "I am not being difficult, I am being honest", Icon: "Users"},
		{Text: "Speaking up prevents bigger problems", Icon: "Wind"},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].CreatedAt = seedAt(base, i)
	}
	return items
}

func seedPracticeScripts(base time.Time) []models.PracticeScript {
	items := []models.PracticeScript{
		{Text: "Excuse me, I think there is a mistake on my receipt. Could you take a look?", Category: "billing", Difficulty: "easy"},
		{Text: "Sorry, the line actually starts back there. We have all been waiting a while.", Category: "general", Difficulty: "medium"},
		{Text: "I want to point out that this exit is blocked. Someone could get hurt in an emergency.", Category: "safety", Difficulty: "easy"},
		{Text: "I understand you are busy, but I have been waiting for forty minutes without an update.", Category: "service", Difficulty: "hard"},
	}
	for i := range items {
		items[i].ID = strconv.Itoa(i + 1)
		items[i].CreatedAt = seedAt(base, i)
	}
	return items
}
