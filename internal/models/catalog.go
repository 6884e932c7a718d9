package models

// Static catalogs served by the API. These mirror the category and
// feeling enums on Scenario, Tip and SuccessStory.

type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}

type FeelingInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

func ScenarioCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: "billing", Name: "Billing Issues", Icon: "💳", Description: "Overcharges, wrong bills, hidden fees"},
		{ID: "safety", Name: "Safety Concerns", Icon: "⚠️", Description: "Unsafe conditions, rule violations"},
		{ID: "unfair-treatment", Name: "Unfair Treatment", Icon: "⚖️", Description: "Queue jumping, rude behavior, discrimination"},
		{ID: "misinformation", Name: "Misinformation", Icon: "📢", Description: "Wrong announcements, incorrect directions"},
		{ID: "service", Name: "Service Problems", Icon: "🛎️", Description: "Poor service, unmet expectations"},
		{ID: "general", Name: "General Situations", Icon: "💬", Description: "Other everyday situations"},
	}
}

func TipCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: "general", Name: "General Tips", Icon: "💡"},
		{ID: "body-language", Name: "Body Language", Icon: "🧍"},
		{ID: "tone", Name: "Tone & Voice", Icon: "🗣️"},
		{ID: "timing", Name: "Timing", Icon: "⏰"},
		{ID: "mindset", Name: "Mindset", Icon: "🧠"},
		{ID: "preparation", Name: "Preparation", Icon: "📝"},
	}
}

func StoryFeelings() []FeelingInfo {
	return []FeelingInfo{
		{ID: "proud", Name: "Proud", Emoji: "🏆"},
		{ID: "relieved", Name: "Relieved", Emoji: "😌"},
		{ID: "empowered", Name: "Empowered", Emoji: "💪"},
		{ID: "nervous-but-glad", Name: "Nervous but Glad", Emoji: "😅"},
		{ID: "confident", Name: "Confident", Emoji: "😎"},
	}
}
