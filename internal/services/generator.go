package services

import (
	"fmt"
	"strings"
)

// ScriptGenerator composes a ready-to-say script from a described
// situation and a tone template. Generated scripts are not persisted.
type ScriptGenerator struct {
	templates map[string]toneTemplate
}

type toneTemplate struct {
	openingPrefix    string
	bodyPrefix       string
	closingLine      string
	tips             []string
	bodyLanguageTips []string
	doNot            []string
}

// GeneratedScript is the response payload for POST /api/scripts/generate.
type GeneratedScript struct {
	Situation        string   `json:"situation"`
	Tone             string   `json:"tone"`
	OpeningLine      string   `json:"openingLine"`
	BodyScript       string   `json:"bodyScript"`
	ClosingLine      string   `json:"closingLine"`
	Tips             []string `json:"tips"`
	BodyLanguageTips []string `json:"bodyLanguageTips"`
	DoNot            []string `json:"doNot"`
	FullScript       string   `json:"fullScript"`
	QuickReminders   []string `json:"quickReminders"`
}

func NewScriptGenerator() *ScriptGenerator {
	return &ScriptGenerator{templates: map[string]toneTemplate{
		"calm": {
			openingPrefix: "Excuse me, I noticed that",
			bodyPrefix:    "I wanted to bring this to your attention because",
			closingLine:   "I appreciate your understanding. Thank you for your help.",
			tips: []string{
				"Take a deep breath before speaking",
				"Speak slowly and clearly",
				"Maintain friendly eye contact",
			},
			bodyLanguageTips: []string{
				"Keep your hands relaxed at your sides",
				"Stand with open posture",
				"Nod occasionally to show you're engaged",
			},
			doNot: []string{
				"Don't raise your voice",
				"Don't point fingers",
				"Don't make it personal",
			},
		},
		"assertive": {
			openingPrefix: "I need to address something important:",
			bodyPrefix:    "This needs attention because",
			closingLine:   "I expect this to be resolved. What are the next steps?",
			tips: []string{
				"Be direct and clear",
				"State facts, not emotions",
				"Ask for specific actions",
			},
			bodyLanguageTips: []string{
				"Stand tall and confident",
				"Make direct eye contact",
				"Use measured hand gestures",
			},
			doNot: []string{
				"Don't be aggressive",
				"Don't interrupt",
				"Don't make threats",
			},
		},
		"friendly": {
			openingPrefix: "Hi! I hope you can help me with something -",
			bodyPrefix:    "I think there might be a small issue here:",
			closingLine:   "Thanks so much for looking into this! I really appreciate it.",
			tips: []string{
				"Smile genuinely",
				"Use a warm tone",
				"Acknowledge their effort",
			},
			bodyLanguageTips: []string{
				"Lean in slightly to show interest",
				"Use open, welcoming gestures",
				"Mirror their positive expressions",
			},
			doNot: []string{
				"Don't be sarcastic",
				"Don't minimize the issue",
				"Don't be overly apologetic",
			},
		},
		"firm": {
			openingPrefix: "I need to bring an important matter to your attention:",
			bodyPrefix:    "This situation requires immediate attention because",
			closingLine:   "I need this to be addressed now. Who can help me with this?",
			tips: []string{
				"Be clear about your expectations",
				"Don't back down on valid concerns",
				"Stay professional throughout",
			},
			bodyLanguageTips: []string{
				"Maintain steady eye contact",
				"Keep your posture strong but not aggressive",
				"Speak with a steady, controlled voice",
			},
			doNot: []string{
				"Don't lose your temper",
				"Don't make ultimatums",
				"Don't get personal",
			},
		},
	}}
}

// Generate builds a script for the situation. Unknown tones fall back
// to the calm template.
func (g *ScriptGenerator) Generate(situation, tone string) *GeneratedScript {
	template, ok := g.templates[tone]
	if !ok {
		tone = "calm"
		template = g.templates[tone]
	}

	lowered := situation
	if !strings.Contains(strings.ToLower(situation), "i") {
		lowered = strings.ToLower(situation)
	}

	return &GeneratedScript{
		Situation:        situation,
		Tone:             tone,
		OpeningLine:      fmt.Sprintf("%s %s.", template.openingPrefix, lowered),
		BodyScript:       fmt.Sprintf("%s it affects the quality of service/experience. I believe addressing this would benefit everyone involved.", template.bodyPrefix),
		ClosingLine:      template.closingLine,
		Tips:             template.tips,
		BodyLanguageTips: template.bodyLanguageTips,
		DoNot:            template.doNot,
		FullScript: fmt.Sprintf("%s %s. %s it affects the quality of service/experience. %s",
			template.openingPrefix, strings.ToLower(situation), template.bodyPrefix, template.closingLine),
		QuickReminders: []string{
			"🧘 Take a breath first",
			"👀 Make friendly eye contact",
			"🗣️ Speak slowly and clearly",
			"🤝 Stay respectful throughout",
		},
	}
}
