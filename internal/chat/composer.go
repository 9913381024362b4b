// Package chat turns extracted signals into the agent's reply. It holds
// no state of its own: every function is a pure merge of the keyword
// matcher output, the intent prediction, and the patient's latest
// triage action.
package chat

import (
	"strings"

	"github.com/iwantdrugsxd/mind-ease/internal/intent"
	"github.com/iwantdrugsxd/mind-ease/internal/nlp"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

// crisisResponse is fixed text, never templated. It must be shown
// verbatim whenever either signal source indicates crisis.
const crisisResponse = "I'm concerned about what you're sharing. Your safety is important. " +
	"Please reach out for immediate help:\n\n" +
	"- Crisis Hotline: 988 (available 24/7)\n" +
	"- Text HOME to: 741741\n" +
	"- Emergency: 911\n\n" +
	"Would you like me to help you connect with a mental health professional? " +
	"I'm here to support you."

// Reply is the composed agent turn.
type Reply struct {
	Text     string
	RiskFlag nlp.RiskLevel
}

// Compose merges the signal extraction results into one reply. Priority,
// highest first: crisis (from either extractor), navigational intent,
// emotion-driven support, neutral default. latestAction may be nil when
// the patient has never completed a screening.
func Compose(userText string, signals nlp.Signals, pred intent.Prediction, latestAction *triage.Action) Reply {
	risk := signals.RiskLevel
	if pred.Label == intent.LabelCrisis {
		risk = nlp.RiskCritical
	}

	if risk == nlp.RiskCritical {
		return Reply{Text: crisisResponse, RiskFlag: nlp.RiskCritical}
	}

	if text, ok := intentResponse(pred.Label, latestAction); ok {
		return Reply{Text: text, RiskFlag: risk}
	}

	if pred.Label == intent.LabelOutOfScope {
		if text, ok := navigationHint(userText); ok {
			return Reply{Text: text, RiskFlag: risk}
		}
	}

	return Reply{Text: emotionResponse(userText, signals, latestAction), RiskFlag: risk}
}

func intentResponse(label intent.Label, latestAction *triage.Action) (string, bool) {
	switch label {
	case intent.LabelGreeting:
		text := "Hello! I'm here to support you. How are you feeling today? " +
			"You can share what's on your mind, or I can help you navigate the app."
		if module, ok := recommendedModule(latestAction); ok {
			text += "\n\nBased on your recent assessment, I'd recommend trying: " + module + "."
		}
		return text, true

	case intent.LabelFindScreening:
		return "I can help you take a screening test! We have:\n" +
			"- PHQ-9: For depression symptoms\n" +
			"- GAD-7: For anxiety symptoms\n\n" +
			"These take just a few minutes and give you clear next steps.", true

	case intent.LabelFindSelfCare:
		text := "I can help you find self-care exercises. We have:\n" +
			"- Breathing exercises\n" +
			"- Mindfulness meditation\n" +
			"- Journaling prompts\n" +
			"- Stress management techniques\n"
		if module, ok := recommendedModule(latestAction); ok {
			text += "\nBased on your recent assessment, I'd especially recommend: " + module + "."
		}
		return text, true

	case intent.LabelViewDashboard:
		return "Your dashboard shows your mental health journey, including:\n" +
			"- Your screening test results\n" +
			"- Progress over time\n" +
			"- Personalized recommendations", true

	case intent.LabelNeedHelp:
		return "I'm here to help! Here's what I can assist you with:\n\n" +
			"- Screening tests: take a PHQ-9 or GAD-7 assessment\n" +
			"- Self-care: mindfulness, breathing, and wellness exercises\n" +
			"- Dashboard: view your progress and test results\n" +
			"- Chat: talk about what's on your mind\n\n" +
			"What would you like to explore?", true

	case intent.LabelGoodbye:
		return "Take care! Remember, I'm here whenever you need support. " +
			"Don't hesitate to come back if you need help with your mental health journey.", true

	case intent.LabelThanks:
		return "You're very welcome! I'm glad I could help. " +
			"Feel free to reach out anytime you need support.", true

	default:
		return "", false
	}
}

// navigationHint is a keyword router for messages the classifier could
// not place: common navigation words still deserve a direct answer
// instead of the generic fallback.
func navigationHint(userText string) (string, bool) {
	lower := strings.ToLower(userText)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("screen", "phq", "gad", "assessment", "test"):
		return "Let's get you to the screenings. We have PHQ-9 (depression) and GAD-7 (anxiety).\n\n" +
			"You can start from the Screening section. Would you like to begin now?", true
	case contains("self care", "self-care", "breath", "meditation", "mindful", "exercise"):
		return "We offer guided breathing, mindfulness, journaling and more.\n\n" +
			"Open the Self-Care section and I can recommend something to match your current mood.", true
	case contains("dashboard", "progress", "results", "report"):
		return "Your dashboard shows trends, your latest PHQ-9 and GAD-7 results, and recommendations.\n\n" +
			"Shall I open the Dashboard for you?", true
	default:
		return "", false
	}
}

func emotionResponse(userText string, signals nlp.Signals, latestAction *triage.Action) string {
	module, hasModule := recommendedModule(latestAction)

	switch signals.PrimaryEmotion {
	case nlp.EmotionSad:
		text := "I understand you're feeling down. It's okay to feel this way. " +
			"Would you like to talk about what's making you feel sad? Sometimes sharing can help."
		if hasModule {
			text += " I'd also recommend trying: " + module + "."
		} else {
			text += " You might also consider trying one of our self-care exercises."
		}
		return text

	case nlp.EmotionAnxious:
		text := "I hear that you're feeling anxious. That can be really challenging. "
		if hasModule {
			text += "I'd recommend trying: " + module + ". "
		} else {
			text += "Would it help to try a breathing exercise together? "
		}
		text += "Or would you prefer to talk about what's causing your anxiety?"
		return text

	case nlp.EmotionHappy:
		return "I'm glad to hear you're feeling positive! It's great that you're doing well. " +
			"Is there anything specific you'd like to discuss or work on today?"
	}

	// Neutral default: short messages get a prompt for more detail.
	if len(strings.TrimSpace(userText)) < 20 {
		return "I'd like to understand better. Can you tell me more about what you're experiencing? " +
			"Or if you're looking for something specific, I can help you with:\n" +
			"- Screening tests\n" +
			"- Self-care exercises\n" +
			"- Your dashboard"
	}

	text := "I appreciate you sharing that. What would be most helpful for you right now?"
	if hasModule {
		text += " You might also find " + module + " helpful."
	}
	return text
}

func recommendedModule(action *triage.Action) (string, bool) {
	if action == nil || action.Type != triage.ActionRecommendSelfCare || action.ModuleID == "" {
		return "", false
	}
	return triage.ModuleTitle(action.ModuleID), true
}
