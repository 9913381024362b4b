package chat

import (
	"strings"
	"testing"

	"github.com/iwantdrugsxd/mind-ease/internal/intent"
	"github.com/iwantdrugsxd/mind-ease/internal/nlp"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

func selfCareAction(moduleID string) *triage.Action {
	return &triage.Action{Type: triage.ActionRecommendSelfCare, ModuleID: moduleID}
}

func TestComposeCrisisFromKeywords(t *testing.T) {
	signals := nlp.Detect("I want to kill myself")
	pred := intent.Prediction{Label: intent.LabelFindSelfCare, Confidence: 0.9}

	reply := Compose("I want to kill myself, maybe show me self care", signals, pred, nil)

	if reply.RiskFlag != nlp.RiskCritical {
		t.Errorf("Compose() riskFlag = %s, want %s", reply.RiskFlag, nlp.RiskCritical)
	}
	if !strings.Contains(reply.Text, "988") {
		t.Errorf("Compose() crisis reply missing hotline: %q", reply.Text)
	}
	if strings.Contains(reply.Text, "self-care exercises. We have") {
		t.Error("Compose() produced navigational reply for a crisis message")
	}
}

func TestComposeCrisisFromIntent(t *testing.T) {
	// Keyword matcher sees nothing, but the classifier flags crisis.
	signals := nlp.Detect("I cannot keep doing this")
	pred := intent.Prediction{Label: intent.LabelCrisis, Confidence: 0.8}

	reply := Compose("I cannot keep doing this", signals, pred, nil)

	if reply.RiskFlag != nlp.RiskCritical {
		t.Errorf("Compose() riskFlag = %s, want %s", reply.RiskFlag, nlp.RiskCritical)
	}
	if !strings.Contains(reply.Text, "741741") {
		t.Errorf("Compose() crisis reply missing text line: %q", reply.Text)
	}
}

func TestComposeNavigationalIntents(t *testing.T) {
	tests := []struct {
		label    intent.Label
		fragment string
	}{
		{intent.LabelGreeting, "Hello! I'm here to support you"},
		{intent.LabelFindScreening, "PHQ-9"},
		{intent.LabelFindSelfCare, "self-care exercises"},
		{intent.LabelViewDashboard, "dashboard"},
		{intent.LabelNeedHelp, "What would you like to explore"},
		{intent.LabelGoodbye, "Take care"},
		{intent.LabelThanks, "You're very welcome"},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			signals := nlp.Detect("plain message")
			reply := Compose("plain message", signals, intent.Prediction{Label: tt.label, Confidence: 0.9}, nil)
			if !strings.Contains(reply.Text, tt.fragment) {
				t.Errorf("Compose(%s) = %q, want fragment %q", tt.label, reply.Text, tt.fragment)
			}
			if reply.RiskFlag != nlp.RiskNone {
				t.Errorf("Compose(%s) riskFlag = %s, want none", tt.label, reply.RiskFlag)
			}
		})
	}
}

func TestComposeSelfCareAppendsRecommendation(t *testing.T) {
	signals := nlp.Detect("show me self care")
	pred := intent.Prediction{Label: intent.LabelFindSelfCare, Confidence: 0.9}

	reply := Compose("show me self care", signals, pred, selfCareAction(triage.ModuleBreathing478))
	if !strings.Contains(reply.Text, "4-7-8 Breathing") {
		t.Errorf("Compose() should name the recommended module, got %q", reply.Text)
	}

	// Referral actions carry no module and must not be appended.
	referral := &triage.Action{Type: triage.ActionTriggerReferral, Priority: triage.PriorityHigh}
	reply = Compose("show me self care", signals, pred, referral)
	if strings.Contains(reply.Text, "recommend") && strings.Contains(reply.Text, "assessment") {
		t.Errorf("Compose() appended a recommendation for a referral action: %q", reply.Text)
	}
}

func TestComposeEmotionFallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fragment string
		wantRisk nlp.RiskLevel
	}{
		{
			name:     "sad fallback",
			text:     "I have been feeling really sad and hopeless lately",
			fragment: "feeling down",
			wantRisk: nlp.RiskMedium,
		},
		{
			name:     "anxious fallback",
			text:     "everything makes me so nervous and stressed",
			fragment: "feeling anxious",
			wantRisk: nlp.RiskMedium,
		},
		{
			name:     "happy fallback",
			text:     "I am feeling really happy today honestly",
			fragment: "glad to hear",
			wantRisk: nlp.RiskNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := nlp.Detect(tt.text)
			pred := intent.Prediction{Label: intent.LabelOutOfScope, Confidence: 0.3}

			reply := Compose(tt.text, signals, pred, nil)
			if !strings.Contains(reply.Text, tt.fragment) {
				t.Errorf("Compose() = %q, want fragment %q", reply.Text, tt.fragment)
			}
			if reply.RiskFlag != tt.wantRisk {
				t.Errorf("Compose() riskFlag = %s, want %s", reply.RiskFlag, tt.wantRisk)
			}
		})
	}
}

func TestComposeNavigationHintForOutOfScope(t *testing.T) {
	signals := nlp.Detect("where is the phq thing")
	pred := intent.Prediction{Label: intent.LabelOutOfScope, Confidence: 0.2}

	reply := Compose("where is the phq thing", signals, pred, nil)
	if !strings.Contains(reply.Text, "Screening section") {
		t.Errorf("Compose() should route screening keywords, got %q", reply.Text)
	}
}

func TestComposeNeutralDefaults(t *testing.T) {
	pred := intent.Prediction{Label: intent.LabelUnknown, Confidence: 0}

	short := Compose("hm", nlp.Detect("hm"), pred, nil)
	if !strings.Contains(short.Text, "tell me more") {
		t.Errorf("Compose() short default = %q", short.Text)
	}

	long := Compose("today my neighbor borrowed the lawnmower again without asking",
		nlp.Detect("today my neighbor borrowed the lawnmower again without asking"), pred, nil)
	if !strings.Contains(long.Text, "I appreciate you sharing that") {
		t.Errorf("Compose() long default = %q", long.Text)
	}

	withModule := Compose("today my neighbor borrowed the lawnmower again without asking",
		nlp.Detect("today my neighbor borrowed the lawnmower again without asking"),
		pred, selfCareAction(triage.ModuleJournaling))
	if !strings.Contains(withModule.Text, "Journaling and Gratitude") {
		t.Errorf("Compose() default with module = %q", withModule.Text)
	}
}
