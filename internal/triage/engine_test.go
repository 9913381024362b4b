package triage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func makeResult(instrument Instrument, answers []int, at time.Time) Result {
	total, severity, err := Score(instrument, answers)
	if err != nil {
		panic(err)
	}
	return Result{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		Instrument: instrument,
		Answers:    answers,
		TotalScore: total,
		Severity:   severity,
		CreatedAt:  at,
	}
}

func TestEvaluateReferral(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		instrument   Instrument
		answers      []int
		wantPriority ReferralPriority
	}{
		{
			name:         "phq9 at threshold",
			instrument:   InstrumentPHQ9,
			answers:      []int{3, 3, 3, 3, 3, 0, 0, 0, 0},
			wantPriority: PriorityHigh,
		},
		{
			name:         "phq9 high total with item nine urgent",
			instrument:   InstrumentPHQ9,
			answers:      []int{3, 3, 3, 3, 3, 0, 0, 0, 2},
			wantPriority: PriorityUrgent,
		},
		{
			name:         "phq9 item nine alone urgent despite low total",
			instrument:   InstrumentPHQ9,
			answers:      []int{0, 0, 0, 0, 0, 0, 0, 0, 2},
			wantPriority: PriorityUrgent,
		},
		{
			name:         "gad7 severe",
			instrument:   InstrumentGAD7,
			answers:      []int{3, 3, 3, 3, 3, 0, 0},
			wantPriority: PriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Evaluate(makeResult(tt.instrument, tt.answers, now), nil)
			if action.Type != ActionTriggerReferral {
				t.Fatalf("Evaluate() action = %s, want %s", action.Type, ActionTriggerReferral)
			}
			if action.Priority != tt.wantPriority {
				t.Errorf("Evaluate() priority = %s, want %s", action.Priority, tt.wantPriority)
			}
		})
	}
}

func TestEvaluateClinicianAlert(t *testing.T) {
	now := time.Now()

	prior := makeResult(InstrumentPHQ9, []int{1, 1, 1, 1, 0, 0, 0, 0, 0}, now.AddDate(0, 0, -7)) // total 4
	current := makeResult(InstrumentPHQ9, []int{2, 2, 2, 2, 1, 0, 0, 0, 0}, now)                 // total 9

	action := Evaluate(current, []Result{prior})
	if action.Type != ActionClinicianAlert {
		t.Fatalf("Evaluate() action = %s, want %s", action.Type, ActionClinicianAlert)
	}
	if action.DeltaScore != 5 {
		t.Errorf("Evaluate() delta = %d, want 5", action.DeltaScore)
	}
	if action.WindowDays != 14 {
		t.Errorf("Evaluate() windowDays = %d, want 14", action.WindowDays)
	}
	if action.ComparedTo != prior.ID {
		t.Errorf("Evaluate() comparedTo = %s, want %s", action.ComparedTo, prior.ID)
	}
}

func TestEvaluateAlertPicksWorstDeterioration(t *testing.T) {
	now := time.Now()

	older := makeResult(InstrumentPHQ9, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, now.AddDate(0, 0, -10)) // total 0
	newer := makeResult(InstrumentPHQ9, []int{1, 1, 1, 0, 0, 0, 0, 0, 0}, now.AddDate(0, 0, -2))  // total 3
	current := makeResult(InstrumentPHQ9, []int{2, 2, 2, 2, 1, 0, 0, 0, 0}, now)                  // total 9

	action := Evaluate(current, []Result{newer, older})
	if action.Type != ActionClinicianAlert {
		t.Fatalf("Evaluate() action = %s, want %s", action.Type, ActionClinicianAlert)
	}
	if action.DeltaScore != 9 {
		t.Errorf("Evaluate() delta = %d, want 9", action.DeltaScore)
	}
	if action.ComparedTo != older.ID {
		t.Errorf("Evaluate() comparedTo = %s, want the older result", action.ComparedTo)
	}
}

func TestEvaluateAlertIgnoresStaleAndForeignResults(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		prior Result
	}{
		{
			name:  "outside the window",
			prior: makeResult(InstrumentPHQ9, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, now.AddDate(0, 0, -15)),
		},
		{
			name:  "different instrument",
			prior: makeResult(InstrumentGAD7, []int{0, 0, 0, 0, 0, 0, 0}, now.AddDate(0, 0, -3)),
		},
		{
			name:  "newer than current",
			prior: makeResult(InstrumentPHQ9, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, now.Add(time.Hour)),
		},
	}

	current := makeResult(InstrumentPHQ9, []int{2, 2, 2, 2, 1, 0, 0, 0, 0}, now) // total 9

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Evaluate(current, []Result{tt.prior})
			if action.Type != ActionRecommendSelfCare {
				t.Errorf("Evaluate() action = %s, want %s", action.Type, ActionRecommendSelfCare)
			}
		})
	}
}

func TestEvaluateAlertBelowDelta(t *testing.T) {
	now := time.Now()

	prior := makeResult(InstrumentGAD7, []int{1, 1, 1, 1, 1, 0, 0}, now.AddDate(0, 0, -5)) // total 5
	current := makeResult(InstrumentGAD7, []int{2, 2, 2, 2, 1, 0, 0}, now)                 // total 9, delta 4

	action := Evaluate(current, []Result{prior})
	if action.Type != ActionRecommendSelfCare {
		t.Errorf("Evaluate() action = %s, want %s", action.Type, ActionRecommendSelfCare)
	}
}

func TestEvaluateReferralWinsOverAlert(t *testing.T) {
	now := time.Now()

	prior := makeResult(InstrumentPHQ9, []int{1, 1, 1, 1, 1, 0, 0, 0, 0}, now.AddDate(0, 0, -4)) // total 5
	current := makeResult(InstrumentPHQ9, []int{3, 3, 3, 3, 3, 1, 0, 0, 0}, now)                 // total 16

	action := Evaluate(current, []Result{prior})
	if action.Type != ActionTriggerReferral {
		t.Errorf("Evaluate() action = %s, want %s", action.Type, ActionTriggerReferral)
	}
}

func TestEvaluateSelfCare(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		instrument Instrument
		answers    []int
		wantModule string
	}{
		{
			name:       "gad7 minimal gets breathing",
			instrument: InstrumentGAD7,
			answers:    []int{1, 0, 0, 0, 0, 0, 0},
			wantModule: ModuleBreathing478,
		},
		{
			name:       "gad7 mild gets breathing",
			instrument: InstrumentGAD7,
			answers:    []int{1, 1, 1, 1, 1, 1, 0},
			wantModule: ModuleBreathing478,
		},
		{
			name:       "gad7 moderate gets muscle relaxation",
			instrument: InstrumentGAD7,
			answers:    []int{2, 2, 2, 2, 2, 1, 0},
			wantModule: ModuleMuscleRelaxation,
		},
		{
			name:       "phq9 minimal gets mindfulness",
			instrument: InstrumentPHQ9,
			answers:    []int{1, 1, 0, 0, 0, 0, 0, 0, 0},
			wantModule: ModuleMindfulness,
		},
		{
			name:       "phq9 moderate gets journaling",
			instrument: InstrumentPHQ9,
			answers:    []int{2, 2, 2, 2, 2, 1, 0, 0, 0},
			wantModule: ModuleJournaling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Evaluate(makeResult(tt.instrument, tt.answers, now), nil)
			if action.Type != ActionRecommendSelfCare {
				t.Fatalf("Evaluate() action = %s, want %s", action.Type, ActionRecommendSelfCare)
			}
			if action.ModuleID != tt.wantModule {
				t.Errorf("Evaluate() module = %s, want %s", action.ModuleID, tt.wantModule)
			}
		})
	}
}

func TestSelfCareModuleFallback(t *testing.T) {
	if got := SelfCareModule(InstrumentPHQ9, SeverityModeratelySevere); got != ModuleGuidedRelaxation {
		t.Errorf("SelfCareModule() = %s, want %s", got, ModuleGuidedRelaxation)
	}
	if got := SelfCareModule(InstrumentGAD7, SeveritySevere); got != ModuleGuidedRelaxation {
		t.Errorf("SelfCareModule() = %s, want %s", got, ModuleGuidedRelaxation)
	}
}

func TestModuleTitle(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{ModuleBreathing478, "4-7-8 Breathing"},
		{ModuleMindfulness, "Mindfulness Meditation"},
		{ModuleMuscleRelaxation, "Progressive Muscle Relaxation"},
		{ModuleJournaling, "Journaling and Gratitude"},
		{ModuleGuidedRelaxation, "Guided Relaxation Exercises"},
		{"unknown-module", "Self-Care Exercise"},
	}

	for _, tt := range tests {
		if got := ModuleTitle(tt.id); got != tt.want {
			t.Errorf("ModuleTitle(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
