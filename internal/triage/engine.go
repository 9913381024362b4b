package triage

import (
	"time"

	"github.com/google/uuid"
)

// Escalation thresholds. These are clinical policy numbers, not tunables:
// changing them requires sign-off, which is why they are constants and
// not configuration.
const (
	referralThreshold     = 15
	suicidalItemThreshold = 2
	trendDeltaThreshold   = 5
	trendWindowDays       = 14
	suicidalItemIndexPHQ9 = 8 // zero-based position of PHQ-9 item 9
)

// Result is a scored screening as the engine sees it. Persistence details
// (edges, idempotency keys) live in the service layer.
type Result struct {
	ID         uuid.UUID
	PatientID  uuid.UUID
	Instrument Instrument
	Answers    []int
	TotalScore int
	Severity   SeverityBand
	CreatedAt  time.Time
}

// SuicidalItem returns the PHQ-9 item 9 answer, or 0 for other instruments.
func (r Result) SuicidalItem() int {
	if r.Instrument != InstrumentPHQ9 || len(r.Answers) <= suicidalItemIndexPHQ9 {
		return 0
	}
	return r.Answers[suicidalItemIndexPHQ9]
}

// ActionType enumerates what Evaluate can decide. Exactly one action is
// produced per screening.
type ActionType string

const (
	ActionTriggerReferral   ActionType = "trigger_referral"
	ActionClinicianAlert    ActionType = "clinician_alert"
	ActionRecommendSelfCare ActionType = "recommend_self_care"
)

// ReferralPriority orders teleconsult referrals in the clinician queue.
type ReferralPriority string

const (
	PriorityUrgent ReferralPriority = "urgent"
	PriorityHigh   ReferralPriority = "high"
)

// Action is the engine's decision for one screening. Fields beyond Type
// are populated only where they apply: Priority for referrals, DeltaScore,
// WindowDays and ComparedTo for alerts, ModuleID for self-care.
type Action struct {
	Type       ActionType
	Reason     string
	Priority   ReferralPriority
	DeltaScore int
	WindowDays int
	ComparedTo uuid.UUID
	ModuleID   string
}

// Evaluate applies the escalation rules to a newly scored screening.
// Rules are checked in fixed order and the first match wins, so the
// outcome is deterministic for a given input:
//
//  1. total >= 15, or PHQ-9 item 9 >= 2  -> teleconsult referral
//  2. score rose >= 5 vs any prior result
//     of the same instrument within 14d  -> clinician alert
//  3. otherwise                          -> self-care recommendation
//
// prior carries the patient's earlier results for the same instrument;
// order does not matter and other instruments are ignored.
func Evaluate(result Result, prior []Result) Action {
	if result.TotalScore >= referralThreshold {
		priority := PriorityHigh
		if result.SuicidalItem() >= suicidalItemThreshold {
			priority = PriorityUrgent
		}
		return Action{
			Type:     ActionTriggerReferral,
			Reason:   "total score at or above referral threshold",
			Priority: priority,
		}
	}
	if result.SuicidalItem() >= suicidalItemThreshold {
		return Action{
			Type:     ActionTriggerReferral,
			Reason:   "self-harm item answered at 2 or higher",
			Priority: PriorityUrgent,
		}
	}

	if delta, against, ok := worstDeterioration(result, prior); ok {
		return Action{
			Type:       ActionClinicianAlert,
			Reason:     "score worsened sharply within the trend window",
			DeltaScore: delta,
			WindowDays: trendWindowDays,
			ComparedTo: against,
		}
	}

	return Action{
		Type:     ActionRecommendSelfCare,
		Reason:   "no escalation criteria met",
		ModuleID: SelfCareModule(result.Instrument, result.Severity),
	}
}

// worstDeterioration finds the largest score increase against any prior
// result of the same instrument inside the trend window. It reports ok
// only when that increase reaches the alert threshold.
func worstDeterioration(result Result, prior []Result) (int, uuid.UUID, bool) {
	windowStart := result.CreatedAt.AddDate(0, 0, -trendWindowDays)

	best := 0
	var against uuid.UUID
	for _, p := range prior {
		if p.Instrument != result.Instrument {
			continue
		}
		if p.CreatedAt.Before(windowStart) || p.CreatedAt.After(result.CreatedAt) {
			continue
		}
		if delta := result.TotalScore - p.TotalScore; delta > best {
			best = delta
			against = p.ID
		}
	}

	return best, against, best >= trendDeltaThreshold
}
