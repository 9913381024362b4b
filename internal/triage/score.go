package triage

import (
	"errors"
	"fmt"
)

// ErrInvalidAnswers is returned when an answer vector cannot be scored.
// Scoring is all-or-nothing: a bad vector is rejected before any computation.
var ErrInvalidAnswers = errors.New("invalid screening answers")

// Instrument identifies a screening questionnaire.
type Instrument string

const (
	InstrumentPHQ9 Instrument = "phq9"
	InstrumentGAD7 Instrument = "gad7"
)

// ItemCount returns the fixed number of items for the instrument.
func (i Instrument) ItemCount() int {
	switch i {
	case InstrumentPHQ9:
		return 9
	case InstrumentGAD7:
		return 7
	default:
		return 0
	}
}

// Label returns the clinical name of the instrument.
func (i Instrument) Label() string {
	switch i {
	case InstrumentPHQ9:
		return "PHQ-9"
	case InstrumentGAD7:
		return "GAD-7"
	default:
		return string(i)
	}
}

func (i Instrument) Valid() bool {
	return i == InstrumentPHQ9 || i == InstrumentGAD7
}

// SeverityBand is the categorical bucket derived from a total score.
type SeverityBand string

const (
	SeverityMinimal          SeverityBand = "minimal"
	SeverityMild             SeverityBand = "mild"
	SeverityModerate         SeverityBand = "moderate"
	SeverityModeratelySevere SeverityBand = "moderately_severe"
	SeveritySevere           SeverityBand = "severe"
)

// Label returns the human-readable severity label.
func (s SeverityBand) Label() string {
	switch s {
	case SeverityMinimal:
		return "Minimal"
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeverityModeratelySevere:
		return "Moderately Severe"
	case SeveritySevere:
		return "Severe"
	default:
		return "Unknown"
	}
}

// severityTable maps an inclusive score upper bound to a band.
// Entries must be ordered by ascending upper bound.
type severityTable []struct {
	upper int
	band  SeverityBand
}

var (
	phq9Severity = severityTable{
		{4, SeverityMinimal},
		{9, SeverityMild},
		{14, SeverityModerate},
		{19, SeverityModeratelySevere},
		{27, SeveritySevere},
	}
	gad7Severity = severityTable{
		{4, SeverityMinimal},
		{9, SeverityMild},
		{14, SeverityModerate},
		{21, SeveritySevere},
	}
)

func (t severityTable) band(score int) SeverityBand {
	for _, e := range t {
		if score <= e.upper {
			return e.band
		}
	}
	return SeveritySevere
}

// Score validates an answer vector and returns the total score plus its
// severity band. Each answer must be in [0,3] and the vector length must
// match the instrument's item count; violations fail with ErrInvalidAnswers
// and nothing is scored.
func Score(instrument Instrument, answers []int) (int, SeverityBand, error) {
	if !instrument.Valid() {
		return 0, "", fmt.Errorf("%w: unknown instrument %q", ErrInvalidAnswers, instrument)
	}
	if len(answers) != instrument.ItemCount() {
		return 0, "", fmt.Errorf("%w: %s requires exactly %d answers, got %d",
			ErrInvalidAnswers, instrument, instrument.ItemCount(), len(answers))
	}

	total := 0
	for i, a := range answers {
		if a < 0 || a > 3 {
			return 0, "", fmt.Errorf("%w: answer %d must be between 0 and 3, got %d",
				ErrInvalidAnswers, i+1, a)
		}
		total += a
	}

	return total, SeverityFor(instrument, total), nil
}

// SeverityFor maps (instrument, total score) to a severity band.
// Bands are a pure function of the total and are always recomputed,
// never trusted from stored data.
func SeverityFor(instrument Instrument, total int) SeverityBand {
	if instrument == InstrumentGAD7 {
		return gad7Severity.band(total)
	}
	return phq9Severity.band(total)
}

// RiskLevel is the per-screening urgency bucket shown to clinicians.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskFor derives the clinician-facing risk level for a screening.
// PHQ-9 item 9 (thoughts of self-harm) at 2+ is always critical
// regardless of the total score.
func RiskFor(instrument Instrument, total, suicidalItem int) RiskLevel {
	if instrument == InstrumentPHQ9 && suicidalItem >= suicidalItemThreshold {
		return RiskCritical
	}
	switch {
	case total >= referralThreshold:
		return RiskCritical
	case total >= 10:
		return RiskHigh
	case total >= 5:
		return RiskMedium
	default:
		return RiskLow
	}
}
