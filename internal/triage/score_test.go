package triage

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		instrument   Instrument
		answers      []int
		wantTotal    int
		wantSeverity SeverityBand
	}{
		{
			name:         "phq9 all zeros",
			instrument:   InstrumentPHQ9,
			answers:      []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
			wantTotal:    0,
			wantSeverity: SeverityMinimal,
		},
		{
			name:         "phq9 all threes",
			instrument:   InstrumentPHQ9,
			answers:      []int{3, 3, 3, 3, 3, 3, 3, 3, 3},
			wantTotal:    27,
			wantSeverity: SeveritySevere,
		},
		{
			name:         "phq9 mild lower bound",
			instrument:   InstrumentPHQ9,
			answers:      []int{1, 1, 1, 1, 1, 0, 0, 0, 0},
			wantTotal:    5,
			wantSeverity: SeverityMild,
		},
		{
			name:         "phq9 moderate lower bound",
			instrument:   InstrumentPHQ9,
			answers:      []int{2, 2, 2, 2, 2, 0, 0, 0, 0},
			wantTotal:    10,
			wantSeverity: SeverityModerate,
		},
		{
			name:         "phq9 moderately severe lower bound",
			instrument:   InstrumentPHQ9,
			answers:      []int{3, 3, 3, 3, 3, 0, 0, 0, 0},
			wantTotal:    15,
			wantSeverity: SeverityModeratelySevere,
		},
		{
			name:         "phq9 severe lower bound",
			instrument:   InstrumentPHQ9,
			answers:      []int{3, 3, 3, 3, 3, 3, 2, 0, 0},
			wantTotal:    20,
			wantSeverity: SeveritySevere,
		},
		{
			name:         "gad7 all zeros",
			instrument:   InstrumentGAD7,
			answers:      []int{0, 0, 0, 0, 0, 0, 0},
			wantTotal:    0,
			wantSeverity: SeverityMinimal,
		},
		{
			name:         "gad7 mild lower bound",
			instrument:   InstrumentGAD7,
			answers:      []int{1, 1, 1, 1, 1, 0, 0},
			wantTotal:    5,
			wantSeverity: SeverityMild,
		},
		{
			name:         "gad7 moderate lower bound",
			instrument:   InstrumentGAD7,
			answers:      []int{2, 2, 2, 2, 2, 0, 0},
			wantTotal:    10,
			wantSeverity: SeverityModerate,
		},
		{
			name:         "gad7 severe lower bound",
			instrument:   InstrumentGAD7,
			answers:      []int{3, 3, 3, 3, 3, 0, 0},
			wantTotal:    15,
			wantSeverity: SeveritySevere,
		},
		{
			name:         "gad7 maximum",
			instrument:   InstrumentGAD7,
			answers:      []int{3, 3, 3, 3, 3, 3, 3},
			wantTotal:    21,
			wantSeverity: SeveritySevere,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, severity, err := Score(tt.instrument, tt.answers)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("Score() total = %d, want %d", total, tt.wantTotal)
			}
			if severity != tt.wantSeverity {
				t.Errorf("Score() severity = %s, want %s", severity, tt.wantSeverity)
			}
		})
	}
}

func TestScoreInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		instrument Instrument
		answers    []int
	}{
		{
			name:       "unknown instrument",
			instrument: Instrument("phq2"),
			answers:    []int{0, 0},
		},
		{
			name:       "too few answers",
			instrument: InstrumentPHQ9,
			answers:    []int{1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name:       "too many answers",
			instrument: InstrumentGAD7,
			answers:    []int{1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name:       "answer below range",
			instrument: InstrumentGAD7,
			answers:    []int{0, 0, 0, -1, 0, 0, 0},
		},
		{
			name:       "answer above range",
			instrument: InstrumentPHQ9,
			answers:    []int{0, 0, 0, 4, 0, 0, 0, 0, 0},
		},
		{
			name:       "empty vector",
			instrument: InstrumentPHQ9,
			answers:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Score(tt.instrument, tt.answers)
			if !errors.Is(err, ErrInvalidAnswers) {
				t.Errorf("Score() error = %v, want ErrInvalidAnswers", err)
			}
		})
	}
}

func TestRiskFor(t *testing.T) {
	tests := []struct {
		name         string
		instrument   Instrument
		total        int
		suicidalItem int
		want         RiskLevel
	}{
		{"phq9 low", InstrumentPHQ9, 3, 0, RiskLow},
		{"phq9 medium", InstrumentPHQ9, 7, 0, RiskMedium},
		{"phq9 high", InstrumentPHQ9, 12, 0, RiskHigh},
		{"phq9 critical by total", InstrumentPHQ9, 18, 0, RiskCritical},
		{"phq9 critical by item nine despite low total", InstrumentPHQ9, 2, 2, RiskCritical},
		{"gad7 item ignored", InstrumentGAD7, 2, 3, RiskLow},
		{"gad7 critical", InstrumentGAD7, 16, 0, RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskFor(tt.instrument, tt.total, tt.suicidalItem)
			if got != tt.want {
				t.Errorf("RiskFor() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSeverityLabel(t *testing.T) {
	if got := SeverityModeratelySevere.Label(); got != "Moderately Severe" {
		t.Errorf("Label() = %q, want %q", got, "Moderately Severe")
	}
	if got := SeverityBand("bogus").Label(); got != "Unknown" {
		t.Errorf("Label() = %q, want %q", got, "Unknown")
	}
}
