package triage

// Self-care module identifiers. The catalog rows themselves live in the
// database; these IDs are the stable join key between the engine and the
// seeded catalog.
const (
	ModuleBreathing478     = "breathing-4-7-8"
	ModuleMindfulness      = "mindfulness-meditation"
	ModuleMuscleRelaxation = "progressive-muscle-relaxation"
	ModuleJournaling       = "journaling-gratitude"
	ModuleGuidedRelaxation = "guided-relaxation"
)

type selfCareKey struct {
	instrument Instrument
	severity   SeverityBand
}

var selfCareTable = map[selfCareKey]string{
	{InstrumentGAD7, SeverityMinimal}:  ModuleBreathing478,
	{InstrumentGAD7, SeverityMild}:     ModuleBreathing478,
	{InstrumentGAD7, SeverityModerate}: ModuleMuscleRelaxation,
	{InstrumentPHQ9, SeverityMinimal}:  ModuleMindfulness,
	{InstrumentPHQ9, SeverityMild}:     ModuleMindfulness,
	{InstrumentPHQ9, SeverityModerate}: ModuleJournaling,
}

// SelfCareModule picks the catalog module for an instrument and severity.
// Anything above moderate falls through to guided relaxation; those cases
// normally escalate before reaching here, but the lookup stays total.
func SelfCareModule(instrument Instrument, severity SeverityBand) string {
	if id, ok := selfCareTable[selfCareKey{instrument, severity}]; ok {
		return id
	}
	return ModuleGuidedRelaxation
}

// ModuleTitle returns the display title for a module ID, used when the
// catalog row is unavailable (for example in chat responses composed
// before the patient opens the module).
func ModuleTitle(id string) string {
	switch id {
	case ModuleBreathing478:
		return "4-7-8 Breathing"
	case ModuleMindfulness:
		return "Mindfulness Meditation"
	case ModuleMuscleRelaxation:
		return "Progressive Muscle Relaxation"
	case ModuleJournaling:
		return "Journaling and Gratitude"
	case ModuleGuidedRelaxation:
		return "Guided Relaxation Exercises"
	default:
		return "Self-Care Exercise"
	}
}
