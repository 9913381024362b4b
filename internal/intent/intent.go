// Package intent classifies free-text chat messages into a fixed label
// set. Training is an offline batch step; inference is a pure function
// of the trained model and the input text.
package intent

// Label is a classified message purpose.
type Label string

const (
	LabelGreeting      Label = "greeting"
	LabelFindScreening Label = "find_screening"
	LabelFindSelfCare  Label = "find_self_care"
	LabelViewDashboard Label = "view_dashboard"
	LabelNeedHelp      Label = "need_help"
	LabelCrisis        Label = "crisis"
	LabelGoodbye       Label = "goodbye"
	LabelThanks        Label = "thanks"
	LabelOutOfScope    Label = "out_of_scope"
	LabelUnknown       Label = "unknown"
)

// DefaultConfidenceThreshold is the minimum posterior probability a
// prediction needs before its label is trusted. Anything below it is
// reported as out_of_scope.
const DefaultConfidenceThreshold = 0.6

// Prediction is one classification outcome. Confidence is the raw
// posterior of the winning class even when the label was overridden
// to out_of_scope.
type Prediction struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}
