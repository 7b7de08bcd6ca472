package expert

import "strings"

// RiskLevel is the coarse classification attached to an assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// DefaultPrediction is substituted when a matched rule carries no prediction
// label.
const DefaultPrediction = "StayEnrolled"

// Assessment is the structured risk response returned to callers.
type Assessment struct {
	WillDropout bool      `json:"willDropout"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	Explanation string    `json:"explanation"`
	Remedies    []string  `json:"remedies"`
}

// FormatPrediction maps a prediction label to an assessment. Classification is
// case-insensitive over the whole label; the explanation interpolates the
// original, not case-folded, label. Unknown labels get the generic Medium
// branch rather than an error.
func FormatPrediction(prediction string, actions []string) Assessment {
	a := Assessment{Remedies: actions}
	if a.Remedies == nil {
		a.Remedies = []string{}
	}

	switch strings.ToLower(prediction) {
	case "dropout":
		a.WillDropout = true
		a.RiskLevel = RiskHigh
		a.Explanation = "Based on the provided facts, the expert system predicts a high risk of dropout. " + prediction
	case "graduate":
		a.WillDropout = false
		a.RiskLevel = RiskLow
		a.Explanation = "Based on the provided facts, the expert system predicts the student will graduate successfully. " + prediction
	case "staysenrolled":
		a.WillDropout = false
		a.RiskLevel = RiskMedium
		a.Explanation = "Based on the provided facts, the expert system predicts the student will stay enrolled. " + prediction
	default:
		a.WillDropout = false
		a.RiskLevel = RiskMedium
		a.Explanation = "Based on the provided facts, the expert system prediction: " + prediction
	}
	return a
}

// DefaultAssessment is returned when no rule matches. Not an error: the rule
// base simply has no opinion, so general monitoring is recommended.
func DefaultAssessment() Assessment {
	return Assessment{
		WillDropout: false,
		RiskLevel:   RiskMedium,
		Explanation: "Based on the provided facts, no specific rule matched. General monitoring recommended.",
		Remedies: []string{
			"Regular check-ins with academic advisor",
			"Monitor academic performance",
		},
	}
}
