package domain

type Prediction string

const (
	PredictionYes Prediction = "Yes"
	PredictionNo  Prediction = "No"
)

type ScreeningResult struct {
	Prediction     Prediction `json:"prediction"`
	Interpretation string     `json:"interpretation"`
}

const (
	yesNarrative = "Based on your answers, our model found signs associated with depression. " +
		"This is not a diagnosis. Please consider reaching out to a mental health professional " +
		"or someone you trust. Here is what influenced the result:"
	noNarrative = "Based on your answers, our model did not find signs associated with depression. " +
		"Keep looking after yourself, and reach out for support whenever you need it. " +
		"Here is what influenced the result:"
)

// Narrative selects the fixed message shown above the interpretation.
func (r ScreeningResult) Narrative() string {
	if r.Prediction == PredictionYes {
		return yesNarrative
	}
	return noNarrative
}
