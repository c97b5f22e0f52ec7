package types

// Personality holds Big Five trait scores. Each component is expected in
// [0,1]; ingestion rescales legacy 1-5 survey scores before records reach
// the scoring engine.
type Personality struct {
	Openness          float64 `json:"O"`
	Conscientiousness float64 `json:"C"`
	Extraversion      float64 `json:"E"`
	Agreeableness     float64 `json:"A"`
	Neuroticism       float64 `json:"N"`
}

// Vector returns the traits in canonical O,C,E,A,N order.
func (p Personality) Vector() [5]float64 {
	return [5]float64{p.Openness, p.Conscientiousness, p.Extraversion, p.Agreeableness, p.Neuroticism}
}

// NeutralPersonality is the default used when a record carries no trait scores.
func NeutralPersonality() Personality {
	return Personality{
		Openness:          0.5,
		Conscientiousness: 0.5,
		Extraversion:      0.5,
		Agreeableness:     0.5,
		Neuroticism:       0.5,
	}
}
