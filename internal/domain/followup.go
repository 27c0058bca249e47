package domain

// FollowUp is one dated functional assessment attached to a patient.
// QuickDASH and PRWE are standard upper-limb outcome scores; pain values
// use a 0-10 visual analog scale.
type FollowUp struct {
	ID             string  `json:"id"`
	EvaluationDate Date    `json:"evaluation_date"`
	QuickDASH      float64 `json:"quick_dash"`
	PRWE           float64 `json:"prwe"`
	PainAtRest     int     `json:"pain_at_rest"`
	PainInActivity int     `json:"pain_in_activity"`
	RangeOfMotion  string  `json:"range_of_motion,omitempty"`
	GripStrength   float64 `json:"grip_strength,omitempty"`
	SLGap          float64 `json:"sl_gap,omitempty"`
	DISI           bool    `json:"disi"`
	DorsalScaphoid bool    `json:"dorsal_scaphoid_subluxation"`
	Notes          string  `json:"notes,omitempty"`
}
