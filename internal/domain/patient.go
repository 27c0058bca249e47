package domain

// Dominance is the patient's dominant side.
type Dominance string

const (
	DominanceLeft         Dominance = "left"
	DominanceRight        Dominance = "right"
	DominanceAmbidextrous Dominance = "ambidextrous"
)

// Valid reports whether d is one of the known dominance values.
func (d Dominance) Valid() bool {
	switch d {
	case DominanceLeft, DominanceRight, DominanceAmbidextrous:
		return true
	}
	return false
}

// Patient is one stored clinical record. The ID is assigned once at
// creation and is the sole key for update/delete lookups.
type Patient struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Age              int        `json:"age"`
	RUT              string     `json:"rut"`
	Dominance        Dominance  `json:"dominance"`
	Injury           *Injury    `json:"injury,omitempty"`
	SurgeryDelayDays int        `json:"surgery_delay_days"`
	SurgeryDate      *Date      `json:"surgery_date,omitempty"`
	SurgeryType      string     `json:"surgery_type,omitempty"`
	Recovered        bool       `json:"recovered"`
	FollowUps        []FollowUp `json:"follow_ups,omitempty"`
}

// Injury is descriptive data embedded in a Patient. It has no identity of
// its own; equality is structural and a Patient may carry none.
type Injury struct {
	Name         string `json:"name"`
	OfficialCode string `json:"official_code,omitempty"` // "DD DD DDD" or empty
	Diagnosis    string `json:"diagnosis,omitempty"`
}
