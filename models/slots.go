package models

// Candidate is a policy-generated bookable time, before conflict filtering.
type Candidate struct {
	Label        string `json:"label"`      // time-of-day string or shift label
	StartMins    int    `json:"start_mins"` // minutes from provider-local midnight
	DurationMins int    `json:"duration_mins"`
}

// Slot is a bookable time offered to a customer. Only available slots are ever
// returned; unavailable candidates are dropped, not flagged.
type Slot struct {
	Label        string `json:"label"`
	StartMins    int    `json:"start_mins"`
	DurationMins int    `json:"duration_mins"`
	Available    bool   `json:"available"`
}
