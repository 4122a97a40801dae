package models

// Policy type discriminator values for Service.PolicyType.
const (
	PolicyDuration = "duration"
	PolicyShift    = "shift"
)

// Default grid granularity and shift conflict buffer, in minutes.
const (
	DefaultStepMins   = 30
	DefaultBufferMins = 60
)

// Service describes a bookable offering published by a provider. Exactly one of
// Duration/Shift is non-nil, selected by PolicyType.
type Service struct {
	ID          string          `bson:"id" json:"id"`
	ProviderID  string          `bson:"provider_id" json:"provider_id"`
	Name        string          `bson:"name" json:"name"`
	Price       float64         `bson:"price" json:"price"`
	AutoApprove bool            `bson:"auto_approve" json:"auto_approve"` // new bookings start confirmed instead of pending
	PolicyType  string          `bson:"policy_type" json:"policy_type"`   // "duration" or "shift"
	Duration    *DurationPolicy `bson:"duration,omitempty" json:"duration,omitempty"`
	Shift       *ShiftPolicy    `bson:"shift,omitempty" json:"shift,omitempty"`
}

// DurationPolicy offers fixed-length slots on a stepped grid inside a daily window.
// All fields are minutes since the provider-local midnight.
type DurationPolicy struct {
	ServiceDurationMins int `bson:"service_duration_mins" json:"service_duration_mins"`
	WindowStartMins     int `bson:"window_start_mins" json:"window_start_mins"` // e.g., 540 for 9:00 AM
	WindowEndMins       int `bson:"window_end_mins" json:"window_end_mins"`     // e.g., 1020 for 5:00 PM
	StepMins            int `bson:"step_mins" json:"step_mins"`
}

// ShiftPolicy offers a small fixed set of named shifts (e.g., Day/Night). Shift
// appointments record no explicit end time, so conflicts are detected by proximity:
// a shift's conflict interval is [StartMins, StartMins+2*BufferMins).
type ShiftPolicy struct {
	Shifts     []Shift `bson:"shifts" json:"shifts"`
	BufferMins int     `bson:"buffer_mins" json:"buffer_mins"`
}

// Shift is a named fixed-start booking unit.
type Shift struct {
	Label     string `bson:"label" json:"label"`           // e.g., "Day"
	StartMins int    `bson:"start_mins" json:"start_mins"` // e.g., 600 for 10:00 AM
}
