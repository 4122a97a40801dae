package models

import "time"

// Appointment status values. These four strings are the persisted vocabulary;
// anything else is a schema migration, not a runtime branch.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment represents a committed booking record. StartTime and DurationMins are
// immutable once created; overlap math depends on that.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`                     // Unique appointment identifier (UUID)
	ProviderID   string    `bson:"provider_id" json:"provider_id"`   // Provider who was booked
	CustomerID   string    `bson:"customer_id" json:"customer_id"`   // Customer who made the booking
	ServiceID    string    `bson:"service_id" json:"service_id"`     // Service being booked
	StartTime    time.Time `bson:"start_time" json:"start_time"`     // Absolute start timestamp
	DurationMins int       `bson:"duration_mins" json:"duration_mins"`
	Status       string    `bson:"status" json:"status"`             // pending/confirmed/cancelled/completed
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Busy reports whether the appointment blocks overlapping slots. Cancelled and
// completed appointments never participate in conflict checks.
func (a Appointment) Busy() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// LocalDate formats the appointment's start as a provider-local calendar day.
func (a Appointment) LocalDate(loc *time.Location) string {
	return a.StartTime.In(loc).Format("2006-01-02")
}

// StartMins returns the appointment start as minutes since the provider-local midnight.
func (a Appointment) StartMins(loc *time.Location) int {
	t := a.StartTime.In(loc)
	return t.Hour()*60 + t.Minute()
}

// BookingRequest is the input to the booking commit operation.
type BookingRequest struct {
	ProviderID   string    `json:"provider_id" binding:"required"`
	ServiceID    string    `json:"service_id" binding:"required"`
	CustomerID   string    `json:"customer_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"` // RFC 3339
	DurationMins int       `json:"duration_mins" binding:"required"`
}
