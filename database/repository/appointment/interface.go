package appointmentRepo

import (
	"errors"
	"time"

	"slotify/models"
)

// ErrNoMatch is returned by UpdateStatus when no appointment matched the expected
// current status, i.e. a concurrent transition got there first.
var ErrNoMatch = errors.New("no appointment matched the expected status")

// ErrNotFound is returned when no appointment matches the requested ID. Callers
// use it to tell a missing document apart from a store failure.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines the data access methods used by the scheduling engine.
// It is the single source of truth for conflict detection.
type AppointmentRepository interface {
	// Create persists a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(appointmentID string) (*models.Appointment, error)
	// ListBusyByProviderDate retrieves the pending and confirmed appointments for a
	// provider whose start falls on the given provider-local calendar day.
	ListBusyByProviderDate(providerID, date string, loc *time.Location) ([]models.Appointment, error)
	// ListByProvider retrieves all appointments for a provider, newest first.
	ListByProvider(providerID string) ([]models.Appointment, error)
	// ListByCustomer retrieves all appointments for a customer, newest first.
	ListByCustomer(customerID string) ([]models.Appointment, error)
	// UpdateStatus moves an appointment from an expected status to a new one.
	// The compare-and-set guard keeps concurrent transitions honest.
	UpdateStatus(appointmentID, fromStatus, toStatus string) error
}
