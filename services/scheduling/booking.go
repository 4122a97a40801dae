package scheduling

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	serviceRepo "slotify/database/repository/service"
	"slotify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingEngine defines the availability and booking commit operations.
type SchedulingEngine interface {
	// GetAvailableSlots computes the bookable slots for a service on a
	// provider-local calendar day ("YYYY-MM-DD").
	GetAvailableSlots(providerID, serviceID, date string) ([]models.Slot, error)
	// BookSlot re-validates the requested slot against the current appointment set
	// and commits it, applying the service's auto-approval policy.
	BookSlot(req models.BookingRequest) (*models.Appointment, error)
	// UpdateAppointmentStatus transitions an appointment through its lifecycle.
	UpdateAppointmentStatus(appointmentID, newStatus string) (*models.Appointment, error)
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Services     serviceRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Location     *time.Location
	Logger       *zap.Logger

	locks *providerLockStore
}

// NewDefaultSchedulingEngine wires an engine over the given repositories. All day
// boundaries are resolved in loc, the provider-local timezone.
func NewDefaultSchedulingEngine(services serviceRepo.ServiceRepository, appointments appointmentRepo.AppointmentRepository, loc *time.Location, logger *zap.Logger) *DefaultSchedulingEngine {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultSchedulingEngine{
		Services:     services,
		Appointments: appointments,
		Location:     loc,
		Logger:       logger,
		locks:        newProviderLockStore(),
	}
}

// GetAvailableSlots loads the service and the day's busy appointments and runs the
// pure calculator. The result is a display-time snapshot: BookSlot re-checks.
func (se *DefaultSchedulingEngine) GetAvailableSlots(providerID, serviceID, date string) ([]models.Slot, error) {
	svc, err := se.loadService(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != providerID {
		return nil, NewValidationError("service %s does not belong to provider %s", serviceID, providerID)
	}

	busy, err := se.Appointments.ListBusyByProviderDate(providerID, date, se.Location)
	if err != nil {
		return nil, err
	}
	return ComputeAvailableSlots(*svc, date, busy, se.Location)
}

// BookSlot validates the request, then re-runs the overlap check and inserts the
// appointment as one unit under the provider's commit lock. The second of two
// racing callers for the same slot deterministically receives a ConflictError.
// Once entered, the commit runs to completion even if the client goes away:
// a partially applied booking would break the no-double-booking invariant.
func (se *DefaultSchedulingEngine) BookSlot(req models.BookingRequest) (*models.Appointment, error) {
	svc, err := se.loadService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != req.ProviderID {
		return nil, NewValidationError("service %s does not belong to provider %s", req.ServiceID, req.ProviderID)
	}

	now := time.Now()
	if !req.StartTime.After(now) {
		return nil, NewValidationError("start time %s is in the past", req.StartTime.Format(time.RFC3339))
	}

	// The client may be replaying a stale slot list with a tampered duration;
	// accept only a (start, duration) pair the policy itself would have produced.
	local := req.StartTime.In(se.Location)
	startMins := local.Hour()*60 + local.Minute()
	if local.Second() != 0 || local.Nanosecond() != 0 {
		return nil, NewValidationError("start time must fall on a whole minute")
	}
	if !se.policyOffers(*svc, startMins, req.DurationMins) {
		return nil, NewValidationError("slot %s/%d min is not offered by service %s", MinuteLabel(startMins), req.DurationMins, svc.ID)
	}

	date := local.Format("2006-01-02")

	lock := se.locks.getLock(req.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	// Re-check against the store, not the possibly-stale list the client saw.
	busy, err := se.Appointments.ListBusyByProviderDate(req.ProviderID, date, se.Location)
	if err != nil {
		return nil, err
	}
	reqEnd := startMins + req.DurationMins
	for _, b := range busy {
		bStart := b.StartMins(se.Location)
		if Overlaps(startMins, reqEnd, bStart, bStart+b.DurationMins) {
			return nil, &ConflictError{ConflictingAppointmentID: b.ID}
		}
	}

	status := models.StatusPending
	if svc.AutoApprove {
		status = models.StatusConfirmed
	}
	appt := &models.Appointment{
		ID:           uuid.New().String(),
		ProviderID:   req.ProviderID,
		CustomerID:   req.CustomerID,
		ServiceID:    req.ServiceID,
		StartTime:    req.StartTime,
		DurationMins: req.DurationMins,
		Status:       status,
		CreatedAt:    now,
	}
	if err := se.Appointments.Create(appt); err != nil {
		return nil, err
	}

	if se.Logger != nil {
		se.Logger.Info("appointment committed",
			zap.String("appointmentID", appt.ID),
			zap.String("providerID", appt.ProviderID),
			zap.String("date", date),
			zap.String("slot", MinuteLabel(startMins)),
			zap.String("status", appt.Status),
		)
	}
	return appt, nil
}

// UpdateAppointmentStatus applies the lifecycle state machine. The freed slot
// after a cancellation needs no extra bookkeeping: cancelled appointments simply
// stop appearing in busy queries.
func (se *DefaultSchedulingEngine) UpdateAppointmentStatus(appointmentID, newStatus string) (*models.Appointment, error) {
	if !ValidStatus(newStatus) {
		return nil, NewValidationError("unknown status %q", newStatus)
	}
	appt, err := se.Appointments.GetByID(appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewValidationError("unknown appointment %s", appointmentID)
		}
		return nil, fmt.Errorf("loading appointment %s: %w", appointmentID, err)
	}
	if !CanTransition(appt.Status, newStatus) {
		return nil, NewValidationError("cannot move appointment %s from %s to %s", appointmentID, appt.Status, newStatus)
	}
	if err := se.Appointments.UpdateStatus(appointmentID, appt.Status, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoMatch) {
			return nil, NewValidationError("appointment %s changed status concurrently", appointmentID)
		}
		return nil, err
	}
	appt.Status = newStatus
	return appt, nil
}

// loadService fetches a service and classifies the failure: a missing document is
// the caller's mistake (ValidationError); anything else is a store failure and
// propagates wrapped, never downgraded to a client error.
func (se *DefaultSchedulingEngine) loadService(serviceID string) (*models.Service, error) {
	svc, err := se.Services.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, NewValidationError("unknown service %s", serviceID)
		}
		return nil, fmt.Errorf("loading service %s: %w", serviceID, err)
	}
	return svc, nil
}

// policyOffers reports whether the service's policy generates a candidate with
// exactly this start minute and duration.
func (se *DefaultSchedulingEngine) policyOffers(svc models.Service, startMins, durationMins int) bool {
	for _, cand := range CandidateSlots(svc) {
		if cand.StartMins == startMins && cand.DurationMins == durationMins {
			return true
		}
	}
	return false
}
