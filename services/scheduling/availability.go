package scheduling

import (
	"time"

	"slotify/models"
)

// ComputeAvailableSlots returns the ordered bookable slots for a service on a
// given provider-local calendar day, filtered against a snapshot of existing
// appointments. It is pure over its inputs: concurrent commits after the snapshot
// are the booking commit path's problem, not this function's.
//
// Cancelled and completed appointments are invisible here, so a cancelled slot
// becomes immediately reusable.
func ComputeAvailableSlots(svc models.Service, date string, busy []models.Appointment, loc *time.Location) ([]models.Slot, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, loc); err != nil {
		return nil, NewValidationError("invalid date %q: expected YYYY-MM-DD", date)
	}

	// Collect busy intervals (minutes from local midnight) for the requested day.
	type interval struct{ start, end int }
	var taken []interval
	for _, appt := range busy {
		if !appt.Busy() || appt.LocalDate(loc) != date {
			continue
		}
		start := appt.StartMins(loc)
		taken = append(taken, interval{start: start, end: start + appt.DurationMins})
	}

	slots := make([]models.Slot, 0)
	for _, cand := range CandidateSlots(svc) {
		candEnd := cand.StartMins + cand.DurationMins
		available := true
		for _, iv := range taken {
			if Overlaps(cand.StartMins, candEnd, iv.start, iv.end) {
				available = false
				break
			}
		}
		if !available {
			continue
		}
		slots = append(slots, models.Slot{
			Label:        cand.Label,
			StartMins:    cand.StartMins,
			DurationMins: cand.DurationMins,
			Available:    true,
		})
	}
	return slots, nil
}
