package scheduling

import (
	"fmt"

	"slotify/models"
)

// ApplyPolicyDefaults fills in the grid step and shift buffer when the provider
// left them unset. Called before validation on service create/update.
func ApplyPolicyDefaults(svc *models.Service) {
	switch svc.PolicyType {
	case models.PolicyDuration:
		if svc.Duration != nil && svc.Duration.StepMins == 0 {
			svc.Duration.StepMins = models.DefaultStepMins
		}
	case models.PolicyShift:
		if svc.Shift != nil && svc.Shift.BufferMins == 0 {
			svc.Shift.BufferMins = models.DefaultBufferMins
		}
	}
}

// ValidatePolicy checks a service's booking policy for structural errors. It must
// run at service create/update time; slot generation assumes validated input.
func ValidatePolicy(svc models.Service) error {
	switch svc.PolicyType {
	case models.PolicyDuration:
		if svc.Duration == nil {
			return NewPolicyValidationError("duration policy data missing")
		}
		if svc.Shift != nil {
			return NewPolicyValidationError("duration policy must not carry shift data")
		}
		p := svc.Duration
		if p.ServiceDurationMins <= 0 {
			return NewPolicyValidationError("service duration must be positive, got %d", p.ServiceDurationMins)
		}
		if p.StepMins <= 0 {
			return NewPolicyValidationError("step must be positive, got %d", p.StepMins)
		}
		if p.WindowStartMins < 0 || p.WindowEndMins > 24*60 {
			return NewPolicyValidationError("window [%d, %d] outside the day", p.WindowStartMins, p.WindowEndMins)
		}
		if p.WindowStartMins >= p.WindowEndMins {
			return NewPolicyValidationError("window start %d must precede window end %d", p.WindowStartMins, p.WindowEndMins)
		}
		return nil

	case models.PolicyShift:
		if svc.Shift == nil {
			return NewPolicyValidationError("shift policy data missing")
		}
		if svc.Duration != nil {
			return NewPolicyValidationError("shift policy must not carry duration data")
		}
		p := svc.Shift
		if len(p.Shifts) == 0 {
			return NewPolicyValidationError("shift policy requires at least one shift")
		}
		if p.BufferMins <= 0 {
			return NewPolicyValidationError("shift buffer must be positive, got %d", p.BufferMins)
		}
		for i, s := range p.Shifts {
			if s.Label == "" {
				return NewPolicyValidationError("shift %d has no label", i)
			}
			if s.StartMins < 0 || s.StartMins >= 24*60 {
				return NewPolicyValidationError("shift %q starts outside the day: %d", s.Label, s.StartMins)
			}
		}
		return nil

	default:
		return NewPolicyValidationError("unknown policy type %q", svc.PolicyType)
	}
}

// CandidateSlots generates the ordered candidate slots for a service, before any
// conflict filtering. Duration-based policies walk the stepped grid; a slot exactly
// touching the window end is included. Shift-based policies emit one candidate per
// configured shift, in configured order, whose duration is the shift's conflict
// window (buffer minutes on each side of the start).
func CandidateSlots(svc models.Service) []models.Candidate {
	switch svc.PolicyType {
	case models.PolicyDuration:
		p := svc.Duration
		starts := StepRange(p.WindowStartMins, p.WindowEndMins-p.ServiceDurationMins, p.StepMins)
		candidates := make([]models.Candidate, 0, len(starts))
		for _, t := range starts {
			candidates = append(candidates, models.Candidate{
				Label:        MinuteLabel(t),
				StartMins:    t,
				DurationMins: p.ServiceDurationMins,
			})
		}
		return candidates

	case models.PolicyShift:
		p := svc.Shift
		candidates := make([]models.Candidate, 0, len(p.Shifts))
		for _, s := range p.Shifts {
			candidates = append(candidates, models.Candidate{
				Label:        s.Label,
				StartMins:    s.StartMins,
				DurationMins: 2 * p.BufferMins,
			})
		}
		return candidates
	}
	return nil
}

// MinuteLabel formats minutes-from-midnight as a 24h "HH:MM" label.
func MinuteLabel(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
