package scheduling

import (
	"testing"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationService(dur, windowStart, windowEnd, step int) models.Service {
	return models.Service{
		ID:         "svc-1",
		ProviderID: "prov-1",
		Name:       "Haircut",
		PolicyType: models.PolicyDuration,
		Duration: &models.DurationPolicy{
			ServiceDurationMins: dur,
			WindowStartMins:     windowStart,
			WindowEndMins:       windowEnd,
			StepMins:            step,
		},
	}
}

func shiftService(buffer int, shifts ...models.Shift) models.Service {
	return models.Service{
		ID:         "svc-2",
		ProviderID: "prov-1",
		Name:       "Security Guard",
		PolicyType: models.PolicyShift,
		Shift: &models.ShiftPolicy{
			Shifts:     shifts,
			BufferMins: buffer,
		},
	}
}

func TestApplyPolicyDefaults(t *testing.T) {
	svc := durationService(30, 540, 1020, 0)
	ApplyPolicyDefaults(&svc)
	assert.Equal(t, models.DefaultStepMins, svc.Duration.StepMins)

	sh := shiftService(0, models.Shift{Label: "Day", StartMins: 600})
	ApplyPolicyDefaults(&sh)
	assert.Equal(t, models.DefaultBufferMins, sh.Shift.BufferMins)
}

func TestValidatePolicy_Duration(t *testing.T) {
	require.NoError(t, ValidatePolicy(durationService(30, 540, 1020, 30)))

	cases := map[string]models.Service{
		"zero duration":     durationService(0, 540, 1020, 30),
		"negative step":     durationService(30, 540, 1020, -5),
		"zero step":         durationService(30, 540, 1020, 0),
		"inverted window":   durationService(30, 1020, 540, 30),
		"collapsed window":  durationService(30, 540, 540, 30),
		"window past day":   durationService(30, 540, 1500, 30),
		"negative window":   durationService(30, -30, 540, 30),
		"missing variant":   {PolicyType: models.PolicyDuration},
		"unknown type":      {PolicyType: "recurring"},
		"empty type":        {},
	}
	for name, svc := range cases {
		err := ValidatePolicy(svc)
		require.Error(t, err, name)
		var policyErr *PolicyValidationError
		assert.ErrorAs(t, err, &policyErr, name)
	}
}

func TestValidatePolicy_Shift(t *testing.T) {
	require.NoError(t, ValidatePolicy(shiftService(60,
		models.Shift{Label: "Day", StartMins: 600},
		models.Shift{Label: "Night", StartMins: 1200},
	)))

	cases := map[string]models.Service{
		"no shifts":       shiftService(60),
		"zero buffer":     shiftService(0, models.Shift{Label: "Day", StartMins: 600}),
		"unlabeled shift": shiftService(60, models.Shift{StartMins: 600}),
		"start past day":  shiftService(60, models.Shift{Label: "Day", StartMins: 1441}),
		"missing variant": {PolicyType: models.PolicyShift},
	}
	for name, svc := range cases {
		err := ValidatePolicy(svc)
		require.Error(t, err, name)
		var policyErr *PolicyValidationError
		assert.ErrorAs(t, err, &policyErr, name)
	}
}

func TestValidatePolicy_RejectsMixedVariants(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	svc.Shift = &models.ShiftPolicy{Shifts: []models.Shift{{Label: "Day", StartMins: 600}}, BufferMins: 60}
	assert.Error(t, ValidatePolicy(svc))
}

func TestCandidateSlots_DurationGrid(t *testing.T) {
	// 09:00-17:00, 30 min service on a 30 min grid: 16 slots, 09:00 through 16:30.
	candidates := CandidateSlots(durationService(30, 540, 1020, 30))
	require.Len(t, candidates, 16)
	assert.Equal(t, models.Candidate{Label: "09:00", StartMins: 540, DurationMins: 30}, candidates[0])
	assert.Equal(t, models.Candidate{Label: "16:30", StartMins: 990, DurationMins: 30}, candidates[15])
}

func TestCandidateSlots_SlotTouchingWindowEndIncluded(t *testing.T) {
	// 09:00-10:00 with 60 min duration: exactly one slot, ending flush with the window.
	candidates := CandidateSlots(durationService(60, 540, 600, 30))
	require.Len(t, candidates, 1)
	assert.Equal(t, 540, candidates[0].StartMins)
}

func TestCandidateSlots_WindowSmallerThanDuration(t *testing.T) {
	assert.Empty(t, CandidateSlots(durationService(90, 540, 600, 30)))
}

func TestCandidateSlots_ShiftOrderAndBuffer(t *testing.T) {
	// Configured order is preserved even when it isn't alphabetical or chronological.
	candidates := CandidateSlots(shiftService(60,
		models.Shift{Label: "Night", StartMins: 1200},
		models.Shift{Label: "Day", StartMins: 600},
	))
	require.Len(t, candidates, 2)
	assert.Equal(t, "Night", candidates[0].Label)
	assert.Equal(t, "Day", candidates[1].Label)
	// Conflict window is buffer minutes on each side of the start.
	assert.Equal(t, 120, candidates[0].DurationMins)
}

func TestMinuteLabel(t *testing.T) {
	assert.Equal(t, "00:00", MinuteLabel(0))
	assert.Equal(t, "09:05", MinuteLabel(545))
	assert.Equal(t, "16:30", MinuteLabel(990))
}
