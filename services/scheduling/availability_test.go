package scheduling

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyAppt(id string, start time.Time, durationMins int, status string) models.Appointment {
	return models.Appointment{
		ID:           id,
		ProviderID:   "prov-1",
		CustomerID:   "cust-1",
		ServiceID:    "svc-1",
		StartTime:    start,
		DurationMins: durationMins,
		Status:       status,
	}
}

func TestComputeAvailableSlots_EmptyCalendar(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	slots, err := ComputeAvailableSlots(svc, "2030-05-20", nil, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Label)
	assert.Equal(t, "16:30", slots[15].Label)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestComputeAvailableSlots_BusySlotExcluded(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	day := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
	busy := []models.Appointment{
		busyAppt("appt-1", day.Add(10*time.Hour), 30, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 15)

	var labels []string
	for _, s := range slots {
		labels = append(labels, s.Label)
	}
	assert.NotContains(t, labels, "10:00")
	// Adjacent slots do not overlap a 10:00-10:30 booking.
	assert.Contains(t, labels, "09:30")
	assert.Contains(t, labels, "10:30")
}

func TestComputeAvailableSlots_PendingAlsoBlocks(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	day := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
	busy := []models.Appointment{
		busyAppt("appt-1", day.Add(10*time.Hour), 30, models.StatusPending),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, time.UTC)
	require.NoError(t, err)
	assert.Len(t, slots, 15)
}

func TestComputeAvailableSlots_CancelledAndCompletedInvisible(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	day := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
	busy := []models.Appointment{
		busyAppt("appt-1", day.Add(10*time.Hour), 30, models.StatusCancelled),
		busyAppt("appt-2", day.Add(11*time.Hour), 30, models.StatusCompleted),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, time.UTC)
	require.NoError(t, err)
	assert.Len(t, slots, 16)
}

func TestComputeAvailableSlots_OtherDayIgnored(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	otherDay := time.Date(2030, 5, 21, 10, 0, 0, 0, time.UTC)
	busy := []models.Appointment{
		busyAppt("appt-1", otherDay, 30, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, time.UTC)
	require.NoError(t, err)
	assert.Len(t, slots, 16)
}

func TestComputeAvailableSlots_LocalDayResolution(t *testing.T) {
	// 23:30 UTC on the 19th is 04:30 on the 20th in a +05:00 zone.
	loc := time.FixedZone("UTC+5", 5*3600)
	svc := durationService(30, 240, 360, 30) // 04:00-06:00 window
	busy := []models.Appointment{
		busyAppt("appt-1", time.Date(2030, 5, 19, 23, 30, 0, 0, time.UTC), 30, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, loc)
	require.NoError(t, err)
	var labels []string
	for _, s := range slots {
		labels = append(labels, s.Label)
	}
	assert.NotContains(t, labels, "04:30")
	assert.Contains(t, labels, "04:00")
}

func TestComputeAvailableSlots_ShiftProximity(t *testing.T) {
	svc := shiftService(60,
		models.Shift{Label: "Day", StartMins: 600},
		models.Shift{Label: "Night", StartMins: 1200},
	)
	day := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
	// Existing appointment at 10:15 falls inside Day's conflict window.
	busy := []models.Appointment{
		busyAppt("appt-1", day.Add(10*time.Hour+15*time.Minute), 120, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(svc, "2030-05-20", busy, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "Night", slots[0].Label)
	assert.Equal(t, 1200, slots[0].StartMins)
}

func TestComputeAvailableSlots_EmptyWindowIsEmptyNotError(t *testing.T) {
	svc := durationService(90, 540, 600, 30)
	slots, err := ComputeAvailableSlots(svc, "2030-05-20", nil, time.UTC)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_BadDate(t *testing.T) {
	svc := durationService(30, 540, 1020, 30)
	_, err := ComputeAvailableSlots(svc, "20-05-2030", nil, time.UTC)
	var invalid *ValidationError
	assert.ErrorAs(t, err, &invalid)
}
