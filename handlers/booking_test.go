package handlers

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
)

// Cache keys must be dated in the handler's injected timezone, not the process
// default: a late-evening UTC appointment belongs to the next day in a zone
// east of UTC.
func TestAvailabilityDateUsesInjectedLocation(t *testing.T) {
	karachi := time.FixedZone("UTC+5", 5*60*60)
	h := NewBookingHandler(nil, nil, nil, karachi, nil)

	appt := &models.Appointment{
		ID:         "appt-1",
		ProviderID: "prov-1",
		StartTime:  time.Date(2030, 5, 20, 21, 30, 0, 0, time.UTC), // 02:30 next day in UTC+5
	}
	assert.Equal(t, "2030-05-21", h.availabilityDate(appt))
}

func TestNewBookingHandlerDefaultsLocation(t *testing.T) {
	h := NewBookingHandler(nil, nil, nil, nil, nil)
	assert.Equal(t, time.Local, h.Location)
}
