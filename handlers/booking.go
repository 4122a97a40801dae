package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"slotify/config"
	appointmentRepo "slotify/database/repository/appointment"
	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler exposes the scheduling engine over HTTP. Location must be the
// same provider-local timezone the engine was constructed with: cache keys are
// dated in it, and a mismatch would invalidate the wrong day's entries.
type BookingHandler struct {
	Engine       scheduling.SchedulingEngine
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
	Location     *time.Location
	Logger       *zap.Logger
}

func NewBookingHandler(engine scheduling.SchedulingEngine, appointments appointmentRepo.AppointmentRepository, cache *redis.Client, loc *time.Location, logger *zap.Logger) *BookingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookingHandler{
		Engine:       engine,
		Appointments: appointments,
		Cache:        cache,
		Location:     loc,
		Logger:       logger,
	}
}

// GetAvailableSlots handles GET /api/providers/:providerID/slots?serviceId=&date=.
// Responses are cached briefly per provider/service/date; commits and
// cancellations invalidate the provider's entries for the affected day.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	providerID := c.Param("providerID")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "serviceId and date query parameters are required")
		return
	}

	ctx := context.Background()
	cacheKey := utils.AvailabilityCacheKey(providerID, serviceID, date)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.Slot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				c.JSON(http.StatusOK, gin.H{"slots": slots})
				return
			}
		}
	}

	slots, err := h.Engine.GetAvailableSlots(providerID, serviceID, date)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(slots); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
			if err := h.Cache.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				h.Logger.Warn("failed to cache availability", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	// An empty list means "no slots available", never an error.
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// BookSlot handles POST /api/appointments.
func (h *BookingHandler) BookSlot(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Engine.BookSlot(req)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}

	h.invalidateAvailability(appt)
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// UpdateAppointmentStatus handles PUT /api/appointments/:id/status.
func (h *BookingHandler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Engine.UpdateAppointmentStatus(appointmentID, input.Status)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}

	// Leaving the busy set frees the slot for other customers.
	if input.Status == models.StatusCancelled || input.Status == models.StatusCompleted {
		h.invalidateAvailability(appt)
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// ListProviderAppointments handles GET /api/providers/:providerID/appointments.
func (h *BookingHandler) ListProviderAppointments(c *gin.Context) {
	appts, err := h.Appointments.ListByProvider(c.Param("providerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListCustomerAppointments handles GET /api/customers/:customerID/appointments.
func (h *BookingHandler) ListCustomerAppointments(c *gin.Context) {
	appts, err := h.Appointments.ListByCustomer(c.Param("customerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// availabilityDate resolves the calendar day an appointment's cache entries are
// keyed under.
func (h *BookingHandler) availabilityDate(appt *models.Appointment) string {
	return appt.LocalDate(h.Location)
}

func (h *BookingHandler) invalidateAvailability(appt *models.Appointment) {
	if h.Cache == nil || appt == nil {
		return
	}
	utils.InvalidateAvailability(context.Background(), h.Cache, appt.ProviderID, h.availabilityDate(appt))
}

func (h *BookingHandler) respondSchedulingError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	var invalid *scheduling.ValidationError
	var policy *scheduling.PolicyValidationError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":                      "slot no longer available",
			"conflicting_appointment_id": conflict.ConflictingAppointmentID,
		})
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", invalid.Message)
	case errors.As(err, &policy):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid service policy", policy.Message)
	default:
		h.Logger.Error("scheduling operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "please try again later")
	}
}
