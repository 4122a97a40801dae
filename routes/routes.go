package routes

import (
	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the scheduling engine.
func RegisterRoutes(r *gin.Engine, booking *handlers.BookingHandler, services *handlers.ServiceHandler) {
	api := r.Group("/api")

	providers := api.Group("/providers")
	{
		// Availability is readable without auth; the booking commit re-checks anyway.
		providers.GET("/:providerID/slots", booking.GetAvailableSlots)
		providers.GET("/:providerID/services", services.ListProviderServices)
		providers.GET("/:providerID/appointments", middleware.JWTAuthMiddleware(), booking.ListProviderAppointments)
	}

	customers := api.Group("/customers")
	customers.Use(middleware.JWTAuthMiddleware())
	{
		customers.GET("/:customerID/appointments", booking.ListCustomerAppointments)
	}

	appointments := api.Group("/appointments")
	appointments.Use(middleware.JWTAuthMiddleware())
	{
		appointments.POST("", booking.BookSlot)
		appointments.PUT("/:id/status", booking.UpdateAppointmentStatus)
	}

	catalog := api.Group("/services")
	{
		catalog.GET("/:id", services.GetService)

		protected := catalog.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		{
			protected.POST("", services.CreateService)
			protected.PUT("/:id", services.UpdateService)
			protected.DELETE("/:id", services.DeleteService)
		}
	}
}
