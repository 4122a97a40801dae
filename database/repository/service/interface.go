package serviceRepo

import (
	"errors"

	"slotify/models"
)

// ErrNotFound is returned when no service matches the requested ID. Callers use
// it to tell a missing document apart from a store failure.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines data access for the service catalog. The scheduling
// engine only reads; create/update come from the provider-facing CRUD surface,
// which validates policies before anything is persisted here.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	GetByID(serviceID string) (*models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	Delete(serviceID string) error
}
