package handlers

import (
	"errors"
	"net/http"

	serviceRepo "slotify/database/repository/service"
	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceHandler exposes the provider-facing service catalog. Policy validation
// happens here, at create/update time; malformed policies must never reach the
// availability or booking paths.
type ServiceHandler struct {
	Repo   serviceRepo.ServiceRepository
	Logger *zap.Logger
}

func NewServiceHandler(repo serviceRepo.ServiceRepository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Logger: logger}
}

// CreateService handles POST /api/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}

	scheduling.ApplyPolicyDefaults(&svc)
	if err := scheduling.ValidatePolicy(svc); err != nil {
		h.respondPolicyError(c, err)
		return
	}

	if err := h.Repo.Create(&svc); err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService handles PUT /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")

	scheduling.ApplyPolicyDefaults(&svc)
	if err := scheduling.ValidatePolicy(svc); err != nil {
		h.respondPolicyError(c, err)
		return
	}

	if err := h.Repo.Update(&svc); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", svc.ID)
			return
		}
		h.Logger.Error("failed to update service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		h.Logger.Error("failed to fetch service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// ListProviderServices handles GET /api/providers/:providerID/services.
func (h *ServiceHandler) ListProviderServices(c *gin.Context) {
	services, err := h.Repo.ListByProvider(c.Param("providerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// DeleteService handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		h.Logger.Error("failed to delete service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *ServiceHandler) respondPolicyError(c *gin.Context, err error) {
	var policy *scheduling.PolicyValidationError
	if errors.As(err, &policy) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid service policy", policy.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
