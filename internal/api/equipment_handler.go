package api

import (
	"errors"
	"net/http"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler holds the equipment service dependency.
type EquipmentHandler struct {
	equipmentService service.EquipmentService
}

// NewEquipmentHandler creates a new EquipmentHandler.
func NewEquipmentHandler(equipmentService service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

// --- DTOs ---

type CreateMachineTypeRequest struct {
	Type  string `json:"type" binding:"required"`
	Photo string `json:"photo"`
}

type UpdateMachineTypeRequest struct {
	Type  *string `json:"type"`
	Photo *string `json:"photo"`
}

type CreateMachineRequest struct {
	Code       string `json:"code" binding:"required"`
	Type       string `json:"type" binding:"required"` // MachineType id
	RoomNumber string `json:"roomNumber" binding:"required"`
}

type UpdateMachineRequest struct {
	Code       *string `json:"code"`
	Type       *string `json:"type"`
	RoomNumber *string `json:"roomNumber"`
}

type CreateMaintenanceRequest struct {
	MachineID   string `json:"machineId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateMaintenanceRequest struct {
	MachineID   *string `json:"machineId"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// --- Machine type handlers ---

func (h *EquipmentHandler) CreateMachineType(c *gin.Context) {
	var req CreateMachineTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	t, err := h.equipmentService.CreateMachineType(c.Request.Context(), req.Type, req.Photo)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create machine type.")
		}
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *EquipmentHandler) ListMachineTypes(c *gin.Context) {
	types, err := h.equipmentService.ListMachineTypes(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve machine types.")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *EquipmentHandler) GetMachineType(c *gin.Context) {
	t, err := h.equipmentService.GetMachineType(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMachineTypeNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve machine type.")
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *EquipmentHandler) UpdateMachineType(c *gin.Context) {
	var req UpdateMachineTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	t, err := h.equipmentService.UpdateMachineType(c.Request.Context(), c.Param("id"), domain.MachineTypePatch{
		Type:  req.Type,
		Photo: req.Photo,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMachineTypeNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update machine type.")
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *EquipmentHandler) DeleteMachineType(c *gin.Context) {
	if err := h.equipmentService.DeleteMachineType(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete machine type.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Machine handlers ---

func (h *EquipmentHandler) CreateMachine(c *gin.Context) {
	var req CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	m, err := h.equipmentService.CreateMachine(c.Request.Context(), req.Code, req.Type, req.RoomNumber)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create machine.")
		}
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMachines returns all machines with their type labels resolved.
func (h *EquipmentHandler) ListMachines(c *gin.Context) {
	machines, err := h.equipmentService.ListMachines(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve machines.")
		return
	}
	c.JSON(http.StatusOK, machines)
}

func (h *EquipmentHandler) GetMachine(c *gin.Context) {
	m, err := h.equipmentService.GetMachine(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMachineNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve machine.")
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *EquipmentHandler) UpdateMachine(c *gin.Context) {
	var req UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	m, err := h.equipmentService.UpdateMachine(c.Request.Context(), c.Param("id"), domain.MachinePatch{
		Code:       req.Code,
		Type:       req.Type,
		RoomNumber: req.RoomNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMachineNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update machine.")
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *EquipmentHandler) DeleteMachine(c *gin.Context) {
	if err := h.equipmentService.DeleteMachine(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete machine.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Maintenance handlers ---

func (h *EquipmentHandler) CreateMaintenance(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	m, err := h.equipmentService.CreateMaintenance(c.Request.Context(), req.MachineID, req.Date, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create maintenance record.")
		}
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *EquipmentHandler) GetMaintenance(c *gin.Context) {
	m, err := h.equipmentService.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance record.")
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListMaintenances returns all maintenance records joined with machine
// details.
func (h *EquipmentHandler) ListMaintenances(c *gin.Context) {
	records, err := h.equipmentService.ListMaintenances(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance records.")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *EquipmentHandler) UpdateMaintenance(c *gin.Context) {
	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	m, err := h.equipmentService.UpdateMaintenance(c.Request.Context(), c.Param("id"), domain.MaintenancePatch{
		MachineID:   req.MachineID,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update maintenance record.")
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *EquipmentHandler) DeleteMaintenance(c *gin.Context) {
	if err := h.equipmentService.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete maintenance record.")
		return
	}
	c.Status(http.StatusNoContent)
}
