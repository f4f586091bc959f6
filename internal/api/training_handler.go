package api

import (
	"errors"
	"net/http"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/service"
	"gymadmin/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// TrainingHandler holds the training service dependency.
type TrainingHandler struct {
	trainingService service.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// --- DTOs ---

type CreateExerciseRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`    // Optional MachineType id
	Machine   string `json:"machine"` // Optional Machine id
	Media     string `json:"media" binding:"required"`
	MediaType string `json:"mediaType" binding:"required,oneof=video image"`
}

type UpdateExerciseRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Machine   *string `json:"machine"`
	Media     *string `json:"media"`
	MediaType *string `json:"mediaType"`
}

type CreateRoutineRequest struct {
	Day      string `json:"day" binding:"required"`
	User     string `json:"user" binding:"required"`
	Exercise string `json:"exercise" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

type UpdateRoutineRequest struct {
	Day      *string `json:"day"`
	User     *string `json:"user"`
	Exercise *string `json:"exercise"`
	Time     *string `json:"time"`
	Quantity *string `json:"quantity"`
}

type MediaUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// --- Exercise handlers ---

func (h *TrainingHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.trainingService.CreateExercise(
		c.Request.Context(),
		req.Name,
		req.Type,
		req.Machine,
		req.Media,
		domain.MediaType(req.MediaType),
	)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListExercises returns all exercises with optional references resolved and
// presigned media URLs when available.
func (h *TrainingHandler) ListExercises(c *gin.Context) {
	exercises, err := h.trainingService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *TrainingHandler) GetExercise(c *gin.Context) {
	exercise, err := h.trainingService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *TrainingHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.ExercisePatch{
		Name:    req.Name,
		Type:    req.Type,
		Machine: req.Machine,
		Media:   req.Media,
	}
	if req.MediaType != nil {
		mt := domain.MediaType(*req.MediaType)
		patch.MediaType = &mt
	}

	exercise, err := h.trainingService.UpdateExercise(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *TrainingHandler) DeleteExercise(c *gin.Context) {
	if err := h.trainingService.DeleteExercise(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Routine handlers ---

func (h *TrainingHandler) CreateRoutine(c *gin.Context) {
	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	routine, err := h.trainingService.CreateRoutine(c.Request.Context(), req.Day, req.User, req.Exercise, req.Time, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create routine.")
		}
		return
	}
	c.JSON(http.StatusCreated, routine)
}

// ListRoutines returns all routines with the member and exercise chain
// resolved.
func (h *TrainingHandler) ListRoutines(c *gin.Context) {
	routines, err := h.trainingService.ListRoutines(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve routines.")
		return
	}
	c.JSON(http.StatusOK, routines)
}

func (h *TrainingHandler) GetRoutine(c *gin.Context) {
	routine, err := h.trainingService.GetRoutine(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve routine.")
		}
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *TrainingHandler) UpdateRoutine(c *gin.Context) {
	var req UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	routine, err := h.trainingService.UpdateRoutine(c.Request.Context(), c.Param("id"), domain.RoutinePatch{
		Day:      req.Day,
		User:     req.User,
		Exercise: req.Exercise,
		Time:     req.Time,
		Quantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update routine.")
		}
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *TrainingHandler) DeleteRoutine(c *gin.Context) {
	if err := h.trainingService.DeleteRoutine(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete routine.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Media ---

// GenerateMediaUploadURL issues a presigned PUT URL for uploading exercise
// media or a machine type photo.
func (h *TrainingHandler) GenerateMediaUploadURL(c *gin.Context) {
	var req MediaUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ticket, err := h.trainingService.GenerateMediaUploadURL(c.Request.Context(), req.ContentType)
	if err != nil {
		if errors.Is(err, storage.ErrMediaNotConfigured) {
			abortWithError(c, http.StatusNotImplemented, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}
	c.JSON(http.StatusOK, ticket)
}
