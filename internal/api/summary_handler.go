package api

import (
	"net/http"

	"gymadmin/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler holds the summary service dependency.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary returns the activity overview counters.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute summary.")
		return
	}
	c.JSON(http.StatusOK, summary)
}
