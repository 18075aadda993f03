package handlers

import (
	"net/http"
	"strconv"

	"core/services"

	"github.com/gin-gonic/gin"
)

type SkillHistoryHandler struct {
	historyService *services.SkillHistoryService
}

func NewSkillHistoryHandler(historyService *services.SkillHistoryService) *SkillHistoryHandler {
	return &SkillHistoryHandler{
		historyService: historyService,
	}
}

// GetRecentSnapshots retrieves the most recent skill snapshots
// @Summary Get recent skill snapshots
// @Description Get the N most recent skill snapshots across all players
// @Tags skill-history
// @Produce json
// @Param limit query int false "Number of snapshots to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.SkillHistory
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /skill-history/recent [get]
func (h *SkillHistoryHandler) GetRecentSnapshots(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
		return
	}
	if limit > 100 {
		limit = 100
	}

	history, err := h.historyService.GetRecentSnapshots(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve skill history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
