package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type GameUserHandler struct {
	userService    *services.GameUserService
	historyService *services.SkillHistoryService
}

func NewGameUserHandler(userService *services.GameUserService, historyService *services.SkillHistoryService) *GameUserHandler {
	return &GameUserHandler{
		userService:    userService,
		historyService: historyService,
	}
}

// GetGameUser retrieves a game user by ID
// @Summary Get game user by ID
// @Description Get game user profile by internal ID
// @Tags game-users
// @Produce json
// @Param id path int true "Game user ID"
// @Success 200 {object} models.GameUser
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users/{id} [get]
func (h *GameUserHandler) GetGameUser(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid game user ID"})
		return
	}

	user, err := h.userService.GetByID(uint(id))
	if err != nil {
		respondIngestError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAllGameUsers lists game users with pagination
// @Summary List game users
// @Description Get game users ordered by creation date with pagination
// @Tags game-users
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Users per page (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedGameUsersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users [get]
func (h *GameUserHandler) GetAllGameUsers(c *gin.Context) {
	page, pageSize, ok := parsePagination(c, 20)
	if !ok {
		return
	}

	users, err := h.userService.GetAllGameUsers(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve game users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetTopGameUsers ranks players by total skill for one instrument
// @Summary Get top players by total skill
// @Description Get the top N players for an instrument, ranked by their most recent skill snapshot
// @Tags game-users
// @Produce json
// @Param instrument query string true "Instrument" Enums(GUITAR,BASS,DRUM,OPEN)
// @Param limit query int false "Number of players to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.SkillHistory
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users/top [get]
func (h *GameUserHandler) GetTopGameUsers(c *gin.Context) {
	instrument := c.Query("instrument")
	if !models.IsValidInstrument(instrument) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid instrument parameter"})
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
		return
	}
	if limit > 100 {
		limit = 100
	}

	top, err := h.historyService.GetTopByInstrument(instrument, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve top players"})
		return
	}

	c.JSON(http.StatusOK, top)
}

// GetSkillHistory retrieves a game user's skill snapshot trail
// @Summary Get skill history for a game user
// @Description Get a game user's skill snapshots ordered oldest first, optionally filtered by instrument
// @Tags game-users
// @Produce json
// @Param id path int true "Game user ID"
// @Param instrument query string false "Filter by instrument" Enums(GUITAR,BASS,DRUM,OPEN)
// @Success 200 {array} models.SkillHistory
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users/{id}/skill-history [get]
func (h *GameUserHandler) GetSkillHistory(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid game user ID"})
		return
	}

	if _, err := h.userService.GetByID(uint(id)); err != nil {
		respondIngestError(c, err)
		return
	}

	instrument := c.Query("instrument")
	if instrument != "" && !models.IsValidInstrument(instrument) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid instrument parameter"})
		return
	}

	history, err := h.historyService.GetHistoryByGameUser(uint(id), instrument)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve skill history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
