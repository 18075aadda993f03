package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type SkillRecordHandler struct {
	recordService *services.SkillRecordService
	userService   *services.GameUserService
}

func NewSkillRecordHandler(recordService *services.SkillRecordService, userService *services.GameUserService) *SkillRecordHandler {
	return &SkillRecordHandler{
		recordService: recordService,
		userService:   userService,
	}
}

// IngestSkillRecords ingests a scraped record batch keyed by gitadora id
// @Summary Upload skill records
// @Description Upload a batch of scraped skill records for the player identified by gitadoraId. When called with a JWT the resolved profile is linked to the account. Per-record failures are reported in the errors array; the batch itself still succeeds.
// @Tags skill-records
// @Accept json
// @Produce json
// @Param batch body models.IngestSkillRecordsRequest true "Record batch"
// @Success 200 {object} models.IngestSkillRecordsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /skill-records [post]
func (h *SkillRecordHandler) IngestSkillRecords(c *gin.Context) {
	var req models.IngestSkillRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.ProfileInfo.GitadoraID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "gitadoraId is required"})
		return
	}

	var socialUserID *uint
	if userID, ok := authMiddleware.GetUserID(c); ok {
		socialUserID = &userID
	}

	resolver := services.ByGitadoraID(h.userService, req.ProfileInfo, socialUserID)
	result, err := h.recordService.IngestBatch(resolver, req.Records, req.Version)
	if err != nil {
		respondIngestError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.IngestSkillRecordsResponse{
		Success:    true,
		Created:    result.Created,
		Errors:     result.Errors,
		GameUserID: result.GameUser.ID,
		BatchID:    result.BatchID,
	})
}

// IngestForGameUser ingests a record batch for a known internal game user id
// @Summary Upload skill records for a game user
// @Description Upload a batch of skill records directly against an internal game user id. Admin only.
// @Tags skill-records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Game user ID"
// @Param batch body models.IngestSkillRecordsRequest true "Record batch"
// @Success 200 {object} models.IngestSkillRecordsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users/{id}/skill-records [post]
func (h *SkillRecordHandler) IngestForGameUser(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid game user ID"})
		return
	}

	var req models.IngestSkillRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resolver := services.ByGameUserID(h.userService, uint(id))
	result, err := h.recordService.IngestBatch(resolver, req.Records, req.Version)
	if err != nil {
		respondIngestError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.IngestSkillRecordsResponse{
		Success:    true,
		Created:    result.Created,
		Errors:     result.Errors,
		GameUserID: result.GameUser.ID,
		BatchID:    result.BatchID,
	})
}

func respondIngestError(c *gin.Context, err error) {
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"message": conflictErr.Message,
			"code":    conflictErr.Code,
		})
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// GetSkillRecords lists a game user's stored records
// @Summary Get skill records for a game user
// @Description Get a game user's skill records, newest first, with optional instrument and difficulty filters and pagination
// @Tags skill-records
// @Produce json
// @Param id path int true "Game user ID"
// @Param instrument query string false "Filter by instrument" Enums(GUITAR,BASS,DRUM,OPEN)
// @Param difficulty query string false "Filter by difficulty" Enums(BASIC,ADVANCED,EXTREME,MASTER)
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Records per page (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedSkillRecordsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-users/{id}/skill-records [get]
func (h *SkillRecordHandler) GetSkillRecords(c *gin.Context) {
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

	difficulty := c.Query("difficulty")
	if difficulty != "" && !models.IsValidDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid difficulty parameter"})
		return
	}

	page, pageSize, ok := parsePagination(c, 20)
	if !ok {
		return
	}

	records, err := h.recordService.GetRecordsByGameUser(uint(id), instrument, difficulty, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve skill records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// parsePagination reads page/pageSize query parameters, writing the error
// response itself when they are malformed.
func parsePagination(c *gin.Context, defaultPageSize int) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid page parameter"})
		return 0, 0, false
	}

	pageSizeStr := c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize))
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid pageSize parameter"})
		return 0, 0, false
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return page, pageSize, true
}
