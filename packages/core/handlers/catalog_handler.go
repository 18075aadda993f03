package handlers

import (
	"net/http"

	"core/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only song and version catalogs the
// bookmarklet and frontend consult.
type CatalogHandler struct {
	songService    *services.SongService
	versionService *services.VersionService
}

func NewCatalogHandler(songService *services.SongService, versionService *services.VersionService) *CatalogHandler {
	return &CatalogHandler{
		songService:    songService,
		versionService: versionService,
	}
}

// GetSongs lists the song catalog
// @Summary List songs
// @Description Get the song catalog ordered by title with pagination
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Songs per page (default: 50, max: 100)"
// @Success 200 {object} models.PaginatedSongsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /songs [get]
func (h *CatalogHandler) GetSongs(c *gin.Context) {
	page, pageSize, ok := parsePagination(c, 50)
	if !ok {
		return
	}

	songs, err := h.songService.GetAllSongs(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve songs"})
		return
	}

	c.JSON(http.StatusOK, songs)
}

// GetVersions lists the game versions
// @Summary List game versions
// @Description Get all known GITADORA releases, oldest first
// @Tags catalog
// @Produce json
// @Success 200 {array} models.GameVersion
// @Failure 500 {object} map[string]string
// @Router /versions [get]
func (h *CatalogHandler) GetVersions(c *gin.Context) {
	versions, err := h.versionService.GetAllVersions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to retrieve versions"})
		return
	}

	c.JSON(http.StatusOK, versions)
}
