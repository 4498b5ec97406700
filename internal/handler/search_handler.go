package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legibrief/internal/domain"
	"legibrief/internal/service"
)

// SearchHandler handles bill search requests.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(c *gin.Context) {
	var query domain.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
