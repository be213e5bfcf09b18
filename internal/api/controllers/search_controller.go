package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soko/internal/services"
	"soko/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// Search runs the cross-entity name lookup.
func (s *SearchController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		fail(c, utils.NewAppError(http.StatusBadRequest, "Please provide a search term"))
		return
	}

	hits, err := s.searchService.SearchAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondList(c, len(hits), hits)
}
