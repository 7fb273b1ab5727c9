package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signalhouse/postwatch/pkg/services"
)

// listPostsHandler handles GET /api/v1/posts with optional account, status,
// page, and page_size query parameters.
func (s *Server) listPostsHandler(c *gin.Context) {
	filter := services.PostFilter{
		Account: c.Query("account"),
		Status:  c.Query("status"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "25"))

	page, err := s.stats.ListPosts(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]PostSummary, 0, len(page.Posts))
	for _, p := range page.Posts {
		out = append(out, toPostSummary(p))
	}
	c.JSON(http.StatusOK, PostListResponse{
		Posts:    out,
		Total:    page.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// getPostHandler handles GET /api/v1/posts/{id}, returning the post with
// its analysis and dispatch log.
func (s *Server) getPostHandler(c *gin.Context) {
	p, err := s.stats.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostDetail(p))
}
