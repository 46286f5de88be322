// Search HTTP handlers.
//
//   - GET /search        (keyword relevance search)
//   - GET /search/logs   (paginated search audit log, admin)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-discovery-backend/internal/domain"
	"github.com/tbourn/go-discovery-backend/internal/http/middleware"
	"github.com/tbourn/go-discovery-backend/internal/services"
	"github.com/tbourn/go-discovery-backend/internal/utils"
)

// SearchLogsResponse contains a page of audit rows and pagination metadata.
type SearchLogsResponse struct {
	Logs       []domain.SearchLog `json:"logs"`
	Pagination Pagination         `json:"pagination"`
}

// splitTypes flattens repeated and comma-separated ?type= values.
func splitTypes(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Search godoc
// @ID          search
// @Summary     Keyword relevance search
// @Description Scores every faculty member, paper, patent and project against the
// @Description query terms and returns matches ranked by confidence (0-100), each
// @Description with a short justification. A blank query returns no results.
// @Tags        Search
// @Produce     json
//
// @Param       q      query  string  false "Free-text query"                         example(machine learning)
// @Param       type   query  string  false "Comma-separated record types to keep"    example(faculty,paper)
// @Param       limit  query  int     false "Maximum results (capped by the server)"  minimum(0)
//
// @Success     200  {object}  services.SearchResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Query too long, unknown type or bad limit"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /search [get]
func (h *Handlers) Search(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fail(c, http.StatusBadRequest, ErrCodeInvalidLimit, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	resp, err := h.searchSvc.Search(c.Request.Context(), services.Query{
		Text:      c.Query("q"),
		Kinds:     splitTypes(c.QueryArray("type")),
		Limit:     limit,
		RequestID: middleware.RequestIDFrom(c),
	})
	switch {
	case err == nil:
		ok(c, http.StatusOK, resp)
	case errors.Is(err, services.ErrQueryTooLong):
		fail(c, http.StatusBadRequest, ErrCodeQueryTooLong, err.Error())
	case errors.Is(err, services.ErrUnknownKind):
		fail(c, http.StatusBadRequest, ErrCodeUnknownType,
			fmt.Sprintf("%s (valid: faculty, paper, patent, project)", err.Error()))
	default:
		fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, "search failed")
	}
}

// ListSearchLogs godoc
// @ID          listSearchLogs
// @Summary     List recent searches
// @Description Returns the search audit log, newest first.
// @Tags        Search
// @Produce     json
// @Security    AdminToken
//
// @Param       page       query  int  false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Param       If-None-Match  header  string  false "ETag from a previous response"
//
// @Success     200  {object}  handlers.SearchLogsResponse
// @Success     304  "Not modified"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin endpoints disabled"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /search/logs [get]
func (h *Handlers) ListSearchLogs(c *gin.Context) {
	page, pageSize, _ := utils.Page(
		utils.AtoiDefault(c.Query("page"), 1),
		utils.AtoiDefault(c.Query("page_size"), 0),
		20, 100,
	)
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if count, latest, err := h.searchSvc.RecentStats(ctx); err == nil {
		var ts int64
		if latest != nil {
			ts = latest.UnixNano()
		}
		etag := fmt.Sprintf(`W/"search-logs:%d:%d:%d:%d"`, count, ts, page, pageSize)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, total, err := h.searchSvc.Recent(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list searches")
		return
	}
	ok(c, http.StatusOK, SearchLogsResponse{
		Logs:       items,
		Pagination: newPagination(page, pageSize, total),
	})
}
