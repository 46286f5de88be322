// Dataset HTTP handlers.
//
//   - GET  /dataset              (installed dataset info)
//   - POST /dataset/reload       (reload from the remote endpoint, admin)
//   - PUT  /dataset              (replace with an uploaded document, admin)
//   - GET  /directory/{kind}     (page through one collection)
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-discovery-backend/internal/dataset"
	"github.com/tbourn/go-discovery-backend/internal/services"
	"github.com/tbourn/go-discovery-backend/internal/utils"
)

// ReplaceDatasetResponse reports the installed dataset and what the decoder
// had to coerce or skip to install it.
type ReplaceDatasetResponse struct {
	Dataset dataset.Info   `json:"dataset"`
	Report  dataset.Report `json:"report"`
}

// GetDataset godoc
// @ID          getDataset
// @Summary     Installed dataset info
// @Description Where the installed dataset came from (remote, fallback or manual),
// @Description per-collection counts and when it was installed.
// @Tags        Dataset
// @Produce     json
// @Success     200  {object}  dataset.Info
// @Router      /dataset [get]
func (h *Handlers) GetDataset(c *gin.Context) {
	ok(c, http.StatusOK, h.dataSvc.Info())
}

// ReloadDataset godoc
// @ID          reloadDataset
// @Summary     Reload the dataset
// @Description Fetches the remote dataset again, falling back to the built-in
// @Description dataset on failure. force=true bypasses the response cache.
// @Tags        Dataset
// @Produce     json
// @Security    AdminToken
//
// @Param       force  query  bool  false "Bypass the remote response cache"
//
// @Success     200  {object}  dataset.Info
// @Failure     400  {object}  handlers.ErrorResponse  "Bad force flag"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin endpoints disabled"
// @Router      /dataset/reload [post]
func (h *Handlers) ReloadDataset(c *gin.Context) {
	force := false
	if raw := strings.TrimSpace(c.Query("force")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeInvalidFlag, "force must be true or false")
			return
		}
		force = v
	}
	ok(c, http.StatusOK, h.dataSvc.Reload(c.Request.Context(), force))
}

// ReplaceDataset godoc
// @ID          replaceDataset
// @Summary     Replace the dataset
// @Description Installs the uploaded document using the same rules as remote
// @Description loads: malformed collections become empty and malformed records
// @Description are skipped. The document itself must be a JSON object.
// @Tags        Dataset
// @Accept      json
// @Produce     json
// @Security    AdminToken
//
// @Param       body  body  object  true  "Dataset document {faculty, papers, patents, projects}"
//
// @Success     200  {object}  handlers.ReplaceDatasetResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Not a JSON object"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid admin token"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin endpoints disabled"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Router      /dataset [put]
func (h *Handlers) ReplaceDataset(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "dataset body too large")
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read body")
		return
	}

	info, rep, err := h.dataSvc.Replace(c.Request.Context(), raw)
	switch {
	case err == nil:
		ok(c, http.StatusOK, ReplaceDatasetResponse{Dataset: info, Report: rep})
	case errors.Is(err, services.ErrInvalidDataset):
		fail(c, http.StatusBadRequest, ErrCodeInvalidDataset, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not replace dataset")
	}
}

// Directory godoc
// @ID          directory
// @Summary     Browse a collection
// @Description Lists one collection in dataset order. kind accepts singular or
// @Description plural names (paper, papers).
// @Tags        Dataset
// @Produce     json
//
// @Param       kind       path   string  true  "Collection"      Enums(faculty, papers, patents, projects)
// @Param       page       query  int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  services.DirectoryPage
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown collection"
// @Router      /directory/{kind} [get]
func (h *Handlers) Directory(c *gin.Context) {
	pg, err := h.dataSvc.Directory(c.Param("kind"),
		utils.AtoiDefault(c.Query("page"), 1),
		utils.AtoiDefault(c.Query("page_size"), 0),
	)
	if err != nil {
		if errors.Is(err, services.ErrUnknownKind) {
			fail(c, http.StatusNotFound, ErrCodeUnknownType, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list collection")
		return
	}
	ok(c, http.StatusOK, pg)
}
