package api

import (
	"errors"
	"net/http"

	"salon-site/internal/domain/site"
	reqdto "salon-site/internal/handler/dto/request"
	resdto "salon-site/internal/handler/dto/response"
	"salon-site/internal/handler/httperr"
	"salon-site/internal/usecase/commands"
	"salon-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteCommands commands.SiteCommands
	siteQueries  queries.SiteQueries
}

func NewSiteHandler(siteCommands commands.SiteCommands, siteQueries queries.SiteQueries) *SiteHandler {
	return &SiteHandler{
		siteCommands: siteCommands,
		siteQueries:  siteQueries,
	}
}

// @Summary Provision a site
// @Description Create a tenant site from the setup form
// @Tags sites
// @Accept json
// @Produce json
// @Param X-Setup-Key header string false "Setup access key"
// @Param request body reqdto.CreateSiteRequest true "Site request"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/sites [post]
func (h *SiteHandler) Create(c *gin.Context) {
	var req reqdto.CreateSiteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			httperr.CodeValidationError, "Invalid request format", bindingFieldErrors(bindErr)...)
		return
	}

	result, err := h.siteCommands.CreateSite(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, site.ErrEmptySlug):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, "slug is required",
				httperr.FieldError{Field: "slug", Message: "required"})
		case errors.Is(err, site.ErrInvalidSlug):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, "slug must be lowercase alphanumerics and hyphens",
				httperr.FieldError{Field: "slug", Message: "invalid format"})
		case errors.Is(err, commands.ErrSlugAlreadyExists):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeSlugExists, "slug already exists",
				httperr.FieldError{Field: "slug", Message: "already exists"})
		default:
			abortWithStoreError(c, err)
		}
		return
	}

	c.Header("Location", "/api/sites/"+result.ID.String())
	httperr.JSON(c, http.StatusCreated, resdto.CreatedResponse{ID: result.ID})
}

// @Summary Get site by slug
// @Tags sites
// @Produce json
// @Param slug path string true "Site slug"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sites/{slug} [get]
func (h *SiteHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.siteQueries.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, queries.ErrSiteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Site not found")
			return
		}
		abortWithStoreError(c, err)
		return
	}

	httperr.JSON(c, http.StatusOK, resdto.FromSiteView(view))
}
