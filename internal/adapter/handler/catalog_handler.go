package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/pkg/httputil"
	"github.com/bookline/gateway/internal/pkg/pagination"
)

type CatalogHandler struct {
	catalogSvc CatalogService
}

func NewCatalogHandler(catalogSvc CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) ListBusinesses(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	businesses, err := h.catalogSvc.ListBusinesses(c.Request.Context(), pagination.NewParams(page, perPage))
	if err != nil {
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.BusinessesListResponse{
		Businesses: response.BusinessesFromEntities(businesses),
	})
}

func (h *CatalogHandler) GetBusiness(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		httputil.Error(c, http.StatusBadRequest, "business id is required")
		return
	}

	business, services, err := h.catalogSvc.GetBusiness(c.Request.Context(), publicID)
	if err != nil {
		var upstream *backend.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "business not found")
			return
		}
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.BusinessDetailResponse{
		Business: response.BusinessFromEntity(business),
		Services: response.ServicesFromEntities(services),
	})
}

// UnavailableTimes never hard-fails toward the caller: any upstream trouble
// degrades to an empty list so slot pickers keep rendering.
func (h *CatalogHandler) UnavailableTimes(c *gin.Context) {
	serviceID := c.Param("id")
	date := c.Query("date")

	times, err := h.catalogSvc.UnavailableTimes(c.Request.Context(), serviceID, date)
	if err != nil {
		times = []string{}
	}

	httputil.OK(c, response.UnavailableTimesResponse{Times: times})
}
