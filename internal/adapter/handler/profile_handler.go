package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler/dto/request"
	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
	"github.com/bookline/gateway/internal/pkg/httputil"
)

type ProfileHandler struct {
	profileSvc ProfileService
}

func NewProfileHandler(profileSvc ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Update godoc
//
//	@Summary		Update profile
//	@Description	Forward a partial profile update to the identity service
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	response.ProfileUpdateResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if !req.HasChanges() {
		httputil.Error(c, http.StatusBadRequest, "at least one field is required")
		return
	}

	result, err := h.profileSvc.UpdateProfile(c.Request.Context(), middleware.GetAccessToken(c), backend.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.ProfileUpdateFromResult(result))
}
