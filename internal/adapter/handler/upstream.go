package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/pkg/apperror"
	"github.com/bookline/gateway/internal/pkg/httputil"
)

// relayUpstreamError maps backend call failures onto gateway responses:
// upstream statuses are relayed with their details, deadline hits become 504.
func relayUpstreamError(c *gin.Context, err error) {
	var upstream *backend.UpstreamError
	switch {
	case errors.As(err, &upstream):
		message := upstream.Details
		if message == "" {
			message = http.StatusText(upstream.StatusCode)
		}
		httputil.HandleError(c, apperror.FromStatus(upstream.StatusCode, message))
	case errors.Is(err, domain.ErrGatewayTimeout):
		httputil.HandleError(c, apperror.GatewayTimeout("request timed out"))
	default:
		httputil.InternalError(c)
	}
}
