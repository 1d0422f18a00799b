package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/usecase/imgsign"
)

type ImgproxyHandler struct {
	signSvc ImageSignService
	logger  *zap.Logger
}

func NewImgproxyHandler(signSvc ImageSignService, logger *zap.Logger) *ImgproxyHandler {
	return &ImgproxyHandler{signSvc: signSvc, logger: logger}
}

// Sign godoc
//
//	@Summary		Sign an image proxy URL
//	@Description	Build and HMAC-sign an image transformation URL
//	@Tags			imgproxy
//	@Produce		json
//	@Param			src		query		string	true	"Source image URL"
//	@Param			width	query		int		true	"Target width in pixels"
//	@Param			height	query		int		true	"Target height in pixels"
//	@Param			format	query		string	true	"Output format (avif, webp, jpeg, png)"
//	@Param			crop	query		bool	false	"Crop instead of fit"
//	@Param			gravity	query		string	false	"Crop gravity"
//	@Param			quality	query		int		false	"Output quality 1-100"
//	@Success		200		{object}	response.SignedURLResponse
//	@Failure		400		{string}	string	"Invalid request"
//	@Router			/signed-imgproxy [get]
func (h *ImgproxyHandler) Sign(c *gin.Context) {
	req, warnings, err := imgsign.ParseRequest(c.Request.URL.Query())

	// Callers of this endpoint expect plain-text failures, not the JSON
	// error envelope the rest of the API uses.
	if err != nil {
		var missing *imgsign.MissingParamsError
		switch {
		case errors.As(err, &missing):
			c.String(http.StatusBadRequest, "Missing required parameters: src, width, height, format")
		case errors.Is(err, imgsign.ErrInvalidFormat):
			c.String(http.StatusBadRequest, "Invalid format. Supported formats: avif, webp, jpeg, png")
		case errors.Is(err, imgsign.ErrInvalidGravity):
			c.String(http.StatusBadRequest, "Invalid gravity value")
		default:
			c.String(http.StatusInternalServerError, "Failed to generate signed URL")
		}
		return
	}

	for _, w := range warnings {
		h.logger.Warn("imgproxy signing request anomaly",
			zap.String("src", req.SourceURL),
			zap.String("warning", w),
		)
	}

	c.JSON(http.StatusOK, response.SignedURLResponse{URL: h.signSvc.SignedURL(req)})
}
