package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/pkg/httputil"
	"github.com/bookline/gateway/internal/usecase/media"
)

const maxUploadSize = 10 << 20 // 10MB

type MediaHandler struct {
	mediaSvc MediaService
}

func NewMediaHandler(mediaSvc MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TYPE", "only jpeg and png images are allowed")
		return
	}

	result, err := h.mediaSvc.Upload(c.Request.Context(), media.UploadInput{
		File:        file,
		Filename:    header.Filename,
		ContentType: contentType,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.UploadResultFromResult(result))
}

func (h *MediaHandler) Fetch(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		httputil.Error(c, http.StatusBadRequest, "key is required")
		return
	}

	body, contentType, err := h.mediaSvc.Fetch(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "object not found")
			return
		}
		httputil.InternalError(c)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, body)
}

func isAllowedImageType(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png" || contentType == "image/jpg"
}
