package handler_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/mocks"
	"github.com/bookline/gateway/internal/usecase/media"
)

func newMediaRouter(h *handler.MediaHandler) *gin.Engine {
	router := setupRouter()
	router.GET("/media", h.Fetch)
	router.POST("/media", h.Upload)
	return router
}

func multipartImage(t *testing.T, filename, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestMediaHandler_Upload(t *testing.T) {
	t.Run("uploads jpeg", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mediaSvc := mocks.NewMockMediaService(ctrl)
		router := newMediaRouter(handler.NewMediaHandler(mediaSvc))

		mediaSvc.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in media.UploadInput) (*media.UploadResult, error) {
				assert.Equal(t, "photo.jpg", in.Filename)
				assert.Equal(t, "image/jpeg", in.ContentType)
				return &media.UploadResult{
					Key:  "uploads/abc.jpg",
					URL:  "https://cdn.example.com/uploads/abc.jpg",
					Size: 16,
				}, nil
			})

		body, contentType := multipartImage(t, "photo.jpg", "image/jpeg")
		req := httptest.NewRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "uploads/abc.jpg")
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newMediaRouter(handler.NewMediaHandler(mocks.NewMockMediaService(ctrl)))

		body, contentType := multipartImage(t, "doc.pdf", "application/pdf")
		req := httptest.NewRequest(http.MethodPost, "/media", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "jpeg and png")
	})

	t.Run("requires file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newMediaRouter(handler.NewMediaHandler(mocks.NewMockMediaService(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/media", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMediaHandler_Fetch(t *testing.T) {
	t.Run("streams object with content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mediaSvc := mocks.NewMockMediaService(ctrl)
		router := newMediaRouter(handler.NewMediaHandler(mediaSvc))

		mediaSvc.EXPECT().
			Fetch(gomock.Any(), "uploads/abc.jpg").
			Return(io.NopCloser(strings.NewReader("image-bytes")), "image/jpeg", nil)

		req := httptest.NewRequest(http.MethodGet, "/media?key=uploads/abc.jpg", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, "image-bytes", w.Body.String())
	})

	t.Run("returns 404 for missing object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mediaSvc := mocks.NewMockMediaService(ctrl)
		router := newMediaRouter(handler.NewMediaHandler(mediaSvc))

		mediaSvc.EXPECT().
			Fetch(gomock.Any(), "uploads/ghost.jpg").
			Return(nil, "", domain.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/media?key=uploads/ghost.jpg", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
