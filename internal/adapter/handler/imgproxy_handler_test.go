package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/usecase/imgsign"
)

const (
	testKeyHex  = "943b421c9eb07c830af81030552c86009268de4e532ba2ee2eab8247c6da0de1"
	testSaltHex = "520f986b998545b4785e0defbc4f3c1203f22de2374a3d53cb7a7fe9fea309c5"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newImgproxyRouter(t *testing.T) *gin.Engine {
	t.Helper()

	signSvc, err := imgsign.NewService(testKeyHex, testSaltHex, "https://img.example.com")
	require.NoError(t, err)

	h := handler.NewImgproxyHandler(signSvc, zap.NewNop())
	router := setupRouter()
	router.GET("/signed-imgproxy", h.Sign)
	return router
}

func TestImgproxyHandler_Sign(t *testing.T) {
	t.Run("returns signed url", func(t *testing.T) {
		router := newImgproxyRouter(t)

		req := httptest.NewRequest(http.MethodGet,
			"/signed-imgproxy?src=https://cdn.example.com/a.jpg&width=400&height=300&format=jpeg", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, strings.HasPrefix(resp["url"], "https://img.example.com/"))
		assert.Contains(t, resp["url"], "/rs:fit:400:300/plain/https%3A%2F%2Fcdn.example.com%2Fa.jpg@jpeg")
	})

	t.Run("rejects missing parameters as plain text", func(t *testing.T) {
		router := newImgproxyRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/signed-imgproxy?src=a.jpg&width=400", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "Missing required parameters")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		router := newImgproxyRouter(t)

		req := httptest.NewRequest(http.MethodGet,
			"/signed-imgproxy?src=a.jpg&width=400&height=300&format=gif", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid format")
	})

	t.Run("rejects unknown gravity", func(t *testing.T) {
		router := newImgproxyRouter(t)

		req := httptest.NewRequest(http.MethodGet,
			"/signed-imgproxy?src=a.jpg&width=400&height=300&format=jpeg&crop=true&gravity=middle", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid gravity")
	})

	t.Run("ignores out of range quality", func(t *testing.T) {
		router := newImgproxyRouter(t)

		req := httptest.NewRequest(http.MethodGet,
			"/signed-imgproxy?src=a.jpg&width=400&height=300&format=jpeg&quality=250", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotContains(t, resp["url"], "/q:")
	})
}
