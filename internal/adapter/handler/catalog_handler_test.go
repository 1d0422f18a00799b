package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/mocks"
	"github.com/bookline/gateway/internal/pkg/pagination"
)

func newCatalogRouter(h *handler.CatalogHandler) *gin.Engine {
	router := setupRouter()
	router.GET("/businesses", h.ListBusinesses)
	router.GET("/businesses/:publicId", h.GetBusiness)
	router.GET("/services/:id/unavailable-times", h.UnavailableTimes)
	return router
}

func TestCatalogHandler_ListBusinesses(t *testing.T) {
	t.Run("lists businesses with pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			ListBusinesses(gomock.Any(), pagination.NewParams(2, 10)).
			Return([]entity.Business{{ID: "1", Name: "Cut Above", City: "Bengaluru"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/businesses?page=2&per_page=10", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Businesses []map[string]any `json:"businesses"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Businesses, 1)
		assert.Equal(t, "Cut Above", resp.Businesses[0]["name"])
	})

	t.Run("returns empty list as empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			ListBusinesses(gomock.Any(), gomock.Any()).
			Return([]entity.Business{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"businesses":[]}`, w.Body.String())
	})
}

func TestCatalogHandler_GetBusiness(t *testing.T) {
	t.Run("returns business with services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			GetBusiness(gomock.Any(), "cut-above").
			Return(
				&entity.Business{ID: "1", PublicID: "cut-above", Name: "Cut Above"},
				[]entity.Service{{ID: "10", Name: "Haircut", Price: 350}},
				nil,
			)

		req := httptest.NewRequest(http.MethodGet, "/businesses/cut-above", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Business map[string]any   `json:"business"`
			Services []map[string]any `json:"services"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Cut Above", resp.Business["name"])
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "Haircut", resp.Services[0]["name"])
	})

	t.Run("returns 404 for unknown business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			GetBusiness(gomock.Any(), "ghost").
			Return(nil, nil, &backend.UpstreamError{StatusCode: 404, Details: "missing"})

		req := httptest.NewRequest(http.MethodGet, "/businesses/ghost", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_UnavailableTimes(t *testing.T) {
	t.Run("returns times", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			UnavailableTimes(gomock.Any(), "10", "2026-03-15").
			Return([]string{"10:00", "10:30"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/services/10/unavailable-times?date=2026-03-15", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"times":["10:00","10:30"]}`, w.Body.String())
	})

	t.Run("degrades failure to empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		router := newCatalogRouter(handler.NewCatalogHandler(catalogSvc))

		catalogSvc.EXPECT().
			UnavailableTimes(gomock.Any(), "10", "").
			Return(nil, &backend.UpstreamError{StatusCode: 500, Details: "boom"})

		req := httptest.NewRequest(http.MethodGet, "/services/10/unavailable-times", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"times":[]}`, w.Body.String())
	})
}
