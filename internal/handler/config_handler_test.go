package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigService struct {
	saved map[string]service.SaveConfigRequest
}

func (f *fakeConfigService) Save(ctx context.Context, req service.SaveConfigRequest) error {
	f.saved[req.ConfigName] = req
	return nil
}

func (f *fakeConfigService) Load(ctx context.Context, name string) (service.ConfigResponse, error) {
	req, ok := f.saved[name]
	if !ok {
		return service.ConfigResponse{}, service.ErrConfigNotFound
	}
	return service.ConfigResponse{Name: req.ConfigName, Platform: req.Platform, Data: req.ConfigData}, nil
}

func (f *fakeConfigService) List(ctx context.Context, platform string) ([]service.ConfigResponse, error) {
	res := make([]service.ConfigResponse, 0, len(f.saved))
	for _, req := range f.saved {
		if platform != "" && req.Platform != platform {
			continue
		}
		res = append(res, service.ConfigResponse{Name: req.ConfigName, Platform: req.Platform, Data: req.ConfigData})
	}
	return res, nil
}

func setupConfigRouter() (*gin.Engine, *fakeConfigService) {
	gin.SetMode(gin.TestMode)
	svc := &fakeConfigService{saved: map[string]service.SaveConfigRequest{}}
	router := gin.New()
	NewConfigHandler(svc).RegisterRoutes(router.Group(""))
	return router, svc
}

func TestConfigHandler_SaveConfig(t *testing.T) {
	router, svc := setupConfigRouter()

	t.Run("SaveReturnsMessage", func(t *testing.T) {
		body := `{"config_name":"summer-sale","platform":"ebay_usa","config_data":{"sell_price":"100"}}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/configs/save", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), `"message"`)
		assert.Contains(t, svc.saved, "summer-sale")
	})

	t.Run("MissingFieldsIs400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/configs/save", strings.NewReader(`{"config_name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func TestConfigHandler_LoadConfig(t *testing.T) {
	router, svc := setupConfigRouter()
	svc.saved["sg-defaults"] = service.SaveConfigRequest{
		ConfigName: "sg-defaults",
		Platform:   "shopee",
		ConfigData: json.RawMessage(`{"country":"sg"}`),
	}

	t.Run("LoadWrapsConfigKey", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/configs/sg-defaults", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool                   `json:"success"`
			Config  service.ConfigResponse `json:"config"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "sg-defaults", envelope.Config.Name)
		assert.Equal(t, "shopee", envelope.Config.Platform)
	})

	t.Run("UnknownNameIs404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/configs/missing", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "not found")
	})
}

func TestConfigHandler_ListConfigs(t *testing.T) {
	router, svc := setupConfigRouter()
	svc.saved["sg-defaults"] = service.SaveConfigRequest{ConfigName: "sg-defaults", Platform: "shopee", ConfigData: json.RawMessage(`{}`)}
	svc.saved["us-watches"] = service.SaveConfigRequest{ConfigName: "us-watches", Platform: "ebay_usa", ConfigData: json.RawMessage(`{}`)}

	t.Run("ListWrapsConfigsKey", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/configs", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool                     `json:"success"`
			Configs []service.ConfigResponse `json:"configs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Len(t, envelope.Configs, 2)
	})

	t.Run("PlatformQueryFilters", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/configs?platform=shopee", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool                     `json:"success"`
			Configs []service.ConfigResponse `json:"configs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		require.Len(t, envelope.Configs, 1)
		assert.Equal(t, "shopee", envelope.Configs[0].Platform)
	})
}
