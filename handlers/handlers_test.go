package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"groomer/database/repository/kv/kvtest"
	"groomer/models"
	"groomer/services/account"
	"groomer/services/directory"
	"groomer/services/loyalty"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(store *kvtest.MemStore) *gin.Engine {
	r := gin.New()

	salonHandler := NewSalonHandler(&directory.DefaultDirectoryService{Store: store})
	loyaltyHandler := NewLoyaltyHandler(&loyalty.DefaultLoyaltyService{Store: store})
	accountHandler := NewAccountHandler(&account.DefaultAccountService{Store: store})

	r.GET("/api/salons", salonHandler.ListSalonsHandler)
	r.DELETE("/api/salons", salonHandler.RefreshSalonsHandler)
	r.GET("/api/booking/options", salonHandler.BookingOptionsHandler)
	r.GET("/api/loyalty/:userId", loyaltyHandler.GetLoyaltyHandler)
	r.POST("/api/loyalty/redeem", loyaltyHandler.RedeemHandler)
	r.POST("/api/profile/update", accountHandler.UpdateProfileHandler)
	r.GET("/api/data/export/:userId", accountHandler.ExportDataHandler)
	r.GET("/api/preferences/:userId", accountHandler.GetPreferencesHandler)
	r.POST("/api/preferences/:userId", accountHandler.SavePreferencesHandler)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSalonsEndpoint(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	w := doRequest(r, http.MethodGet, "/api/salons", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Salons []models.Salon `json:"salons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Salons, 6)
	assert.Nil(t, resp.Salons[0].DistanceKm)
}

func TestListSalonsWithLocationAndQuery(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	w := doRequest(r, http.MethodGet, "/api/salons?q=hair&lat=12.9716&lng=77.5946", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Salons []models.Salon `json:"salons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Salons)
	require.NotNil(t, resp.Salons[0].DistanceKm)
	assert.Equal(t, "Men's Grooming Hub", resp.Salons[0].Name)
}

func TestListSalonsRejectsBadCoordinates(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())
	w := doRequest(r, http.MethodGet, "/api/salons?lat=abc&lng=77", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshSalonsEndpoint(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())
	w := doRequest(r, http.MethodDelete, "/api/salons", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Salon data cleared successfully")
}

func TestBookingOptionsEndpoint(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	w := doRequest(r, http.MethodGet, "/api/booking/options?salonId=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services struct {
			Women []models.Service `json:"women"`
			Men   []models.Service `json:"men"`
		} `json:"services"`
		Dates     []string `json:"dates"`
		TimeSlots []string `json:"timeSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Services.Women, 4)
	assert.Len(t, resp.Services.Men, 4)
	assert.Len(t, resp.Dates, 7)
	assert.Len(t, resp.TimeSlots, 18)

	missing := doRequest(r, http.MethodGet, "/api/booking/options", "")
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	unknown := doRequest(r, http.MethodGet, "/api/booking/options?salonId=42", "")
	assert.Equal(t, http.StatusNotFound, unknown.Code)
}

func TestLoyaltyEndpoints(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	// The loyalty document is the response body, unwrapped.
	w := doRequest(r, http.MethodGet, "/api/loyalty/user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc models.Loyalty
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, 350, doc.CurrentPoints)

	// Redeeming an affordable reward succeeds.
	redeem := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{"userId":"user-1","rewardId":"reward_1"}`)
	assert.Equal(t, http.StatusOK, redeem.Code)

	// Disabled rewards and thin balances map to 400 with fixed messages.
	unavailable := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{"userId":"user-1","rewardId":"reward_4"}`)
	assert.Equal(t, http.StatusBadRequest, unavailable.Code)
	assert.Contains(t, unavailable.Body.String(), "Reward not available")

	// 250 points left; reward_3 costs 200 and drains the balance to 50.
	drain := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{"userId":"user-1","rewardId":"reward_3"}`)
	assert.Equal(t, http.StatusOK, drain.Code)

	insufficient := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{"userId":"user-1","rewardId":"reward_1"}`)
	assert.Equal(t, http.StatusBadRequest, insufficient.Code)
	assert.Contains(t, insufficient.Body.String(), "Insufficient points")

	// Redeeming for a user with no loyalty document is a 404.
	ghost := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{"userId":"ghost","rewardId":"reward_1"}`)
	assert.Equal(t, http.StatusNotFound, ghost.Code)
	assert.Contains(t, ghost.Body.String(), "Loyalty data not found")

	noBody := doRequest(r, http.MethodPost, "/api/loyalty/redeem", `{}`)
	assert.Equal(t, http.StatusBadRequest, noBody.Code)
}

func TestExportEndpointSetsDownloadHeader(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	w := doRequest(r, http.MethodGet, "/api/data/export/user-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="salon-data.json"`, w.Header().Get("Content-Disposition"))

	var bundle models.ExportBundle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bundle))
	assert.NotEmpty(t, bundle.ExportDate)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	ok := doRequest(r, http.MethodPost, "/api/profile/update", `{"userId":"user-1","profile":{"name":"Asha"}}`)
	assert.Equal(t, http.StatusOK, ok.Code)

	missing := doRequest(r, http.MethodPost, "/api/profile/update", `{"profile":{"name":"Asha"}}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Contains(t, missing.Body.String(), "User ID and profile data are required")
}

func TestPreferencesEndpoints(t *testing.T) {
	r := newTestRouter(kvtest.NewMemStore())

	w := doRequest(r, http.MethodGet, "/api/preferences/user-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No preferences found")

	saved := doRequest(r, http.MethodPost, "/api/preferences/user-1", `{"language":"en"}`)
	require.Equal(t, http.StatusOK, saved.Code)

	// The stored document comes back unwrapped, with the server's stamp.
	got := doRequest(r, http.MethodGet, "/api/preferences/user-1", "")
	require.Equal(t, http.StatusOK, got.Code)
	var prefs map[string]interface{}
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &prefs))
	assert.Equal(t, "en", prefs["language"])
	assert.NotEmpty(t, prefs["updatedAt"])
}
