package venues_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venuehub/internal/venues"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newVenueRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newVenueService(t)
	controller := venues.NewController(svc)

	engine := gin.New()
	group := engine.Group("/api/v1")
	passthrough := func(c *gin.Context) { c.Next() }
	venues.SetupVenueRoutes(group, controller, passthrough)

	return engine
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

const validVenueBody = `{
	"name": "Venue Name",
	"capacity": 1000,
	"address": "Address line 1",
	"city": "Nelson",
	"state": "NS",
	"country": "NZ",
	"postal_code": "10000",
	"website": "https://venuename.com"
}`

func TestCreateVenueEndpoint(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/venues", validVenueBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data venues.VenueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.ID)
	require.Equal(t, "Venue Name", body.Data.Name)
	require.Equal(t, 1000, body.Data.Capacity)
}

func TestCreateVenueValidationError(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/venues", `{"capacity": 0, "website": "nope"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "The given data was invalid.", body.Message)
	require.Contains(t, body.Errors, "name")
	require.Contains(t, body.Errors, "website")
}

func TestListVenuesEndpointMeta(t *testing.T) {
	router := newVenueRouter(t)

	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodPost, "/api/v1/venues", validVenueBody)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/venues", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []venues.VenueResponse `json:"data"`
		Meta struct {
			CurrentPage int   `json:"current_page"`
			PerPage     int   `json:"per_page"`
			Total       int64 `json:"total"`
			LastPage    int   `json:"last_page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	require.Equal(t, 1, body.Meta.CurrentPage)
	require.Equal(t, 25, body.Meta.PerPage)
	require.EqualValues(t, 3, body.Meta.Total)
	require.Equal(t, 1, body.Meta.LastPage)
}

func TestGetVenueEndpointNotFound(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/venues/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Venue not found"}`, w.Body.String())
}

func TestUpdateVenueEndpoint(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/venues", validVenueBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data venues.VenueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodPatch, "/api/v1/venues/"+created.Data.ID, `{"name":"Renamed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Data venues.VenueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Renamed", updated.Data.Name)
	require.Equal(t, 1000, updated.Data.Capacity)
}

func TestUpdateVenueEndpointNotFound(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodPatch, "/api/v1/venues/"+uuid.NewString(), `{"name":"Renamed"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVenueEndpoint(t *testing.T) {
	router := newVenueRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/venues", validVenueBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data venues.VenueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodDelete, "/api/v1/venues/"+created.Data.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	// Deleting again is still a 204
	w = doRequest(router, http.MethodDelete, "/api/v1/venues/"+created.Data.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/venues/"+created.Data.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
