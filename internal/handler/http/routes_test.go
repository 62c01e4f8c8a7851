package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_UnknownPathIsJSON404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrRouteNotFound.Error(), decodeError(t, rec).Error)
}

func TestRoutes_UnsupportedMethodIsHidden(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/register"},
		{http.MethodDelete, "/version"},
		{http.MethodPatch, "/login"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/me"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/categories"},
		{http.MethodGet, "/inventories"},
		{http.MethodPost, "/inventories/1"},
		{http.MethodDelete, "/inventories/1/items"},
		{http.MethodGet, "/crm/health"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_Version(t *testing.T) {
	router, m := newTestRouter(t)
	want := models.VersionResponse{Version: "1.2.3", BuildDate: "2026-01-01", BuildCommit: "abc"}
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(want)

	rec := doRequest(t, router, http.MethodGet, "/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
