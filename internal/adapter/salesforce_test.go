// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnector(t *testing.T, loginURL string) *salesforceConnector {
	t.Helper()
	cfg := config.CRM{
		LoginURL:       loginURL,
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		APIVersion:     "60.0",
		RequestTimeout: 5 * time.Second,
	}

	c, err := NewSalesforceConnector(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*salesforceConnector)
}

func testCredential(instanceURL string) models.CRMCredential {
	return models.CRMCredential{
		UserID:       "0190a8a4-7c1e-7b3a-9a55-3c2f1d0e4b11",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		InstanceURL:  instanceURL,
	}
}

// ── CreateAccountAndContact ─────────────────────────────────────────────────

func TestCreateAccountAndContact_Success(t *testing.T) {
	var contactBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/services/data/v60.0/sobjects/Account":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Acme", body["Name"])
			_, _ = w.Write([]byte(`{"id":"001A","success":true,"errors":[]}`))
		case "/services/data/v60.0/sobjects/Contact":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&contactBody))
			_, _ = w.Write([]byte(`{"id":"003C","success":true,"errors":[]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	got, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{
		Name:     "Ada King Lovelace",
		Email:    "ada@example.com",
		Company:  "Acme",
		JobTitle: "Engineer",
		Phone:    "+44",
		Notes:    "met at expo",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, models.CRMResult{AccountID: "001A", ContactID: "003C"}, got)
	assert.Equal(t, "Ada", contactBody["FirstName"])
	assert.Equal(t, "King Lovelace", contactBody["LastName"])
	assert.Equal(t, "ada@example.com", contactBody["Email"])
	assert.Equal(t, "Engineer", contactBody["Title"])
	assert.Equal(t, "met at expo", contactBody["Description"])
	assert.Equal(t, "001A", contactBody["AccountId"])
}

func TestCreateAccountAndContact_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`[{"message":"Session expired or invalid","errorCode":"INVALID_SESSION_ID"}]`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	_, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Company: "Acme"}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "INVALID_SESSION_ID: Session expired or invalid")
}

func TestCreateAccountAndContact_ContactFailureKeepsAccountID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/services/data/v60.0/sobjects/Account" {
			_, _ = w.Write([]byte(`{"id":"001A","success":true}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"message":"Email: invalid email address","errorCode":"INVALID_EMAIL_ADDRESS"}]`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	got, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Company: "Acme", Email: "bad"}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "001A", got.AccountID)
	assert.Empty(t, got.ContactID)
}

func TestCreateAccountAndContact_ExistingAccountSkipsAccountStep(t *testing.T) {
	var accountPosts, contactPosts int
	var contactBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/services/data/v60.0/sobjects/Account":
			accountPosts++
			_, _ = w.Write([]byte(`{"id":"001B","success":true}`))
		case "/services/data/v60.0/sobjects/Contact":
			contactPosts++
			require.NoError(t, json.NewDecoder(r.Body).Decode(&contactBody))
			_, _ = w.Write([]byte(`{"id":"003C","success":true}`))
		}
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	got, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Name: "Ada", Company: "Acme"}, "001A")

	require.NoError(t, err)
	assert.Equal(t, models.CRMResult{AccountID: "001A", ContactID: "003C"}, got)
	assert.Equal(t, 0, accountPosts)
	assert.Equal(t, 1, contactPosts)
	assert.Equal(t, "001A", contactBody["AccountId"])
}

func TestCreateAccountAndContact_ExistingAccountKeptOnContactFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`[{"message":"Session expired or invalid","errorCode":"INVALID_SESSION_ID"}]`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	got, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Company: "Acme"}, "001A")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "001A", got.AccountID)
}

func TestCreateAccountAndContact_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	_, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Company: "Acme"}, "")

	assert.ErrorIs(t, err, ErrMissingRecordID)
}

func TestCreateAccountAndContact_NoInstanceURL(t *testing.T) {
	c := newTestConnector(t, "https://login.example.com")
	_, err := c.CreateAccountAndContact(context.Background(), testCredential(""), models.CRMContact{Company: "Acme"}, "")

	assert.ErrorIs(t, err, ErrMissingInstanceURL)
}

// ── RefreshCredential ───────────────────────────────────────────────────────

func TestRefreshCredential_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-2","instance_url":"https://eu.example.com","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	cred := testCredential("https://na.example.com")
	got, err := c.RefreshCredential(context.Background(), cred)

	require.NoError(t, err)
	assert.Equal(t, cred.UserID, got.UserID)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.Equal(t, "https://eu.example.com", got.InstanceURL)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRefreshCredential_InvalidGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"expired access/refresh token"}`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	_, err := c.RefreshCredential(context.Background(), testCredential(srv.URL))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid_grant: expired access/refresh token")
}

func TestRefreshCredential_NoRefreshToken(t *testing.T) {
	c := newTestConnector(t, "https://login.example.com")
	cred := testCredential("https://na.example.com")
	cred.RefreshToken = " "

	_, err := c.RefreshCredential(context.Background(), cred)
	assert.ErrorIs(t, err, ErrMissingRefreshToken)
}

func TestRefreshCredential_EmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	_, err := c.RefreshCredential(context.Background(), testCredential(srv.URL))
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantFirst string
		wantLast  string
	}{
		{name: "empty", in: "", wantFirst: "", wantLast: "Unknown"},
		{name: "single word", in: "Ada", wantFirst: "Ada", wantLast: "Unknown"},
		{name: "two words", in: "Ada Lovelace", wantFirst: "Ada", wantLast: "Lovelace"},
		{name: "extra spaces", in: "  Ada   King  Lovelace ", wantFirst: "Ada", wantLast: "King Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitName(tt.in)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "empty", in: "  ", wantErr: true},
		{name: "adds https", in: "login.salesforce.com", want: "https://login.salesforce.com"},
		{name: "keeps scheme", in: "http://127.0.0.1:8080/", want: "http://127.0.0.1:8080"},
		{name: "no host", in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSalesforceConnector_InvalidLoginURL(t *testing.T) {
	_, err := NewSalesforceConnector(config.CRM{}, logger.Nop())
	assert.Error(t, err)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestConnector(t, srv.URL)
			_, err := c.CreateAccountAndContact(context.Background(), testCredential(srv.URL), models.CRMContact{Company: "Acme"}, "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
