// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/inventory-keeper/internal/adapter"
	"github.com/MKhiriev/inventory-keeper/internal/service"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSaveCRMCredential(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectCaller(aliceToken, alice)
	m.crm.EXPECT().SaveCredential(gomock.Any(), alice, models.CRMCredential{
		AccessToken:  "at",
		RefreshToken: "rt",
		InstanceURL:  "https://acme.my.salesforce.com",
	}).Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/crm/credential", aliceToken,
		`{"access_token":"at","refresh_token":"rt","instance_url":"https://acme.my.salesforce.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCRMHealth(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectCaller(aliceToken, alice)
	m.crm.EXPECT().Health(gomock.Any(), alice).Return(models.CRMHealth{OK: true, HasToken: false}, nil)

	rec := doRequest(t, router, http.MethodGet, "/crm/health", aliceToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"has_token":false}`, rec.Body.String())
}

func TestCreateCRMContact(t *testing.T) {
	contact := models.CRMContact{Name: "Ada Lovelace", Email: "ada@example.com", Company: "Analytical"}

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectCaller(aliceToken, alice)
		m.crm.EXPECT().CreateContact(gomock.Any(), alice, contact).
			Return(models.CRMResult{AccountID: "001A", ContactID: "003C"}, nil)

		rec := doRequest(t, router, http.MethodPost, "/crm/contacts", aliceToken, contact)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"ok":true,"accountId":"001A","contactId":"003C"}`, rec.Body.String())
	})

	t.Run("not connected", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectCaller(aliceToken, alice)
		m.crm.EXPECT().CreateContact(gomock.Any(), alice, contact).Return(models.CRMResult{}, service.ErrCRMNotConfigured)

		rec := doRequest(t, router, http.MethodPost, "/crm/contacts", aliceToken, contact)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectCaller(aliceToken, alice)
		m.crm.EXPECT().CreateContact(gomock.Any(), alice, contact).
			Return(models.CRMResult{}, fmt.Errorf("%w: %w: DUPLICATES_DETECTED", service.ErrCRMFailure, adapter.ErrBadRequest))

		rec := doRequest(t, router, http.MethodPost, "/crm/contacts", aliceToken, contact)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error, "DUPLICATES_DETECTED")
	})

	t.Run("failure after account created", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectCaller(aliceToken, alice)
		m.crm.EXPECT().CreateContact(gomock.Any(), alice, contact).
			Return(models.CRMResult{AccountID: "001A"}, fmt.Errorf("%w: %w: INVALID_SESSION_ID", service.ErrCRMFailure, adapter.ErrUnauthorized))

		rec := doRequest(t, router, http.MethodPost, "/crm/contacts", aliceToken, contact)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "001A", body.AccountID)
		assert.Contains(t, body.Error, "INVALID_SESSION_ID")
	})
}
