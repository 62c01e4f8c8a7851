// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/inventory-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %q", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestWithCaller_RoundTrip(t *testing.T) {
	caller := models.Caller{
		UserID: "b9d1b0a6-6d3c-4b4c-9c3e-1f0e6c2f8a11",
		Email:  "admin@example.com",
		Role:   models.RoleAdmin,
		Status: models.StatusActive,
	}

	ctx := WithCaller(context.Background(), caller)

	got, ok := GetCallerFromContext(ctx)
	if !ok {
		t.Fatal("expected caller in context")
	}
	if got != caller {
		t.Errorf("expected %+v, got %+v", caller, got)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != caller.UserID {
		t.Errorf("expected userID %q, got %q (ok=%v)", caller.UserID, userID, ok)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	if _, ok := GetCallerFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}
