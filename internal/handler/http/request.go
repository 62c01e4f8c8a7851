package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeOptionalBody accepts an empty body and leaves v untouched.
func decodeOptionalBody(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	err := utils.DecodeJSON(r, v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func inventoryIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: inventory id %q", ErrInvalidPathID, raw)
	}
	return id, nil
}

func userIDParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "id")
	if !utils.IsValidUUID(raw) {
		return "", fmt.Errorf("%w: user id %q", ErrInvalidPathID, raw)
	}
	return raw, nil
}

func callerFromRequest(r *http.Request) (models.Caller, error) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		return models.Caller{}, ErrNoCaller
	}
	return caller, nil
}
