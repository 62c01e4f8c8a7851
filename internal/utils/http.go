package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/inventory-keeper/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
//
// Example usage:
//
//	WriteJSON(w, models.CategoriesResponse{Categories: cs}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the uniform error body {"error": message, "fields": [...]}.
// fields is omitted when empty.
func WriteError(w http.ResponseWriter, message string, fields []string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message, Fields: fields}, statusCode)
}

// DecodeJSON decodes the request body into v, rejecting trailing data.
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("error decoding request body: unexpected trailing data")
	}
	return nil
}
