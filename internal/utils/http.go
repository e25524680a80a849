package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with the given status code and a
// JSON content type. The body is marshaled before any header is written, so
// a marshaling failure still produces a clean 500 response.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}
