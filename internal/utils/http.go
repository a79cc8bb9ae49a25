package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data to JSON and writes it to w with the given status
// code and an "application/json" content type.
//
// On marshalling failure it writes a 500 response instead and returns the
// wrapped error.
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
