package catalog

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the JSON envelope for error replies.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, errorResponse{
		Error: errorDetail{
			Code:    http.StatusText(statusCode),
			Message: message,
		},
	})
}
