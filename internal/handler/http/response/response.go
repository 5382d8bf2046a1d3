package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the base of every response body. Action payloads embed it
// so their extra fields sit flat beside success and message, matching
// the wire contract the mobile clients already speak. Failures are
// reported in the body, never via HTTP status codes.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Write encodes payload as JSON with status 200.
func Write(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Envelope{
			Success: false,
			Message: "Failed to encode response",
		})
	}
}

// OK writes a bare success envelope.
func OK(w http.ResponseWriter, message string) {
	Write(w, Envelope{Success: true, Message: message})
}

// Fail writes a bare failure envelope.
func Fail(w http.ResponseWriter, message string) {
	Write(w, Envelope{Success: false, Message: message})
}
