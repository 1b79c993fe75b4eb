package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body of every response.
//
// Success responses carry success=true with data and/or message;
// failures carry error and optional details.
type Envelope struct {
	Success bool          `json:"success,omitempty"`
	Data    any           `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail describes a single invalid input field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders body with the given status.
func JSON(status int, body Envelope) Response {
	return jsonResponse{status: status, body: body}
}

// Success renders 200 {"success":true,"data":data}.
func Success(data any) Response {
	return JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Message renders 200 {"success":true,"message":msg}.
func Message(msg string) Response {
	return JSON(http.StatusOK, Envelope{Success: true, Message: msg})
}

// Error renders {"error":msg,"details":[...]} with the given status.
func Error(status int, msg string, details ...FieldDetail) Response {
	return JSON(status, Envelope{Error: msg, Details: details})
}
