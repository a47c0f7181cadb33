package handlers

import (
	"net/http"

	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/messages"
)

// ContentTypeJSON is the content type of every response
const ContentTypeJSON = "application/json; charset=utf-8"

var serverErrorBody = []byte(`{"error":"` + messages.ErrorCodeServerError + `"}`)

// WriteJSON serializes v and writes it with the given status. If v cannot be
// serialized a server_error response is written instead.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := messages.Serialize(v)
	if err != nil {
		log.Warn("Failed to serialize response: %v", err)
		status = http.StatusInternalServerError
		body = serverErrorBody
	}
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Debug("Failed to write response: %v", err)
	}
}

// WriteError writes an error response with the given status and code.
func WriteError(w http.ResponseWriter, status int, code string) {
	WriteJSON(w, status, messages.ErrorResponse{Error: code})
}
