package web

import (
	"context"
	"encoding/json"
	"net/http"
)

// Respond converts a Go value to JSON and sends it to the client,
// recording the status code in the request's Values for later
// logging.
func Respond(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error {
	SetStatusCode(ctx, statusCode)

	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		return err
	}
	return nil
}

// RespondError is a convenience wrapper over Respond for the common
// {"error": "..."} shape returned on client-facing failures.
func RespondError(ctx context.Context, w http.ResponseWriter, message string, statusCode int) error {
	return Respond(ctx, w, map[string]string{"error": message}, statusCode)
}
