// Package hello exposes the greeter as an HTTP Cloud Function.
package hello

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/janisto/hello-playground/internal/greeter"
	"github.com/janisto/hello-playground/internal/platform/timeutil"
)

func init() {
	functions.HTTP("Hello", helloHandler)
}

// Request represents the optional request body. Name is left untyped so a
// non-string value can be reported instead of silently dropped.
type Request struct {
	Name any `json:"name"`
}

// Response represents the function response.
type Response struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is returned for rejected input.
type ErrorResponse struct {
	Error string `json:"error"`
}

var now = time.Now

func helloHandler(w http.ResponseWriter, r *http.Request) {
	var req Request
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
			return
		}
	}

	input := req.Name
	if input == nil {
		if q := r.URL.Query(); q.Has("name") {
			input = q.Get("name")
		}
	}

	msg, err := greeter.Greet(input)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Message:   msg,
		Timestamp: timeutil.FormatMillis(now()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
