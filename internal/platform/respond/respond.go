// Package respond renders RFC 9457 problem details for responses produced
// outside huma operations: unknown routes, disallowed methods, panics and
// redirects. Bodies are JSON unless the client prefers CBOR.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-playground/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound    = "resource not found"
	msgInternalErr = "internal server error"

	schemaPath = "/schemas/ErrorModel.json"
)

// problem mirrors huma.ErrorModel plus the $schema member huma adds to its own responses.
type problem struct {
	Schema string `json:"$schema,omitempty" cbor:"$schema,omitempty"`
	Title  string `json:"title,omitempty" cbor:"title,omitempty"`
	Status int    `json:"status,omitempty" cbor:"status,omitempty"`
	Detail string `json:"detail,omitempty" cbor:"detail,omitempty"`

	// TraceID lets clients quote the request when reporting a failure.
	TraceID string `json:"traceId,omitempty" cbor:"traceId,omitempty"`
}

// NotFoundHandler renders a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler renders a 405 problem and lists the methods the route supports in Allow.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer turns panics into 500 problems. http.ErrAbortHandler is re-panicked
// so net/http can abort the connection. Nothing is written when the handler had
// already started the response.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.ByteString("stack", debug.Stack()))
				if rw.wroteHeader {
					return
				}
				writeProblem(rw, r, http.StatusInternalServerError, msgInternalErr)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteRedirect sets Location and writes a redirect with the given status.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string, status int) {
	http.Redirect(w, r, location, status)
}

// responseWriter records whether the response has been started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	schemaURL := schemaBase(r) + schemaPath
	p := problem{
		Schema:  schemaURL,
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  detail,
		TraceID: applog.TraceIDFromContext(r.Context()),
	}

	var (
		body        []byte
		err         error
		contentType = contentTypeProblemJSON
	)
	if selectFormat(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(p)
	} else {
		body, err = marshalJSON(p)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err, zap.Int("status", status))
		http.Error(w, http.StatusText(status), status)
		return
	}

	h := w.Header()
	addVary(h, "Accept")
	h.Set("Content-Type", contentType)
	h.Set("Link", "<"+schemaURL+`>; rel="describedBy"`)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err))
	}

	fields := []zap.Field{zap.Int("status", status), zap.String("detail", detail)}
	if status >= http.StatusInternalServerError {
		applog.LogError(r.Context(), "request failed", nil, fields...)
		return
	}
	applog.LogWarn(r.Context(), "request failed", fields...)
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func schemaBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// addVary appends value to Vary unless it is already listed.
func addVary(h http.Header, value string) {
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			if strings.EqualFold(strings.TrimSpace(part), value) {
				return
			}
		}
	}
	h.Add("Vary", value)
}

// allowedMethods asks chi's routing tree which methods match the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
	}
	if routePath == "" {
		routePath = r.URL.Path
	}
	if routePath == "" {
		routePath = "/"
	}

	var allowed []string
	for _, method := range []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	} {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) && !slices.Contains(allowed, method) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Missing or invalid
// q values count as 1; a bare type is treated as type/*.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		mr := mediaRange{typ: strings.TrimSpace(typ), subtype: strings.TrimSpace(subtype), q: 1}
		for _, p := range params[1:] {
			k, v, _ := strings.Cut(strings.TrimSpace(p), "=")
			if strings.TrimSpace(k) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how closely mr names the given format ("json" or "cbor");
// -1 means it does not match.
func (mr mediaRange) specificity(format string) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 0
	case mr.typ != "application":
		return -1
	case mr.subtype == "*":
		return 1
	case mr.subtype == "*+"+format:
		return 2
	case mr.subtype == format:
		return 3
	case mr.subtype == "problem+"+format:
		return 4
	default:
		return -1
	}
}

// preference returns the q value and specificity of the most specific range matching format.
func preference(ranges []mediaRange, format string) (float64, int) {
	q, best := 0.0, -1
	for _, mr := range ranges {
		if s := mr.specificity(format); s > best {
			q, best = mr.q, s
		}
	}
	return q, best
}

// selectFormat reports whether CBOR should be used. The q value decides first,
// then specificity. Ties and anything unrecognized fall back to JSON.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	cborQ, cborSpec := preference(ranges, "cbor")
	if cborQ <= 0 {
		return false
	}
	jsonQ, jsonSpec := preference(ranges, "json")
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
