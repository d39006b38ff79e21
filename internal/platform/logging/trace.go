package logging

import (
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// traceContext is the parsed form of a traceparent header bound to a project.
type traceContext struct {
	resource string
	spanID   string
	sampled  bool
}

// parseTraceparent returns ok=false when projectID is empty, the header is
// malformed, or the trace ID is all zeros (invalid per the W3C spec).
func parseTraceparent(header, projectID string) (traceContext, bool) {
	if projectID == "" {
		return traceContext{}, false
	}
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil || m[1] == "ff" || m[2] == "00000000000000000000000000000000" {
		return traceContext{}, false
	}
	return traceContext{
		resource: "projects/" + projectID + "/traces/" + m[2],
		spanID:   m[3],
		sampled:  m[4] == "01",
	}, true
}

func (tc traceContext) fields() []zap.Field {
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", tc.resource),
		zap.String("logging.googleapis.com/spanId", tc.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", tc.sampled),
	}
}

func requestLogger(base *zap.Logger, tc traceContext, traced bool, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	var fields []zap.Field
	if traced {
		fields = tc.fields()
	}
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		cachedProjectID = firstNonEmpty(
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
			os.Getenv("GCP_PROJECT"),
			os.Getenv("GCLOUD_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	})
	return cachedProjectID
}
