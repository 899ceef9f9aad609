package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scorekeeper/internal/metrics"
	"github.com/mcoot/scorekeeper/internal/middleware"
)

// apiVersion tags request log lines so score submissions can be told apart
// from /metrics scrapes in the same stream.
const apiVersion = "v1"

// Logging logs every /api/v1 request and counts it in rec
func Logging(logger *slog.Logger, rec *metrics.Recorder) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("api", apiVersion)), rec)
}
