package http

import (
	"net/http"

	"github.com/mzhuravlev/feedback-board/internal/common/constants"
	"github.com/mzhuravlev/feedback-board/internal/common/httpmetrics"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
)

func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware

	return securityHeaders(recovery(traceID(maxRequestSize(metrics.Wrap(handler)))))
}
