package router

import (
	"net/http"

	"github.com/draftmail/draftmail/internal/handler"
	"github.com/draftmail/draftmail/internal/middleware"
	"github.com/draftmail/draftmail/internal/web"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (liveness probing, no side effects)
	mux.HandleFunc("GET /health", h.Health)

	// Draft and delivery endpoints
	mux.HandleFunc("POST /generate-email", h.GenerateEmail)
	mux.HandleFunc("POST /send-email", h.SendEmail)

	// Embedded form page
	mux.HandleFunc("GET /{$}", web.Index)

	// Apply middleware stack
	var hdl http.Handler = mux

	// CORS (the form page is normally served from this process, but a dev
	// server may host it elsewhere)
	hdl = mw.CORS([]string{"*"})(hdl)

	// Security headers
	hdl = mw.SecurityHeaders(hdl)

	// Request logging
	hdl = mw.Logger(hdl)

	// Timing
	hdl = mw.Timing(hdl)

	// Request ID
	hdl = mw.RequestID(hdl)

	// Panic recovery (outermost)
	hdl = mw.Recover(hdl)

	return hdl
}
