package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/draftmail/draftmail/internal/config"
	"github.com/draftmail/draftmail/internal/logger"
	"github.com/draftmail/draftmail/internal/service"
)

// Handler holds all HTTP handlers
type Handler struct {
	draftSvc    *service.DraftService
	deliverySvc *service.DeliveryService
	cfg         *config.Config
	log         *logger.Logger
}

// New creates a new Handler instance
func New(draftSvc *service.DraftService, deliverySvc *service.DeliveryService, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		draftSvc:    draftSvc,
		deliverySvc: deliverySvc,
		cfg:         cfg,
		log:         log,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(v)
}
