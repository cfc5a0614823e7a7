package handler

import (
	"errors"
	"net/http"

	"github.com/draftmail/draftmail/internal/model"
	"github.com/draftmail/draftmail/internal/service"
)

// GenerateEmail handles POST /generate-email. It accepts the email
// parameters as JSON and responds with the generated draft.
func (h *Handler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req model.EmailRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "invalid JSON body",
		})
		return
	}

	text, err := h.draftSvc.Draft(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": vErr.Error(),
			})
			return
		}

		resp := map[string]interface{}{
			"success": false,
			"error":   "Failed to generate email",
		}
		if !h.cfg.IsProduction() {
			resp["details"] = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"email":   text,
	})
}
