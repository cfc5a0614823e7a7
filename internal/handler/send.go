package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/draftmail/draftmail/internal/model"
	"github.com/draftmail/draftmail/internal/service"
)

// maxSendFormSize bounds the in-memory portion of the multipart send form.
const maxSendFormSize = 10 << 20 // 10 MiB

// SendEmail handles POST /send-email. It accepts a multipart form with the
// recipient, subject, body, and an optional attachment, and relays the
// message through the configured mail provider.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSendFormSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "invalid multipart form",
		})
		return
	}

	req := model.DeliveryRequest{
		Recipient: r.FormValue("recipient"),
		Subject:   r.FormValue("subject"),
		Body:      r.FormValue("emailBody"),
	}

	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "failed to read attachment",
			})
			return
		}
		req.Attachment = &model.Attachment{
			Filename: header.Filename,
			Data:     data,
		}
	}

	if err := h.deliverySvc.Deliver(r.Context(), req); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": vErr.Error(),
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to send email",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email sent successfully",
	})
}
