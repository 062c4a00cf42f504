// internal/adapters/in/http/handler/newsletter_handler.go
package handler

import (
	"net/http"

	"urbanthreads/internal/application/usecase"
)

// NewsletterHandler serves POST /newsletter/subscribe.
type NewsletterHandler struct {
	Newsletter *usecase.NewsletterUsecase
}

func NewNewsletterHandler(nl *usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{Newsletter: nl}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Newsletter.Subscribe(r.Context(), req.Email); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "subscribed"})
}
