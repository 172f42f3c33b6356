package http

import (
	"net/http"
	"sync"

	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

type ContactHandler struct {
	mu        *sync.Mutex
	contactUC usecase.ContactUC
	logger    logger.Logger
}

func NewContactHandler(mu *sync.Mutex, contactUC usecase.ContactUC, logger logger.Logger) *ContactHandler {
	return &ContactHandler{mu: mu, contactUC: contactUC, logger: logger}
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	msg, err := h.contactUC.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.logger.Errorf(err, "failed to save contact message")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, usecase.ToContactMessageRecord(msg))
}

func (h *ContactHandler) list(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	msgs := h.contactUC.Messages(r.Context())
	h.mu.Unlock()

	WriteSuccess(w, http.StatusOK, toContactMessagesResponse(msgs))
}
