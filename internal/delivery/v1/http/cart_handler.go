package http

import (
	"net/http"
	"sync"

	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

type CartHandler struct {
	mu     *sync.Mutex
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(mu *sync.Mutex, cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{mu: mu, cartUC: cartUC, logger: logger}
}

func (h *CartHandler) get(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	snap := h.cartUC.Snapshot()
	h.mu.Unlock()

	WriteSuccess(w, http.StatusOK, toCartResponse(snap))
}

// POST /cart/items/{id}. Неизвестный id не ошибка: changed=false.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	name, err := h.cartUC.AddItem(r.Context(), id)
	if err != nil {
		h.logger.Errorf(err, "failed to add item %d", id)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MutationResponse{
		Changed: name != "",
		Item:    name,
		Cart:    toCartResponse(h.cartUC.Snapshot()),
	})
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	changed, err := h.cartUC.RemoveItem(r.Context(), id)
	if err != nil {
		h.logger.Errorf(err, "failed to remove item %d", id)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MutationResponse{
		Changed: changed,
		Cart:    toCartResponse(h.cartUC.Snapshot()),
	})
}

// PATCH /cart/items/{id} с телом {"delta": -1}
func (h *CartHandler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	var req ChangeQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}
	if req.Delta == nil {
		WriteError(w, e.ErrInvalidDelta)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	changed, err := h.cartUC.ChangeQuantity(r.Context(), id, *req.Delta)
	if err != nil {
		h.logger.Errorf(err, "failed to change quantity of item %d", id)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MutationResponse{
		Changed: changed,
		Cart:    toCartResponse(h.cartUC.Snapshot()),
	})
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.cartUC.Clear(r.Context()); err != nil {
		h.logger.Errorf(err, "failed to clear cart")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MutationResponse{
		Changed: true,
		Cart:    toCartResponse(h.cartUC.Snapshot()),
	})
}
