package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

type OrderHandler struct {
	mu      *sync.Mutex
	orderUC usecase.OrderUC
	cartUC  usecase.CartUC
	logger  logger.Logger
}

func NewOrderHandler(mu *sync.Mutex, orderUC usecase.OrderUC, cartUC usecase.CartUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{mu: mu, orderUC: orderUC, cartUC: cartUC, logger: logger}
}

// POST /orders. Если заказ записан, но корзина не очистилась,
// отвечаем 201 с предупреждением: повтор создал бы дубль заказа.
func (h *OrderHandler) confirm(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.orderUC.ConfirmOrder(r.Context())
	if err != nil && !(order != nil && errors.Is(err, e.ErrCartNotCleared)) {
		if errors.Is(err, e.ErrEmptyCart) {
			h.logger.Warnf("%d: %v", http.StatusConflict, err)
		} else {
			h.logger.Errorf(err, "failed to confirm order")
		}
		WriteError(w, err)
		return
	}

	resp := ConfirmOrderResponse{
		Order: usecase.ToOrderRecord(order),
		Cart:  toCartResponse(h.cartUC.Snapshot()),
	}
	if err != nil {
		h.logger.Errorf(err, "order recorded, cart not cleared")
		resp.Warning = e.ErrCartNotCleared.Error()
	}

	WriteSuccess(w, http.StatusCreated, resp)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	orders := h.orderUC.Orders(r.Context())
	h.mu.Unlock()

	WriteSuccess(w, http.StatusOK, toOrdersResponse(orders))
}

// GET /cart/bill, предпросмотр счёта текстом.
func (h *OrderHandler) bill(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	text := h.orderUC.PreviewBill()
	h.mu.Unlock()

	WriteText(w, http.StatusOK, text)
}
