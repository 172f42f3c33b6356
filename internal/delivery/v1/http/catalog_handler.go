package http

import (
	"net/http"

	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

// CatalogHandler отдаёт меню. Каталог неизменяем, поэтому блокировка не нужна.
type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, logger: logger}
}

// GET /catalog?category=pizza
func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	category, err := parseCategory(r)
	if err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogResponse(h.catalogUC.ByCategory(category)))
}

func (h *CatalogHandler) featured(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, toCatalogResponse(h.catalogUC.Featured()))
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	item, ok := h.catalogUC.Get(id)
	if !ok {
		WriteError(w, e.ErrItemNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogItemResponse(item))
}
