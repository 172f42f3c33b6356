package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
	mu     sync.Mutex // сериализует все обращения к ядру
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, orderUC usecase.OrderUC, catalogUC usecase.CatalogUC, contactUC usecase.ContactUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.requestLogger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(&r.mu, cartUC, r.logger), NewOrderHandler(&r.mu, orderUC, cartUC, r.logger))
		registerContactRoutes(v1, NewContactHandler(&r.mu, contactUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/catalog", func(c chi.Router) {
		c.Get("/", h.list)
		c.Get("/featured", h.featured)
		c.Get("/{id}", h.get)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler, oh *OrderHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.get)
		c.Delete("/", h.clear)
		c.Get("/bill", oh.bill)
		c.Post("/items/{id}", h.addItem)
		c.Delete("/items/{id}", h.removeItem)
		c.Patch("/items/{id}", h.changeQuantity)
	})

	router.Route("/orders", func(o chi.Router) {
		o.Post("/", oh.confirm)
		o.Get("/", oh.list)
	})
}

func registerContactRoutes(router chi.Router, h *ContactHandler) {
	router.Route("/contact", func(c chi.Router) {
		c.Post("/", h.submit)
		c.Get("/", h.list)
	})
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %s request_id=%s", req.Method, req.URL.Path, ww.Status(), time.Since(start),
			middleware.GetReqID(req.Context()))
	})
}
