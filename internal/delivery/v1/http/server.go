package http

import (
	"context"
	"net"
	"net/http"

	"github.com/DRSN-tech/foodie-cart/internal/cfg"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/jimlawless/whereami"
)

type Server struct {
	httpServer *http.Server
	ln         net.Listener
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort("", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Listen занимает порт. Ошибка привязки возвращается сразу, а не из горутины Run.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	s.ln = ln
	return nil
}

// Addr возвращает фактический адрес после Listen (порт 0 заменяется выданным).
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}

	return s.httpServer.Addr
}

// Run блокируется до остановки. После Stop возвращает http.ErrServerClosed.
func (s *Server) Run() error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	return s.httpServer.Serve(s.ln)
}

// Stop дожидается активных запросов. Порт освобождается, даже если Run не вызывался.
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.ln != nil {
		_ = s.ln.Close()
	}

	return err
}
