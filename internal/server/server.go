package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
)

// Config carries the wire values the legacy frontend stores in the person
// field. Defaults match the deployed backend.
type Config struct {
	PartyA string
	PartyB string
}

// Server exposes the ledger over the same JSON contract the original PHP
// backend spoke, so the existing frontend can point at it unchanged.
type Server struct {
	ledger *ledger.Ledger
	logger *zap.Logger
	cfg    Config
	router *mux.Router
}

func New(l *ledger.Ledger, logger *zap.Logger, cfg Config) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PartyA == "" {
		cfg.PartyA = "keisuke"
	}
	if cfg.PartyB == "" {
		cfg.PartyB = "hitomi"
	}

	s := &Server{ledger: l, logger: logger, cfg: cfg}

	r := mux.NewRouter()
	r.Use(s.instrument)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/records", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/records", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/records/{id}", s.handleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router = r

	return s
}

// Router returns the configured handler for mounting in an http.Server.
func (s *Server) Router() http.Handler { return s.router }
