package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberworks/gameledger/internal/balance"
	"github.com/emberworks/gameledger/internal/character"
	"github.com/emberworks/gameledger/internal/database"
	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/handler"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/metrics"
	"github.com/emberworks/gameledger/internal/queue"
	"github.com/emberworks/gameledger/internal/transfer"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, characterService character.Service, equipmentService equipment.Service, transferService transfer.Service, balanceService balance.Service, publisher queue.Publisher) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/character", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCharacter(characterService))
			r.Get("/", handler.HandleListCharacters(characterService))
			r.Get("/{id}/", handler.HandleGetCharacter(characterService))
			r.Put("/{id}/", handler.HandleUpdateCharacter(characterService))
			r.Delete("/{id}/", handler.HandleDeleteCharacter(characterService))
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Post("/", handler.HandleCreateEquipment(equipmentService))
			r.Post("/transfer_item/", handler.HandleTransferItem(transferService))
			r.Post("/equip_item/", handler.HandleEquipItem(publisher))
			r.Get("/character/{character_id}/", handler.HandleListEquipment(equipmentService))
			r.Get("/{id}/", handler.HandleGetEquipment(equipmentService))
			r.Put("/{id}/", handler.HandleUpdateEquipment(equipmentService))
			r.Delete("/{id}/", handler.HandleDeleteEquipment(equipmentService))
		})

		r.Route("/currency_balance", func(r chi.Router) {
			r.Post("/top_up_currency_balance/", handler.HandleTopUp(balanceService))
			r.Get("/check_balance_history/{balance_id}/{currency_type_id}/", handler.HandleBalanceHistory(balanceService))
		})

		r.Route("/currency_type", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCurrencyType(balanceService))
			r.Get("/", handler.HandleListCurrencyTypes(balanceService))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", handler.HandleCreateInventoryItem(characterService))
			r.Get("/character/{character_id}/", handler.HandleListInventory(characterService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Delete("/transaction/{id}/", handler.HandleDeleteTransaction(balanceService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
