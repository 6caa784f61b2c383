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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/argguild/epgpbot/internal/handler"
	"github.com/argguild/epgpbot/internal/item"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/loot"
	"github.com/argguild/epgpbot/internal/metrics"
	"github.com/argguild/epgpbot/internal/raid"
	"github.com/argguild/epgpbot/internal/roster"
)

// Config holds the listener and security settings
type Config struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Services are the domain services the API exposes. DB is nil when the
// in-memory store is used.
type Services struct {
	Ledger ledger.Service
	Roster roster.Service
	Raids  raid.Service
	Loot   loot.Service
	Items  item.Service
	DB     handler.Pinger
}

// Server is the HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter returns the API routes with the middleware stack applied
func NewRouter(cfg Config, svc Services) http.Handler {
	r := chi.NewRouter()
	detector := NewActivityDetector(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Handle("/metrics", promhttp.Handler())

	// API documentation, generated from the handler annotations with swag
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	ledgerHandler := handler.NewLedgerHandler(svc.Ledger)
	rosterHandler := handler.NewRosterHandler(svc.Roster)
	raidHandler := handler.NewRaidHandler(svc.Raids)
	itemHandler := handler.NewItemHandler(svc.Items)
	lootHandler := handler.NewLootHandler(svc.Loot)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

		r.Route("/buckets", func(r chi.Router) {
			r.Post("/", ledgerHandler.HandleCreateBucket)
			r.Get("/", ledgerHandler.HandleGetBucket)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Post("/grant", ledgerHandler.HandleGrant)
			r.Post("/penalty", ledgerHandler.HandlePenalty)
			r.Post("/load", ledgerHandler.HandleLoad)
			r.Post("/edit", ledgerHandler.HandleEdit)
			r.Post("/decay", ledgerHandler.HandleDecay)
			r.Post("/decay-all", ledgerHandler.HandleDecayAll)
			r.Post("/reverse", ledgerHandler.HandleReverse)
			r.Post("/truncate", ledgerHandler.HandleTruncate)
			r.Get("/entries", ledgerHandler.HandleListEntries)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", rosterHandler.HandleListTeams)
			r.Post("/", rosterHandler.HandleCreateTeam)
			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/priority", ledgerHandler.HandlePriority)
				r.Get("/roster", rosterHandler.HandleListRoster)
				r.Post("/assign", rosterHandler.HandleAssign)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rosterHandler.HandleRegisterUser)
			r.Get("/search", rosterHandler.HandleFindUser)
		})
		r.Post("/characters", rosterHandler.HandleRegisterCharacter)

		r.Route("/raids", func(r chi.Router) {
			r.Post("/", raidHandler.HandleCreateRaid)
			r.Route("/{raidID}", func(r chi.Router) {
				r.Get("/", raidHandler.HandleGetRaid)
				r.Get("/signups", raidHandler.HandleListSignups)
				r.Post("/signups", raidHandler.HandleSignup)
				r.Post("/signups/confirm", raidHandler.HandleConfirmSignup)
				r.Post("/signups/eject", raidHandler.HandleEjectSignup)
				r.Post("/grant", raidHandler.HandleGrantRaid)
				r.Post("/reward", raidHandler.HandleReward)
				r.Post("/extend", raidHandler.HandleExtend)
				r.Get("/drops", lootHandler.HandleListDrops)
			})
		})
		r.Put("/reward-schedules", raidHandler.HandleSetRewardSchedule)

		r.Route("/items", func(r chi.Router) {
			r.Post("/", itemHandler.HandleUpsertItem)
			r.Get("/", itemHandler.HandleSearchItems)
			r.Get("/{itemID}", itemHandler.HandleGetItem)
		})

		r.Route("/drops", func(r chi.Router) {
			r.Post("/", lootHandler.HandleRecordDrop)
			r.Route("/{dropID}", func(r chi.Router) {
				r.Get("/", lootHandler.HandleGetDrop)
				r.Post("/bids", lootHandler.HandleSubmitBid)
				r.Get("/preview", lootHandler.HandlePreview)
				r.Post("/award", lootHandler.HandleAward)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// loggingMiddleware attaches a request id to the context and logs the
// request with secrets redacted. Public paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range publicPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start listens until the server is stopped. It returns http.ErrServerClosed
// after a graceful Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
