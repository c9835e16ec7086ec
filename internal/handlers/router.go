// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Pinger はヘルスチェックで疎通確認する対象です (*sql.DB が満たします)。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers はルーティング対象のハンドラ一式です。
type Handlers struct {
	Item    *ItemHandler
	Session *SessionHandler
	Review  *ReviewHandler
	Stats   *StatsHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	CORS           config.CORSConfig
	MetricsEnabled bool
	RequestTimeout time.Duration
	DB             Pinger
}

// NewRouter はミドルウェアと API ルートを設定したルーターを返します。
func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if opts.MetricsEnabled {
		r.Use(middleware.MetricsMiddleware)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   opts.CORS.AllowedOrigins,
		AllowedMethods:   opts.CORS.AllowedMethods,
		AllowedHeaders:   opts.CORS.AllowedHeaders,
		ExposedHeaders:   opts.CORS.ExposedHeaders,
		AllowCredentials: opts.CORS.AllowCredentials,
		MaxAge:           opts.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.Item.PostItem)
			r.Get("/", h.Item.GetItems)
			r.Get("/{item_id}", h.Item.GetItem)
			r.Post("/{item_id}/sentences", h.Item.PostSentence)
		})
		r.Get("/session", h.Session.GetSession)
		r.Put("/reviews/{item_id}/{sentence_id}/result", h.Review.PutReviewResult)
		r.Get("/stats", h.Stats.GetStats)
	})

	r.Get("/health", healthHandler(opts.DB, logger))
	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

func healthHandler(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
