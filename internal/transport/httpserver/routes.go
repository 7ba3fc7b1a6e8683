package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus"
	"tweet-app-go/internal/auth"
	"tweet-app-go/internal/config"
	"tweet-app-go/internal/metrics"
	authmw "tweet-app-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, schema graphql.Schema, codec *auth.Codec, collector *metrics.Collector, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler(reg))

	gql := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.Env == "development",
	})

	identity := authmw.NewIdentity(codec)
	r.With(identity.Middleware, collector.Middleware).Handle("/graphql", gql)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
