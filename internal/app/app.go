package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"tweet-app-go/internal/auth"
	"tweet-app-go/internal/config"
	"tweet-app-go/internal/db"
	profiledomain "tweet-app-go/internal/domain/profile"
	tweetdomain "tweet-app-go/internal/domain/tweet"
	userdomain "tweet-app-go/internal/domain/user"
	"tweet-app-go/internal/graph"
	"tweet-app-go/internal/graph/permission"
	"tweet-app-go/internal/metrics"
	profilerepo "tweet-app-go/internal/repository/postgres/profile"
	tweetrepo "tweet-app-go/internal/repository/postgres/tweet"
	userrepo "tweet-app-go/internal/repository/postgres/user"
	"tweet-app-go/internal/transport/httpserver"
	"tweet-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn); err != nil {
			return nil, err
		}
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	profiles := profiledomain.NewService(profilerepo.NewPostgres(dbConn))
	tweets := tweetdomain.NewService(tweetrepo.NewPostgres(dbConn))

	codec := auth.NewCodec(auth.CodecConfig{
		Secret: cfg.Auth.Secret,
		TTL:    cfg.Auth.TokenTTL,
	})

	log.Info("app: building schema")
	resolver := graph.NewResolver(users, profiles, tweets, codec, log)
	schema, err := graph.NewSchema(resolver, permission.Default())
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, schema, codec, collector, reg)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
