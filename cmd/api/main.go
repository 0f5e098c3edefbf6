package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"roamio/internal/adapters/authsvc"
	server "roamio/internal/adapters/http_server"
	"roamio/internal/adapters/observability"
	redisad "roamio/internal/adapters/redis"
	"roamio/internal/app"
	"roamio/internal/shared"
	mysqlrepo "roamio/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps — explicitly constructed and injected, nothing process-global
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	auth, err := authsvc.New(cfg.AuthBase, cfg.AuthKey, cfg.AuthRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth client")
	}
	q := app.NewPartnerQueries(repo, cache, cfg.CacheTTL)
	sess := app.NewSessionService(auth, repo, cfg.AuthTimeout)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, S: sess, CookieName: cfg.AuthCookie})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
