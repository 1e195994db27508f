package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_builder/internal/adapters/fetch"
	server "hotel_builder/internal/adapters/http_server"
	"hotel_builder/internal/adapters/observability"
	redisad "hotel_builder/internal/adapters/redis"
	"hotel_builder/internal/app"
	"hotel_builder/internal/clone"
	"hotel_builder/internal/shared"
	mysqlrepo "hotel_builder/internal/storage/mysql"
	"hotel_builder/internal/template"
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

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	fetcher := fetch.New(cfg.FetchTimeout, cfg.FetchRetries, cfg.FetchRPS)
	engine := clone.NewEngine(fetcher, cfg.SitesDir, cfg.AssetWorkers, log.Logger)
	templates := template.NewFSStore(cfg.TemplatesDir)
	svc := app.NewBuildService(engine, templates, repo, repo, cache, cfg.SitesDir, cfg.CacheTTL, log.Logger)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{B: svc, SitesDir: cfg.SitesDir})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
