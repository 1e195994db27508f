// Command builder generates one site from the command line: either by
// cloning a source page or by rendering a stored template. The hotel record
// is read from a JSON file in the same flat shape the API accepts.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_builder/internal/adapters/fetch"
	"hotel_builder/internal/adapters/observability"
	redisad "hotel_builder/internal/adapters/redis"
	"hotel_builder/internal/app"
	"hotel_builder/internal/clone"
	"hotel_builder/internal/domain"
	"hotel_builder/internal/shared"
	mysqlrepo "hotel_builder/internal/storage/mysql"
	"hotel_builder/internal/template"
)

func main() {
	var (
		sourceURL = flag.String("source", "", "URL of the page to clone")
		tplName   = flag.String("template", "", "stored template name to render instead of cloning")
		hotelFile = flag.String("hotel", "hotel.json", "path to the hotel JSON file")
		persist   = flag.Bool("persist", false, "upsert the hotel and record the build in MySQL")
	)
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if (*sourceURL == "") == (*tplName == "") {
		log.Fatal().Msg("exactly one of -source or -template is required")
	}

	raw, err := os.ReadFile(*hotelFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *hotelFile).Msg("read hotel file failed")
	}
	var data app.SimpleHotelData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatal().Err(err).Msg("hotel file is not valid JSON")
	}
	hotel := data.ToHotel()

	var (
		hotelRepo domain.HotelRepository
		siteRepo  domain.SiteRepository
		cache     domain.Cache
	)
	if *persist {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		repo := mysqlrepo.New(db)
		hotelRepo, siteRepo = repo, repo
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	fetcher := fetch.New(cfg.FetchTimeout, cfg.FetchRetries, cfg.FetchRPS)
	engine := clone.NewEngine(fetcher, cfg.SitesDir, cfg.AssetWorkers, log.Logger)
	templates := template.NewFSStore(cfg.TemplatesDir)
	svc := app.NewBuildService(engine, templates, hotelRepo, siteRepo, cache, cfg.SitesDir, cfg.CacheTTL, log.Logger)

	ctx := context.Background()
	var art domain.SiteArtifact
	switch {
	case *sourceURL != "" && *persist:
		art, err = svc.CloneSiteWithRecord(ctx, *sourceURL, hotel)
	case *sourceURL != "":
		art, err = svc.CloneSite(ctx, *sourceURL, hotel)
	default:
		art, err = svc.BuildFromTemplate(ctx, *tplName, hotel)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
	log.Info().
		Str("slug", art.Slug).
		Str("dir", art.OutputDir).
		Str("strategy", art.Strategy).
		Msg("site generated")
}
