package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"roamio/internal/adapters/observability"
	redisad "roamio/internal/adapters/redis"
	"roamio/internal/app"
	"roamio/internal/shared"
	mysqlrepo "roamio/internal/storage/mysql"
)

// warmer preloads the partner cache so the first page hit after a deploy or
// cache flush doesn't pay the cold-read cost for every popular partner.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.WarmWorkers).
		Int("limit", cfg.WarmLimit).
		Msg("cache warmer starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewPartnerQueries(repo, cache, cfg.CacheTTL)

	ids, err := repo.ListPartnerIDs(ctx, cfg.WarmLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("listing partner ids failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup

	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(partnerID string) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := q.LookupPartner(ctx, partnerID); err != nil {
				log.Warn().Str("id", partnerID).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("id", partnerID).Msg("warm ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int("partners", len(ids)).Msg("cache warm completed")
}
