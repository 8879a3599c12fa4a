// Package app wires the pipeline together from configuration.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/curation"
	"leaguedecks-backend/internal/imagecache"
	"leaguedecks-backend/internal/notify"
	"leaguedecks-backend/internal/orchestrator"
	"leaguedecks-backend/internal/scrapers/browser"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/service"
	"leaguedecks-backend/internal/store"

	"github.com/dgraph-io/badger/v4"
)

type App struct {
	Config       Config
	Store        store.Retrying
	Orchestrator orchestrator.Orchestrator
	Curation     curation.Service

	db    *sql.DB
	cache *badger.DB
}

// New opens every resource the pipeline needs, Close releases them.
func New(ctx context.Context, config Config, tel telemetry.API) (App, error) {
	sqlStore, db, err := config.Database.Open(ctx)
	if err != nil {
		return App{}, fmt.Errorf("open database: %w", err)
	}
	s := store.NewRetrying(sqlStore, config.Retry.Policy(), nil)

	client, err := cardsite.NewClient(config.Upstream, tel)
	if err != nil {
		db.Close()
		return App{}, fmt.Errorf("upstream client: %w", err)
	}

	cacheDB, err := imagecache.Open(config.ImageCache)
	if err != nil {
		db.Close()
		return App{}, fmt.Errorf("open image cache: %w", err)
	}

	chrome := browser.NewChrome(config.Browser, tel)
	ladder := acquire.NewStandardLadder(client, chrome, config.Acquire, tel)

	notifiers := notify.Multi{notify.NewTelemetryNotifier(tel)}
	if config.Smtp.Enabled() {
		notifiers = append(notifiers, notify.NewEmailNotifier(config.Smtp))
	}

	o := orchestrator.NewOrchestrator(orchestrator.Dependencies{
		Store:         s,
		Listing:       client,
		Ladder:        ladder,
		Images:        imagecache.NewCache(cacheDB, client, config.ImageCache, tel),
		Notifier:      notifiers,
		Time:          chrono.NewStandardImpl(),
		Tel:           tel,
		Probe:         config.Probe,
		RescueOnForce: config.Acquire.RescueOnForce,
	})

	return App{
		Config:       config,
		Store:        s,
		Orchestrator: o,
		Curation:     curation.NewService(s, tel),
		db:           db,
		cache:        cacheDB,
	}, nil
}

// Service is the http api of the app.
func (a App) Service(tel telemetry.API) service.Service {
	return service.NewService(a.Orchestrator, a.Curation, a.Config.Token, tel)
}

func (a App) Close() error {
	return errors.Join(a.cache.Close(), a.db.Close())
}
