// Package imagecache resolves the thumbnail image of a deck and caches the result in badger.
package imagecache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"net/url"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("leaguedecks.imagecache")

const (
	report_cache_read    = "cache.read"
	report_cache_write   = "cache.write"
	report_cache_resolve = "cache.resolve"
)

var errImageNotFound = badger.ErrKeyNotFound

// Thumbnailer finds the thumbnail of a deck page, it is satisfied by cardsite.Client.
//
// note: fault injection point
type Thumbnailer interface {
	DeckThumbnail(ctx context.Context, deckURL string) (string, error)
}

type Config struct {
	// Dir is where badger keeps its files, the cache is in memory only when it is empty.
	Dir      string `json:"dir"`
	TTLHours int    `json:"ttl_hours"`
}

type cachedImage struct {
	ImageURL string
	CachedAt int64
}

type Cache struct {
	db     *badger.DB
	source Thumbnailer
	ttl    time.Duration
	tel    telemetry.API
}

// Open opens the badger database described by config.
func Open(config Config) (*badger.DB, error) {
	opts := badger.DefaultOptions(config.Dir).WithLogger(nil)
	if config.Dir == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}

func NewCache(db *badger.DB, source Thumbnailer, config Config, tel telemetry.API) Cache {
	assert.NotNil(db, "db")
	assert.NotNil(source, "source")
	assert.NotNil(tel, "tel")

	ttl := time.Duration(config.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return Cache{
		db:     db,
		source: source,
		ttl:    ttl,
		tel:    telemetry.NewScopedAPI("imagecache", tel),
	}
}

func key(deckURL string) (string, error) {
	parsed, err := url.Parse(deckURL)
	if err != nil {
		return "", err
	}
	// trailing slashes are left alone, deck paths end in the deck id
	normalized := purell.NormalizeURL(
		parsed,
		purell.FlagsSafe|
			purell.FlagRemoveDotSegments|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return "deck-image:" + normalized, nil
}

func (c Cache) get(ctx context.Context, key string) (cachedImage, error) {
	_, span := tracer.Start(ctx, "cache:get")
	defer span.End()
	span.SetAttributes(attribute.String("custom.cache_key", key))

	var cached cachedImage
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&cached)
		})
	})
	if err != nil && !errors.Is(err, errImageNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read cached image")
	}
	return cached, err
}

func (c Cache) set(ctx context.Context, key string, image cachedImage) error {
	_, span := tracer.Start(ctx, "cache:set")
	defer span.End()
	span.SetAttributes(attribute.String("custom.cache_key", key))

	serialized := bytes.NewBuffer(nil)
	err := gob.NewEncoder(serialized).Encode(image)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize image")
		return err
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), serialized.Bytes()).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
	}
	return err
}

// ImageURL returns the thumbnail of a deck, nil when it cannot be resolved. Only successful
// lookups are cached.
func (c Cache) ImageURL(ctx context.Context, deckURL string) *string {
	if deckURL == "" {
		return nil
	}
	k, err := key(deckURL)
	if err != nil {
		c.tel.ReportWarning(report_cache_resolve, fmt.Errorf("cache key: %w", err), deckURL)
		return nil
	}

	cached, err := c.get(ctx, k)
	if err == nil {
		return &cached.ImageURL
	}
	if !errors.Is(err, errImageNotFound) {
		c.tel.ReportWarning(report_cache_read, err, deckURL)
	}

	image, err := c.source.DeckThumbnail(ctx, deckURL)
	if err != nil || image == "" {
		c.tel.ReportDebug(report_cache_resolve, deckURL, err)
		return nil
	}

	err = c.set(ctx, k, cachedImage{ImageURL: image, CachedAt: time.Now().Unix()})
	if err != nil {
		c.tel.ReportWarning(report_cache_write, err, deckURL)
	}
	return &image
}
