package app

import (
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/components/retry"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/imagecache"
	"leaguedecks-backend/internal/notify"
	"leaguedecks-backend/internal/probe"
	"leaguedecks-backend/internal/scrapers/browser"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/store"
	"time"
)

type RetryConfig struct {
	MaxRetry    int `json:"max_retry"`
	BaseDelayMs int `json:"base_delay_ms"`
	MaxDelayMs  int `json:"max_delay_ms"`
}

func (c RetryConfig) Policy() retry.Policy {
	return retry.Policy{
		MaxRetry:  c.MaxRetry,
		BaseDelay: time.Duration(c.BaseDelayMs) * time.Millisecond,
		MaxDelay:  time.Duration(c.MaxDelayMs) * time.Millisecond,
	}
}

type Config struct {
	Port int `json:"port"`
	// Token is the bearer token every rpc requires, the service is open when it is empty.
	Token string `json:"token"`
	// Schedule is a cron spec evaluated in UTC+9, an empty schedule disables daily runs.
	Schedule string `json:"schedule"`

	Database   store.Config      `json:"database"`
	Retry      RetryConfig       `json:"retry"`
	Upstream   cardsite.Config   `json:"upstream"`
	Browser    browser.Config    `json:"browser"`
	Probe      probe.Config      `json:"probe"`
	Acquire    acquire.Config    `json:"acquire"`
	ImageCache imagecache.Config `json:"image_cache"`
	Smtp       notify.SmtpConfig `json:"smtp"`
	Telemetry  telemetry.Config  `json:"telemetry"`
}

func DefaultConfig() Config {
	policy := retry.DefaultPolicy()
	return Config{
		Port:     8000,
		Schedule: "0 6 * * *",
		Database: store.Config{
			Driver: store.DriverSqlite,
			File:   "data/leaguedecks.db",
		},
		Retry: RetryConfig{
			MaxRetry:    policy.MaxRetry,
			BaseDelayMs: int(policy.BaseDelay / time.Millisecond),
			MaxDelayMs:  int(policy.MaxDelay / time.Millisecond),
		},
		Upstream: cardsite.DefaultConfig(),
		Browser: browser.Config{
			TimeoutSeconds: 45,
		},
		Probe:   probe.DefaultConfig(),
		Acquire: acquire.DefaultConfig(),
		ImageCache: imagecache.Config{
			Dir:      "data/image-cache",
			TTLHours: 24,
		},
		Smtp: notify.SmtpConfig{
			Port: 587,
		},
	}
}
