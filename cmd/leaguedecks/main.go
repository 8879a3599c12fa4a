package main

import (
	"context"
	"flag"
	"leaguedecks-backend/internal/app"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/configutil"
	"leaguedecks-backend/internal/components/serviceutil"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/orchestrator"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	runNow := flag.Bool("run", false, "Trigger a run for yesterday immediately on start.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	cfg, err := configutil.ReadConfig(*configPath, app.DefaultConfig())
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	InitTelemetry(ctx, *verbose, cfg.Telemetry)
	tel := telemetry.SlogAPI{}

	a, err := app.New(ctx, cfg, tel)
	if err != nil {
		serviceutil.Fatal("init app", err)
	}
	defer func() {
		err := a.Close()
		if err != nil {
			slog.Warn("close app", "err", err)
		}
	}()

	if cfg.Schedule != "" {
		cron := chrono.NewStandardCron(tel)
		defer cron.Stop()
		err = cron.Cron(cfg.Schedule, func() {
			_, err := a.Orchestrator.Run(ctx, orchestrator.Request{})
			if err != nil {
				slog.Error("scheduled run failed", "err", err)
			}
		})
		if err != nil {
			serviceutil.Fatal("schedule daily run", err)
		}
	}

	if *runNow {
		id, err := a.Orchestrator.Start(ctx, orchestrator.Request{})
		if err != nil {
			serviceutil.Fatal("start run", err)
		}
		slog.Info("started run", "execution", id)
	}

	otelIntercept := serviceutil.NewConnectOtelInterceptor()
	mux := http.NewServeMux()
	mux.Handle(a.Service(tel).Handler(connect.WithInterceptors(otelIntercept)))

	go serviceutil.StartHttpServer(ctx, cfg.Port, mux)
	<-ctx.Done()
}

func InitTelemetry(ctx context.Context, verbose bool, config telemetry.Config) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.Setup(ctx, "leaguedecks", config)
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("shutdown telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)
}
