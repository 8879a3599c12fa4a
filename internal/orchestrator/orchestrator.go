// Package orchestrator runs the pipeline for one target date and keeps its execution record.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/collector"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/notify"
	"leaguedecks-backend/internal/probe"
	"leaguedecks-backend/internal/snapshot"
	"leaguedecks-backend/internal/store"
	"leaguedecks-backend/internal/summary"
	"regexp"
	"strings"

	"github.com/mazen160/go-random"
)

const (
	report_run_started  = "run.started"
	report_run_finished = "run.finished"
	report_run_failed   = "run.failed"
	report_notify       = "run.notify-failed"
	report_record_save  = "run.record-save-failed"
)

var dateKeyRegex = regexp.MustCompile(`^\d{8}$`)

var ErrInvalidDate = errors.New("invalid target date")

type Request struct {
	// Date overrides the target date, it must be YYYYMMDD. The previous day in UTC+9 is used
	// when it is empty.
	Date  string
	Force bool
}

// Dependencies are shared by every run, the store and telemetry are rescoped per run so each
// run captures its own logs.
type Dependencies struct {
	Store    store.Retrying
	Listing  probe.Listing
	Ladder   collector.Acquirer
	Images   snapshot.ImageResolver
	Notifier notify.Notifier
	Time     chrono.API
	Tel      telemetry.API

	Probe         probe.Config
	RescueOnForce bool
}

type Orchestrator struct {
	deps Dependencies
	tel  telemetry.API
}

func NewOrchestrator(deps Dependencies) Orchestrator {
	assert.NotNil(deps.Listing, "listing")
	assert.NotNil(deps.Ladder, "ladder")
	assert.NotNil(deps.Images, "images")
	assert.NotNil(deps.Notifier, "notifier")
	assert.NotNil(deps.Time, "time")
	assert.NotNil(deps.Tel, "tel")

	return Orchestrator{
		deps: deps,
		tel:  telemetry.NewScopedAPI("orchestrator", deps.Tel),
	}
}

// TargetDate validates an override or falls back to yesterday in UTC+9.
func TargetDate(override string, time chrono.API) (string, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return chrono.Yesterday(time), nil
	}
	if !dateKeyRegex.MatchString(override) {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidDate, override)
	}
	_, err := chrono.ParseDateKey(override)
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidDate, override)
	}
	return override, nil
}

// newExecutionID is sortable by start time, the suffix keeps concurrent triggers apart.
func (o Orchestrator) newExecutionID() (string, error) {
	suffix, err := random.String(6)
	if err != nil {
		return "", err
	}
	now := o.deps.Time.Now().In(chrono.JST)
	return fmt.Sprintf("%s-%s", now.Format("20060102-150405.000"), suffix), nil
}

// Start validates the request, persists a running record and continues the run in the
// background. It returns the execution id right away.
func (o Orchestrator) Start(ctx context.Context, req Request) (string, error) {
	r, err := o.begin(ctx, req)
	if err != nil {
		return "", err
	}
	go o.execute(context.WithoutCancel(ctx), r)
	return r.record.ID, nil
}

// Run executes a whole run and returns its final record, the error is the one that ended the
// run, if any.
func (o Orchestrator) Run(ctx context.Context, req Request) (model.ExecutionRecord, error) {
	r, err := o.begin(ctx, req)
	if err != nil {
		return model.ExecutionRecord{}, err
	}
	err = o.execute(ctx, r)
	return r.record, err
}

func (o Orchestrator) begin(ctx context.Context, req Request) (*run, error) {
	if req.Date != "" {
		_, err := TargetDate(req.Date, o.deps.Time)
		if err != nil {
			return nil, err
		}
	}
	id, err := o.newExecutionID()
	if err != nil {
		return nil, err
	}

	rec := telemetry.NewRecorder(o.tel)
	r := &run{
		req:   req,
		rec:   rec,
		store: o.deps.Store.WithSink(rec),
		time:  o.deps.Time,
		record: model.ExecutionRecord{
			ID:        id,
			Status:    model.StatusRunning,
			Phase:     model.PhaseStart,
			Force:     req.Force,
			StartedAt: o.deps.Time.Now(),
			Logs:      []string{},
		},
	}
	err = r.save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create execution record: %w", err)
	}
	o.tel.ReportDebug(report_run_started, id)
	return r, nil
}

// Latest returns the most recently started execution, store.ErrNotFound if there is none.
func (o Orchestrator) Latest(ctx context.Context) (model.ExecutionRecord, error) {
	records, err := store.QueryAs[model.ExecutionRecord](ctx, o.deps.Store, store.Query{
		Collection: model.ExecutionsCollection,
		OrderBy:    []store.Order{{Field: store.IDField, Desc: true}},
		Limit:      1,
	})
	if err != nil {
		return model.ExecutionRecord{}, err
	}
	if len(records) == 0 {
		return model.ExecutionRecord{}, store.ErrNotFound
	}
	return records[0], nil
}

func (o Orchestrator) Get(ctx context.Context, id string) (model.ExecutionRecord, error) {
	return store.GetAs[model.ExecutionRecord](ctx, o.deps.Store, model.ExecutionsCollection, id)
}

// Counts recomputes the summary counts of a date.
func (o Orchestrator) Counts(ctx context.Context, dateKey string) (map[model.Category]model.CategoryCounts, error) {
	return summary.Counts(ctx, o.deps.Store, dateKey)
}

func (o Orchestrator) execute(ctx context.Context, r *run) error {
	err := o.steps(ctx, r)
	if err != nil {
		o.tel.ReportBroken(report_run_failed, r.record.ID, err)
		r.fail(ctx, err)
		return err
	}
	r.finish(ctx)
	o.tel.ReportDebug(report_run_finished, r.record.ID, r.record.DurationHuman)
	return nil
}

func (o Orchestrator) steps(ctx context.Context, r *run) error {
	err := r.enter(ctx, model.PhaseTargetDate)
	if err != nil {
		return err
	}
	dateKey, err := TargetDate(r.req.Date, o.deps.Time)
	if err != nil {
		return err
	}
	r.record.TargetDate = dateKey
	sum := &model.Summary{DateKey: dateKey}
	r.record.Summary = sum

	err = r.enter(ctx, model.PhaseProbe)
	if err != nil {
		return err
	}
	probed, err := probe.NewProbe(o.deps.Listing, r.store, o.deps.Probe, o.deps.Time, r.rec).
		Run(ctx, dateKey)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	sum.ProbedEvents = len(probed.EventIDs)
	sum.NewEvents = len(probed.NewEventIDs)

	if len(probed.EventIDs) == 0 {
		err = r.enter(ctx, model.PhaseNotifyEmpty)
		if err != nil {
			return err
		}
		o.notify(ctx, r, notify.Message{
			Kind:        notify.KindEmpty,
			ExecutionID: r.record.ID,
			DateKey:     dateKey,
			Summary:     *sum,
		})
		return nil
	}

	err = r.enter(ctx, model.PhaseCollect)
	if err != nil {
		return err
	}
	collected, err := collector.NewCollector(r.store, o.deps.Ladder, o.deps.RescueOnForce, o.deps.Time, r.rec).
		Run(ctx, dateKey, probed.EventIDs, r.req.Force)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	sum.CollectedRows = collected.Rows

	err = r.enter(ctx, model.PhaseBuildSnapshots)
	if err != nil {
		return err
	}
	_, err = snapshot.NewBuilder(r.store, o.deps.Images, o.deps.Time, r.rec).
		Build(ctx, dateKey, r.req.Force, probed.EventIDs)
	if err != nil {
		return fmt.Errorf("build snapshots: %w", err)
	}

	err = r.enter(ctx, model.PhaseSummarize)
	if err != nil {
		return err
	}
	counts, err := summary.Counts(ctx, r.store, dateKey)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	sum.Categories = counts

	err = r.enter(ctx, model.PhaseNotify)
	if err != nil {
		return err
	}
	o.notify(ctx, r, notify.Message{
		Kind:        notify.KindSummary,
		ExecutionID: r.record.ID,
		DateKey:     dateKey,
		Summary:     *sum,
	})
	return nil
}

// notify failures end up in the run logs, the run itself stays successful.
func (o Orchestrator) notify(ctx context.Context, r *run, msg notify.Message) {
	err := o.deps.Notifier.Notify(ctx, msg)
	if err != nil {
		r.rec.ReportWarning(report_notify, err)
	}
}
