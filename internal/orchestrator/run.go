package orchestrator

import (
	"context"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
)

// run is the state of one execution.
type run struct {
	req    Request
	rec    telemetry.Recorder
	store  store.Retrying
	time   chrono.API
	record model.ExecutionRecord
}

func (r *run) save(ctx context.Context) error {
	r.record.Logs = r.rec.Lines()
	return r.store.BatchWrite(ctx, []store.Write{{
		Collection: model.ExecutionsCollection,
		ID:         r.record.ID,
		Doc:        r.record,
	}})
}

// enter moves the run into phase and persists the record.
func (r *run) enter(ctx context.Context, phase model.Phase) error {
	r.record.Phase = phase
	return r.save(ctx)
}

func (r *run) end() {
	now := r.time.Now()
	r.record.EndedAt = &now
	r.record.DurationHuman = model.HumanDuration(now.Sub(r.record.StartedAt))
}

func (r *run) finish(ctx context.Context) {
	r.end()
	r.record.Phase = model.PhaseFinish
	r.record.Status = model.StatusFinished
	r.record.OK = true
	err := r.save(ctx)
	if err != nil {
		r.rec.ReportBroken(report_record_save, r.record.ID, err)
	}
}

func (r *run) fail(ctx context.Context, cause error) {
	r.end()
	r.record.Phase = model.PhaseError
	r.record.Status = model.StatusError
	r.record.OK = false
	r.record.Error = cause.Error()
	err := r.save(ctx)
	if err != nil {
		r.rec.ReportBroken(report_record_save, r.record.ID, err)
	}
}
