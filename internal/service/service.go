// Package service implements leaguedecks.v1.LeagueDecksService: the run trigger, execution status,
// summary counts and curation.
package service

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/curation"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/orchestrator"
	"leaguedecks-backend/internal/store"
	leaguedecksv1 "leaguedecks-backend/proto/leaguedecks/v1"
	"leaguedecks-backend/proto/leaguedecks/v1/leaguedecksv1connect"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	report_rpc_internal = "rpc.internal-error"
)

// Runner is satisfied by orchestrator.Orchestrator.
//
// note: fault injection point
type Runner interface {
	Start(ctx context.Context, req orchestrator.Request) (string, error)
	Latest(ctx context.Context) (model.ExecutionRecord, error)
	Counts(ctx context.Context, dateKey string) (map[model.Category]model.CategoryCounts, error)
}

// Curator is satisfied by curation.Service.
type Curator interface {
	AssignDeckNames(ctx context.Context, assignments []curation.Assignment) (curation.Result, error)
}

type Service struct {
	runner  Runner
	curator Curator
	// token guards every procedure with a bearer token when it is not empty.
	token string
	tel   telemetry.API
}

func NewService(runner Runner, curator Curator, token string, tel telemetry.API) Service {
	assert.NotNil(runner, "runner")
	assert.NotNil(curator, "curator")
	assert.NotNil(tel, "tel")

	return Service{
		runner:  runner,
		curator: curator,
		token:   token,
		tel:     telemetry.NewScopedAPI("service", tel),
	}
}

// Handler returns the mount path and handler of the service, the access token check runs after
// any interceptors given in opts.
func (s Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(opts, connect.WithInterceptors(NewAccessTokenInterceptor(s.token)))
	return leaguedecksv1connect.NewLeagueDecksServiceHandler(
		leaguedecksv1connect.NewInstrumentedLeagueDecksServiceClient(s),
		opts...,
	)
}

func (s Service) internalError(err error) error {
	s.tel.ReportBroken(report_rpc_internal, err)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("internal error"))
}

// StartRun only acknowledges the trigger, progress is read from the latest execution.
func (s Service) StartRun(ctx context.Context, req *connect.Request[leaguedecksv1.StartRunRequest]) (*connect.Response[leaguedecksv1.StartRunResponse], error) {
	id, err := s.runner.Start(ctx, orchestrator.Request{
		Date:  req.Msg.GetDate(),
		Force: req.Msg.GetForce(),
	})
	if errors.Is(err, orchestrator.ErrInvalidDate) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		return nil, s.internalError(err)
	}
	return connect.NewResponse(&leaguedecksv1.StartRunResponse{ExecutionId: id}), nil
}

func (s Service) LatestExecution(ctx context.Context, req *connect.Request[leaguedecksv1.LatestExecutionRequest]) (*connect.Response[leaguedecksv1.LatestExecutionResponse], error) {
	record, err := s.runner.Latest(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("no executions yet"))
	}
	if err != nil {
		return nil, s.internalError(err)
	}
	return connect.NewResponse(&leaguedecksv1.LatestExecutionResponse{
		Execution: executionToProto(record),
	}), nil
}

func (s Service) Summary(ctx context.Context, req *connect.Request[leaguedecksv1.SummaryRequest]) (*connect.Response[leaguedecksv1.SummaryResponse], error) {
	date := strings.TrimSpace(req.Msg.GetDate())
	if date == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("date is required"))
	}
	dateKey, err := orchestrator.TargetDate(date, nil)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	counts, err := s.runner.Counts(ctx, dateKey)
	if err != nil {
		return nil, s.internalError(err)
	}
	return connect.NewResponse(&leaguedecksv1.SummaryResponse{
		DateKey:    dateKey,
		Categories: countsToProto(counts),
	}), nil
}

// AssignDeckNames succeeds even when some items failed, the failures are part of the response.
func (s Service) AssignDeckNames(ctx context.Context, req *connect.Request[leaguedecksv1.AssignDeckNamesRequest]) (*connect.Response[leaguedecksv1.AssignDeckNamesResponse], error) {
	if len(req.Msg.GetAssignments()) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("no assignments"))
	}

	assignments := make([]curation.Assignment, len(req.Msg.GetAssignments()))
	for i, a := range req.Msg.GetAssignments() {
		assignments[i] = curation.Assignment{
			GroupID:  a.GetGroupId(),
			DeckName: a.GetDeckName(),
		}
	}

	result, err := s.curator.AssignDeckNames(ctx, assignments)
	if err != nil {
		return nil, s.internalError(err)
	}
	return connect.NewResponse(resultToProto(result)), nil
}
