package service

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/serviceutil"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/curation"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/orchestrator"
	"leaguedecks-backend/internal/store"
	leaguedecksv1 "leaguedecks-backend/proto/leaguedecks/v1"
	"leaguedecks-backend/proto/leaguedecks/v1/leaguedecksv1connect"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	started []orchestrator.Request
	latest  *model.ExecutionRecord
	err     error
}

func (f *fakeRunner) Start(ctx context.Context, req orchestrator.Request) (string, error) {
	if req.Date != "" {
		_, err := orchestrator.TargetDate(req.Date, nil)
		if err != nil {
			return "", err
		}
	}
	if f.err != nil {
		return "", f.err
	}
	f.started = append(f.started, req)
	return fmt.Sprintf("exec-%d", len(f.started)), nil
}

func (f *fakeRunner) Latest(ctx context.Context) (model.ExecutionRecord, error) {
	if f.latest == nil {
		return model.ExecutionRecord{}, store.ErrNotFound
	}
	return *f.latest, nil
}

func (f *fakeRunner) Counts(ctx context.Context, dateKey string) (map[model.Category]model.CategoryCounts, error) {
	return map[model.Category]model.CategoryCounts{
		model.CategoryJunior: {},
		model.CategoryOpen:   {Events: 1, Rankings: 13},
	}, nil
}

type fakeCurator struct{}

func (fakeCurator) AssignDeckNames(ctx context.Context, assignments []curation.Assignment) (curation.Result, error) {
	result := curation.Result{Updated: []curation.Updated{}, Failed: []curation.Failure{}}
	for _, a := range assignments {
		if a.GroupID == "broken" {
			result.Failed = append(result.Failed, curation.Failure{GroupID: a.GroupID, Error: "invalid group id"})
			continue
		}
		result.Updated = append(result.Updated, curation.Updated{GroupID: a.GroupID, DeckName: a.DeckName})
	}
	return result, nil
}

func setup(t *testing.T, runner *fakeRunner, token string, opts ...connect.ClientOption) (leaguedecksv1connect.LeagueDecksServiceClient, string) {
	t.Helper()
	svc := NewService(runner, fakeCurator{}, token, telemetry.NewRecorder(nil))
	mux := http.NewServeMux()
	mux.Handle(svc.Handler())
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return leaguedecksv1connect.NewLeagueDecksServiceClient(server.Client(), server.URL, opts...), server.URL
}

func TestStartRun(t *testing.T) {
	runner := &fakeRunner{}
	client, _ := setup(t, runner, "")
	ctx := context.Background()

	res, err := client.StartRun(ctx, connect.NewRequest(&leaguedecksv1.StartRunRequest{
		Date:  "20250307",
		Force: true,
	}))
	require.NoError(t, err)
	require.Equal(t, "exec-1", res.Msg.GetExecutionId())
	require.Equal(t, []orchestrator.Request{{Date: "20250307", Force: true}}, runner.started)

	_, err = client.StartRun(ctx, connect.NewRequest(&leaguedecksv1.StartRunRequest{}))
	require.NoError(t, err)
	require.Len(t, runner.started, 2)

	_, err = client.StartRun(ctx, connect.NewRequest(&leaguedecksv1.StartRunRequest{Date: "2025-03-07"}))
	require.Error(t, err)
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestStartRunJSON(t *testing.T) {
	runner := &fakeRunner{}
	_, baseURL := setup(t, runner, "")

	var body map[string]any
	res, err := resty.New().R().
		SetHeader("content-type", "application/json").
		SetBody(`{"date": "20250307", "force": true}`).
		SetResult(&body).
		Post(baseURL + leaguedecksv1connect.LeagueDecksServiceStartRunProcedure)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	require.Equal(t, "exec-1", body["executionId"])
	require.Equal(t, []orchestrator.Request{{Date: "20250307", Force: true}}, runner.started)
}

func TestStartRunInternalError(t *testing.T) {
	client, _ := setup(t, &fakeRunner{err: errors.New("store down")}, "")
	_, err := client.StartRun(context.Background(), connect.NewRequest(&leaguedecksv1.StartRunRequest{}))
	require.Error(t, err)
	require.Equal(t, connect.CodeInternal, connect.CodeOf(err))
	require.NotContains(t, err.Error(), "store down")
}

func TestLatestExecution(t *testing.T) {
	runner := &fakeRunner{}
	client, _ := setup(t, runner, "")
	ctx := context.Background()

	_, err := client.LatestExecution(ctx, connect.NewRequest(&leaguedecksv1.LatestExecutionRequest{}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	started := time.Date(2025, 3, 7, 21, 0, 0, 0, time.UTC)
	ended := started.Add(90 * time.Second)
	runner.latest = &model.ExecutionRecord{
		ID:            "20250308-060000.000-abcdef",
		Status:        model.StatusFinished,
		Phase:         model.PhaseFinish,
		TargetDate:    "20250307",
		StartedAt:     started,
		EndedAt:       &ended,
		DurationHuman: "1m30s",
		OK:            true,
		Logs:          []string{"probe: 2 events"},
		Summary: &model.Summary{
			DateKey:       "20250307",
			ProbedEvents:  2,
			CollectedRows: 13,
			Categories: map[model.Category]model.CategoryCounts{
				model.CategoryOpen: {Events: 1, Rankings: 13, Snapshotted: true},
			},
		},
	}
	res, err := client.LatestExecution(ctx, connect.NewRequest(&leaguedecksv1.LatestExecutionRequest{}))
	require.NoError(t, err)

	e := res.Msg.GetExecution()
	require.Equal(t, runner.latest.ID, e.GetId())
	require.Equal(t, string(model.StatusFinished), e.GetStatus())
	require.True(t, e.GetOk())
	require.Equal(t, started.UnixMilli(), e.GetStartedAt())
	require.Equal(t, ended.UnixMilli(), e.GetEndedAt())
	require.Equal(t, []string{"probe: 2 events"}, e.GetLogs())
	require.EqualValues(t, 13, e.GetSummary().GetCollectedRows())
	require.Len(t, e.GetSummary().GetCategories(), 1)
	require.True(t, e.GetSummary().GetCategories()[0].GetSnapshotted())
}

func TestSummary(t *testing.T) {
	client, _ := setup(t, &fakeRunner{}, "")
	ctx := context.Background()

	res, err := client.Summary(ctx, connect.NewRequest(&leaguedecksv1.SummaryRequest{Date: "20250307"}))
	require.NoError(t, err)
	require.Equal(t, "20250307", res.Msg.GetDateKey())

	categories := res.Msg.GetCategories()
	require.Len(t, categories, 2)
	require.Equal(t, string(model.CategoryOpen), categories[0].GetCategory())
	require.EqualValues(t, 13, categories[0].GetRankings())
	require.Equal(t, string(model.CategoryJunior), categories[1].GetCategory())

	for _, date := range []string{"", " ", "0307", "2025-03-07"} {
		_, err := client.Summary(ctx, connect.NewRequest(&leaguedecksv1.SummaryRequest{Date: date}))
		require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err), date)
	}
}

func TestAssignDeckNames(t *testing.T) {
	client, _ := setup(t, &fakeRunner{}, "")
	ctx := context.Background()

	res, err := client.AssignDeckNames(ctx, connect.NewRequest(&leaguedecksv1.AssignDeckNamesRequest{
		Assignments: []*leaguedecksv1.DeckNameAssignment{
			{GroupId: "20250307_event-20250307-open-001_1_0", DeckName: "Gardevoir ex"},
			{GroupId: "broken", DeckName: "x"},
		},
	}))
	require.NoError(t, err)
	require.Len(t, res.Msg.GetUpdated(), 1)
	require.Equal(t, "Gardevoir ex", res.Msg.GetUpdated()[0].GetDeckName())
	require.Len(t, res.Msg.GetFailed(), 1)
	require.Equal(t, "broken", res.Msg.GetFailed()[0].GetGroupId())

	_, err = client.AssignDeckNames(ctx, connect.NewRequest(&leaguedecksv1.AssignDeckNamesRequest{}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestAccessToken(t *testing.T) {
	ctx := context.Background()
	req := func() *connect.Request[leaguedecksv1.StartRunRequest] {
		return connect.NewRequest(&leaguedecksv1.StartRunRequest{})
	}

	client, _ := setup(t, &fakeRunner{}, "secret")
	_, err := client.StartRun(ctx, req())
	require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	wrong, _ := setup(t, &fakeRunner{}, "secret", connect.WithInterceptors(serviceutil.ProvideAccessTokenInterceptor("wrong")))
	_, err = wrong.StartRun(ctx, req())
	require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	runner := &fakeRunner{}
	right, _ := setup(t, runner, "secret", connect.WithInterceptors(serviceutil.ProvideAccessTokenInterceptor("secret")))
	res, err := right.StartRun(ctx, req())
	require.NoError(t, err)
	require.Equal(t, "exec-1", res.Msg.GetExecutionId())
	require.Len(t, runner.started, 1)
}

func TestAccessTokenInterceptorVerify(t *testing.T) {
	require.NoError(t, NewAccessTokenInterceptor("").verify(""))
	require.NoError(t, NewAccessTokenInterceptor("secret").verify("Bearer secret"))
	for _, header := range []string{"", "secret", "Bearer", "Bearer wrong", "Basic secret", "bearer secret"} {
		err := NewAccessTokenInterceptor("secret").verify(header)
		require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err), header)
	}
}
