package fuzzing

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/telemetry"
	"math/rand"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Target holds some state and exposes every way to mutate it as a "step", a method with the
// signature:
//
// `Step*(ctx context.Context, res *Results) error`
//
// Steps are picked (and given inputs) deterministically from a seed, a step returns an error
// when an invariant of the state is violated.
//
// Errors do not include dependency failures (an injected store fault) since those are what
// fault injection is for.
//
// If a method matching the signature:
//
// `OnEnd(ctx context.Context, res *Results)`
//
// is present, it will be called at the end of the fuzz path.
type Target interface{}

func getTargetMethods(target Target) (steps []reflect.Method, onEnd *reflect.Method) {
	t := reflect.TypeOf(target)
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	resType := reflect.TypeOf(&Results{})
	errType := reflect.TypeOf((*error)(nil)).Elem()

	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		methodType := method.Type

		if methodType.NumIn() != 3 {
			continue
		}
		if methodType.In(1) != ctxType || methodType.In(2) != resType {
			continue
		}

		if method.Name == "OnEnd" {
			onEnd = &method
			continue
		}

		if methodType.NumOut() != 1 || methodType.Out(0) != errType {
			continue
		}
		if !strings.HasPrefix(method.Name, "Step") {
			continue
		}

		steps = append(steps, method)
	}

	return steps, onEnd
}

// Results contains the state of the fuzzing.
type Results struct {
	failures []error
	steps    []string
}

func (r *Results) Fail(err error) {
	r.failures = append(r.failures, err)
}

func (r *Results) Failures() []error {
	return r.failures
}

func (r *Results) formatFails() string {
	var out strings.Builder

	out.WriteString("====== CHECKS FAILED ======\n\n")
	for _, err := range r.failures {
		out.WriteString(fmt.Sprintf("\t- %v\n", err))
	}
	out.WriteString("\nsteps: ")
	out.WriteString(strings.Join(r.steps, " -> "))

	return out.String()
}

type TargetProvider interface {
	CreateTarget(tel telemetry.API, rndm *rand.Rand) (Target, error)
}

// F is a fuzzing job on a given fuzz target.
type F struct {
	tel telemetry.API

	provider TargetProvider
	steps    []reflect.Method
	onEnd    *reflect.Method

	minSteps uint64
	maxSteps uint64
	usePath  bool
	path     Path
}

// New creates a new fuzzing job.
//
// note: path is an optional parameter (it can be provided the zero value),
// if it has more than 0 steps, it will skip exploring various fuzzing paths
// and only execute the one given.
func New(
	tel telemetry.API,
	provider TargetProvider,
	minSteps, maxSteps uint64,
	path Path,
) (F, error) {
	if maxSteps <= minSteps {
		return F{}, fmt.Errorf("max steps (%d) must be larger than min steps (%d)", maxSteps, minSteps)
	}

	f := F{
		tel:      telemetry.NewScopedAPI("fuzzer", tel),
		provider: provider,
		minSteps: minSteps,
		maxSteps: maxSteps,
		path:     path,
		usePath:  path.Steps > 0,
	}

	target, err := provider.CreateTarget(telemetry.NoopAPI{}, rand.New(rand.NewSource(0)))
	if err != nil {
		return F{}, err
	}
	f.steps, f.onEnd = getTargetMethods(target)
	if len(f.steps) == 0 {
		return F{}, fmt.Errorf("target %T has no steps", target)
	}

	return f, nil
}

func (f F) runStep(target Target, stepIdx int, ctx context.Context, results *Results) {
	step := f.steps[stepIdx]
	results.steps = append(results.steps, step.Name)

	outs := step.Func.Call([]reflect.Value{
		reflect.ValueOf(target),
		reflect.ValueOf(ctx),
		reflect.ValueOf(results),
	})
	val := outs[0].Interface()
	if val == nil {
		return
	}
	results.Fail(fmt.Errorf("%s: %w", step.Name, val.(error)))
}

func (f F) runOnEnd(target Target, ctx context.Context, results *Results) {
	if f.onEnd == nil {
		return
	}
	f.onEnd.Func.Call([]reflect.Value{
		reflect.ValueOf(target),
		reflect.ValueOf(ctx),
		reflect.ValueOf(results),
	})
}

// RunPath runs a specific Path (that is, a seed and a step count) on a fresh target.
func (f F) RunPath(ctx context.Context, tel telemetry.API, path Path) (*Results, error) {
	rndm := rand.New(rand.NewSource(path.Seed))
	target, err := f.provider.CreateTarget(tel, rndm)
	if err != nil {
		return nil, err
	}

	results := &Results{}
	for i := int64(0); i < path.Steps; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.runStep(target, rndm.Intn(len(f.steps)), ctx, results)
	}
	f.runOnEnd(target, ctx, results)

	return results, nil
}

// fuzzWorker does the job of exploring the state space of a given fuzz target.
func (f F) fuzzWorker(ctx context.Context, cancel func(), count *uint64) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		seed := rand.Int63()
		steps := int64(f.minSteps) + rand.New(rand.NewSource(seed)).Int63n(int64(f.maxSteps-f.minSteps))
		path := Path{Seed: seed, Steps: steps}

		results, err := f.RunPath(ctx, telemetry.NoopAPI{}, path)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			f.tel.ReportBroken("encountered fatal error", err)
			cancel()
			return
		}

		atomic.AddUint64(count, 1)

		if len(results.failures) == 0 {
			continue
		}

		f.tel.ReportBroken(fmt.Sprintf(
			"%s\npath: %s\n",
			results.formatFails(),
			path,
		))
		cancel()
		return
	}
}

// StartFuzzTest blocks until ctx is done or a failure is found, it explores the target's state
// space on every cpu.
func (f F) StartFuzzTest(ctx context.Context) {
	if f.usePath {
		f.tel.ReportDebug("running single fuzz path", telemetry.KV{Key: "path", Value: f.path})

		results, err := f.RunPath(ctx, f.tel, f.path)
		if err != nil {
			f.tel.ReportBroken("encountered fatal error", err)
			return
		}
		if len(results.failures) == 0 {
			f.tel.ReportDebug("no failures")
			return
		}

		f.tel.ReportBroken(results.formatFails())
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cpus := runtime.NumCPU()
	f.tel.ReportDebug("starting fuzzing on all threads", telemetry.KV{Key: "count", Value: cpus})

	var count uint64
	countPtr := &count

	for range cpus {
		go f.fuzzWorker(ctx, cancel, countPtr)
	}

	timer := time.NewTicker(time.Second)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			f.tel.ReportDebug(
				"run paths count",
				telemetry.KV{Key: "count", Value: atomic.LoadUint64(countPtr)},
			)
		}
	}
}

// Path represents a seed and the number of steps to take on a given fuzz target.
type Path struct {
	Seed  int64
	Steps int64
}

func (p Path) String() string {
	return fmt.Sprintf("%d:%d", p.Seed, p.Steps)
}

// ParsePath parses the "seed:steps" form printed on failures.
func ParsePath(text string) (Path, error) {
	segments := strings.Split(text, ":")
	if len(segments) != 2 {
		return Path{}, fmt.Errorf("parse fuzz path: expected exactly one separator in '%s'", text)
	}

	seed, err := strconv.ParseInt(segments[0], 10, 64)
	if err != nil {
		return Path{}, fmt.Errorf("parse fuzz path: %w", err)
	}
	steps, err := strconv.ParseInt(segments[1], 10, 64)
	if err != nil {
		return Path{}, fmt.Errorf("parse fuzz path: %w", err)
	}

	return Path{
		Seed:  seed,
		Steps: steps,
	}, nil
}
