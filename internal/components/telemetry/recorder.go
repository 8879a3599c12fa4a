package telemetry

import (
	"fmt"
	"strings"
	"sync"
)

// Recorder is an API that keeps a rendered line for every report and forwards the report to an
// inner API (if any). It is used to capture the logs of a single run and to make assertions on
// reported telemetry in tests.
type Recorder struct {
	inner API

	mutex *sync.Mutex
	lines *[]string
}

// NewRecorder creates a Recorder, inner may be nil.
func NewRecorder(inner API) Recorder {
	return Recorder{
		inner: inner,
		mutex: &sync.Mutex{},
		lines: &[]string{},
	}
}

func renderParams(params []any) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprint(p)
	}
	return " " + strings.Join(parts, " ")
}

func (r Recorder) record(line string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	*r.lines = append(*r.lines, line)
}

// Append adds a raw line, it lets the recorder double as a retry log sink.
func (r Recorder) Append(line string) {
	r.record(line)
}

// Lines returns a copy of every line recorded so far.
func (r Recorder) Lines() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]string, len(*r.lines))
	copy(out, *r.lines)
	return out
}

// Contains reports whether any recorded line contains substr.
func (r Recorder) Contains(substr string) bool {
	for _, l := range r.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func (r Recorder) ReportBroken(id string, params ...any) {
	r.record(fmt.Sprintf("ERROR %s%s", id, renderParams(params)))
	if r.inner != nil {
		r.inner.ReportBroken(id, params...)
	}
}

func (r Recorder) ReportWarning(id string, params ...any) {
	r.record(fmt.Sprintf("WARN %s%s", id, renderParams(params)))
	if r.inner != nil {
		r.inner.ReportWarning(id, params...)
	}
}

// ReportDebug is forwarded but not recorded, run logs only keep what an operator would act on.
func (r Recorder) ReportDebug(msg string, params ...any) {
	if r.inner != nil {
		r.inner.ReportDebug(msg, params...)
	}
}

func (r Recorder) ReportCount(id string, count int64) {
	r.record(fmt.Sprintf("COUNT %s=%d", id, count))
	if r.inner != nil {
		r.inner.ReportCount(id, count)
	}
}
