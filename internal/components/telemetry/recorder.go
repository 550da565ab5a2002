package telemetry

import "sync"

// Report is a single call recorded by Recorder.
type Report struct {
	Kind   string
	Id     string
	Params []any
}

// Recorder is an API that keeps every report in memory, it exists so tests can
// assert that failures are reported.
type Recorder struct {
	lock    sync.Mutex
	reports []Report
}

func (r *Recorder) record(kind, id string, params []any) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, Report{Kind: kind, Id: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.record("broken", id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.record("warning", id, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.record("debug", msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.record("count", id, []any{count})
}

// Reports returns the recorded reports of the given kind.
func (r *Recorder) Reports(kind string) []Report {
	r.lock.Lock()
	defer r.lock.Unlock()

	var out []Report
	for _, rep := range r.reports {
		if rep.Kind == kind {
			out = append(out, rep)
		}
	}
	return out
}
