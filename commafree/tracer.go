package commafree

import (
	"log"
)

// Tracer receives notifications of the backtracking driver's transitions.
// A Search with no Tracer attached makes no calls into it and performs no
// I/O, matching the no-suspension-points, no-I/O-inside-the-search-loop
// requirement of the core. Modeled on the teacher's CPU.Debugger hook
// (AttachDebugger/DetachDebugger), generalized from "PC updated" to the
// handful of events Algorithm C exposes.
type Tracer interface {
	OnSelect(level int, x int32, c uint32)
	OnGreen(level int, x int32, c uint32)
	OnRed(x int32, c uint32)
	OnRetry(level int, x int32, c uint32)
	OnRetreat(level int)
	OnVisit(level int, code Code)
}

// AttachTracer installs t as the search's trace sink.
func (s *Search) AttachTracer(t Tracer) {
	s.tracer = t
}

// DetachTracer removes any installed tracer.
func (s *Search) DetachTracer() {
	s.tracer = nil
}

// StdTracer is a Tracer backed by a standard library *log.Logger, the way
// the teacher's CPU opens a log file with os.OpenFile and wraps it in
// log.New(..., log.Ldate|log.Ltime|log.Lshortfile).
type StdTracer struct {
	Logger *log.Logger
}

// NewStdTracer builds a StdTracer around l. If l is nil, log.Default() is
// used.
func NewStdTracer(l *log.Logger) *StdTracer {
	if l == nil {
		l = log.Default()
	}
	return &StdTracer{Logger: l}
}

func (t *StdTracer) OnSelect(level int, x int32, c uint32) {
	t.Logger.Printf("C2. level=%d x=%d c=%d", level, x, c)
}

func (t *StdTracer) OnGreen(level int, x int32, c uint32) {
	t.Logger.Printf("C3. green level=%d x=%d c=%d", level, x, c)
}

func (t *StdTracer) OnRed(x int32, c uint32) {
	t.Logger.Printf("red x=%d c=%d", x, c)
}

func (t *StdTracer) OnRetry(level int, x int32, c uint32) {
	t.Logger.Printf("C5. level=%d x=%d c=%d", level, x, c)
}

func (t *StdTracer) OnRetreat(level int) {
	t.Logger.Printf("C6. level=%d", level)
}

func (t *StdTracer) OnVisit(level int, code Code) {
	t.Logger.Printf("C2. visiting %v", code)
}
