// Package session owns the mutable state around the stateless core: the
// current evaluator, its analysis report and the view window. Callers hold
// a Session instead of sharing globals; Submit is compile-and-swap in one
// step, so readers never observe a half-updated evaluator.
package session

import (
	"sync"

	"github.com/san-kum/funcscope/internal/analysis"
	"github.com/san-kum/funcscope/internal/expr"
)

// View is the visible logical window. The renderer scales asymptote
// thresholds from it.
type View struct {
	XMin, XMax float64
	YMin, YMax float64
}

type Session struct {
	mu     sync.RWMutex
	ev     *expr.Evaluator
	report *analysis.Report
	params analysis.Params
	view   View
}

func New(params analysis.Params, view View) *Session {
	return &Session{params: params, view: view}
}

// Submit compiles raw and, on success, atomically replaces the current
// evaluator and report. A failed compile returns the error and leaves the
// previous state untouched.
func (s *Session) Submit(raw string) (*analysis.Report, error) {
	ev, err := expr.Compile(raw)
	if err != nil {
		return nil, err
	}
	report := analysis.Analyze(ev, s.Params())

	s.mu.Lock()
	s.ev = ev
	s.report = report
	s.mu.Unlock()
	return report, nil
}

// Evaluator returns the current evaluator, or nil before the first
// successful Submit. The evaluator itself is immutable and safe to use
// after later Submits replace it.
func (s *Session) Evaluator() *expr.Evaluator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ev
}

// Report returns the report of the last successful Submit, or nil.
func (s *Session) Report() *analysis.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

func (s *Session) Params() analysis.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) SetView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// Asymptotes scans the current view window with a threshold derived from
// its vertical extent. Returns nil before the first successful Submit.
func (s *Session) Asymptotes() []analysis.Candidate {
	s.mu.RLock()
	ev, v, p := s.ev, s.view, s.params
	s.mu.RUnlock()
	if ev == nil {
		return nil
	}
	threshold := 5 * (v.YMax - v.YMin)
	return analysis.ScanAsymptotes(ev, v.XMin, v.XMax, threshold, p)
}
