package session

import (
	"io"
	"sync"

	"huddle/pkg/core"

	"github.com/rs/zerolog"
)

// Session owns the active dataset. Imports replace it wholesale on success;
// on any load failure the previous dataset stays active. The pointer swap is
// guarded so the watcher goroutine and the UI thread can both touch it.
type Session struct {
	log zerolog.Logger

	mu       sync.RWMutex
	dataset  *core.Dataset
	source   string // path of the last file import, "" for embedded data
	warnings []core.Warning
}

func New(log zerolog.Logger) *Session {
	return &Session{log: log.With().Str("component", "session").Logger()}
}

// ImportFile loads a CSV from disk and makes it the active dataset.
func (s *Session) ImportFile(path string) error {
	ds, warnings, err := core.Load(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("import failed, keeping previous dataset")
		return err
	}
	s.apply(ds, warnings, path, path)
	return nil
}

// ImportReader loads a CSV from r. label names the source in logs; the
// session records no file path, so the watcher has nothing to follow.
func (s *Session) ImportReader(r io.Reader, label string) error {
	ds, warnings, err := core.Read(r)
	if err != nil {
		s.log.Error().Err(err).Str("source", label).Msg("import failed, keeping previous dataset")
		return err
	}
	s.apply(ds, warnings, label, "")
	return nil
}

func (s *Session) apply(ds *core.Dataset, warnings []core.Warning, label, path string) {
	for _, w := range warnings {
		s.log.Warn().Str("source", label).Msg(w.String())
	}
	s.mu.Lock()
	s.dataset = ds
	s.source = path
	s.warnings = warnings
	s.mu.Unlock()
	s.log.Info().Str("source", label).Int("teams", ds.Len()).
		Int("warnings", len(warnings)).Msg("dataset replaced")
}

// Current returns the active dataset, nil before the first successful import.
func (s *Session) Current() *core.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Source returns the file path of the active dataset, "" when it came from
// an embedded reader.
func (s *Session) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Warnings returns the non-fatal problems recorded by the last successful
// import, for the status line.
func (s *Session) Warnings() []core.Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warnings
}

// Names lists the selectable teams, in file order.
func (s *Session) Names() []string {
	ds := s.Current()
	if ds == nil {
		return nil
	}
	return ds.Names()
}

func (s *Session) MetricsFor(name string) (core.DisplayRecord, error) {
	ds := s.Current()
	if ds == nil {
		return core.DisplayRecord{}, core.ErrTeamNotFound
	}
	return core.MetricsFor(ds, name)
}

func (s *Session) ChartFor(name string) (core.ChartSeries, error) {
	ds := s.Current()
	if ds == nil {
		return core.ChartSeries{}, core.ErrTeamNotFound
	}
	return core.ChartFor(ds, name)
}

func (s *Session) Standings() core.Standings {
	ds := s.Current()
	if ds == nil {
		return core.Standings{}
	}
	return core.StandingsFor(ds)
}
