package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"huddle/pkg/core"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSession_ImportFile(t *testing.T) {
	t.Run("successful import replaces dataset", func(t *testing.T) {
		s := New(testLogger())
		path := writeCSV(t, "Team,Wins\nEagles,14\n")

		require.NoError(t, s.ImportFile(path))
		assert.Equal(t, []string{"Eagles"}, s.Names())
		assert.Equal(t, path, s.Source())
	})

	t.Run("failed import keeps previous dataset", func(t *testing.T) {
		s := New(testLogger())
		good := writeCSV(t, "Team,Wins\nEagles,14\n")
		require.NoError(t, s.ImportFile(good))

		bad := writeCSV(t, "Name,Wins\nEagles,14\n")
		err := s.ImportFile(bad)
		assert.ErrorIs(t, err, core.ErrNoTeamColumn)

		assert.Equal(t, []string{"Eagles"}, s.Names())
		assert.Equal(t, good, s.Source())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		s := New(testLogger())
		assert.Error(t, s.ImportFile(filepath.Join(t.TempDir(), "missing.csv")))
	})
}

func TestSession_ImportReader(t *testing.T) {
	s := New(testLogger())
	err := s.ImportReader(strings.NewReader("Team,Wins,Losses\nEagles,14,3\nGiants,,9\n"), "bundled sample")
	require.NoError(t, err)

	assert.Empty(t, s.Source(), "reader imports have no watchable path")

	dr, err := s.MetricsFor("Giants")
	require.NoError(t, err)
	assert.Equal(t, "N/A", dr.Wins)
	assert.Equal(t, "9", dr.Losses)
}

func TestSession_WarningsFromLastImport(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.ImportReader(strings.NewReader("Team,Wins\nBears,lots\n"), "test"))
	require.Len(t, s.Warnings(), 1)

	require.NoError(t, s.ImportReader(strings.NewReader("Team,Wins\nBears,5\n"), "test"))
	assert.Empty(t, s.Warnings(), "warnings reset on the next import")
}

func TestSession_BeforeFirstImport(t *testing.T) {
	s := New(testLogger())

	assert.Nil(t, s.Current())
	assert.Empty(t, s.Names())

	_, err := s.MetricsFor("Eagles")
	assert.ErrorIs(t, err, core.ErrTeamNotFound)

	st := s.Standings()
	assert.Empty(t, st.Conferences)
}

func TestSession_DelegatesToCore(t *testing.T) {
	s := New(testLogger())
	csv := "Team,Wins,Losses,Conference\nBills,13,4,AFC\nJets,7,10,AFC\n"
	require.NoError(t, s.ImportReader(strings.NewReader(csv), "test"))

	series, err := s.ChartFor("Bills")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wins", "Losses"}, series.Labels)

	st := s.Standings()
	require.Len(t, st.Conferences, 1)
	assert.Equal(t, "Bills", st.Conferences[0].Entries[0].Team)
}
