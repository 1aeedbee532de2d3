package core

import (
	"errors"
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestMetricsFor_Placeholders(t *testing.T) {
	ds := NewDataset()
	ds.Put(TeamRecord{Name: "Giants", Losses: f(9)})

	dr, err := MetricsFor(ds, "Giants")
	if err != nil {
		t.Fatalf("MetricsFor() error = %v", err)
	}
	if dr.Wins != "N/A" {
		t.Errorf("Wins = %q; want N/A", dr.Wins)
	}
	if dr.Losses != "9" {
		t.Errorf("Losses = %q; want 9", dr.Losses)
	}
	if dr.Record != "N/A" {
		t.Errorf("Record = %q; want N/A when wins are unknown", dr.Record)
	}
	if dr.PointDiff != "N/A" {
		t.Errorf("PointDiff = %q; want N/A", dr.PointDiff)
	}
}

func TestMetricsFor_RecordText(t *testing.T) {
	tests := []struct {
		name string
		rec  TeamRecord
		want string
	}{
		{"plain", TeamRecord{Name: "a", Wins: f(12), Losses: f(5)}, "12-5"},
		{"with tie", TeamRecord{Name: "a", Wins: f(9), Losses: f(7), Ties: f(1)}, "9-7-1"},
		{"zero ties omitted", TeamRecord{Name: "a", Wins: f(14), Losses: f(3), Ties: f(0)}, "14-3"},
		{"unknown losses", TeamRecord{Name: "a", Wins: f(14)}, "N/A"},
	}

	for _, test := range tests {
		ds := NewDataset()
		ds.Put(test.rec)
		dr, err := MetricsFor(ds, "a")
		if err != nil {
			t.Fatalf("%s: MetricsFor() error = %v", test.name, err)
		}
		if dr.Record != test.want {
			t.Errorf("%s: Record = %q; want %q", test.name, dr.Record, test.want)
		}
	}
}

func TestMetricsFor_Derived(t *testing.T) {
	ds := NewDataset()
	ds.Put(TeamRecord{
		Name: "Eagles", Wins: f(14), Losses: f(3),
		PointsFor: f(478), PointsAgainst: f(344),
	})

	dr, err := MetricsFor(ds, "Eagles")
	if err != nil {
		t.Fatalf("MetricsFor() error = %v", err)
	}
	if dr.WinPct != "0.824" {
		t.Errorf("WinPct = %q; want 0.824", dr.WinPct)
	}
	if dr.PointDiff != "+134" {
		t.Errorf("PointDiff = %q; want +134", dr.PointDiff)
	}
}

func TestMetricsFor_AllLoadedNamesResolve(t *testing.T) {
	csv := "Team,Wins\nEagles,14\nGiants,\nJets,7\n"
	ds, _, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	for _, name := range ds.Names() {
		if _, err := MetricsFor(ds, name); err != nil {
			t.Errorf("MetricsFor(%q) error = %v; want nil", name, err)
		}
	}
}

func TestMetricsFor_NotFound(t *testing.T) {
	ds := NewDataset()
	ds.Put(TeamRecord{Name: "Bills"})

	_, err := MetricsFor(ds, "Oilers")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("MetricsFor(Oilers) error = %v; want ErrTeamNotFound", err)
	}
}

func TestChartFor_OmitsAbsent(t *testing.T) {
	ds := NewDataset()
	ds.Put(TeamRecord{Name: "Giants", Losses: f(9), PointsFor: f(280)})

	series, err := ChartFor(ds, "Giants")
	if err != nil {
		t.Fatalf("ChartFor() error = %v", err)
	}

	wantLabels := []string{"Losses", "Points For"}
	wantValues := []float64{9, 280}
	if len(series.Labels) != len(wantLabels) {
		t.Fatalf("Labels = %v; want %v", series.Labels, wantLabels)
	}
	for i := range wantLabels {
		if series.Labels[i] != wantLabels[i] {
			t.Errorf("Labels[%d] = %q; want %q", i, series.Labels[i], wantLabels[i])
		}
		if series.Values[i] != wantValues[i] {
			t.Errorf("Values[%d] = %v; want %v", i, series.Values[i], wantValues[i])
		}
	}
}

func TestChartFor_FixedOrder(t *testing.T) {
	ds := NewDataset()
	ds.Put(TeamRecord{
		Name: "Bills", Wins: f(13), Losses: f(4),
		PointsFor: f(451), PointsAgainst: f(311),
	})

	series, err := ChartFor(ds, "Bills")
	if err != nil {
		t.Fatalf("ChartFor() error = %v", err)
	}
	want := []string{"Wins", "Losses", "Points For", "Points Against"}
	for i, label := range want {
		if i >= len(series.Labels) || series.Labels[i] != label {
			t.Fatalf("Labels = %v; want %v", series.Labels, want)
		}
	}
}

// One import, one selection round-trip.
func TestReadThenFormat(t *testing.T) {
	csv := "Team,Wins,Losses\nEagles,14,3\nGiants,,9\n"
	ds, _, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	dr, err := MetricsFor(ds, "Giants")
	if err != nil {
		t.Fatalf("MetricsFor() error = %v", err)
	}
	if dr.Wins != "N/A" || dr.Losses != "9" {
		t.Errorf("Giants = wins %q losses %q; want N/A and 9", dr.Wins, dr.Losses)
	}
}
