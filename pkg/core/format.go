package core

import (
	"fmt"
	"strconv"
)

// Placeholder rendered for unknown metrics. Absent is never shown as zero.
const AbsentPlaceholder = "N/A"

// DisplayRecord is a TeamRecord formatted for presentation: every metric is
// already a string with AbsentPlaceholder substituted for unknown values.
type DisplayRecord struct {
	Name          string
	Record        string // "12-5", "9-7-1" when ties apply
	Wins          string
	Losses        string
	Ties          string
	WinPct        string
	PointsFor     string
	PointsAgainst string
	PointDiff     string
	Yards         string
	Turnovers     string
	Conference    string
	Division      string
}

// ChartSeries is the subset of metrics selected for the bar chart, in fixed
// display order. Absent metrics are omitted, not plotted as zero.
type ChartSeries struct {
	Labels []string
	Values []float64
}

// MetricsFor formats the named team's record for display. The selection list
// is populated from the same dataset, so ErrTeamNotFound here means the view
// and the dataset went out of sync.
func MetricsFor(ds *Dataset, name string) (DisplayRecord, error) {
	rec, ok := ds.Get(name)
	if !ok {
		return DisplayRecord{}, fmt.Errorf("%w: %q", ErrTeamNotFound, name)
	}

	dr := DisplayRecord{
		Name:          rec.Name,
		Record:        recordText(rec),
		Wins:          formatMetric(rec.Wins),
		Losses:        formatMetric(rec.Losses),
		Ties:          formatMetric(rec.Ties),
		WinPct:        winPctText(rec),
		PointsFor:     formatMetric(rec.PointsFor),
		PointsAgainst: formatMetric(rec.PointsAgainst),
		PointDiff:     pointDiffText(rec),
		Yards:         formatMetric(rec.Yards),
		Turnovers:     formatMetric(rec.Turnovers),
		Conference:    orPlaceholder(rec.Conference),
		Division:      orPlaceholder(rec.Division),
	}
	return dr, nil
}

// ChartFor derives the bar chart series for the named team: wins, losses,
// points for, points against, in that order, skipping unknown values.
func ChartFor(ds *Dataset, name string) (ChartSeries, error) {
	rec, ok := ds.Get(name)
	if !ok {
		return ChartSeries{}, fmt.Errorf("%w: %q", ErrTeamNotFound, name)
	}

	var series ChartSeries
	add := func(label string, v *float64) {
		if v == nil {
			return
		}
		series.Labels = append(series.Labels, label)
		series.Values = append(series.Values, *v)
	}
	add("Wins", rec.Wins)
	add("Losses", rec.Losses)
	add("Points For", rec.PointsFor)
	add("Points Against", rec.PointsAgainst)
	return series, nil
}

func formatMetric(v *float64) string {
	if v == nil {
		return AbsentPlaceholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orPlaceholder(s string) string {
	if s == "" {
		return AbsentPlaceholder
	}
	return s
}

// recordText builds the friendly "12-5" record string, with ties appended
// when present and nonzero ("9-7-1").
func recordText(rec TeamRecord) string {
	if rec.Wins == nil || rec.Losses == nil {
		return AbsentPlaceholder
	}
	wins := formatMetric(rec.Wins)
	losses := formatMetric(rec.Losses)
	if rec.Ties != nil && *rec.Ties > 0 {
		return fmt.Sprintf("%s-%s-%s", wins, losses, formatMetric(rec.Ties))
	}
	return fmt.Sprintf("%s-%s", wins, losses)
}

func winPctText(rec TeamRecord) string {
	pct, ok := winPct(rec)
	if !ok {
		return AbsentPlaceholder
	}
	return strconv.FormatFloat(pct, 'f', 3, 64)
}

// winPct counts a tie as half a win, the league's convention.
func winPct(rec TeamRecord) (float64, bool) {
	if rec.Wins == nil || rec.Losses == nil {
		return 0, false
	}
	games := *rec.Wins + *rec.Losses
	wins := *rec.Wins
	if rec.Ties != nil {
		games += *rec.Ties
		wins += *rec.Ties / 2
	}
	if games == 0 {
		return 0, false
	}
	return wins / games, true
}

func pointDiffText(rec TeamRecord) string {
	if rec.PointsFor == nil || rec.PointsAgainst == nil {
		return AbsentPlaceholder
	}
	diff := *rec.PointsFor - *rec.PointsAgainst
	if diff > 0 {
		return "+" + strconv.FormatFloat(diff, 'f', -1, 64)
	}
	return strconv.FormatFloat(diff, 'f', -1, 64)
}
