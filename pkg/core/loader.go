package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Recognized metric headers, matched case-insensitively. Team is required,
// everything else is optional.
const teamColumn = "team"

var metricColumns = []string{
	"wins", "losses", "ties", "pointsfor", "pointsagainst", "yards", "turnovers",
}

// Warning records a non-fatal problem found while loading: a skipped row or
// a single dropped cell.
type Warning struct {
	Line    int // 1-based physical line the row starts on, header included
	Column  string
	Message string
}

func (w Warning) String() string {
	if w.Column == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return fmt.Sprintf("line %d, column %s: %s", w.Line, w.Column, w.Message)
}

// Load reads a team CSV from disk. See Read for the parsing contract.
func Load(path string) (*Dataset, []Warning, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return Read(file)
}

// Read parses delimited text into a Dataset. The first row is the header; a
// case-insensitive "Team" column is required. Rows with a blank team cell and
// cells that fail numeric coercion are dropped individually with a Warning.
// Returns ErrBadFormat, ErrNoTeamColumn or ErrEmptyDataset on fatal problems;
// the caller keeps its previous dataset in that case.
func Read(r io.Reader) (*Dataset, []Warning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows: missing cells read as absent
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: empty file", ErrBadFormat)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	cols := indexHeader(header)
	teamIdx, ok := cols[teamColumn]
	if !ok {
		return nil, nil, ErrNoTeamColumn
	}

	ds := NewDataset()
	var warnings []Warning

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		// Physical line, not record count; quoted cells can span lines.
		line, _ := cr.FieldPos(0)

		name := strings.TrimSpace(cell(row, teamIdx))
		if name == "" {
			warnings = append(warnings, Warning{Line: line, Message: "blank team name, row skipped"})
			continue
		}

		rec := TeamRecord{Name: name}
		for _, col := range metricColumns {
			idx, ok := cols[col]
			if !ok {
				continue
			}
			value, warn := coerceMetric(cell(row, idx))
			if warn != "" {
				warnings = append(warnings, Warning{Line: line, Column: col, Message: warn})
			}
			rec.setMetric(col, value)
		}
		if idx, ok := cols["conference"]; ok {
			rec.Conference = strings.TrimSpace(cell(row, idx))
		}
		if idx, ok := cols["division"]; ok {
			rec.Division = strings.TrimSpace(cell(row, idx))
		}

		ds.Put(rec)
	}

	if ds.Len() == 0 {
		return nil, nil, ErrEmptyDataset
	}
	return ds, warnings, nil
}

// indexHeader maps lowercased trimmed header names to column positions.
// On duplicate headers the first occurrence wins.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// coerceMetric turns a raw cell into an optional non-negative number. An
// empty cell is silently absent; anything unparseable or negative is absent
// with a warning message.
func coerceMetric(raw string) (*float64, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ""
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Sprintf("not a number: %q", trimmed)
	}
	if v < 0 {
		return nil, fmt.Sprintf("negative value dropped: %q", trimmed)
	}
	return &v, ""
}

func (r *TeamRecord) setMetric(col string, v *float64) {
	switch col {
	case "wins":
		r.Wins = v
	case "losses":
		r.Losses = v
	case "ties":
		r.Ties = v
	case "pointsfor":
		r.PointsFor = v
	case "pointsagainst":
		r.PointsAgainst = v
	case "yards":
		r.Yards = v
	case "turnovers":
		r.Turnovers = v
	}
}
