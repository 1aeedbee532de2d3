package core

import "sort"

const unknownGroup = "Unknown"

// StandingsEntry is one ranked row in a standings group.
type StandingsEntry struct {
	Rank   int
	Team   string
	Record string
	WinPct string
}

// StandingsGroup is a conference or division with its teams in rank order.
type StandingsGroup struct {
	Name    string
	Entries []StandingsEntry
}

// Standings holds the conference and division breakdowns for one dataset.
type Standings struct {
	Conferences []StandingsGroup
	Divisions   []StandingsGroup
}

// StandingsFor groups the dataset by conference and by division, each group
// ranked by win percentage, then wins, then fewest losses, then name. Teams
// without grouping metadata land in an "Unknown" group listed last.
func StandingsFor(ds *Dataset) Standings {
	byConference := make(map[string][]TeamRecord)
	byDivision := make(map[string][]TeamRecord)

	for _, name := range ds.Names() {
		rec, _ := ds.Get(name)
		conference := rec.Conference
		if conference == "" {
			conference = unknownGroup
		}
		division := rec.Division
		if division == "" {
			division = unknownGroup
		}
		byConference[conference] = append(byConference[conference], rec)
		byDivision[division] = append(byDivision[division], rec)
	}

	return Standings{
		Conferences: buildGroups(byConference),
		Divisions:   buildGroups(byDivision),
	}
}

func buildGroups(groups map[string][]TeamRecord) []StandingsGroup {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		// Unknown sorts after every named group.
		if (names[i] == unknownGroup) != (names[j] == unknownGroup) {
			return names[j] == unknownGroup
		}
		return names[i] < names[j]
	})

	out := make([]StandingsGroup, 0, len(names))
	for _, name := range names {
		records := groups[name]
		sortByRank(records)

		group := StandingsGroup{Name: name}
		for i, rec := range records {
			group.Entries = append(group.Entries, StandingsEntry{
				Rank:   i + 1,
				Team:   rec.Name,
				Record: recordText(rec),
				WinPct: winPctText(rec),
			})
		}
		out = append(out, group)
	}
	return out
}

func sortByRank(records []TeamRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		pi, iKnown := winPct(records[i])
		pj, jKnown := winPct(records[j])
		if iKnown != jKnown {
			return iKnown // teams with a record rank above teams without
		}
		if iKnown && pi != pj {
			return pi > pj
		}
		wi, wj := metricOrZero(records[i].Wins), metricOrZero(records[j].Wins)
		if wi != wj {
			return wi > wj
		}
		li, lj := metricOrZero(records[i].Losses), metricOrZero(records[j].Losses)
		if li != lj {
			return li < lj
		}
		return records[i].Name < records[j].Name
	})
}

func metricOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
