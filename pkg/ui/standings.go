package ui

import (
	"strconv"

	"huddle/pkg/core"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StandingsPanel shows conference and division standings side by side.
type StandingsPanel struct {
	Content fyne.CanvasObject

	confTable *widget.Table
	divTable  *widget.Table

	confRows []standingsRow
	divRows  []standingsRow
}

// standingsRow is one flattened table line: either a group header or a
// ranked team entry.
type standingsRow struct {
	header bool
	cells  [4]string
}

func NewStandingsPanel() *StandingsPanel {
	p := &StandingsPanel{}
	p.confTable = p.newTable(&p.confRows)
	p.divTable = p.newTable(&p.divRows)

	split := container.NewHSplit(
		container.NewBorder(widget.NewLabel("By Conference"), nil, nil, nil, p.confTable),
		container.NewBorder(widget.NewLabel("By Division"), nil, nil, nil, p.divTable),
	)
	split.SetOffset(0.5)
	p.Content = split
	return p
}

func (p *StandingsPanel) newTable(rows *[]standingsRow) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(*rows), 4
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("placeholder")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			row := (*rows)[id.Row]
			label.SetText(row.cells[id.Col])
			if row.header {
				label.TextStyle = fyne.TextStyle{Bold: true}
			} else {
				label.TextStyle = fyne.TextStyle{}
			}
			label.Refresh()
		},
	)
	table.SetColumnWidth(0, 48)
	table.SetColumnWidth(1, 220)
	table.SetColumnWidth(2, 90)
	table.SetColumnWidth(3, 80)
	return table
}

// Update rebuilds both tables from a freshly computed standings snapshot.
func (p *StandingsPanel) Update(st core.Standings) {
	p.confRows = flattenGroups(st.Conferences)
	p.divRows = flattenGroups(st.Divisions)
	p.confTable.Refresh()
	p.divTable.Refresh()
}

func flattenGroups(groups []core.StandingsGroup) []standingsRow {
	var rows []standingsRow
	for _, group := range groups {
		rows = append(rows, standingsRow{header: true, cells: [4]string{"", group.Name, "Record", "Win %"}})
		for _, e := range group.Entries {
			rows = append(rows, standingsRow{cells: [4]string{
				strconv.Itoa(e.Rank) + ".", e.Team, e.Record, e.WinPct,
			}})
		}
	}
	return rows
}
