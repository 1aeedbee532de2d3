package ui

import (
	"huddle/pkg/core"

	"fyne.io/fyne/v2/widget"
)

// fieldPanel is the read-only form showing one team's formatted metrics.
type fieldPanel struct {
	Form *widget.Form

	record        *widget.Label
	wins          *widget.Label
	losses        *widget.Label
	ties          *widget.Label
	winPct        *widget.Label
	pointsFor     *widget.Label
	pointsAgainst *widget.Label
	pointDiff     *widget.Label
	yards         *widget.Label
	turnovers     *widget.Label
	conference    *widget.Label
	division      *widget.Label
}

func newFieldPanel() *fieldPanel {
	p := &fieldPanel{
		record:        widget.NewLabel(""),
		wins:          widget.NewLabel(""),
		losses:        widget.NewLabel(""),
		ties:          widget.NewLabel(""),
		winPct:        widget.NewLabel(""),
		pointsFor:     widget.NewLabel(""),
		pointsAgainst: widget.NewLabel(""),
		pointDiff:     widget.NewLabel(""),
		yards:         widget.NewLabel(""),
		turnovers:     widget.NewLabel(""),
		conference:    widget.NewLabel(""),
		division:      widget.NewLabel(""),
	}

	p.Form = widget.NewForm(
		widget.NewFormItem("Record", p.record),
		widget.NewFormItem("Wins", p.wins),
		widget.NewFormItem("Losses", p.losses),
		widget.NewFormItem("Ties", p.ties),
		widget.NewFormItem("Win %", p.winPct),
		widget.NewFormItem("Points For", p.pointsFor),
		widget.NewFormItem("Points Against", p.pointsAgainst),
		widget.NewFormItem("Point Differential", p.pointDiff),
		widget.NewFormItem("Yards", p.yards),
		widget.NewFormItem("Turnovers", p.turnovers),
		widget.NewFormItem("Conference", p.conference),
		widget.NewFormItem("Division", p.division),
	)
	return p
}

func (p *fieldPanel) Set(dr core.DisplayRecord) {
	p.record.SetText(dr.Record)
	p.wins.SetText(dr.Wins)
	p.losses.SetText(dr.Losses)
	p.ties.SetText(dr.Ties)
	p.winPct.SetText(dr.WinPct)
	p.pointsFor.SetText(dr.PointsFor)
	p.pointsAgainst.SetText(dr.PointsAgainst)
	p.pointDiff.SetText(dr.PointDiff)
	p.yards.SetText(dr.Yards)
	p.turnovers.SetText(dr.Turnovers)
	p.conference.SetText(dr.Conference)
	p.division.SetText(dr.Division)
}
