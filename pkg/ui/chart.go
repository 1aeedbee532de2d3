package ui

import (
	"strconv"
	"sync"

	"huddle/pkg/core"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BarChart renders one team's chart series as labeled vertical bars. Absent
// metrics never reach the widget; the series already omits them.
type BarChart struct {
	widget.BaseWidget
	series core.ChartSeries
	mu     sync.RWMutex
}

var _ fyne.Widget = (*BarChart)(nil)

func NewBarChart() *BarChart {
	bc := &BarChart{}
	bc.ExtendBaseWidget(bc)
	return bc
}

// SetSeries replaces the displayed series and redraws.
func (bc *BarChart) SetSeries(series core.ChartSeries) {
	bc.mu.Lock()
	bc.series = series
	bc.mu.Unlock()
	bc.Refresh()
}

func (bc *BarChart) CreateRenderer() fyne.WidgetRenderer {
	return &barChartRenderer{bc: bc}
}

type barChartRenderer struct {
	bc *BarChart
}

func (r *barChartRenderer) Destroy() {}

func (r *barChartRenderer) Layout(size fyne.Size) {
}

func (r *barChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 180)
}

func (r *barChartRenderer) Refresh() {
}

func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	r.bc.mu.RLock()
	series := r.bc.series
	r.bc.mu.RUnlock()

	size := r.bc.Size()
	width := size.Width
	height := size.Height

	if len(series.Values) == 0 {
		empty := canvas.NewText("No numeric data to chart", theme.Color(theme.ColorNamePlaceHolder))
		empty.TextSize = theme.TextSize()
		empty.Move(fyne.NewPos(width/2-empty.MinSize().Width/2, height/2))
		return []fyne.CanvasObject{empty}
	}

	maxVal := series.Values[0]
	for _, v := range series.Values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1 // all-zero bars still get a baseline
	}

	const labelBand = 22  // room under the bars for metric names
	const valueBand = 18  // room above the bars for values
	plotHeight := height - labelBand - valueBand
	if plotHeight < 10 {
		plotHeight = 10
	}

	n := float32(len(series.Values))
	slot := width / n
	barWidth := slot * 0.6

	barColor := theme.Color(theme.ColorNamePrimary)
	textColor := theme.Color(theme.ColorNameForeground)

	var objects []fyne.CanvasObject
	for i, v := range series.Values {
		barHeight := float32(v/maxVal) * plotHeight
		x := float32(i)*slot + (slot-barWidth)/2
		y := valueBand + (plotHeight - barHeight)

		bar := canvas.NewRectangle(barColor)
		bar.Move(fyne.NewPos(x, y))
		bar.Resize(fyne.NewSize(barWidth, barHeight))
		objects = append(objects, bar)

		value := canvas.NewText(strconv.FormatFloat(v, 'f', -1, 64), textColor)
		value.TextSize = theme.TextSize() * 0.85
		value.Move(fyne.NewPos(x+barWidth/2-value.MinSize().Width/2, y-valueBand))
		objects = append(objects, value)

		label := canvas.NewText(series.Labels[i], textColor)
		label.TextSize = theme.TextSize() * 0.85
		label.Move(fyne.NewPos(x+barWidth/2-label.MinSize().Width/2, valueBand+plotHeight+2))
		objects = append(objects, label)
	}

	return objects
}
