package ui

import (
	"fmt"

	"huddle/assets/icons"
	"huddle/pkg/config"
	"huddle/pkg/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

type HuddleApp struct {
	FyneApp fyne.App
	Window  fyne.Window

	TeamSelect  *widget.Select
	Fields      *fieldPanel
	Chart       *BarChart
	Standings   *StandingsPanel
	StatusLabel *widget.Label

	session *session.Session
	watcher *session.Watcher
	cfg     config.Config
	log     zerolog.Logger
}

func NewHuddleApp(cfg config.Config, sess *session.Session, log zerolog.Logger) *HuddleApp {
	a := app.NewWithID("com.github.huddle")
	a.SetIcon(fyne.NewStaticResource("huddle.png", icons.AppIconPNG()))
	w := a.NewWindow("HUDDLE - NFL Performance Viewer")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	ha := &HuddleApp{
		FyneApp: a,
		Window:  w,
		session: sess,
		cfg:     cfg,
		log:     log.With().Str("component", "ui").Logger(),
	}

	if cfg.WatchImported {
		watcher, err := session.NewWatcher(log, cfg.ReloadHoldoff(), ha.onFileChanged)
		if err != nil {
			ha.log.Warn().Err(err).Msg("file watching disabled")
		} else {
			ha.watcher = watcher
			if source := sess.Source(); source != "" {
				if err := watcher.Follow(source); err != nil {
					ha.log.Warn().Err(err).Str("path", source).Msg("cannot watch startup file")
				}
			}
		}
	}

	ha.setupUI()
	ha.RefreshFromSession()

	return ha
}

func (ha *HuddleApp) Run() {
	ha.Window.ShowAndRun()
}

func (ha *HuddleApp) setupUI() {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { ha.importDataset() }),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() { ha.reloadDataset() }),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.InfoIcon(), func() { ha.showAbout() }),
	)

	ha.TeamSelect = widget.NewSelect(nil, func(name string) { ha.onSelect(name) })
	ha.TeamSelect.PlaceHolder = "Pick a team"
	teamRow := container.NewBorder(nil, nil, widget.NewLabel("Team:"), nil, ha.TeamSelect)

	ha.Fields = newFieldPanel()
	ha.Chart = NewBarChart()
	teamView := container.NewHSplit(
		container.NewVScroll(ha.Fields.Form),
		container.NewPadded(ha.Chart),
	)
	teamView.SetOffset(0.45)

	ha.Standings = NewStandingsPanel()

	tabs := container.NewAppTabs(
		container.NewTabItem("Team", teamView),
		container.NewTabItem("Standings", ha.Standings.Content),
	)

	ha.StatusLabel = widget.NewLabel("")
	ha.StatusLabel.TextStyle = fyne.TextStyle{Italic: true}

	mainLayout := container.NewBorder(
		container.NewVBox(toolbar, teamRow),
		ha.StatusLabel,
		nil, nil,
		tabs,
	)
	ha.Window.SetContent(mainLayout)

	ha.Window.SetCloseIntercept(func() {
		if ha.watcher != nil {
			_ = ha.watcher.Close()
		}
		ha.Window.Close()
	})
}

// RefreshFromSession rebuilds the selection list, the standings tables and
// the current team view from the active dataset.
func (ha *HuddleApp) RefreshFromSession() {
	names := ha.session.Names()
	selected := ha.TeamSelect.Selected

	ha.TeamSelect.Options = names
	ha.TeamSelect.Refresh()
	ha.Standings.Update(ha.session.Standings())

	if len(names) == 0 {
		return
	}
	if !contains(names, selected) {
		selected = names[0]
	}
	// SetSelected fires onSelect even when the value is unchanged, so this
	// is the one render per refresh.
	ha.TeamSelect.SetSelected(selected)
}

func (ha *HuddleApp) onSelect(name string) {
	dr, err := ha.session.MetricsFor(name)
	if err != nil {
		// The list came from the same dataset; a miss here is a bug worth surfacing.
		ha.log.Error().Err(err).Str("team", name).Msg("selected team missing from dataset")
		dialog.ShowError(err, ha.Window)
		return
	}
	ha.Fields.Set(dr)

	series, err := ha.session.ChartFor(name)
	if err == nil {
		ha.Chart.SetSeries(series)
	}

	ha.setStatus(fmt.Sprintf("Showing %s.", name))
}

func (ha *HuddleApp) importDataset() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ha.Window)
			return
		}
		if reader == nil {
			return // User cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		ha.importPath(path)
	}, ha.Window)
}

func (ha *HuddleApp) importPath(path string) {
	if err := ha.session.ImportFile(path); err != nil {
		dialog.ShowError(err, ha.Window)
		ha.setStatus("Import failed; previous dataset kept.")
		return
	}
	if ha.watcher != nil {
		if err := ha.watcher.Follow(path); err != nil {
			ha.log.Warn().Err(err).Str("path", path).Msg("cannot watch imported file")
		}
	}
	ha.RefreshFromSession()
	ha.setStatus(ha.loadedStatus(path))
}

func (ha *HuddleApp) reloadDataset() {
	source := ha.session.Source()
	if source == "" {
		ha.setStatus("Bundled sample data is active; import a file to reload from disk.")
		return
	}
	ha.importPath(source)
}

// onFileChanged runs on the watcher goroutine; widget updates hop onto the
// Fyne thread.
func (ha *HuddleApp) onFileChanged(path string) {
	err := ha.session.ImportFile(path)
	fyne.Do(func() {
		if err != nil {
			ha.setStatus("File changed on disk but reload failed; previous dataset kept.")
			return
		}
		ha.RefreshFromSession()
		ha.setStatus(ha.loadedStatus(path) + " (auto-reloaded)")
	})
}

func (ha *HuddleApp) loadedStatus(path string) string {
	teams := len(ha.session.Names())
	warnings := len(ha.session.Warnings())
	if warnings == 0 {
		return fmt.Sprintf("Loaded %d teams from %s.", teams, path)
	}
	return fmt.Sprintf("Loaded %d teams from %s (%d warnings, see log).", teams, path, warnings)
}

func (ha *HuddleApp) setStatus(message string) {
	ha.StatusLabel.SetText(message)
}

func (ha *HuddleApp) showAbout() {
	dialog.ShowInformation("HUDDLE",
		"Pick an NFL team and view its season numbers.\n"+
			"Import any CSV with a Team column to replace the dataset.",
		ha.Window)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
