// Package app implements the railway-timeline terminal UI.
//
// The Model owns a timeline.Controller and feeds it keyboard and mouse input.
// Deployment data arrives asynchronously from a deploy.Source. The view
// projects every deployment through the controller and draws one row per
// service under a ruler whose granularity follows the zoom level.
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/timeline"
	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// Options configures a Model.
type Options struct {
	Config config.Config
	Source deploy.Source

	// WatchPath is polled for changes and triggers a reload. Empty disables
	// the watcher.
	WatchPath string

	// Now defaults to time.Now.
	Now func() time.Time

	// Location is the zone times are shown and calendar-aligned in. It
	// defaults to time.Local.
	Location *time.Location
}

// serviceRow is one service line on the timeline with its drawable
// deployments.
type serviceRow struct {
	service deploy.Service
	items   []deploy.Deployment
}

// dragState tracks an in-progress mouse drag on the timeline.
type dragState struct {
	active bool
	moved  bool
	lastX  int
}

// Model is the Bubble Tea model for the timeline browser.
type Model struct {
	cfg    config.Config
	source deploy.Source
	now    func() time.Time
	loc    *time.Location

	timeline *timeline.Controller

	// Data
	snapshot     deploy.Snapshot
	loaded       bool
	loading      bool
	loadSeq      int
	pendingFocus bool
	rows         []serviceRow
	located      []deploy.Located
	skipped      int

	// Selection
	selectedID string
	rowOffset  int

	// UI
	detail        viewport.Model
	showDetail    bool
	detailKey     detailCacheKey
	spinner       spinner.Model
	status        string
	statusIsError bool
	showHelp      bool
	drag          dragState

	width  int
	height int

	keyForAction map[string][]string
	keyToAction  map[string]string

	watchPath         string
	fileWatchInterval time.Duration
	fileWatchEntry    fileWatchEntry
	refreshInterval   time.Duration
}

// New builds a Model. The timeline starts on a one-day placeholder range
// until the first snapshot arrives.
func New(opts Options) (*Model, error) {
	if opts.Source == nil {
		return nil, errors.New("app: a data source is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	spin := spinner.New()
	spin.Spinner = spinner.Line

	m := &Model{
		cfg:               opts.Config,
		source:            opts.Source,
		now:               now,
		loc:               loc,
		detail:            viewport.New(0, 0),
		spinner:           spin,
		status:            "Loading " + opts.Source.Describe(),
		pendingFocus:      true,
		watchPath:         opts.WatchPath,
		fileWatchInterval: DefaultFileWatchInterval,
		refreshInterval:   opts.Config.Refresh(),
	}

	placeholder := timeutil.NewRange(now().AddDate(0, 0, -1), now()).In(loc)
	m.timeline = timeline.NewController(placeholder, timelineConfig(opts.Config), timeline.MeasureFunc(m.measure))
	m.loadKeybindings(opts.Config)
	return m, nil
}

func timelineConfig(cfg config.Config) timeline.Config {
	return timeline.Config{
		PixelsPerDay:    cfg.PixelsPerDay,
		ZoomSensitivity: cfg.ZoomSensitivity,
	}.WithDefaults()
}

// Init starts the spinner, the first load and the refresh timers.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.startLoad()}
	if m.watchPath != "" {
		cmds = append(cmds, m.scheduleFileWatchTick())
	} else if m.refreshInterval > 0 {
		cmds = append(cmds, m.scheduleRefreshTick())
	}
	return tea.Batch(cmds...)
}

// Update dispatches messages to their handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case snapshotLoadedMsg:
		return m.handleSnapshotLoaded(msg)
	case refreshTickMsg:
		return m.handleRefreshTick(msg)
	case fileWatchTickMsg:
		return m.handleFileWatchTick(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleBrowseKey(msg)
	}
	return m, nil
}
