// Package app wires the subsystems together and runs the event loop:
// key event in, keymap lookup, dispatch, apply the result to selection
// and viewport.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/blocknav/internal/config"
	"github.com/dshills/blocknav/internal/dispatcher"
	blockhandler "github.com/dshills/blocknav/internal/dispatcher/handlers/block"
	foldhandler "github.com/dshills/blocknav/internal/dispatcher/handlers/fold"
	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
	"github.com/dshills/blocknav/internal/fold"
	"github.com/dshills/blocknav/internal/input/keymap"
	"github.com/dshills/blocknav/internal/renderer"
)

// Options configures the application.
type Options struct {
	// Path is the file to open. Empty reads stdin.
	Path string

	// ConfigPath overrides the config file location.
	ConfigPath string

	// KeymapPath overrides the configured keymap file.
	KeymapPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// App is the assembled application.
type App struct {
	cfg     config.Config
	buf     *buffer.Buffer
	cursors *cursor.Set
	folds   *fold.Set
	keys    *keymap.Keymap
	disp    *dispatcher.Dispatcher
	render  *renderer.Renderer
	watcher *config.Watcher
	logger  *log.Logger
	logFile io.Closer

	// reloads carries changed config paths from the watcher goroutine to
	// the event loop, which owns all mutable state.
	reloads chan string

	// watcherDone is closed when watchReloads exits; Shutdown waits on it
	// before finalizing the renderer the goroutine wakes.
	watcherDone chan struct{}

	shutdownOnce sync.Once

	// pendingCount accumulates a digit prefix for the next action.
	pendingCount int
}

// New loads configuration and the document and assembles the app.
// The terminal is not touched until Run.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.KeymapPath != "" {
		cfg.KeymapPath = opts.KeymapPath
	}

	logger, logFile, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	var buf *buffer.Buffer
	if opts.Path != "" {
		buf, err = buffer.Open(opts.Path)
	} else {
		buf, err = buffer.FromReader(os.Stdin)
	}
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	keys, err := keymap.Load(cfg.KeymapPath)
	if err != nil {
		logger.Warn("keymap load failed, using defaults", "err", err)
		keys = keymap.Default()
	}

	disp := dispatcher.New()
	disp.Register(blockhandler.NewHandler())
	disp.Register(foldhandler.NewHandler())

	a := &App{
		cfg:     cfg,
		buf:     buf,
		cursors: cursor.NewSet(),
		folds:   fold.NewSet(),
		keys:    keys,
		disp:    disp,
		logger:  logger,
		logFile: logFile,
		reloads: make(chan string, 1),
	}

	logger.Info("starting", "path", opts.Path, "lines", buf.LineCount())
	return a, nil
}

// Run initializes the terminal and blocks until quit.
func (a *App) Run() error {
	r, err := renderer.New(a.buf, a.cursors, a.folds, renderer.Options{
		TabWidth:        a.cfg.TabWidth,
		FoldPlaceholder: a.cfg.FoldPlaceholder,
		ScrollMargin:    a.cfg.ScrollMargin,
	})
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	a.render = r

	if w, err := config.NewWatcher(a.cfg.KeymapPath); err != nil {
		a.logger.Warn("keymap watcher unavailable", "err", err)
	} else {
		a.watcher = w
		a.watcherDone = make(chan struct{})
		go a.watchReloads()
	}

	return a.loop()
}

// Shutdown releases the terminal and other resources. Safe to call more
// than once, from multiple goroutines, and before Run.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(a.shutdown)
}

// shutdown stops the watcher goroutine before touching the renderer it
// wakes, then finalizes the terminal.
func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
		<-a.watcherDone
		a.watcher = nil
	}
	if a.render != nil {
		a.render.Shutdown()
		a.render = nil
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// watchReloads forwards watcher events to the event loop and wakes it.
// The loop goroutine performs the actual reload. Exits when the watcher
// closes its events channel.
func (a *App) watchReloads() {
	defer close(a.watcherDone)
	for path := range a.watcher.Events() {
		select {
		case a.reloads <- path:
		default:
		}
		a.render.Interrupt()
	}
}
