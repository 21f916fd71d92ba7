package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/emerald/internal/config"
	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
)

const defaultDebounce = 300 * time.Millisecond

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	GenerateFlags `embed:""`
	Debounce      time.Duration `help:"Quiet period before regenerating" default:"300ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := w.apply(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Watch(ctx, cfg, w.Model, w.Debounce)
}

// Watch generates once and then regenerates after changes to the model file or to
// the template and asset override directories. Generation failures are logged and
// watching continues; Watch returns when ctx is done.
func Watch(ctx context.Context, cfg *config.Config, modelPath string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	absModel, err := filepath.Abs(modelPath)
	if err != nil {
		return ferrors.InternalError("resolve model path", err)
	}
	absOut, err := filepath.Abs(cfg.Output.Directory)
	if err != nil {
		return ferrors.InternalError("resolve output directory", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.InternalError("create file watcher", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// The model's directory is watched rather than the file so editors that save by
	// rename keep triggering.
	if err := watcher.Add(filepath.Dir(absModel)); err != nil {
		return ferrors.InternalError(fmt.Sprintf("watch %s", filepath.Dir(absModel)), err)
	}
	var overrideDirs []string
	for _, dir := range []string{cfg.Templates.Directory, cfg.Assets.Directory} {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return ferrors.InternalError("resolve override directory", err)
		}
		if err := addDirsRecursive(watcher, abs); err != nil {
			return err
		}
		overrideDirs = append(overrideDirs, abs)
	}

	filter := eventFilter{model: absModel, output: absOut, overrides: overrideDirs}
	rebuildReq, trigger := setupRebuildDebouncer(debounce)

	rebuild := func() {
		if err := RunGenerate(ctx, cfg, modelPath); err != nil {
			slog.Error("Regeneration failed", logfields.Error(err))
			return
		}
		slog.Info("Regenerated", logfields.Output(cfg.Output.Directory))
	}

	rebuild()
	slog.Info("Watching for changes", logfields.Path(absModel))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !filter.relevant(ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create && filter.inOverride(ev.Name) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name)
				}
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuildReq:
			rebuild()
		}
	}
}

type eventFilter struct {
	model     string
	output    string
	overrides []string
}

func (f eventFilter) relevant(name string) bool {
	if within(name, f.output) {
		return false
	}
	return name == f.model || f.inOverride(name)
}

func (f eventFilter) inOverride(name string) bool {
	for _, dir := range f.overrides {
		if within(name, dir) {
			return true
		}
	}
	return false
}

func within(name, dir string) bool {
	return name == dir || strings.HasPrefix(name, dir+string(filepath.Separator))
}

// setupRebuildDebouncer creates rebuild channel and trigger function with debouncing.
func setupRebuildDebouncer(quiet time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(quiet, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return ferrors.InternalError(fmt.Sprintf("watch %s", path), err)
			}
		}
		return nil
	})
}
