// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch turns filesystem events in a drop directory into conversion
// runs, one file at a time.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/sheetdoc/pkg/types"
)

// DefaultPatterns are the workbook name patterns matched when none are
// configured.
var DefaultPatterns = []string{"*.xlsx", "*.xls", "*.xlsm"}

const (
	defaultSettleInterval = 200 * time.Millisecond
	defaultSettleChecks   = 2

	// eventQueueSize bounds how many claimed files can wait for the worker.
	eventQueueSize = 64
)

// EventKind labels the filesystem change that made a path a candidate.
type EventKind string

const (
	// EventCreated covers newly created files and files moved into the
	// watched directory; fsnotify reports both as Create.
	EventCreated EventKind = "created"
	// EventModified covers writes to a file already in the directory.
	EventModified EventKind = "modified"
	// EventExisting marks files found by the startup sweep.
	EventExisting EventKind = "existing"
)

// Event is one candidate file for processing. Events live only as long as
// the dispatch that consumes them.
type Event struct {
	Path string
	Kind EventKind
}

// Runner executes one conversion for a detected workbook and returns the
// path of the document it wrote.
type Runner interface {
	RunForInput(input, outputDir string, w io.Writer) (string, error)
}

// Dispatcher watches one directory and feeds matching workbooks through the
// conversion pipeline sequentially. A single worker consumes the event
// queue, so no two conversions ever run at once.
type Dispatcher struct {
	cfg    types.WatchConfig
	runner Runner
	w      io.Writer

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New validates cfg, fills in defaults, and returns a Dispatcher that logs
// to w.
func New(cfg types.WatchConfig, runner Runner, w io.Writer) (*Dispatcher, error) {
	if cfg.WatchDir == "" {
		return nil, errors.New("watch directory not configured")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("output directory not configured")
	}
	if len(cfg.FilePatterns) == 0 {
		cfg.FilePatterns = DefaultPatterns
	}
	if cfg.SettleInterval <= 0 {
		cfg.SettleInterval = defaultSettleInterval
	}
	if cfg.SettleChecks <= 0 {
		cfg.SettleChecks = defaultSettleChecks
	}
	return &Dispatcher{
		cfg:      cfg,
		runner:   runner,
		w:        w,
		inflight: make(map[string]struct{}),
	}, nil
}

// Run watches the drop directory until ctx is cancelled. Files already
// present at startup are processed first. Run always finishes the file in
// flight before returning; cancellation is not an error.
func (d *Dispatcher) Run(ctx context.Context) error {
	for _, dir := range []string{d.cfg.WatchDir, d.cfg.OutputDir, d.cfg.ProcessedDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting filesystem watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(d.cfg.WatchDir); err != nil {
		return fmt.Errorf("watching %s: %w", d.cfg.WatchDir, err)
	}
	fmt.Fprintf(d.w, "watching %s (patterns: %s)\n",
		d.cfg.WatchDir, strings.Join(d.cfg.FilePatterns, ", "))

	// The forwarder must already be draining watcher events while the sweep
	// runs, or a burst during the sweep could overflow the watcher.
	queue := make(chan Event, eventQueueSize)
	go d.forward(ctx, watcher, queue)

	d.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(d.w, "watcher stopped")
			return nil
		case ev, ok := <-queue:
			if !ok {
				return nil
			}
			d.process(ctx, ev)
		}
	}
}

// forward filters raw watcher events and enqueues accepted candidates. It is
// the queue's only producer and closes it on shutdown.
func (d *Dispatcher) forward(ctx context.Context, watcher *fsnotify.Watcher, queue chan<- Event) {
	defer close(queue)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			kind, relevant := eventKind(ev)
			if !relevant || !d.claim(ev.Name) {
				continue
			}
			select {
			case queue <- Event{Path: ev.Name, Kind: kind}:
			case <-ctx.Done():
				d.release(ev.Name)
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(d.w, "warning: watcher error: %v\n", err)
		}
	}
}

// eventKind maps an fsnotify op onto the kinds the dispatcher cares about.
func eventKind(ev fsnotify.Event) (EventKind, bool) {
	switch {
	case ev.Has(fsnotify.Create):
		return EventCreated, true
	case ev.Has(fsnotify.Write):
		return EventModified, true
	}
	return "", false
}

// claim reports whether path is a processable candidate and, if so, marks it
// in flight. A path stays claimed until its dispatch finishes, which is what
// collapses the event bursts editors and copies produce into one run.
func (d *Dispatcher) claim(path string) bool {
	if !MatchesPattern(filepath.Base(path), d.cfg.FilePatterns) {
		return false
	}
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, busy := d.inflight[path]; busy {
		return false
	}
	d.inflight[path] = struct{}{}
	return true
}

func (d *Dispatcher) release(path string) {
	d.mu.Lock()
	delete(d.inflight, path)
	d.mu.Unlock()
}

// MatchesPattern reports whether name matches any of the glob patterns,
// compared case-insensitively. Office owner files ("~$" prefix) never match.
func MatchesPattern(name string, patterns []string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if ok, err := filepath.Match(strings.ToLower(p), lower); err == nil && ok {
			return true
		}
	}
	return false
}

// sweep feeds files already sitting in the watch directory through the same
// claim and process path as live events, so drops made while the watcher was
// down are not lost.
func (d *Dispatcher) sweep(ctx context.Context) {
	entries, err := os.ReadDir(d.cfg.WatchDir)
	if err != nil {
		fmt.Fprintf(d.w, "warning: scanning %s: %v\n", d.cfg.WatchDir, err)
		return
	}
	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(d.cfg.WatchDir, entry.Name())
		if !d.claim(path) {
			continue
		}
		d.process(ctx, Event{Path: path, Kind: EventExisting})
	}
}

// process runs one claimed file through settle, convert, and relocate.
// Failures are logged and leave the file in place so a later event can
// retry it.
func (d *Dispatcher) process(ctx context.Context, ev Event) {
	defer d.release(ev.Path)
	base := filepath.Base(ev.Path)

	if !d.cfg.AutoProcess {
		fmt.Fprintf(d.w, "detected %s (%s): auto-processing disabled, skipping\n", base, ev.Kind)
		return
	}

	if err := d.waitSettled(ctx, ev.Path); err != nil {
		// A vanished file was picked up or removed by someone else.
		if errors.Is(err, context.Canceled) || os.IsNotExist(err) {
			return
		}
		fmt.Fprintf(d.w, "failed: %s (%v)\n", base, err)
		return
	}

	fmt.Fprintf(d.w, "processing %s (%s)\n", base, ev.Kind)
	out, err := d.runner.RunForInput(ev.Path, d.cfg.OutputDir, d.w)
	if err != nil {
		fmt.Fprintf(d.w, "failed: %s (%v)\n", base, err)
		return
	}
	fmt.Fprintf(d.w, "converted: %s -> %s\n", base, filepath.Base(out))

	if d.cfg.ProcessedDir == "" {
		return
	}
	dest, err := d.relocate(ev.Path)
	if err != nil {
		fmt.Fprintf(d.w, "warning: could not move %s to processed: %v\n", base, err)
		return
	}
	fmt.Fprintf(d.w, "moved: %s -> %s\n", base, dest)
}

// waitSettled polls the file size until it stops changing, so a workbook
// still being copied in is not read half-written. There is no overall
// timeout; only ctx cancellation interrupts the wait.
func (d *Dispatcher) waitSettled(ctx context.Context, path string) error {
	var last int64 = -1
	stable := 0
	for {
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		if fi.Size() == last {
			stable++
			if stable >= d.cfg.SettleChecks {
				return nil
			}
		} else {
			stable = 0
			last = fi.Size()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.cfg.SettleInterval):
		}
	}
}

// relocate moves path into the processed directory, appending _1, _2, and so
// on to the stem when an earlier run already parked a file with that name.
func (d *Dispatcher) relocate(path string) (string, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	dest := filepath.Join(d.cfg.ProcessedDir, base)
	for n := 1; ; n++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(d.cfg.ProcessedDir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
	if err := moveFile(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// moveFile renames src to dest, falling back to copy-and-delete when the
// destination is on another filesystem.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		in.Close()
		return err
	}
	_, copyErr := io.Copy(out, in)
	in.Close()
	closeErr := out.Close()
	if copyErr != nil {
		os.Remove(dest)
		return copyErr
	}
	if closeErr != nil {
		os.Remove(dest)
		return closeErr
	}
	return os.Remove(src)
}
