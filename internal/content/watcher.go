package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"deckle/internal/eventbus"
	"deckle/internal/ratelimit"
)

// Editors save in bursts (write, chmod, rename-replace); coalesce them so
// one save triggers one reload.
const reloadDebounce = 150 * time.Millisecond

// Watcher publishes a DocumentChangedEvent when the document file changes
// on disk. It watches the parent directory because many editors replace
// the file by rename, which drops a watch held on the file itself.
type Watcher struct {
	bus      eventbus.EventBus
	path     string
	watcher  *fsnotify.Watcher
	debounce *ratelimit.Debouncer
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher for the document at path
func NewWatcher(bus eventbus.EventBus, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}
	return &Watcher{bus: bus, path: abs}, nil
}

// Start begins watching until ctx is canceled or Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch document directory: %w", err)
	}

	w.watcher = fsw
	w.debounce = ratelimit.NewDebouncer(reloadDebounce, func() {
		w.bus.Publish(eventbus.DocumentChangedEvent{Path: w.path})
	})

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	go w.run(runCtx)
	return nil
}

// Stop ends watching and cancels any pending reload
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer w.watcher.Close()
	defer w.debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.debounce.Call()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "document watcher", Err: err})
		}
	}
}
