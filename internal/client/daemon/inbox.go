package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	importedSuffix = ".imported"
	rejectedSuffix = ".rejected"

	// settleDelay ждет окончания записи файла перед импортом
	settleDelay = 200 * time.Millisecond
)

// inbox imports *.json files dropped into a directory
type inbox struct {
	dir      string
	importer Importer
	logger   *slog.Logger
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
	ready   chan string
	done    chan struct{}
}

func newInbox(dir string, importer Importer, logger *slog.Logger) (*inbox, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create inbox %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch inbox %s: %w", dir, err)
	}

	return &inbox{
		dir:      dir,
		importer: importer,
		logger:   logger,
		watcher:  watcher,
		pending:  make(map[string]*time.Timer),
		ready:    make(chan string, 16),
		done:     make(chan struct{}),
	}, nil
}

func isInboxFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (b *inbox) run(ctx context.Context) error {
	defer b.stopTimers()
	defer close(b.done)
	defer b.watcher.Close()

	// файлы, появившиеся пока daemon не работал
	existing, err := filepath.Glob(filepath.Join(b.dir, "*"))
	if err != nil {
		return fmt.Errorf("failed to scan inbox: %w", err)
	}
	for _, path := range existing {
		if isInboxFile(path) {
			b.schedule(path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-b.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				if isInboxFile(event.Name) {
					b.schedule(event.Name)
				}
			}

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("Inbox watcher error", "error", err)

		case path := <-b.ready:
			b.process(ctx, path)
		}
	}
}

// schedule откладывает импорт; повторные события для файла сдвигают таймер
func (b *inbox) schedule(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if t, ok := b.pending[path]; ok {
		t.Reset(settleDelay)
		return
	}
	b.pending[path] = time.AfterFunc(settleDelay, func() {
		b.mu.Lock()
		delete(b.pending, path)
		b.mu.Unlock()
		select {
		case b.ready <- path:
		case <-b.done:
		}
	})
}

func (b *inbox) stopTimers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for path, t := range b.pending {
		t.Stop()
		delete(b.pending, path)
	}
}

// process импортирует файл и переименовывает его по результату
func (b *inbox) process(ctx context.Context, path string) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Warn("Failed to read inbox file", "path", path, "error", err)
		}
		return
	}

	suffix := importedSuffix
	n, err := b.importer.ImportQuotes(ctx, payload)
	if err != nil {
		suffix = rejectedSuffix
		b.logger.Warn("Inbox file rejected", "path", path, "error", err)
	} else {
		b.logger.Info("Inbox file imported", "path", path, "count", n)
	}

	if err := os.Rename(path, path+suffix); err != nil {
		b.logger.Warn("Failed to rename inbox file", "path", path, "error", err)
	}
}
