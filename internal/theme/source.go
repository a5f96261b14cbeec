package theme

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// SystemSource - the environment's light/dark preference.
type SystemSource interface {
	// Current returns false when the environment cannot tell.
	Current() (entity.Theme, bool)
	// Subscribe delivers changes until ctx ends or the returned func is called.
	Subscribe(ctx context.Context, fn func(entity.Theme)) func()
}

// TerminalSource - reads the terminal background through lipgloss.
type TerminalSource struct {
	detect   func() bool
	interval time.Duration
}

// NewTerminalSource - interval 0 disables polling, so Subscribe never fires.
func NewTerminalSource(interval time.Duration) *TerminalSource {
	return &TerminalSource{
		detect:   lipgloss.HasDarkBackground,
		interval: interval,
	}
}

func themeOf(dark bool) entity.Theme {
	if dark {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

func (that *TerminalSource) Current() (entity.Theme, bool) {
	return themeOf(that.detect()), true
}

func (that *TerminalSource) Subscribe(ctx context.Context, fn func(entity.Theme)) func() {
	ctx, cancel := context.WithCancel(ctx)
	if that.interval <= 0 {
		return cancel
	}

	last, _ := that.Current()

	go func() {
		ticker := time.NewTicker(that.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, _ := that.Current()
				if current != last {
					last = current
					fn(current)
				}
			}
		}
	}()

	return cancel
}

// StaticSource - a fixed answer plus manual change delivery.
type StaticSource struct {
	mu          sync.Mutex
	theme       entity.Theme
	known       bool
	nextID      int
	subscribers map[int]func(entity.Theme)
}

// NewStaticSource - known=false models an environment without a preference.
func NewStaticSource(theme entity.Theme, known bool) *StaticSource {
	return &StaticSource{
		theme:       theme,
		known:       known,
		subscribers: map[int]func(entity.Theme){},
	}
}

func (that *StaticSource) Current() (entity.Theme, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.theme, that.known
}

func (that *StaticSource) Subscribe(ctx context.Context, fn func(entity.Theme)) func() {
	that.mu.Lock()
	id := that.nextID
	that.nextID++
	that.subscribers[id] = fn
	that.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			that.mu.Lock()
			delete(that.subscribers, id)
			that.mu.Unlock()
		})
	}

	stop := context.AfterFunc(ctx, unsubscribe)

	return func() {
		stop()
		unsubscribe()
	}
}

// Emit - changes the reported theme and notifies subscribers synchronously.
func (that *StaticSource) Emit(theme entity.Theme) {
	that.mu.Lock()
	that.theme = theme
	that.known = true
	subscribers := make([]func(entity.Theme), 0, len(that.subscribers))
	for _, fn := range that.subscribers {
		subscribers = append(subscribers, fn)
	}
	that.mu.Unlock()

	for _, fn := range subscribers {
		fn(theme)
	}
}
