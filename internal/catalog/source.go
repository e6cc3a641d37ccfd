package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/niagarahome/launcher/internal/model"
)

// Source provides the visible apps, sorted for display, and notifies
// subscribers whenever that list may have changed.
type Source interface {
	Apps(ctx context.Context) ([]model.App, error)
	Subscribe(fn func()) func()
}

// notifier fans change notifications out to subscribers
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	n.nextID++
	id := n.nextID
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	fns := make([]func(), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// MemorySource is a Source backed by a slice
type MemorySource struct {
	mu   sync.RWMutex
	apps []model.App
	notifier
}

// NewMemorySource creates a source holding apps
func NewMemorySource(apps []model.App) *MemorySource {
	m := &MemorySource{}
	m.apps = append(m.apps, apps...)
	return m
}

// Apps returns the visible apps sorted for display
func (m *MemorySource) Apps(ctx context.Context) ([]model.App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return SortApps(Visible(m.apps)), nil
}

// Set replaces the apps and notifies subscribers
func (m *MemorySource) Set(apps []model.App) {
	m.mu.Lock()
	m.apps = append([]model.App(nil), apps...)
	m.mu.Unlock()
	m.notify()
}

// Subscribe registers fn for change notifications
func (m *MemorySource) Subscribe(fn func()) func() {
	return m.subscribe(fn)
}
