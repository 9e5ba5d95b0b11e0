package host

import (
	"context"
	"fmt"
	"sync"
)

// Shell is one UV shell tracked by the in-memory host
type Shell struct {
	Name string
	U    float64
	V    float64
}

// MemoryHost is an in-process Host used for offline mode and tests. It
// models a document of named UV shells and a current selection.
type MemoryHost struct {
	mu       sync.Mutex
	shells   map[string]*Shell
	selected []string
}

// NewMemoryHost creates an empty in-memory host
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		shells: make(map[string]*Shell),
	}
}

// Connect is a no-op for the in-memory host
func (h *MemoryHost) Connect(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory host
func (h *MemoryHost) Close() error {
	return nil
}

// Describe returns a description of the binding for the status bar
func (h *MemoryHost) Describe() string {
	return "offline (in-memory document)"
}

// AddShell adds a UV shell at the given UV position
func (h *MemoryHost) AddShell(name string, u, v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.shells[name] = &Shell{Name: name, U: u, V: v}
}

// Select replaces the current selection
func (h *MemoryHost) Select(names ...string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range names {
		if _, exists := h.shells[name]; !exists {
			return fmt.Errorf("unknown shell: %s", name)
		}
	}
	h.selected = append([]string(nil), names...)
	return nil
}

// ClearSelection empties the current selection
func (h *MemoryHost) ClearSelection() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selected = nil
}

// FirstSelectionUV returns the UV position of the first selected shell
func (h *MemoryHost) FirstSelectionUV(ctx context.Context) (float64, float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.selected) == 0 {
		return 0, 0, ErrNoSelection
	}
	shell := h.shells[h.selected[0]]
	return shell.U, shell.V, nil
}

// TranslateUV translates every selected shell
func (h *MemoryHost) TranslateUV(ctx context.Context, du, dv float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.selected) == 0 {
		return ErrNoSelection
	}
	for _, name := range h.selected {
		shell := h.shells[name]
		shell.U += du
		shell.V += dv
	}
	return nil
}

// ShellUV returns the current UV position of a shell
func (h *MemoryHost) ShellUV(name string) (float64, float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	shell, exists := h.shells[name]
	if !exists {
		return 0, 0, false
	}
	return shell.U, shell.V, true
}
