// Package history keeps a strictly linear undo/redo record of executed
// commands. Any new push cuts the redo branch; undo and redo on an
// empty stack are no-ops, never errors.
package history

import "sync"

// History owns the undo and redo stacks. Mutation is serialized by a
// single mutex; side effects run inside it, so a concurrent caller
// observes whole undo/redo transitions only.
type History struct {
	mu    sync.Mutex
	undo  []Command
	redo  []Command
	limit int
}

// New returns a history keeping at most limit undoable commands.
// 0 means unlimited.
func New(limit int) *History {
	return &History{limit: limit}
}

// Push records an executed command and discards any redoable branch.
// Only successfully executed commands belong here.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = append(h.undo, cmd)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// Undo reverses the most recent command and moves it to the redo
// stack. Returns false when there is nothing to undo.
func (h *History) Undo() (Command, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.undo)
	if n == 0 {
		return nil, false
	}
	cmd := h.undo[n-1]
	h.undo = h.undo[:n-1]
	cmd.Undo()
	h.redo = append(h.redo, cmd)
	return cmd, true
}

// Redo re-executes the most recently undone command and moves it back
// to the undo stack. Returns false when there is nothing to redo.
func (h *History) Redo() (Command, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.redo)
	if n == 0 {
		return nil, false
	}
	cmd := h.redo[n-1]
	h.redo = h.redo[:n-1]
	// Commands only reach the redo stack after a successful execute,
	// and re-running the same style and coordinate cannot newly fail.
	_ = cmd.Execute()
	h.undo = append(h.undo, cmd)
	return cmd, true
}

// Top returns the most recent undoable command without removing it.
func (h *History) Top() (Command, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return nil, false
	}
	return h.undo[len(h.undo)-1], true
}

// Len reports the sizes of the undo and redo stacks.
func (h *History) Len() (undoable, redoable int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo), len(h.redo)
}

// Commands returns the undoable commands, oldest first.
func (h *History) Commands() []Command {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Command, len(h.undo))
	copy(out, h.undo)
	return out
}
