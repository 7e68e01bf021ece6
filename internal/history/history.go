// Package history implements linear undo/redo over reversible document
// edits. Commands are executed once, recorded, and then toggled between
// the undo and redo stacks.
package history

// Command is a single reversible document edit.
type Command interface {
	// Execute applies the edit. It is called once when the edit is first
	// made and again on every redo.
	Execute()
	// Undo reverts the edit.
	Undo()
}

// History holds the undo and redo stacks for one document. The zero
// value is not usable; call New.
type History struct {
	undo []Command
	redo []Command
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Record pushes an already-executed command onto the undo stack and
// clears the redo stack. Recording and redoing are the only ways a
// command enters the undo stack.
func (h *History) Record(cmd Command) {
	h.undo = append(h.undo, cmd)
	h.redo = nil
}

// Undo reverts the most recent command and moves it to the redo stack.
// No-op when there is nothing to undo.
func (h *History) Undo() {
	if len(h.undo) == 0 {
		return
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	cmd.Undo()
	h.redo = append(h.redo, cmd)
}

// Redo re-applies the most recently undone command and moves it back to
// the undo stack. No-op when there is nothing to redo.
func (h *History) Redo() {
	if len(h.redo) == 0 {
		return
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	cmd.Execute()
	h.undo = append(h.undo, cmd)
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
