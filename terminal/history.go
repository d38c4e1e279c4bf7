package terminal

import "elbow/core"

// endpoints is one undoable viewer state.
type endpoints struct {
	Start, End core.GridPoint
}

// History manages undo/redo of endpoint placements using a simple slice.
type History struct {
	states  []endpoints
	current int // Current position in history
	max     int // Maximum number of states to keep
}

// NewHistory creates a history keeping at most max states.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]endpoints, 0, max),
		current: -1,
		max:     max,
	}
}

// Save records a new state, discarding anything that was undone.
func (h *History) Save(start, end core.GridPoint) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, endpoints{start, end})

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if we can undo
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if we can redo
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one state. ok is false when there is nothing to undo.
func (h *History) Undo() (start, end core.GridPoint, ok bool) {
	if !h.CanUndo() {
		return start, end, false
	}
	h.current--
	s := h.states[h.current]
	return s.Start, s.End, true
}

// Redo steps forward one state. ok is false when there is nothing to redo.
func (h *History) Redo() (start, end core.GridPoint, ok bool) {
	if !h.CanRedo() {
		return start, end, false
	}
	h.current++
	s := h.states[h.current]
	return s.Start, s.End, true
}

// Stats returns current position and total states
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
