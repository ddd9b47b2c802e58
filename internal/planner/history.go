package planner

import "github.com/tasselapp/tassel/internal/domain"

// history holds past and future plan snapshots for linear undo/redo.
// Recording a new snapshot clears the future stack: there is no redo after
// a fresh edit branches history. Snapshots are deep copies; restoring one
// never aliases a stack entry.
type history struct {
	past   []*domain.Plan
	future []*domain.Plan
}

// record pushes the pre-mutation state and invalidates redo.
func (h *history) record(pre *domain.Plan) {
	h.past = append(h.past, pre)
	h.future = nil
}

// undo exchanges current for the top of the past stack. Returns current
// unchanged and false when there is nothing to undo.
func (h *history) undo(current *domain.Plan) (*domain.Plan, bool) {
	if len(h.past) == 0 {
		return current, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return restored, true
}

// redo is the mirror of undo.
func (h *history) redo(current *domain.Plan) (*domain.Plan, bool) {
	if len(h.future) == 0 {
		return current, false
	}
	restored := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return restored, true
}

func (h *history) reset() {
	h.past = nil
	h.future = nil
}
