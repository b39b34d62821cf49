package calendar

import "stayops/internal/domain/shared/calday"

type SelectionState int

const (
	SelectionIdle SelectionState = iota
	SelectionDragging
	SelectionCommitted
)

// SelectionRange is an inclusive, contiguous run of days. Membership is two
// integer comparisons so arbitrarily long ranges stay O(1).
type SelectionRange struct {
	Start calday.Day
	End   calday.Day
}

func (r SelectionRange) Contains(d calday.Day) bool { return d >= r.Start && d <= r.End }

func (r SelectionRange) Days() int { return calday.DaysBetween(r.Start, r.End) + 1 }

// SelectionManager tracks drag-to-select and shift-click range selection over
// the day grid. It is the only stateful piece of the core and runs on the
// single event-processing goroutine, so it carries no locking.
type SelectionManager struct {
	state      SelectionState
	anchor     calday.Day
	cursor     calday.Day
	selectable func(calday.Day) bool
}

// NewSelectionManager builds an idle manager. The predicate gates which cells
// may start or extend a selection (occupied cells are not selectable); nil
// means every cell is selectable.
func NewSelectionManager(selectable func(calday.Day) bool) *SelectionManager {
	return &SelectionManager{selectable: selectable}
}

func (m *SelectionManager) State() SelectionState { return m.state }

func (m *SelectionManager) isSelectable(d calday.Day) bool {
	return m.selectable == nil || m.selectable(d)
}

// Press starts a drag on a selectable cell, replacing any prior selection.
// It reports whether a drag actually began.
func (m *SelectionManager) Press(day calday.Day) bool {
	if !m.isSelectable(day) {
		return false
	}
	m.state = SelectionDragging
	m.anchor = day
	m.cursor = day
	return true
}

// Enter moves the drag cursor; the live range is exposed through Range for
// highlighting. Ignored outside a drag.
func (m *SelectionManager) Enter(day calday.Day) {
	if m.state != SelectionDragging {
		return
	}
	m.cursor = day
}

// Release commits the drag (the caller wires it to a global pointer-up
// listener so leaving the grid still ends the drag).
func (m *SelectionManager) Release() (SelectionRange, bool) {
	if m.state != SelectionDragging {
		return SelectionRange{}, false
	}
	m.state = SelectionCommitted
	return m.normalized(), true
}

// ShiftClick commits a range anchored at the previously committed range's
// start, letting a selection be extended without dragging.
func (m *SelectionManager) ShiftClick(day calday.Day) (SelectionRange, bool) {
	if m.state == SelectionDragging || !m.isSelectable(day) {
		return SelectionRange{}, false
	}
	if m.state == SelectionCommitted {
		m.anchor = m.normalized().Start
	} else {
		m.anchor = day
	}
	m.cursor = day
	m.state = SelectionCommitted
	return m.normalized(), true
}

// Cancel drops any in-flight or committed selection.
func (m *SelectionManager) Cancel() { m.state = SelectionIdle }

// Clear resets the manager after a successful batch action so the selection
// is never left stale.
func (m *SelectionManager) Clear() { m.state = SelectionIdle }

// Range returns the current live or committed range, normalized so dragging
// backwards selects the same days as dragging forwards.
func (m *SelectionManager) Range() (SelectionRange, bool) {
	if m.state == SelectionIdle {
		return SelectionRange{}, false
	}
	return m.normalized(), true
}

// Contains reports whether the day is inside the current selection.
func (m *SelectionManager) Contains(day calday.Day) bool {
	r, ok := m.Range()
	return ok && r.Contains(day)
}

func (m *SelectionManager) normalized() SelectionRange {
	if m.anchor <= m.cursor {
		return SelectionRange{Start: m.anchor, End: m.cursor}
	}
	return SelectionRange{Start: m.cursor, End: m.anchor}
}
