package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared/calday"
)

func oct(d int) calday.Day { return calday.Date(2026, time.October, d) }

func TestSelectionDragForward(t *testing.T) {
	m := NewSelectionManager(nil)

	require.True(t, m.Press(oct(3)))
	assert.Equal(t, SelectionDragging, m.State())
	m.Enter(oct(7))
	m.Enter(oct(10))

	r, ok := m.Release()
	require.True(t, ok)
	assert.Equal(t, SelectionRange{Start: oct(3), End: oct(10)}, r)
	assert.Equal(t, SelectionCommitted, m.State())
}

func TestSelectionDragBackwardMatchesForward(t *testing.T) {
	forward := NewSelectionManager(nil)
	forward.Press(oct(3))
	forward.Enter(oct(10))
	fr, _ := forward.Release()

	backward := NewSelectionManager(nil)
	backward.Press(oct(10))
	backward.Enter(oct(3))
	br, _ := backward.Release()

	assert.Equal(t, fr, br)
	assert.Equal(t, 8, br.Days())
}

func TestSelectionLiveRangeWhileDragging(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Press(oct(5))
	m.Enter(oct(2))

	r, ok := m.Range()
	require.True(t, ok)
	assert.Equal(t, SelectionRange{Start: oct(2), End: oct(5)}, r)
	assert.True(t, m.Contains(oct(3)))
	assert.False(t, m.Contains(oct(6)))
}

func TestSelectionPressOnOccupiedCell(t *testing.T) {
	occupied := oct(4)
	m := NewSelectionManager(func(d calday.Day) bool { return d != occupied })

	assert.False(t, m.Press(occupied))
	assert.Equal(t, SelectionIdle, m.State())

	require.True(t, m.Press(oct(5)))
}

func TestSelectionReleaseWithoutDrag(t *testing.T) {
	m := NewSelectionManager(nil)
	_, ok := m.Release()
	assert.False(t, ok)
	assert.Equal(t, SelectionIdle, m.State())
}

func TestSelectionEnterIgnoredWhenNotDragging(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Enter(oct(7))
	_, ok := m.Range()
	assert.False(t, ok)
}

func TestSelectionShiftClickExtendsCommittedRange(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Press(oct(3))
	m.Enter(oct(5))
	m.Release()

	r, ok := m.ShiftClick(oct(9))
	require.True(t, ok)
	assert.Equal(t, SelectionRange{Start: oct(3), End: oct(9)}, r)
}

func TestSelectionShiftClickBeforeCommittedStart(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Press(oct(6))
	m.Enter(oct(8))
	m.Release()

	r, ok := m.ShiftClick(oct(2))
	require.True(t, ok)
	assert.Equal(t, SelectionRange{Start: oct(2), End: oct(6)}, r)
}

func TestSelectionShiftClickFromIdle(t *testing.T) {
	m := NewSelectionManager(nil)
	r, ok := m.ShiftClick(oct(4))
	require.True(t, ok)
	assert.Equal(t, SelectionRange{Start: oct(4), End: oct(4)}, r)
	assert.Equal(t, SelectionCommitted, m.State())
}

func TestSelectionShiftClickOnOccupiedCell(t *testing.T) {
	occupied := oct(9)
	m := NewSelectionManager(func(d calday.Day) bool { return d != occupied })
	m.Press(oct(3))
	m.Enter(oct(5))
	m.Release()

	_, ok := m.ShiftClick(occupied)
	assert.False(t, ok)

	// The committed selection is untouched.
	r, hasRange := m.Range()
	require.True(t, hasRange)
	assert.Equal(t, SelectionRange{Start: oct(3), End: oct(5)}, r)
}

func TestSelectionCancelAndClear(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Press(oct(3))
	m.Cancel()
	assert.Equal(t, SelectionIdle, m.State())
	_, ok := m.Range()
	assert.False(t, ok)

	m.Press(oct(3))
	m.Enter(oct(6))
	m.Release()
	m.Clear()
	assert.Equal(t, SelectionIdle, m.State())
	assert.False(t, m.Contains(oct(4)))
}

func TestSelectionNewPressReplacesCommittedRange(t *testing.T) {
	m := NewSelectionManager(nil)
	m.Press(oct(3))
	m.Enter(oct(6))
	m.Release()

	require.True(t, m.Press(oct(12)))
	r, _ := m.Release()
	assert.Equal(t, SelectionRange{Start: oct(12), End: oct(12)}, r)
}
