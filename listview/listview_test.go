package listview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   uint
	Name string
}

func recordID(r record) uint { return r.ID }

func newView(records ...record) *List[record] {
	return New(records, recordID)
}

func TestApplyDelete(t *testing.T) {
	view := newView(record{1, "001"}, record{2, "002"}, record{3, "003"})

	view.ApplyDelete(2)

	items := view.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, uint(3), items[1].ID)
	assert.True(t, view.Pending())
}

func TestApplyDeleteMissingIDIsNoop(t *testing.T) {
	view := newView(record{1, "001"}, record{2, "002"})

	view.ApplyDelete(99)

	assert.Len(t, view.Items(), 2)
	assert.False(t, view.Pending())
}

func TestApplyDuplicate(t *testing.T) {
	view := newView(record{1, "001"})

	view.ApplyDuplicate(record{0, "Copy of 001"})

	items := view.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Copy of 001", items[1].Name)
	assert.True(t, view.Pending())
}

func TestSettleReplacesOptimisticState(t *testing.T) {
	view := newView(record{1, "001"}, record{2, "002"})
	view.ApplyDelete(1)

	// the authoritative read disagrees with the optimistic state
	view.Settle([]record{{2, "002"}, {5, "005"}})

	items := view.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(5), items[1].ID)
	assert.False(t, view.Pending())
	assert.NoError(t, view.Err())
}

func TestFailKeepsOptimisticEntry(t *testing.T) {
	view := newView(record{1, "001"}, record{2, "002"})
	view.ApplyDelete(1)

	view.Fail(errors.New("delete rejected"))

	// the list still shows the delete; only the error is surfaced
	assert.Len(t, view.Items(), 1)
	assert.EqualError(t, view.Err(), "delete rejected")
	assert.False(t, view.Pending())
}

func TestItemsReturnsCopy(t *testing.T) {
	view := newView(record{1, "001"})

	items := view.Items()
	items[0].Name = "mutated"

	assert.Equal(t, "001", view.Items()[0].Name)
}

func TestSnapshotIsolatedFromCaller(t *testing.T) {
	source := []record{{1, "001"}}
	view := New(source, recordID)

	source[0].Name = "mutated"

	assert.Equal(t, "001", view.Items()[0].Name)
}
