// Package listview keeps a page of records coherent while a delete or
// duplicate is still settling on the server. A mutation is applied to the
// held list immediately (the user sees it at once), the real write runs in
// the background, and the next authoritative read supersedes whatever the
// optimistic state was.
package listview

// List holds a snapshot of records plus any optimistic edits layered on top.
// It moves between two phases: Stable (items mirror the last authoritative
// read) and Pending (at least one mutation has been pre-applied and not yet
// confirmed).
type List[T any] struct {
	items   []T
	id      func(T) uint
	pending int
	lastErr error
}

// New wraps an authoritative page of records. id extracts each record's
// identifier.
func New[T any](items []T, id func(T) uint) *List[T] {
	snapshot := make([]T, len(items))
	copy(snapshot, items)
	return &List[T]{items: snapshot, id: id}
}

// Items returns the list as the view should currently render it.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Pending reports whether any optimistic edit is still awaiting server
// confirmation.
func (l *List[T]) Pending() bool { return l.pending > 0 }

// Err returns the error carried by the last failed settle, if any.
func (l *List[T]) Err() error { return l.lastErr }

// ApplyDelete removes the record with the given id ahead of the server
// delete. Deleting an id that is not present leaves the list unchanged and
// does not enter the pending phase.
func (l *List[T]) ApplyDelete(id uint) {
	for i, item := range l.items {
		if l.id(item) == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.pending++
			return
		}
	}
}

// ApplyDuplicate appends a copy ahead of the server insert. The copy comes in
// already carrying its derived display name ("Copy of X").
func (l *List[T]) ApplyDuplicate(copyOf T) {
	l.items = append(l.items, copyOf)
	l.pending++
}

// Settle replaces the optimistic state with the authoritative list from the
// next server read and returns to the stable phase.
func (l *List[T]) Settle(authoritative []T) {
	snapshot := make([]T, len(authoritative))
	copy(snapshot, authoritative)
	l.items = snapshot
	l.pending = 0
	l.lastErr = nil
}

// Fail records that the in-flight mutation failed. The optimistic entry is
// deliberately not rolled back; the error is surfaced for a notification and
// the next authoritative read will correct the list.
func (l *List[T]) Fail(err error) {
	l.lastErr = err
	if l.pending > 0 {
		l.pending--
	}
}
