// Package reorder implements drag-and-drop reordering for an ordered
// collection of items. Pressing on an item starts a drag session, moving
// the pointer displaces the other items to preview the new order, and
// releasing commits the reorder structurally.
//
// The package is host-agnostic: it knows nothing about terminals or HTML
// documents. A host exposes its items through the Surface interface and
// feeds pointer events into a Controller; the Controller resolves the
// pointer position to a target slot, drives per-item visual offsets, and
// performs the structural move on release. See the tui and htmldoc
// subpackages for concrete hosts.
package reorder

import "errors"

var (
	// ErrNoSurface is returned by New when the config has no Surface.
	ErrNoSurface = errors.New("reorder: no surface")

	// ErrNoItems is returned when the surface has no items to track.
	ErrNoItems = errors.New("reorder: surface has no items")
)

// Surface is the host document: an ordered collection of items with
// measurable bounds. Indices are positions in the current order, 0-based.
type Surface interface {
	// Len returns the number of items in document order.
	Len() int

	// Bounds returns the current bounding box of item i.
	Bounds(i int) Rect

	// SetOffset applies a visual translation to item i without changing
	// the structural order. A zero offset clears the translation.
	SetOffset(i, dx, dy int)

	// Move relocates the item at index from to index to, preserving the
	// relative order of all other items (array-splice semantics).
	Move(from, to int)
}

// CloneSurface is implemented by surfaces that can materialize a floating
// copy of the dragged item. The controller creates the clone at drag
// start, translates it on every move, and removes it on release. Hosts
// that render the clone themselves (from DragIndex and DragOffset) need
// not implement it.
type CloneSurface interface {
	Surface

	// CreateClone places a visual copy of item i directly over it.
	CreateClone(i int)

	// OffsetClone translates the clone from its origin position.
	OffsetClone(dx, dy int)

	// RemoveClone discards the clone.
	RemoveClone()
}

// Config configures a Controller. Surface is required; the callbacks are
// optional and nil callbacks are skipped.
type Config struct {
	// Surface is the host collection being reordered.
	Surface Surface

	// OnDragStart fires once per session, after the clone is created and
	// before any movement. index is the dragged item's position.
	OnDragStart func(p Point, index int)

	// OnMove fires on every reconciliation step that changes the resolved
	// target, with the session's source index and the new target index.
	OnMove func(from, to int)

	// OnDragEnd fires once per session on release, before the clone is
	// removed and before the structural move.
	OnDragEnd func(p Point, index int)
}
