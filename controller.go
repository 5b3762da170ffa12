package reorder

// State represents the current state of the drag session.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// unset marks session indices as "no value".
const unset = -1

// Controller tracks one drag session at a time over a Surface.
//
// It owns the geometry snapshot (the slots), the session indices and the
// per-item visual offsets. All methods must be called from a single
// event-dispatch goroutine; the controller does no locking.
type Controller struct {
	cfg     Config
	surface Surface

	// slots is the frozen geometry snapshot, index-parallel with the
	// surface's document order. Slot resolution always runs against this
	// snapshot, never against live bounds, so the pointer-to-slot mapping
	// stays stable while items visually shift.
	slots   []Rect
	offsets []Point

	state       State
	startIndex  int
	endIndex    int
	preEndIndex int
	origin      Point
	delta       Point
}

// New creates a Controller and takes the initial geometry snapshot.
// It fails if the config has no Surface or the surface has no items.
func New(cfg Config) (*Controller, error) {
	if cfg.Surface == nil {
		return nil, ErrNoSurface
	}
	c := &Controller{
		cfg:         cfg,
		surface:     cfg.Surface,
		startIndex:  unset,
		endIndex:    unset,
		preEndIndex: unset,
	}
	if err := c.Snapshot(); err != nil {
		return nil, err
	}
	return c, nil
}

// Snapshot replaces the geometry snapshot wholesale with the surface's
// current bounds, in document order. It is called automatically after a
// committed move; hosts whose layout settles late (e.g. after a render
// pass) may call it again before starting a session.
func (c *Controller) Snapshot() error {
	n := c.surface.Len()
	if n == 0 {
		c.slots = nil
		c.offsets = nil
		return ErrNoItems
	}
	slots := make([]Rect, n)
	for i := range slots {
		slots[i] = c.surface.Bounds(i)
	}
	c.slots = slots
	c.offsets = make([]Point, n)
	return nil
}

// Press starts a drag session if p hits a tracked slot. It reports
// whether a session started: a press outside every slot, or while a
// session is already active, does nothing.
func (c *Controller) Press(p Point) bool {
	if c.state == StateDragging {
		return false
	}
	i, ok := c.slotAt(p)
	if !ok {
		return false
	}
	c.state = StateDragging
	c.startIndex = i
	c.endIndex = i
	c.preEndIndex = i
	c.origin = p
	c.delta = Point{}
	if cs, ok := c.surface.(CloneSurface); ok {
		cs.CreateClone(i)
	}
	if c.cfg.OnDragStart != nil {
		c.cfg.OnDragStart(p, i)
	}
	return true
}

// Drag updates the session for a new pointer position: the clone follows
// the pointer, the target slot is re-resolved against the frozen
// snapshot, and the other items are reconciled to preview the pending
// order. A Drag outside any slot keeps the previous target (sticky).
func (c *Controller) Drag(p Point) {
	if c.state != StateDragging {
		return
	}
	c.delta = Point{X: p.X - c.origin.X, Y: p.Y - c.origin.Y}
	if cs, ok := c.surface.(CloneSurface); ok {
		cs.OffsetClone(c.delta.X, c.delta.Y)
	}
	if i, ok := c.slotAt(p); ok {
		c.endIndex = i
	}
	c.reconcile()
}

// Release ends the session: the drag-end callback fires, the clone is
// removed, all visual offsets are cleared, and if the target differs
// from the source the structural move is committed and the geometry
// re-snapshotted for the next session.
func (c *Controller) Release(p Point) {
	if c.state != StateDragging {
		return
	}
	start, end := c.startIndex, c.endIndex
	if c.cfg.OnDragEnd != nil {
		c.cfg.OnDragEnd(p, start)
	}
	if cs, ok := c.surface.(CloneSurface); ok {
		cs.RemoveClone()
	}
	// Offsets are cleared unconditionally, even when nothing moved, so a
	// no-op release can never leave items visually displaced.
	c.clearOffsets()
	if start != end {
		c.surface.Move(start, end)
		// A zero-item surface after the move leaves the controller with
		// no slots; the next Press is then a silent no-op.
		_ = c.Snapshot()
	}
	c.startIndex = unset
	c.endIndex = unset
	c.preEndIndex = unset
	c.delta = Point{}
	c.state = StateIdle
}

// Dragging reports whether a session is active.
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// DragIndex returns the dragged item's source index, or -1 when idle.
func (c *Controller) DragIndex() int {
	return c.startIndex
}

// TargetIndex returns the currently resolved target slot, or -1 when
// idle.
func (c *Controller) TargetIndex() int {
	return c.endIndex
}

// DragOffset returns the clone's translation from the pointer-down
// origin. Hosts without a CloneSurface read this to render the dragged
// item themselves.
func (c *Controller) DragOffset() (dx, dy int) {
	return c.delta.X, c.delta.Y
}

// Slots returns a copy of the frozen geometry snapshot.
func (c *Controller) Slots() []Rect {
	out := make([]Rect, len(c.slots))
	copy(out, c.slots)
	return out
}

// Offsets returns a copy of the current per-item visual translations.
func (c *Controller) Offsets() []Point {
	out := make([]Point, len(c.offsets))
	copy(out, c.offsets)
	return out
}

// slotAt resolves p to a slot index against the frozen snapshot. The
// first containing slot in index order wins when slots overlap.
func (c *Controller) slotAt(p Point) (int, bool) {
	for i, r := range c.slots {
		if r.Contains(p) {
			return i, true
		}
	}
	return unset, false
}

// reconcile shifts every non-dragged item toward the slot it would
// occupy if the dragged item were dropped at the current target, and
// animates the dragged item's underlying placeholder to the target
// slot. All displacements are slot-to-slot deltas from the frozen
// snapshot. Redundant passes at an unchanged target are suppressed.
func (c *Controller) reconcile() {
	if c.startIndex == unset || c.endIndex == unset || c.endIndex == c.preEndIndex {
		return
	}
	start, end := c.startIndex, c.endIndex
	for i := range c.slots {
		switch {
		case i == start:
			c.offsetToSlot(i, end)
		case start < i && i <= end:
			// Dragging downward past item i: it backfills one slot.
			c.offsetToSlot(i, i-1)
		case end <= i && i < start:
			// Dragging upward past item i: it yields one slot forward.
			c.offsetToSlot(i, i+1)
		default:
			c.offsetToSlot(i, i)
		}
	}
	if c.cfg.OnMove != nil {
		c.cfg.OnMove(start, end)
	}
	c.preEndIndex = end
}

// offsetToSlot translates item i to slot j's position.
func (c *Controller) offsetToSlot(i, j int) {
	d := Point{X: c.slots[j].X - c.slots[i].X, Y: c.slots[j].Y - c.slots[i].Y}
	if c.offsets[i] == d {
		return
	}
	c.offsets[i] = d
	c.surface.SetOffset(i, d.X, d.Y)
}

func (c *Controller) clearOffsets() {
	for i := range c.offsets {
		if c.offsets[i] != (Point{}) {
			c.offsets[i] = Point{}
		}
		c.surface.SetOffset(i, 0, 0)
	}
}
