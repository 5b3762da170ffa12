// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package tui provides a reorderable list component for bubbletea
// programs. Rows are tracked as bubblezone rectangles; holding the left
// mouse button on a row and moving the pointer previews the new order,
// releasing commits it.
//
// The program embedding a List must initialize the global zone manager
// with zone.NewGlobal(), wrap its final view in zone.Scan, and run with
// tea.WithMouseCellMotion().
package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/reorder"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, false).
			BorderForeground(subtle)
	listHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			Render
	rowStyle = lipgloss.NewStyle().PaddingLeft(2).Render

	// The dragged row's underlying placeholder, shown at the slot it
	// would land in.
	placeholderStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}).
				Render

	// The floating copy of the dragged row, drawn at the pointer's line.
	cloneStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
			Background(highlight).
			Render
)

// Item is one reorderable row. ID must be unique within the list; it
// keys the row's zone.
type Item struct {
	ID    string
	Title string
}

// List is a tea.Model for a mouse-reorderable list. It is also the
// reorder.Surface its controller drives: row bounds come from the zone
// manager, visual offsets shift rows in the rendered view, and the
// structural move splices the item slice.
type List struct {
	prefix string
	title  string
	width  int
	height int

	items   []Item
	offsets []reorder.Point
	ctl     *reorder.Controller
	pointer reorder.Point

	onReorder func(from, to int)
	onMove    func(from, to int)
}

// Option configures a List.
type Option func(*List)

// WithTitle sets the list's header line.
func WithTitle(title string) Option {
	return func(l *List) { l.title = title }
}

// WithOnReorder registers a callback fired after every committed move
// with the source and target indices.
func WithOnReorder(fn func(from, to int)) Option {
	return func(l *List) { l.onReorder = fn }
}

// WithOnMove registers a callback fired during a drag whenever the
// resolved target slot changes, before anything is committed.
func WithOnMove(fn func(from, to int)) Option {
	return func(l *List) { l.onMove = fn }
}

// New creates a List over the given items. It fails when items is empty
// (there is nothing to track, and the controller refuses an empty
// surface).
func New(items []Item, opts ...Option) (*List, error) {
	l := &List{
		prefix:  zone.NewPrefix(),
		items:   slices.Clone(items),
		offsets: make([]reorder.Point, len(items)),
	}
	for _, opt := range opts {
		opt(l)
	}
	ctl, err := reorder.New(reorder.Config{Surface: l, OnMove: l.onMove})
	if err != nil {
		return nil, err
	}
	l.ctl = ctl
	return l, nil
}

// Items returns a copy of the current order.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

// Dragging reports whether a drag session is active on this list.
func (l *List) Dragging() bool {
	return l.ctl.Dragging()
}

// Append adds an item at the end of the list. Appending during an
// active drag session is ignored.
func (l *List) Append(it Item) {
	if l.ctl.Dragging() {
		return
	}
	l.items = append(l.items, it)
	l.offsets = append(l.offsets, reorder.Point{})
}

// Len implements reorder.Surface.
func (l *List) Len() int {
	return len(l.items)
}

// Bounds implements reorder.Surface from the row's zone rectangle. Rows
// that have not been scanned yet report a zero box.
func (l *List) Bounds(i int) reorder.Rect {
	info := zone.Get(l.rowID(i))
	if info == nil {
		return reorder.Rect{}
	}
	return reorder.Rect{
		X:      info.StartX,
		Y:      info.StartY,
		Width:  info.EndX - info.StartX,
		Height: info.EndY - info.StartY,
	}
}

// SetOffset implements reorder.Surface; the offset displaces the row in
// the rendered view only.
func (l *List) SetOffset(i, dx, dy int) {
	l.offsets[i] = reorder.Point{X: dx, Y: dy}
}

// Move implements reorder.Surface with an item-slice splice.
func (l *List) Move(from, to int) {
	it := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, it)
	if l.onReorder != nil {
		l.onReorder(from, to)
	}
}

func (l *List) Init() tea.Cmd {
	return nil
}

func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height

	case tea.MouseMsg:
		pt := reorder.Point{X: msg.X, Y: msg.Y}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			// Freeze the current zone geometry for the whole session.
			if err := l.ctl.Snapshot(); err != nil {
				break
			}
			// Before the first Scan every row reports a zero box, and a
			// zero box still contains the origin; never start a session
			// from that.
			if !l.scanned() {
				break
			}
			if l.ctl.Press(pt) {
				l.pointer = pt
			}
		case tea.MouseActionMotion:
			if l.ctl.Dragging() {
				l.pointer = pt
				l.ctl.Drag(pt)
			}
		case tea.MouseActionRelease:
			if l.ctl.Dragging() && msg.Button == tea.MouseButtonLeft {
				l.ctl.Release(pt)
			}
		}
	}
	return l, nil
}

func (l *List) View() string {
	out := append([]string{listHeader(l.title)}, l.renderRows()...)
	content := lipgloss.JoinVertical(lipgloss.Left, out...)

	style := listStyle
	if l.width > 0 {
		style = style.Width(l.width)
	}
	if l.height > 0 {
		style = style.Height(l.height)
	}
	return style.Render(content)
}

// renderRows draws each row at its slot line plus its current visual
// offset, then overlays the clone at the pointer's line so the dragged
// row follows the mouse.
func (l *List) renderRows() []string {
	n := len(l.items)
	lines := make([]string, n)

	if !l.ctl.Dragging() {
		for i, it := range l.items {
			lines[i] = zone.Mark(l.rowID(i), rowStyle(it.Title))
		}
		return lines
	}

	slots := l.ctl.Slots()
	dragIdx := l.ctl.DragIndex()
	for i, it := range l.items {
		line := i
		if i < len(slots) {
			line = slots[i].Y + l.offsets[i].Y - slots[0].Y
		}
		if line < 0 || line >= n {
			continue
		}
		if i == dragIdx {
			lines[line] = zone.Mark(l.rowID(i), placeholderStyle(it.Title))
		} else {
			lines[line] = zone.Mark(l.rowID(i), rowStyle(it.Title))
		}
	}
	if len(slots) > 0 {
		if line := l.pointer.Y - slots[0].Y; line >= 0 && line < n {
			lines[line] = cloneStyle(l.items[dragIdx].Title)
		}
	}
	return lines
}

// scanned reports whether the zone manager has produced real geometry
// for this list's rows yet.
func (l *List) scanned() bool {
	for _, r := range l.ctl.Slots() {
		if r.Width > 0 || r.Height > 0 {
			return true
		}
	}
	return false
}

func (l *List) rowID(i int) string {
	return l.prefix + l.items[i].ID
}
