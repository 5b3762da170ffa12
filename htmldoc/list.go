// Package htmldoc hosts reorderable items inside an x/net/html document
// tree. A List enumerates the container's items by a simple selector,
// applies visual translations as style attributes, materializes the drag
// clone as a real node, and commits reorders by relocating the item node
// within its parent.
//
// The package has no layout engine; item geometry comes from a
// caller-supplied MeasureFunc, defaulting to a vertical stack of
// fixed-size rows.
package htmldoc

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/net/html"

	"github.com/rileylov/reorder"
)

var (
	// ErrNilContainer is returned by NewList when the container node is
	// nil.
	ErrNilContainer = errors.New("htmldoc: nil container")

	// ErrNoMatch is returned by NewList when the selector matches no
	// element under the container.
	ErrNoMatch = errors.New("htmldoc: selector matched no items")
)

// Default row geometry for the stack MeasureFunc.
const (
	defaultRowWidth  = 100
	defaultRowHeight = 20
)

// MeasureFunc reports the container-relative bounds of item n, the i'th
// match in document order.
type MeasureFunc func(n *html.Node, i int) reorder.Rect

// StackMeasure returns a MeasureFunc that stacks items vertically in
// uniform rows of the given size.
func StackMeasure(width, height int) MeasureFunc {
	return func(_ *html.Node, i int) reorder.Rect {
		return reorder.Rect{X: 0, Y: i * height, Width: width, Height: height}
	}
}

// List is a reorder.Surface (and reorder.CloneSurface) over the elements
// matching a selector inside one container node.
type List struct {
	container *html.Node
	selector  string
	items     []*html.Node
	measure   MeasureFunc
	clone     *html.Node
}

// Option configures a List.
type Option func(*List)

// WithMeasure overrides the default stacked-row geometry.
func WithMeasure(m MeasureFunc) Option {
	return func(l *List) { l.measure = m }
}

// WithRowSize keeps the stacked-row geometry but changes the row size.
func WithRowSize(width, height int) Option {
	return func(l *List) { l.measure = StackMeasure(width, height) }
}

// NewList enumerates the elements under container matching sel. It fails
// when the container is nil or the selector matches nothing: both are
// hard preconditions with no partial setup. The container is forced to
// positioned layout so the absolutely-positioned clone stays contained
// within it.
func NewList(container *html.Node, sel string, opts ...Option) (*List, error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	l := &List{
		container: container,
		selector:  sel,
		measure:   StackMeasure(defaultRowWidth, defaultRowHeight),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Refresh()
	if len(l.items) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, sel)
	}
	if getStyle(container, "position") == "" {
		setStyle(container, "position", "relative")
	}
	return l, nil
}

// Refresh re-enumerates the items from the document, replacing the item
// list wholesale. Move calls it after every commit; call it manually
// after external mutations of the container.
func (l *List) Refresh() {
	l.items = Select(l.container, l.selector)
}

// Item returns the element at index i in document order.
func (l *List) Item(i int) *html.Node {
	return l.items[i]
}

// Len implements reorder.Surface.
func (l *List) Len() int {
	return len(l.items)
}

// Bounds implements reorder.Surface.
func (l *List) Bounds(i int) reorder.Rect {
	return l.measure(l.items[i], i)
}

// SetOffset implements reorder.Surface by writing a transform
// declaration on the item's style attribute. A zero offset removes it.
func (l *List) SetOffset(i, dx, dy int) {
	if dx == 0 && dy == 0 {
		clearStyle(l.items[i], "transform")
		return
	}
	setStyle(l.items[i], "transform", fmt.Sprintf("translate(%dpx, %dpx)", dx, dy))
}

// Move implements reorder.Surface: the item node is detached and
// reinserted immediately after (moving forward) or before (moving
// backward) the node currently at the target index, then the item list
// is re-enumerated from the new document order.
func (l *List) Move(from, to int) {
	node, target := l.items[from], l.items[to]
	node.Parent.RemoveChild(node)
	if from < to {
		target.Parent.InsertBefore(node, target.NextSibling)
	} else {
		target.Parent.InsertBefore(node, target)
	}
	l.Refresh()
}

// CreateClone implements reorder.CloneSurface: a deep copy of item i is
// appended to the container, absolutely positioned over the source with
// normalized box-sizing and a raised stacking order, so it can be
// translated independently of the item underneath.
func (l *List) CreateClone(i int) {
	r := l.Bounds(i)
	clone := cloneTree(l.items[i])
	clone.Attr = append(clone.Attr, html.Attribute{Key: cloneAttr})
	setStyle(clone, "position", "absolute")
	setStyle(clone, "left", fmt.Sprintf("%dpx", r.X))
	setStyle(clone, "top", fmt.Sprintf("%dpx", r.Y))
	setStyle(clone, "width", fmt.Sprintf("%dpx", r.Width))
	setStyle(clone, "height", fmt.Sprintf("%dpx", r.Height))
	setStyle(clone, "margin", "0")
	setStyle(clone, "box-sizing", "border-box")
	setStyle(clone, "z-index", "9999")
	l.container.AppendChild(clone)
	l.clone = clone
}

// OffsetClone implements reorder.CloneSurface.
func (l *List) OffsetClone(dx, dy int) {
	if l.clone == nil {
		return
	}
	setStyle(l.clone, "transform", fmt.Sprintf("translate(%dpx, %dpx)", dx, dy))
}

// RemoveClone implements reorder.CloneSurface.
func (l *List) RemoveClone() {
	if l.clone == nil {
		return
	}
	l.container.RemoveChild(l.clone)
	l.clone = nil
}

func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneTree(child))
	}
	return c
}
