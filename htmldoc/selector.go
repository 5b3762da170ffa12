package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// cloneAttr marks the drag clone node. The clone is a deep copy of the
// dragged item, so without the marker it would match the item selector
// and enumerate as an extra item while the session is alive.
const cloneAttr = "data-reorder-clone"

// selector is a minimal item selector: "tag", ".class" or "tag.class".
type selector struct {
	tag   string
	class string
}

func parseSelector(s string) selector {
	tag, class, found := strings.Cut(s, ".")
	if !found {
		return selector{tag: s}
	}
	return selector{tag: tag, class: class}
}

func (sel selector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if sel.tag == "" && sel.class == "" {
		return false
	}
	if sel.tag != "" && n.Data != sel.tag {
		return false
	}
	if sel.class != "" && !hasClass(n, sel.class) {
		return false
	}
	return true
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Select returns the elements under root matching sel, depth-first in
// document order. root itself is never included, and neither is a live
// drag clone or anything inside it.
func Select(root *html.Node, sel string) []*html.Node {
	s := parseSelector(sel)
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasAttr(n, cloneAttr) {
			return
		}
		if s.matches(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}
