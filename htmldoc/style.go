package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// style declarations are kept in the element's style attribute, one
// "prop: value" pair per declaration, in insertion order.

func styleOf(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

func setStyleAttr(n *html.Node, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == "style" {
			if val == "" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			} else {
				n.Attr[i].Val = val
			}
			return
		}
	}
	if val != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: val})
	}
}

type styleDecl struct {
	prop, val string
}

func parseStyle(s string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(s, ";") {
		prop, val, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		decls = append(decls, styleDecl{prop: prop, val: val})
	}
	return decls
}

func renderStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.val)
	}
	return strings.Join(parts, "; ")
}

// setStyle sets one declaration, replacing an existing one for the same
// property and preserving the rest.
func setStyle(n *html.Node, prop, val string) {
	decls := parseStyle(styleOf(n))
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].val = val
			setStyleAttr(n, renderStyle(decls))
			return
		}
	}
	decls = append(decls, styleDecl{prop: prop, val: val})
	setStyleAttr(n, renderStyle(decls))
}

// clearStyle removes one declaration, preserving the rest.
func clearStyle(n *html.Node, prop string) {
	decls := parseStyle(styleOf(n))
	kept := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			kept = append(kept, d)
		}
	}
	setStyleAttr(n, renderStyle(kept))
}

// getStyle returns the value of one declaration, or "".
func getStyle(n *html.Node, prop string) string {
	for _, d := range parseStyle(styleOf(n)) {
		if d.prop == prop {
			return d.val
		}
	}
	return ""
}
