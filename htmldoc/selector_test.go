package htmldoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = textOf(n)
	}
	return out
}

func TestSelectByTag(t *testing.T) {
	doc := parseDoc(t, `<ul><li>A</li><li>B</li><li>C</li></ul>`)
	ul := findElement(doc, "ul")

	got := texts(Select(ul, "li"))
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Select returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectByClass(t *testing.T) {
	doc := parseDoc(t, `<div>
		<p class="row odd">A</p>
		<p class="other">skip</p>
		<span class="row">B</span>
	</div>`)
	div := findElement(doc, "div")

	tests := []struct {
		sel  string
		want []string
	}{
		{".row", []string{"A", "B"}},
		{"p.row", []string{"A"}},
		{"p", []string{"A", "skip"}},
		{".missing", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := texts(Select(div, tt.sel))
		if len(got) != len(tt.want) {
			t.Errorf("Select(%q) = %v, want %v", tt.sel, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Select(%q)[%d] = %q, want %q", tt.sel, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSelectExcludesRoot(t *testing.T) {
	doc := parseDoc(t, `<div class="row"><p class="row">A</p></div>`)
	div := findElement(doc, "div")

	got := Select(div, ".row")
	if len(got) != 1 || textOf(got[0]) != "A" {
		t.Errorf("Select matched the root: %v", texts(got))
	}
}
