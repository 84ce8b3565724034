package export

import (
	"bytes"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pdfact/model"
)

// findAll returns the element nodes below n with the given tag.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
		return n.FirstChild.Data
	}
	return ""
}

func TestExport_HTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, makeProcessed(), FormatHTML, DefaultOptions()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	root, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("invalid HTML: %v", err)
	}

	tests := []struct {
		tag   atom.Atom
		count int
		text  string
	}{
		{atom.Title, 1, "A Study"},
		{atom.H1, 1, "A Study"},
		{atom.H2, 1, "1 Introduction"},
		{atom.Header, 1, "Journal of Studies"},
		{atom.Footer, 1, "2"},
		{atom.Figcaption, 1, "Figure 1: A plot."},
		{atom.P, 1, "Body text with *stars* and 5 < 6."},
		{atom.Ol, 1, ""},
		{atom.Li, 2, "[1] A paper."},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			nodes := findAll(root, tt.tag)
			if len(nodes) != tt.count {
				t.Fatalf("expected %d <%s>, got %d", tt.count, tt.tag, len(nodes))
			}
			if tt.text != "" && nodeText(nodes[0]) != tt.text {
				t.Errorf("<%s> text = %q, want %q", tt.tag, nodeText(nodes[0]), tt.text)
			}
		})
	}

	p := findAll(root, atom.P)[0]
	if attr(p, "class") != "body" || attr(p, "data-page") != "1" || attr(p, "dir") != "ltr" {
		t.Errorf("unexpected attributes %v", p.Attr)
	}
}

func TestExport_HTMLDirection(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage(612, 792))
	doc.Paragraphs = []*model.Paragraph{
		makeParagraph(model.RoleBodyText, 0, 1, "مرحبا بالعالم"),
		makeParagraph(model.RoleBodyText, 0, 1, "42"),
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc, FormatHTML, DefaultOptions()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	root, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("invalid HTML: %v", err)
	}

	ps := findAll(root, atom.P)
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if attr(ps[0], "dir") != "rtl" {
		t.Errorf("dir = %q, want rtl", attr(ps[0], "dir"))
	}
	if attr(ps[1], "dir") != "" {
		t.Errorf("expected no dir for neutral text, got %q", attr(ps[1], "dir"))
	}
}
