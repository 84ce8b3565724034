package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pdfact/layout"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/text"
)

func htmlElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// htmlAtom returns the tag of an element.
func htmlAtom(el Element) atom.Atom {
	switch el.Role {
	case model.RoleTitle:
		return atom.H1
	case model.RoleHeading:
		level := layout.HeadingLevel(el.Level + 1)
		if level > layout.HeadingLevel6 {
			level = layout.HeadingLevel6
		}
		if level < layout.HeadingLevel2 {
			level = layout.HeadingLevel2
		}
		return atom.Lookup([]byte(level.HTMLTag()))
	case model.RolePageHeader:
		return atom.Header
	case model.RolePageFooter:
		return atom.Footer
	case model.RoleCaption:
		return atom.Figcaption
	default:
		return atom.P
	}
}

// buildHTML builds the node tree of an HTML5 page for elements.
func buildHTML(title string, elements []Element) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := htmlElement(atom.Html)
	doc.AppendChild(root)

	head := htmlElement(atom.Head)
	head.AppendChild(htmlElement(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	t := htmlElement(atom.Title)
	t.AppendChild(textNode(title))
	head.AppendChild(t)
	root.AppendChild(head)

	body := htmlElement(atom.Body)
	root.AppendChild(body)

	var references *html.Node
	for _, el := range elements {
		attrs := []html.Attribute{{Key: "class", Val: el.Role.String()}}
		if len(el.Pages) > 0 {
			attrs = append(attrs, html.Attribute{Key: "data-page", Val: fmt.Sprint(el.Pages[0])})
		}
		if dir := text.DetectDirection(el.Text).Attr(); dir != "" {
			attrs = append(attrs, html.Attribute{Key: "dir", Val: dir})
		}

		if el.Role == model.RoleReference {
			if references == nil {
				references = htmlElement(atom.Ol, html.Attribute{Key: "class", Val: "references"})
				body.AppendChild(references)
			}
			li := htmlElement(atom.Li, attrs...)
			li.AppendChild(textNode(el.Text))
			references.AppendChild(li)
			continue
		}
		references = nil

		n := htmlElement(htmlAtom(el), attrs...)
		n.AppendChild(textNode(el.Text))
		body.AppendChild(n)
	}
	return doc
}

func exportHTML(w io.Writer, title string, elements []Element) error {
	if err := html.Render(w, buildHTML(title, elements)); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
