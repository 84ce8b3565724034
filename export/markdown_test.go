package export

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/pdfact/model"
)

// parseMarkdown parses src with goldmark and returns the document node.
func parseMarkdown(t *testing.T, src []byte) ast.Node {
	t.Helper()
	return goldmark.New().Parser().Parse(text.NewReader(src))
}

func TestExport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, makeProcessed(), FormatMarkdown, DefaultOptions()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	src := buf.Bytes()
	root := parseMarkdown(t, src)

	var headings []string
	var levels []int
	var emphasis, listItems, htmlBlocks, paragraphs int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings = append(headings, string(node.Text(src)))
			levels = append(levels, node.Level)
		case *ast.Emphasis:
			emphasis++
		case *ast.ListItem:
			listItems++
		case *ast.HTMLBlock:
			htmlBlocks++
		case *ast.Paragraph:
			if _, inList := node.Parent().(*ast.ListItem); !inList {
				paragraphs++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(headings) != 2 || headings[0] != "A Study" || headings[1] != "1 Introduction" {
		t.Errorf("headings = %q", headings)
	}
	if len(levels) == 2 && (levels[0] != 1 || levels[1] != 2) {
		t.Errorf("heading levels = %v, want [1 2]", levels)
	}
	if emphasis != 1 {
		t.Errorf("expected only the caption emphasized, got %d", emphasis)
	}
	if listItems != 2 {
		t.Errorf("expected 2 reference items, got %d", listItems)
	}
	if htmlBlocks != 2 {
		t.Errorf("expected page header and footer comments, got %d", htmlBlocks)
	}
	// body text and caption
	if paragraphs != 2 {
		t.Errorf("expected 2 paragraphs, got %d", paragraphs)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"*bold*", `\*bold\*`},
		{"# not a heading", `\# not a heading`},
		{"- not a list", `\- not a list`},
		{"1. not a list", `1\. not a list`},
		{"2001 was a year.", "2001 was a year."},
		{"a_b", `a\_b`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExport_MarkdownEscapedText(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage(612, 792))
	doc.Paragraphs = []*model.Paragraph{
		makeParagraph(model.RoleBodyText, 0, 1, "# 1. *not* markup"),
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc, FormatMarkdown, DefaultOptions()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	src := buf.Bytes()
	root := parseMarkdown(t, src)

	if _, ok := root.FirstChild().(*ast.Paragraph); !ok {
		t.Fatalf("expected a paragraph, got %T", root.FirstChild())
	}
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && (n.Kind() == ast.KindEmphasis || n.Kind() == ast.KindHeading) {
			t.Errorf("unexpected %s node", n.Kind())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
