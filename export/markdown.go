package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/tsawler/pdfact/model"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// escapeMarkdown escapes inline markup characters and a leading list or
// ordered-list marker.
func escapeMarkdown(s string) string {
	s = markdownEscaper.Replace(s)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = `\` + s
	}
	if i := strings.IndexAny(s, ".)"); i > 0 && isDigits(s[:i]) {
		s = s[:i] + `\` + s[i:]
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// markdownHeading returns the heading prefix for an element, or "" for
// elements that are not headings.
func markdownHeading(el Element) string {
	switch el.Role {
	case model.RoleTitle:
		return "# "
	case model.RoleHeading:
		level := el.Level + 1
		if level < 2 {
			level = 2
		}
		if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " "
	default:
		return ""
	}
}

func exportMarkdown(w io.Writer, elements []Element) error {
	bw := bufio.NewWriter(w)
	for i, el := range elements {
		if i > 0 {
			bw.WriteString("\n")
		}
		body := escapeMarkdown(el.Text)

		switch el.Role {
		case model.RoleTitle, model.RoleHeading:
			bw.WriteString(markdownHeading(el) + body)
		case model.RoleCaption:
			bw.WriteString("*" + body + "*")
		case model.RoleReference:
			bw.WriteString("- " + body)
		case model.RolePageHeader, model.RolePageFooter:
			bw.WriteString("<!-- " + el.Role.String() + ": " + strings.ReplaceAll(el.Text, "--", "- -") + " -->")
		default:
			bw.WriteString(body)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
