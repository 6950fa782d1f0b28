// Package toc renders a flat, level-tagged heading list as nested lists.
package toc

import (
	"strings"

	"github.com/riverfjs/m2h-go/internal/types"
)

// Render returns the table of contents markup for headings.
//
// Nesting follows a depth counter that starts at 1: a deeper heading opens
// one <ul> per level crossed, a shallower one closes them again. Level jumps
// are accepted as they come. No headings produce no markup at all.
func Render(headings []types.Heading, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"toc\">\n")
	b.WriteString("<h2>" + title + "</h2>\n")
	b.WriteString("<ul>\n")

	depth := 1
	for _, h := range headings {
		for depth < h.Level {
			b.WriteString("<ul>\n")
			depth++
		}
		for depth > h.Level {
			b.WriteString("</ul>\n")
			depth--
		}
		b.WriteString(`<li><a href="#` + h.ID + `" data-id="` + h.ID + `">` + h.Text + "</a></li>\n")
	}
	for depth > 1 {
		b.WriteString("</ul>\n")
		depth--
	}

	b.WriteString("</ul>\n</div>\n")
	return b.String()
}
