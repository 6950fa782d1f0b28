// Package page wraps converted HTML in the standalone page template and
// provides the companion stylesheet and script.
package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

const (
	// StylesheetName is the stylesheet file written next to the page.
	StylesheetName = "styles.css"
	// ScriptName is the script file written next to the page.
	ScriptName = "script.js"
)

//go:embed assets/page.html
var pageSource string

//go:embed assets/styles.css
var stylesheet string

//go:embed assets/script.js
var script string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type pageData struct {
	Title      string
	Stylesheet string
	Script     string
	TOC        template.HTML
	Body       template.HTML
}

// Assemble renders the full HTML page. tocHTML and bodyHTML are inserted
// as-is; title is escaped. An empty tocHTML leaves no navigation markup.
func Assemble(title, tocHTML, bodyHTML string) (string, error) {
	var buf strings.Builder
	err := pageTemplate.Execute(&buf, pageData{
		Title:      title,
		Stylesheet: StylesheetName,
		Script:     ScriptName,
		TOC:        template.HTML(strings.TrimRight(tocHTML, "\n")),
		Body:       template.HTML(strings.TrimRight(bodyHTML, "\n")),
	})
	if err != nil {
		return "", fmt.Errorf("page template: %w", err)
	}
	return buf.String(), nil
}

// Stylesheet returns the page stylesheet followed by extra rules, if any.
func Stylesheet(extra ...string) string {
	if len(extra) == 0 {
		return stylesheet
	}
	var b strings.Builder
	b.WriteString(stylesheet)
	for _, css := range extra {
		if css == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(css)
	}
	return b.String()
}

// Script returns the scroll-sync script.
func Script() string {
	return script
}
