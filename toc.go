package m2h

import "github.com/riverfjs/m2h-go/internal/toc"

// RenderTOC 根据标题列表生成嵌套目录 HTML
//
// 没有标题时返回空字符串。title 为空时使用默认配置中的目录标题。
func RenderTOC(headings []Heading, title string) string {
	if title == "" {
		title = DefaultConfig().TOCTitle
	}
	return toc.Render(headings, title)
}

// PageTitle returns the text of the first heading, or fallback when there
// are no headings.
func PageTitle(headings []Heading, fallback string) string {
	if len(headings) == 0 {
		return fallback
	}
	return headings[0].Text
}
