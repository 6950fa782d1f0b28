package converter

import (
	"regexp"
	"strings"
)

var (
	// linkRe 匹配 [label](target)
	linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// boldRe 匹配 **text**
	boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// italicRe 匹配 *text*
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)

	// inlineCodeRe 匹配 `code`
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
)

// FormatInline 将行内 Markdown 转换为 HTML
//
// 依次执行四个独立的替换：链接、粗体、斜体、行内代码。
// 每个替换都是一次不重叠、不嵌套的正则替换，不处理转义符。
func FormatInline(text string) string {
	text = linkRe.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = boldRe.ReplaceAllString(text, `<strong>$1</strong>`)
	text = italicRe.ReplaceAllString(text, `<em>$1</em>`)
	text = inlineCodeRe.ReplaceAllString(text, `<code>$1</code>`)
	return text
}

// FormatCell trims spaces and tabs around a table cell and formats it inline.
func FormatCell(cell string) string {
	return FormatInline(strings.Trim(cell, " \t"))
}

// CleanHeadingText 去除标题中的 ** 标记，不做其他处理
func CleanHeadingText(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
