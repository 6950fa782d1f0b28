package converter

import "strings"

// TableAccumulator 收集连续的表格行，直到遇到结束事件才渲染
type TableAccumulator struct {
	rows   [][]string
	active bool
}

// AddRow buffers a row of already formatted cells.
func (ta *TableAccumulator) AddRow(cells []string) {
	ta.rows = append(ta.rows, cells)
}

// Pending reports whether any row is buffered.
func (ta *TableAccumulator) Pending() bool {
	return len(ta.rows) > 0
}

// Active reports whether a divider has switched the accumulator into table mode.
func (ta *TableAccumulator) Active() bool {
	return ta.active
}

// Activate enters table mode.
func (ta *TableAccumulator) Activate() {
	ta.active = true
}

// Flush renders the buffered rows as a table and clears the accumulator.
// The first non-empty row becomes the header row.
func (ta *TableAccumulator) Flush() string {
	var b strings.Builder
	b.WriteString("<table>\n")
	header := true
	for _, row := range ta.rows {
		if len(row) == 0 {
			continue
		}
		tag := "td"
		if header {
			tag = "th"
		}
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<" + tag + ">" + cell + "</" + tag + ">")
		}
		b.WriteString("</tr>\n")
		header = false
	}
	b.WriteString("</table>\n")

	ta.rows = nil
	ta.active = false
	return b.String()
}

// CodeBlockState 记录围栏代码块的状态
type CodeBlockState struct {
	open     bool
	language string
	lines    []string
}

// Open starts a code block tagged with language (may be empty).
func (cb *CodeBlockState) Open(language string) {
	cb.open = true
	cb.language = language
	cb.lines = cb.lines[:0]
}

// IsOpen reports whether a fence has been opened and not yet closed.
func (cb *CodeBlockState) IsOpen() bool {
	return cb.open
}

// Language returns the tag captured from the opening fence.
func (cb *CodeBlockState) Language() string {
	return cb.language
}

// Append buffers a verbatim content line.
func (cb *CodeBlockState) Append(line string) {
	cb.lines = append(cb.lines, line)
}

// Content returns the buffered lines, each terminated by a newline.
func (cb *CodeBlockState) Content() string {
	if len(cb.lines) == 0 {
		return ""
	}
	return strings.Join(cb.lines, "\n") + "\n"
}

// Close ends the block and returns its content.
func (cb *CodeBlockState) Close() string {
	content := cb.Content()
	cb.open = false
	cb.language = ""
	cb.lines = cb.lines[:0]
	return content
}

// openTag returns the <pre><code> pair that starts a block.
func openTag(language string, highlighted bool) string {
	pre := "<pre>"
	if highlighted {
		pre = `<pre class="chroma">`
	}
	if language == "" {
		return pre + "<code>"
	}
	return pre + `<code class="language-` + language + `">`
}

const closeTag = "</code></pre>"
