package converter

import (
	"strconv"

	"github.com/riverfjs/m2h-go/internal/anchor"
	"github.com/riverfjs/m2h-go/internal/buffer"
	"github.com/riverfjs/m2h-go/internal/types"
)

// Heading 标题记录
type Heading = types.Heading

// Highlighter renders the content of a closed code block as highlighted
// HTML. ok is false when the language is not supported, in which case the
// content is emitted verbatim.
type Highlighter interface {
	Highlight(code, language string) (html string, ok bool)
}

// step 是级联中的一个分类步骤，返回 true 表示该行已被消费
type step func(b *BlockBuilder, line string) bool

// cascade 按优先级排列的分类步骤，顺序决定输出
var cascade = []step{
	(*BlockBuilder).codeContent,
	(*BlockBuilder).fence,
	(*BlockBuilder).rule,
	(*BlockBuilder).divider,
	(*BlockBuilder).tableRow,
	(*BlockBuilder).tableEnd,
	(*BlockBuilder).heading,
	(*BlockBuilder).paragraph,
}

// BlockBuilder 逐行遍历 Markdown 并生成 (body HTML, headings)
//
// 所有状态只属于一次转换；每个文档使用新的 BlockBuilder。
type BlockBuilder struct {
	buf         *buffer.HTMLBuffer
	ids         *anchor.Registry
	headings    []Heading
	table       TableAccumulator
	code        CodeBlockState
	highlighter Highlighter
}

// NewBlockBuilder 创建新的 BlockBuilder，highlighter 可以为 nil
func NewBlockBuilder(highlighter Highlighter) *BlockBuilder {
	return &BlockBuilder{
		buf:         buffer.New(),
		ids:         anchor.NewRegistry(),
		headings:    make([]Heading, 0),
		highlighter: highlighter,
	}
}

// Build converts markdown with a fresh BlockBuilder.
func Build(markdown string, highlighter Highlighter) (string, []Heading) {
	b := NewBlockBuilder(highlighter)
	for _, line := range splitLines(markdown) {
		b.Line(line)
	}
	return b.Finish()
}

// Line feeds one input line (without its terminator) through the cascade.
func (b *BlockBuilder) Line(line string) {
	if line == "" {
		return
	}
	for _, s := range cascade {
		if s(b, line) {
			return
		}
	}
}

// Finish flushes pending state and returns the body HTML and headings.
func (b *BlockBuilder) Finish() (string, []Heading) {
	if b.code.IsOpen() {
		// 未闭合的代码块：输出开头和内容，不补闭合标签
		b.buf.WriteLine(openTag(b.code.Language(), false))
		b.buf.Write(b.code.Close())
	}
	if b.table.Active() && b.table.Pending() {
		b.buf.Write(b.table.Flush())
	}
	return b.buf.String(), b.headings
}

// --- Code blocks ---

func (b *BlockBuilder) codeContent(line string) bool {
	if !b.code.IsOpen() {
		return false
	}
	if _, ok := isFence(line); ok {
		b.closeCode()
		return true
	}
	b.code.Append(line)
	return true
}

func (b *BlockBuilder) fence(line string) bool {
	lang, ok := isFence(line)
	if !ok {
		return false
	}
	b.code.Open(lang)
	return true
}

func (b *BlockBuilder) closeCode() {
	lang := b.code.Language()
	content := b.code.Close()
	if b.highlighter != nil && lang != "" {
		if html, ok := b.highlighter.Highlight(content, lang); ok {
			b.buf.WriteLine(openTag(lang, true))
			b.buf.Write(html)
			b.buf.WriteLine(closeTag)
			return
		}
	}
	b.buf.WriteLine(openTag(lang, false))
	b.buf.Write(content)
	b.buf.WriteLine(closeTag)
}

// --- Horizontal rules ---

func (b *BlockBuilder) rule(line string) bool {
	if !isRule(line) {
		return false
	}
	b.buf.WriteLine("<hr>")
	return true
}

// --- Tables ---

func (b *BlockBuilder) divider(line string) bool {
	if !isDivider(line) {
		return false
	}
	switch {
	case b.table.Active():
		// 第二个分隔行结束当前表格，该行继续参与后续判断
		b.buf.Write(b.table.Flush())
		return false
	case b.table.Pending():
		b.table.Activate()
		return true
	}
	return false
}

func (b *BlockBuilder) tableRow(line string) bool {
	if isDivider(line) || !isTableRow(line) {
		return false
	}
	b.table.AddRow(splitRow(line))
	return true
}

func (b *BlockBuilder) tableEnd(line string) bool {
	if b.table.Active() && !isTableRow(line) {
		b.buf.Write(b.table.Flush())
	}
	return false
}

// --- Headings ---

func (b *BlockBuilder) heading(line string) bool {
	level, raw, ok := isHeading(line)
	if !ok {
		return false
	}
	text := CleanHeadingText(raw)
	id := b.ids.Allocate(anchor.Sanitize(text))
	b.headings = append(b.headings, Heading{Level: level, Text: text, ID: id})

	tag := "h" + strconv.Itoa(level)
	b.buf.WriteLine("<" + tag + ` id="` + id + `">` + text + "</" + tag + ">")
	return true
}

// --- Paragraphs ---

func (b *BlockBuilder) paragraph(line string) bool {
	formatted := FormatInline(line)
	if formatted != "" {
		b.buf.WriteLine("<p>" + formatted + "</p>")
	}
	return true
}
