package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/riverfjs/m2h-go/internal/anchor"
	"github.com/riverfjs/m2h-go/internal/converter"
	"github.com/riverfjs/m2h-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
}

// newMarkdown 根据配置创建 goldmark 实例
func newMarkdown(config *types.RenderConfig) goldmark.Markdown {
	opts := append([]goldmark.Option{}, StandardOptions...)
	if config.Highlight.Enabled {
		opts = append(opts, goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle(config.Highlight.Style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		))
	}
	return goldmark.New(opts...)
}

// headingIDs 让 goldmark 通过 anchor.Registry 分配标题 ID
type headingIDs struct {
	reg *anchor.Registry
}

func (h *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(h.reg.Allocate(anchor.Sanitize(converter.CleanHeadingText(string(value)))))
}

func (h *headingIDs) Put(value []byte) {
	h.reg.Reserve(string(value))
}

// Parse 使用 goldmark 解析 Markdown，返回 (body HTML, headings)
func Parse(markdown string, config *types.RenderConfig) (string, []types.Heading, error) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	md := newMarkdown(config)

	source := []byte(markdown)
	ctx := parser.NewContext(parser.WithIDs(&headingIDs{reg: anchor.NewRegistry()}))
	node := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	headings := CollectHeadings(node, source)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, node); err != nil {
		return "", nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), headings, nil
}

// ParseAST 仅解析为 AST，不渲染
func ParseAST(markdown string) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader([]byte(markdown)))
}

// CollectHeadings 遍历 AST 收集标题记录
func CollectHeadings(node ast.Node, source []byte) []types.Heading {
	headings := make([]types.Heading, 0)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		id := ""
		if v, found := h.AttributeString("id"); found {
			if b, isBytes := v.([]byte); isBytes {
				id = string(b)
			}
		}
		headings = append(headings, types.Heading{
			Level: h.Level,
			Text:  headingText(h, source),
			ID:    id,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// headingText 拼接标题内的纯文本，忽略强调等标记
func headingText(n ast.Node, source []byte) string {
	var buf strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
