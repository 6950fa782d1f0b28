package m2h

import (
	"github.com/riverfjs/m2h-go/internal/converter"
	"github.com/riverfjs/m2h-go/internal/highlight"
	"github.com/riverfjs/m2h-go/internal/parser"
	"github.com/riverfjs/m2h-go/internal/types"
)

// Heading 标题记录：层级、显示文本、锚点 ID
type Heading = types.Heading

// Convert 将 Markdown 转换为 (body HTML, headings)
//
// headings 按文档顺序排列，ID 在文档内唯一。转换本身不会失败；
// goldmark 引擎渲染出错时记录日志并退回到逐行引擎。
func Convert(markdown string, opts ...Option) (string, []Heading) {
	options := applyOptions(opts...)
	body, headings, err := convert(markdown, options.Config)
	if err != nil {
		Logger.Printf("goldmark engine failed, using native engine: %v", err)
		return converter.Build(markdown, newHighlighter(options.Config))
	}
	return body, headings
}

func convert(markdown string, config *RenderConfig) (string, []Heading, error) {
	if config.Engine == EngineGoldmark {
		return parser.Parse(markdown, config)
	}
	body, headings := converter.Build(markdown, newHighlighter(config))
	return body, headings, nil
}

// newHighlighter 仅在启用高亮时返回非 nil 的 converter.Highlighter
func newHighlighter(config *RenderConfig) converter.Highlighter {
	if !config.Highlight.Enabled {
		return nil
	}
	return highlight.New(config.Highlight.Style)
}
