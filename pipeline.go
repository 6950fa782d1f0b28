package m2h

import (
	"github.com/pkg/errors"

	"github.com/riverfjs/m2h-go/internal/highlight"
	"github.com/riverfjs/m2h-go/internal/page"
)

// Build 完整管道：markdown → 页面、样式表、脚本
//
// 步骤：
// 1. 转换 markdown 为 (body, headings)
// 2. 生成目录 HTML（没有标题时为空）
// 3. 以第一个标题为页面标题组装页面，没有标题时使用 FallbackTitle
// 4. 返回 Page、Stylesheet、Script 的有序列表
func Build(markdown string, opts ...Option) ([]Content, error) {
	options := applyOptions(opts...)
	config := options.Config
	if !config.Engine.Valid() {
		return nil, errors.Errorf("unknown engine %q", config.Engine)
	}

	body, headings, err := convert(markdown, config)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert markdown")
	}

	tocHTML := RenderTOC(headings, config.TOCTitle)
	title := PageTitle(headings, config.FallbackTitle)

	html, err := page.Assemble(title, tocHTML, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not assemble page")
	}

	css, err := stylesheet(config)
	if err != nil {
		return nil, err
	}

	return []Content{
		&Page{Title: title, Headings: headings, Data: []byte(html)},
		&Stylesheet{FileName: page.StylesheetName, Data: []byte(css)},
		&Script{FileName: page.ScriptName, Data: []byte(page.Script())},
	}, nil
}

// stylesheet 返回页面样式，启用高亮时追加 chroma 的 class 规则
func stylesheet(config *RenderConfig) (string, error) {
	if !config.Highlight.Enabled {
		return page.Stylesheet(), nil
	}
	css, err := highlight.New(config.Highlight.Style).CSS()
	if err != nil {
		return "", errors.Wrap(err, "could not generate highlight styles")
	}
	return page.Stylesheet(css), nil
}
