// Package m2h 将单个 Markdown 文档转换为带目录的独立 HTML 页面
//
// 核心功能：
//   - 逐行状态机将 Markdown 转换为 HTML（标题、围栏代码块、表格、分隔线、行内格式）
//   - 为标题生成文档内唯一的锚点 ID
//   - 根据标题层级生成嵌套目录
//   - 组装页面并附带 styles.css 与 script.js（滚动同步目录）
//
// 主要 API：
//   - Convert(): 返回 (body HTML, headings)
//   - Build(): 返回页面、样式表和脚本三个 Content
//   - WriteArtifacts(): 写入输出目录
//
// 示例：
//
//	body, headings := m2h.Convert(markdown)
//
//	contents, err := m2h.Build(markdown, m2h.WithHighlight("github"))
//	if err != nil {
//	    return err
//	}
//	written, err := m2h.WriteArtifacts("out/index.html", contents)
package m2h
