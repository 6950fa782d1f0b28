package types

// Heading 表示文档中的一个标题记录，按文档顺序构成目录
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// Engine 选择 Markdown 解析引擎
type Engine string

const (
	// EngineNative 逐行状态机（默认）
	EngineNative Engine = "native"
	// EngineGoldmark 使用 goldmark 的 CommonMark + GFM 解析
	EngineGoldmark Engine = "goldmark"
)

// Valid reports whether e names a known engine.
func (e Engine) Valid() bool {
	return e == EngineNative || e == EngineGoldmark
}

// Highlight 代码高亮配置
type Highlight struct {
	Enabled bool
	Style   string
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Engine        Engine
	TOCTitle      string
	FallbackTitle string
	Highlight     Highlight
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Engine:        EngineNative,
		TOCTitle:      "Table of Contents",
		FallbackTitle: "Document",
		Highlight: Highlight{
			Enabled: false,
			Style:   "github",
		},
	}
}

// Clone returns a copy that can be modified without touching c.
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	cp := *c
	return &cp
}
