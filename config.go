package m2h

import (
	"sync"

	"github.com/riverfjs/m2h-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig
type Engine = types.Engine
type Highlight = types.Highlight

const (
	EngineNative   = types.EngineNative
	EngineGoldmark = types.EngineGoldmark
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers that want to change it should Clone it first.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
