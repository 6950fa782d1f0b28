package m2h

import (
	"io"
	"log"
	"os"
)

// Logger 全局日志记录器
var Logger = log.New(os.Stderr, "[m2h] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	Logger = logger
}
