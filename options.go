package m2h

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig replaces the whole RenderConfig. Options applied after it
// modify a copy, never config itself.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config.Clone()
		}
	}
}

// WithEngine selects the Markdown engine.
func WithEngine(engine Engine) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Engine = engine
	}
}

// WithHighlight enables syntax highlighting of fenced code using the named
// chroma style.
func WithHighlight(style string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Highlight.Enabled = true
		if style != "" {
			opts.Config.Highlight.Style = style
		}
	}
}

// WithTOCTitle sets the heading shown above the table of contents.
func WithTOCTitle(title string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.TOCTitle = title
	}
}

// WithFallbackTitle sets the page title used when the document has no headings.
func WithFallbackTitle(title string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.FallbackTitle = title
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
