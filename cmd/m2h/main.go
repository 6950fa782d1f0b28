package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m2h "github.com/riverfjs/m2h-go"
	"github.com/riverfjs/m2h-go/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(viper.New(), stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, m2h.ErrUsage) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	// Help counts as a usage outcome: nothing was converted.
	if help, _ := cmd.Flags().GetBool("help"); help {
		return 1
	}
	return 0
}

func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "m2h -m file.md -o output.html",
		Short: "Convert a Markdown file to HTML with a table of contents",
		Long: `m2h converts one Markdown file into a standalone HTML page with a
scroll-synced table of contents. styles.css and script.js are written next
to the page.

Examples:
  m2h -m README.md -o site/index.html
  m2h -m notes.md -o out/notes.html --highlight --style monokai
  m2h -m guide.md -o guide.html --engine goldmark`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if cfg.Markdown == "" || cfg.Output == "" {
				fmt.Fprintln(stderr, "Error: both an input and an output file are required")
				cmd.SetOut(stderr)
				_ = cmd.Usage()
				return m2h.ErrUsage
			}
			return convert(cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP("markdown", "m", "", "input Markdown file")
	flags.StringP("output", "o", "", "output HTML file")
	flags.String("engine", string(m2h.EngineNative), "Markdown engine: native or goldmark")
	flags.Bool("highlight", false, "syntax-highlight fenced code blocks")
	flags.String("style", m2h.DefaultConfig().Highlight.Style, "chroma style used with --highlight")
	flags.String("toc-title", m2h.DefaultConfig().TOCTitle, "heading shown above the table of contents")
	flags.String("fallback-title", m2h.DefaultConfig().FallbackTitle, "page title when the document has no headings")
	flags.BoolP("verbose", "v", false, "log progress to stderr")
	flags.StringVar(&configFile, "config", "", "config file (default ./m2h.yaml or $XDG_CONFIG_HOME/m2h/m2h.yaml)")
	flags.BoolP("help", "h", false, "show this help")

	for key, flag := range map[string]string{
		"markdown":       "markdown",
		"output":         "output",
		"engine":         "engine",
		"highlight":      "highlight",
		"style":          "style",
		"toc_title":      "toc-title",
		"fallback_title": "fallback-title",
		"verbose":        "verbose",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func convert(cfg *config.Config, stdout, stderr io.Writer) error {
	if cfg.Verbose {
		m2h.SetLogger(log.New(stderr, "[m2h] ", log.LstdFlags))
	} else {
		m2h.SetLogger(nil)
	}

	source, err := m2h.ReadSource(cfg.Markdown)
	if err != nil {
		if errors.Is(err, m2h.ErrInputNotFound) {
			return fmt.Errorf("%w: %s", m2h.ErrInputNotFound, cfg.Markdown)
		}
		return err
	}

	contents, err := m2h.Build(string(source), m2h.WithConfig(cfg.RenderConfig()))
	if err != nil {
		return err
	}
	m2h.Logger.Printf("engine=%s highlight=%t", cfg.Engine, cfg.Highlight)

	written, err := m2h.WriteArtifacts(cfg.Output, contents)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Successfully generated:")
	for _, w := range written {
		fmt.Fprintf(stdout, "  %s: %s (%s)\n", label(w.Type), w.Path, humanize.Bytes(uint64(w.Size)))
	}
	return nil
}

func label(t m2h.ContentType) string {
	switch t {
	case m2h.ContentTypePage:
		return "HTML"
	case m2h.ContentTypeStylesheet:
		return "CSS"
	case m2h.ContentTypeScript:
		return "JS"
	}
	return t.String()
}
