package m2h

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func buildPage(t *testing.T, markdown string, opts ...Option) (*Page, []Content) {
	t.Helper()
	contents, err := Build(markdown, opts...)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(contents) != 3 {
		t.Fatalf("Build() returned %d contents, want 3", len(contents))
	}
	p, ok := contents[0].(*Page)
	if !ok {
		t.Fatalf("contents[0] = %T, want *Page", contents[0])
	}
	return p, contents
}

func TestBuild_Artifacts(t *testing.T) {
	_, contents := buildPage(t, "# Doc\n")
	wantTypes := []ContentType{ContentTypePage, ContentTypeStylesheet, ContentTypeScript}
	wantNames := []string{"", "styles.css", "script.js"}
	for i, c := range contents {
		if c.GetContentType() != wantTypes[i] {
			t.Errorf("contents[%d] type = %s, want %s", i, c.GetContentType(), wantTypes[i])
		}
		if c.GetFileName() != wantNames[i] {
			t.Errorf("contents[%d] name = %q, want %q", i, c.GetFileName(), wantNames[i])
		}
		if len(c.GetData()) == 0 {
			t.Errorf("contents[%d] is empty", i)
		}
	}
}

// TestBuild_TitleAndTOC 页面标题取第一个标题，目录链接指向正文标题
func TestBuild_TitleAndTOC(t *testing.T) {
	md := "# Guide\n## Install\n### Linux\n## Usage\n# Appendix\n"
	p, _ := buildPage(t, md)
	if p.Title != "Guide" {
		t.Errorf("Title = %q, want %q", p.Title, "Guide")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(p.Data)))
	if err != nil {
		t.Fatalf("could not parse page: %v", err)
	}
	if got := doc.Find("title").Text(); got != "Guide" {
		t.Errorf("<title> = %q", got)
	}
	links := doc.Find(".toc a")
	if links.Length() != 5 {
		t.Fatalf("toc links = %d, want 5", links.Length())
	}
	links.Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		href, _ := s.Attr("href")
		if href != "#"+id {
			t.Errorf("link %d href = %q, data-id = %q", i, href, id)
		}
		if doc.Find(".content #"+id).Length() != 1 {
			t.Errorf("link %d points at missing heading %q", i, id)
		}
	})
	if got := doc.Find(".toc ul ul ul li").Text(); got != "Linux" {
		t.Errorf("third level entry = %q, want %q", got, "Linux")
	}
}

// TestBuild_NoHeadings 没有标题时使用 "Document" 并且不输出目录
func TestBuild_NoHeadings(t *testing.T) {
	p, _ := buildPage(t, "just text\n")
	if p.Title != "Document" {
		t.Errorf("Title = %q, want %q", p.Title, "Document")
	}
	if strings.Contains(string(p.Data), "toc") {
		t.Errorf("page without headings should have no toc markup:\n%s", p.Data)
	}
}

func TestBuild_Options(t *testing.T) {
	p, contents := buildPage(t, "text\n## Teil\n```go\nx := 1\n```\n",
		WithTOCTitle("Inhalt"),
		WithFallbackTitle("Ohne Titel"),
		WithHighlight("monokai"),
	)
	html := string(p.Data)
	if !strings.Contains(html, "<h2>Inhalt</h2>") {
		t.Errorf("custom toc title missing:\n%s", html)
	}
	if p.Title != "Teil" {
		t.Errorf("Title = %q, want first heading %q", p.Title, "Teil")
	}
	css := string(contents[1].GetData())
	if !strings.Contains(css, ".chroma") {
		t.Error("stylesheet should include chroma rules when highlighting is on")
	}
}

func TestBuild_UnknownEngine(t *testing.T) {
	if _, err := Build("# x", WithEngine(Engine("pandoc"))); err == nil {
		t.Error("Build() should reject unknown engines")
	}
}

func TestBuild_GoldmarkEngine(t *testing.T) {
	p, _ := buildPage(t, "# One\n\n## Two\n\n1. a\n2. b\n", WithEngine(EngineGoldmark))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(p.Data)))
	if err != nil {
		t.Fatalf("could not parse page: %v", err)
	}
	if doc.Find(".content ol li").Length() != 2 {
		t.Error("goldmark engine should render ordered lists")
	}
	if doc.Find(".toc a[data-id=two]").Length() != 1 {
		t.Error("toc should link to the goldmark heading id")
	}
}
