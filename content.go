package m2h

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypePage represents the HTML page.
	ContentTypePage ContentType = iota
	// ContentTypeStylesheet represents the companion stylesheet.
	ContentTypeStylesheet
	// ContentTypeScript represents the companion script.
	ContentTypeScript
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypePage:
		return "html"
	case ContentTypeStylesheet:
		return "css"
	case ContentTypeScript:
		return "js"
	default:
		return "unknown"
	}
}

// Content represents one generated artifact.
type Content interface {
	GetContentType() ContentType
	// GetFileName returns the file name; it is empty for the page, whose
	// path is chosen by the caller.
	GetFileName() string
	GetData() []byte
}

// Page represents the assembled HTML page.
type Page struct {
	Title    string
	Headings []Heading
	Data     []byte
}

// GetContentType returns ContentTypePage.
func (p *Page) GetContentType() ContentType {
	return ContentTypePage
}

// GetFileName returns an empty name; the page is written to the output path.
func (p *Page) GetFileName() string {
	return ""
}

// GetData returns the page bytes.
func (p *Page) GetData() []byte {
	return p.Data
}

// Stylesheet represents the companion stylesheet.
type Stylesheet struct {
	FileName string
	Data     []byte
}

// GetContentType returns ContentTypeStylesheet.
func (s *Stylesheet) GetContentType() ContentType {
	return ContentTypeStylesheet
}

// GetFileName returns the stylesheet file name.
func (s *Stylesheet) GetFileName() string {
	return s.FileName
}

// GetData returns the stylesheet bytes.
func (s *Stylesheet) GetData() []byte {
	return s.Data
}

// Script represents the companion script.
type Script struct {
	FileName string
	Data     []byte
}

// GetContentType returns ContentTypeScript.
func (s *Script) GetContentType() ContentType {
	return ContentTypeScript
}

// GetFileName returns the script file name.
func (s *Script) GetFileName() string {
	return s.FileName
}

// GetData returns the script bytes.
func (s *Script) GetData() []byte {
	return s.Data
}
