package buffer

import "strings"

// HTMLBuffer accumulates emitted HTML fragments in document order.
type HTMLBuffer struct {
	parts     []string
	byteCount int
}

// New creates a new HTMLBuffer.
func New() *HTMLBuffer {
	return &HTMLBuffer{
		parts: make([]string, 0),
	}
}

// Write appends a fragment to the buffer.
func (hb *HTMLBuffer) Write(fragment string) {
	if fragment == "" {
		return
	}
	hb.parts = append(hb.parts, fragment)
	hb.byteCount += len(fragment)
}

// WriteLine appends a fragment followed by a newline.
func (hb *HTMLBuffer) WriteLine(fragment string) {
	hb.Write(fragment + "\n")
}

// Len returns the number of bytes written so far.
func (hb *HTMLBuffer) Len() int {
	return hb.byteCount
}

// Fragments returns the number of fragments written so far.
func (hb *HTMLBuffer) Fragments() int {
	return len(hb.parts)
}

// String returns the accumulated HTML.
func (hb *HTMLBuffer) String() string {
	if len(hb.parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(hb.byteCount)
	for _, p := range hb.parts {
		b.WriteString(p)
	}
	return b.String()
}

// Reset clears the buffer.
func (hb *HTMLBuffer) Reset() {
	hb.parts = hb.parts[:0]
	hb.byteCount = 0
}
