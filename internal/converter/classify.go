package converter

import (
	"regexp"
	"strings"
)

var (
	fenceRe   = regexp.MustCompile("^```(.*)$")
	ruleRe    = regexp.MustCompile(`^\s*[-*_]{3,}\s*$`)
	dividerRe = regexp.MustCompile(`^[|:\-\s]*\|[|:\-\s]*$`)
	headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.*)$`)
)

// isFence reports whether line opens or closes a code block and returns the
// trimmed language tag.
func isFence(line string) (string, bool) {
	m := fenceRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func isRule(line string) bool {
	return ruleRe.MatchString(line)
}

func isDivider(line string) bool {
	return dividerRe.MatchString(line)
}

func isTableRow(line string) bool {
	return strings.Contains(line, "|")
}

// isHeading returns the level and raw text of an ATX heading line.
func isHeading(line string) (int, string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// splitRow strips one leading and one trailing '|' and splits the remainder
// into formatted cells. A '|' that ends the remainder does not start a cell.
func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	if line == "" {
		return nil
	}
	raw := strings.Split(line, "|")
	if strings.HasSuffix(line, "|") {
		raw = raw[:len(raw)-1]
	}
	cells := make([]string, 0, len(raw))
	for _, cell := range raw {
		cells = append(cells, FormatCell(cell))
	}
	return cells
}

// splitLines splits text on '\n' and drops a trailing '\r' from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
