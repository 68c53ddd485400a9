// Package markdown provides the pattern-based extraction helpers the document
// parsers are built on. All functions are pure and total: malformed input
// yields an empty result, never an error. Heading matches are case-insensitive.
package markdown

import (
	"regexp"
	"strings"
)

// Identifier families used across specification documents.
var (
	UCPattern  = regexp.MustCompile(`UC-\d+`)
	SVCPattern = regexp.MustCompile(`SVC-\d+`)
	ADRPattern = regexp.MustCompile(`ADR-\d+`)
)

var (
	listItemRe   = regexp.MustCompile(`^(\d+\.|-|\*|\+)\s+`)
	headingRe    = regexp.MustCompile(`(?m)^##`)
	separatorRe  = regexp.MustCompile(`^\s*\|[-|\s]+\|?\s*$`)
	cellMarkupRe = regexp.MustCompile("[\\[\\]`*]")
)

// ExtractSection returns the body of the "## <heading>" section: everything
// after the heading line up to the next "##" heading or end of document.
func ExtractSection(text, heading string) (string, bool) {
	re := regexp.MustCompile(`(?mi)^##\s+` + regexp.QuoteMeta(heading) + `\s*$`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	body := text[loc[1]:]
	if next := headingRe.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body, true
}

// ListItems extracts numbered and bulleted lines from a section body with the
// leading marker stripped. Lines matching no marker are dropped silently.
func ListItems(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		marker := listItemRe.FindString(line)
		if marker == "" {
			continue
		}
		if item := strings.TrimSpace(line[len(marker):]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// TableRows locates a heading line matching headingPattern, then the first
// markdown table (header row plus separator row) following it before the next
// "##" heading, and returns each subsequent pipe-delimited row split into
// trimmed cells. Collection stops at the first non-table line. Rows keep the
// leading empty cell produced by the opening pipe, so callers index data
// columns starting at 1.
func TableRows(text string, headingPattern *regexp.Regexp) [][]string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if headingPattern.MatchString(strings.TrimSpace(line)) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	for i := start; i < len(lines)-1; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "##") {
			return nil
		}
		if !strings.HasPrefix(trimmed, "|") || !separatorRe.MatchString(lines[i+1]) {
			continue
		}
		var rows [][]string
		for j := i + 2; j < len(lines); j++ {
			row := strings.TrimSpace(lines[j])
			if !strings.HasPrefix(row, "|") {
				break
			}
			rows = append(rows, splitCells(row))
		}
		return rows
	}
	return nil
}

// CleanCell strips markdown and HTML-ish markup (brackets, backticks,
// asterisks) and surrounding whitespace from a table cell.
func CleanCell(cell string) string {
	return strings.TrimSpace(cellMarkupRe.ReplaceAllString(cell, ""))
}

// FirstIdentifier returns the first identifier of the given family found in
// text.
func FirstIdentifier(text string, family *regexp.Regexp) (string, bool) {
	id := family.FindString(text)
	return id, id != ""
}

func splitCells(row string) []string {
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
