package alignment

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/felixgeelhaar/specdrift/pkg/markdown"
)

var (
	ucFilenameRe = regexp.MustCompile(`^(UC-\d+)`)

	bddRefQuotedRe = regexp.MustCompile("(?i)BDD File:\\s*`([^`]+\\.feature)`")
	bddRefPlainRe  = regexp.MustCompile(`(?i)(?:BDD|Feature) File:\s*([^\s]+\.feature)`)

	featureLineRe  = regexp.MustCompile(`(?m)^Feature:\s*(.+)$`)
	scenarioLineRe = regexp.MustCompile(`(?m)^\s*(?:Scenario|Scenario Outline):\s*(.+)$`)
	commentUCRe    = regexp.MustCompile(`#.*?(UC-\d+)`)
	filenameUCRe   = regexp.MustCompile(`(?i)uc-\d+`)
)

// ParseUseCase parses one use case document. Files whose name does not start
// with a UC-<number> prefix are not use cases; they report ok=false and are
// skipped, not treated as malformed.
func ParseUseCase(path, content string) (*UseCase, bool) {
	m := ucFilenameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return nil, false
	}

	uc := &UseCase{ID: m[1], Path: path}
	if body, ok := markdown.ExtractSection(content, "Acceptance Criteria"); ok {
		uc.AcceptanceCriteria = markdown.ListItems(body)
	}
	uc.BDDFileReferenced = extractBDDReference(content)
	return uc, true
}

// extractBDDReference tries the backtick-quoted form first, then the plain
// token form. First successful pattern wins.
func extractBDDReference(content string) string {
	if m := bddRefQuotedRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := bddRefPlainRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

// ParseFeature parses one Gherkin feature file. Files without a Feature: line
// report ok=false and are skipped.
func ParseFeature(path, content string) (*BDDFeature, bool) {
	m := featureLineRe.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	f := &BDDFeature{Name: strings.TrimSpace(m[1]), Path: path}
	for _, s := range scenarioLineRe.FindAllStringSubmatch(content, -1) {
		f.Scenarios = append(f.Scenarios, strings.TrimSpace(s[1]))
	}
	f.UCReference = extractUCReference(content, filepath.Base(path))
	return f, true
}

// extractUCReference looks for a UC id on a comment line first, then in the
// filename (normalized to uppercase). First match wins; absence means the
// feature references no use case.
func extractUCReference(content, filename string) string {
	if m := commentUCRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := filenameUCRe.FindString(filename); m != "" {
		return strings.ToUpper(m)
	}
	return ""
}
