package drift

import (
	"strings"
	"time"
)

// IssueType identifies one consistency rule. Each validator package declares
// its own closed set of types.
type IssueType string

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a single detected inconsistency between specification
// documents. Message is fully formed; downstream renderers never template it.
type Issue struct {
	Type        IssueType `json:"type" yaml:"type"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	UCID        string    `json:"uc_id,omitempty" yaml:"uc_id,omitempty"`
	FeatureName string    `json:"feature_name,omitempty" yaml:"feature_name,omitempty"`
	ServiceID   string    `json:"service_id,omitempty" yaml:"service_id,omitempty"`
	Path        string    `json:"path,omitempty" yaml:"path,omitempty"`
	Message     string    `json:"message" yaml:"message"`
	Hint        string    `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Fingerprint returns a stable identity for baseline matching. Paths are
// excluded so a checkout moved to another directory keeps its baseline.
func (i Issue) Fingerprint() string {
	return strings.Join([]string{string(i.Type), i.UCID, i.FeatureName, i.ServiceID, i.Message}, "|")
}

// EntityCounts summarizes how many documents each scan produced.
type EntityCounts struct {
	UseCases int `json:"use_cases" yaml:"use_cases"`
	Features int `json:"features" yaml:"features"`
	Services int `json:"services" yaml:"services"`
}

// Report is the ordered result of one validator run.
type Report struct {
	ID        string       `json:"id" yaml:"id"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	Counts    EntityCounts `json:"counts" yaml:"counts"`
	Issues    []Issue      `json:"issues" yaml:"issues"`
}

func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *Report) ErrorCount() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

func (r *Report) WarningCount() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Baseline is an accepted-drift snapshot. Issues whose fingerprints appear in
// Accepted are suppressed by later runs until the baseline is regenerated.
type Baseline struct {
	CreatedAt time.Time `json:"created_at"`
	Accepted  []string  `json:"accepted"`
}

func (b *Baseline) Contains(i Issue) bool {
	if b == nil {
		return false
	}
	fp := i.Fingerprint()
	for _, a := range b.Accepted {
		if a == fp {
			return true
		}
	}
	return false
}
