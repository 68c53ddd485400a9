// Package alignment validates that use case specifications and BDD feature
// files stay in sync: every use case has a feature, every feature points at a
// real use case, and criteria counts match scenario counts.
package alignment

import "github.com/felixgeelhaar/specdrift/pkg/domain/drift"

const (
	IssueMissingBDD      drift.IssueType = "missing_bdd"
	IssueOrphanedFeature drift.IssueType = "orphaned_feature"
	IssueCountMismatch   drift.IssueType = "count_mismatch"
	IssueBrokenBDDRef    drift.IssueType = "broken_bdd_ref"
	IssueBrokenUCRef     drift.IssueType = "broken_uc_ref"
)

// UseCase is a specification document with acceptance criteria, identified by
// the UC-<number> prefix of its filename.
type UseCase struct {
	ID                 string
	Path               string
	AcceptanceCriteria []string
	// BDDFileReferenced is the *.feature path the document declares via a
	// "BDD File:" or "Feature File:" label. Empty means no declaration.
	BDDFileReferenced string
}

// BDDFeature is a Gherkin feature file, keyed by its Feature: line.
type BDDFeature struct {
	Name      string
	Path      string
	Scenarios []string
	// UCReference is the use case id inferred from a comment line or, failing
	// that, the filename. Empty means the feature claims no use case.
	UCReference string
}
