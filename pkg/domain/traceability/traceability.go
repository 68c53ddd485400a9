// Package traceability validates bidirectional consistency between use case
// documents and service specifications: every use case names the services it
// depends on, every service lists the use cases that depend on it, and the two
// declarations agree.
package traceability

import "github.com/felixgeelhaar/specdrift/pkg/domain/drift"

const (
	IssueUnjustifiedServicelessUC drift.IssueType = "unjustified_serviceless_uc"
	IssueOrphanService            drift.IssueType = "orphan_service"
	IssueMissingService           drift.IssueType = "missing_service"
	IssueBidirectionalMismatch    drift.IssueType = "bidirectional_mismatch"
)

// UseCase is a use case document viewed through its service dependencies.
// Independent of the alignment entity: the two validators read different parts
// of the same documents and evolve separately.
type UseCase struct {
	ID   string
	Name string
	Path string
	// ServicesUsed holds the raw first-column strings of the "Services Used"
	// table. Entries may be service ids or service names; both forms resolve.
	ServicesUsed []string
	// HasJustification is only computed when ServicesUsed is empty: true when
	// the document explains why it needs no services.
	HasJustification bool
}

// Service is one service-spec.md document.
type Service struct {
	ID     string
	Name   string
	Path   string
	UsedBy []string
}
