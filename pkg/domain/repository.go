package domain

import (
	"errors"

	"github.com/felixgeelhaar/specdrift/pkg/domain/alignment"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
	"github.com/felixgeelhaar/specdrift/pkg/domain/traceability"
)

// ErrNoUseCaseDir reports that the required use case directory is missing.
// A missing BDD or services directory just means zero entities; a missing use
// case directory is fatal to the caller.
var ErrNoUseCaseDir = errors.New("use case directory not found")

// WorkspaceRepository scans a project workspace for specification documents
// and persists the accepted-drift baseline under .specdrift/. Scans are
// read-only and return empty collections for absent directories.
type WorkspaceRepository interface {
	Root() string
	HasUseCaseDir() bool

	ScanUseCases() (map[string]*alignment.UseCase, error)
	ScanFeatures() (map[string]*alignment.BDDFeature, error)
	ScanTraceUseCases() ([]*traceability.UseCase, error)
	ScanServices() ([]*traceability.Service, error)

	SaveBaseline(b *drift.Baseline) error
	// LoadBaseline returns (nil, nil) when no baseline has been accepted.
	LoadBaseline() (*drift.Baseline, error)
}
