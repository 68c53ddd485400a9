package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/specdrift/pkg/domain"
	"github.com/felixgeelhaar/specdrift/pkg/domain/alignment"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

// AlignmentService checks that use case specifications and BDD feature files
// agree with each other.
type AlignmentService struct {
	repo domain.WorkspaceRepository
}

func NewAlignmentService(repo domain.WorkspaceRepository) *AlignmentService {
	return &AlignmentService{repo: repo}
}

// Check scans the workspace and runs the alignment validator. The use case
// directory is required; a missing BDD directory just means zero features.
func (s *AlignmentService) Check() (*drift.Report, error) {
	if !s.repo.HasUseCaseDir() {
		return nil, domain.ErrNoUseCaseDir
	}

	useCases, err := s.repo.ScanUseCases()
	if err != nil {
		return nil, fmt.Errorf("failed to scan use cases: %w", err)
	}
	features, err := s.repo.ScanFeatures()
	if err != nil {
		return nil, fmt.Errorf("failed to scan BDD features: %w", err)
	}

	return &drift.Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Counts: drift.EntityCounts{
			UseCases: len(useCases),
			Features: len(features),
		},
		Issues: alignment.NewValidator().Validate(useCases, features),
	}, nil
}
