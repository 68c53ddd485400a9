package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/specdrift/pkg/domain"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
	"github.com/felixgeelhaar/specdrift/pkg/domain/traceability"
)

// TraceabilityService checks bidirectional consistency between use case
// documents and service specifications.
type TraceabilityService struct {
	repo domain.WorkspaceRepository
}

func NewTraceabilityService(repo domain.WorkspaceRepository) *TraceabilityService {
	return &TraceabilityService{repo: repo}
}

// Check scans the workspace and runs the traceability validator. The use case
// directory is required; a missing services directory means zero services.
func (s *TraceabilityService) Check() (*drift.Report, error) {
	if !s.repo.HasUseCaseDir() {
		return nil, domain.ErrNoUseCaseDir
	}

	useCases, err := s.repo.ScanTraceUseCases()
	if err != nil {
		return nil, fmt.Errorf("failed to scan use cases: %w", err)
	}
	services, err := s.repo.ScanServices()
	if err != nil {
		return nil, fmt.Errorf("failed to scan services: %w", err)
	}

	return &drift.Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Counts: drift.EntityCounts{
			UseCases: len(useCases),
			Services: len(services),
		},
		Issues: traceability.NewValidator().Validate(useCases, services),
	}, nil
}
