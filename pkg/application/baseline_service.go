package application

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/specdrift/pkg/domain"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

// BaselineService manages the accepted-drift snapshot. Accepting drift locks
// in the current issue set; later checks suppress exactly those issues until
// the documents change enough to alter their fingerprints.
type BaselineService struct {
	repo domain.WorkspaceRepository
}

func NewBaselineService(repo domain.WorkspaceRepository) *BaselineService {
	return &BaselineService{repo: repo}
}

// Accept records every issue in the given reports as accepted.
func (s *BaselineService) Accept(reports ...*drift.Report) (*drift.Baseline, error) {
	b := &drift.Baseline{CreatedAt: time.Now()}
	for _, r := range reports {
		for _, issue := range r.Issues {
			b.Accepted = append(b.Accepted, issue.Fingerprint())
		}
	}
	if err := s.repo.SaveBaseline(b); err != nil {
		return nil, fmt.Errorf("failed to save baseline: %w", err)
	}
	return b, nil
}

// Apply removes baselined issues from the report in place and returns how
// many were suppressed. Without a baseline the report is unchanged.
func (s *BaselineService) Apply(report *drift.Report) (int, error) {
	b, err := s.repo.LoadBaseline()
	if err != nil {
		return 0, fmt.Errorf("failed to load baseline: %w", err)
	}
	if b == nil {
		return 0, nil
	}

	kept := report.Issues[:0]
	suppressed := 0
	for _, issue := range report.Issues {
		if b.Contains(issue) {
			suppressed++
			continue
		}
		kept = append(kept, issue)
	}
	report.Issues = kept
	return suppressed, nil
}
