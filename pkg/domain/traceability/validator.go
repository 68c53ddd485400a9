package traceability

import (
	"fmt"
	"slices"

	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

// Validator runs the four traceability checks in a fixed order. Use cases and
// services arrive as ordered slices (scan order), so the issue list is
// reproducible run over run.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(useCases []*UseCase, services []*Service) []drift.Issue {
	idx := NewServiceIndex(services)

	issues := make([]drift.Issue, 0)
	issues = append(issues, v.checkUnjustifiedServiceless(useCases)...)
	issues = append(issues, v.checkOrphanServices(useCases, services)...)
	issues = append(issues, v.checkMissingServices(useCases, idx)...)
	issues = append(issues, v.checkBidirectional(useCases, services, idx)...)
	return issues
}

// checkUnjustifiedServiceless reports use cases that neither list services nor
// explain why they need none.
func (v *Validator) checkUnjustifiedServiceless(useCases []*UseCase) []drift.Issue {
	var issues []drift.Issue
	for _, uc := range useCases {
		if len(uc.ServicesUsed) > 0 || uc.HasJustification {
			continue
		}
		issues = append(issues, drift.Issue{
			Type:     IssueUnjustifiedServicelessUC,
			Severity: drift.SeverityError,
			UCID:     uc.ID,
			Path:     uc.Path,
			Message:  fmt.Sprintf("%s lists no services and gives no justification", uc.ID),
			Hint:     "Add a 'Services Used' table or a justification such as 'Pure UI'.",
		})
	}
	return issues
}

// checkOrphanServices reports services no use case references by id or name.
func (v *Validator) checkOrphanServices(useCases []*UseCase, services []*Service) []drift.Issue {
	referenced := make(map[string]struct{})
	for _, uc := range useCases {
		for _, ref := range uc.ServicesUsed {
			referenced[ref] = struct{}{}
		}
	}

	var issues []drift.Issue
	for _, svc := range services {
		_, byID := referenced[svc.ID]
		_, byName := referenced[svc.Name]
		if byID || byName {
			continue
		}
		issues = append(issues, drift.Issue{
			Type:      IssueOrphanService,
			Severity:  drift.SeverityWarning,
			ServiceID: svc.ID,
			Path:      svc.Path,
			Message:   fmt.Sprintf("%s (%s) is not used by any use case", svc.ID, svc.Name),
			Hint:      "Remove the service or add a use case that uses it.",
		})
	}
	return issues
}

// checkMissingServices reports use case references that resolve to no service.
func (v *Validator) checkMissingServices(useCases []*UseCase, idx *ServiceIndex) []drift.Issue {
	var issues []drift.Issue
	for _, uc := range useCases {
		for _, ref := range uc.ServicesUsed {
			if _, ok := idx.Resolve(ref); ok {
				continue
			}
			issues = append(issues, drift.Issue{
				Type:      IssueMissingService,
				Severity:  drift.SeverityError,
				UCID:      uc.ID,
				ServiceID: ref,
				Path:      uc.Path,
				Message:   fmt.Sprintf("%s references '%s' which doesn't exist", uc.ID, ref),
				Hint:      "Create the service or fix the reference.",
			})
		}
	}
	return issues
}

// checkBidirectional runs both symmetric passes. A single logical
// inconsistency between one use case and one service may produce two records,
// one per direction; that is intentional and never deduplicated.
func (v *Validator) checkBidirectional(useCases []*UseCase, services []*Service, idx *ServiceIndex) []drift.Issue {
	var issues []drift.Issue

	// Forward: use case claims a service, service does not list it back.
	for _, uc := range useCases {
		for _, ref := range uc.ServicesUsed {
			svc, ok := idx.Resolve(ref)
			if !ok || slices.Contains(svc.UsedBy, uc.ID) {
				continue
			}
			issues = append(issues, drift.Issue{
				Type:      IssueBidirectionalMismatch,
				Severity:  drift.SeverityError,
				UCID:      uc.ID,
				ServiceID: svc.ID,
				Path:      uc.Path,
				Message:   fmt.Sprintf("%s references %s but the service does not list it under 'Used By'", uc.ID, svc.ID),
				Hint:      "Update both documents to declare the dependency in each direction.",
			})
		}
	}

	// Backward: service lists a use case, use case does not claim it back.
	for _, svc := range services {
		for _, ucID := range svc.UsedBy {
			uc := findUseCase(useCases, ucID)
			if uc == nil {
				continue
			}
			if slices.Contains(uc.ServicesUsed, svc.ID) || slices.Contains(uc.ServicesUsed, svc.Name) {
				continue
			}
			issues = append(issues, drift.Issue{
				Type:      IssueBidirectionalMismatch,
				Severity:  drift.SeverityError,
				UCID:      ucID,
				ServiceID: svc.ID,
				Path:      svc.Path,
				Message:   fmt.Sprintf("%s lists %s under 'Used By' but the use case does not reference it", svc.ID, ucID),
				Hint:      "Update both documents to declare the dependency in each direction.",
			})
		}
	}

	return issues
}

func findUseCase(useCases []*UseCase, id string) *UseCase {
	for _, uc := range useCases {
		if uc.ID == id {
			return uc
		}
	}
	return nil
}
