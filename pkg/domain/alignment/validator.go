package alignment

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

// Validator runs the four alignment checks over the parsed repositories.
// Checks execute in a fixed order and concatenate their results; running the
// validator twice over unchanged input yields an identical issue list.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(useCases map[string]*UseCase, features map[string]*BDDFeature) []drift.Issue {
	idx := BuildIndex(features)

	issues := make([]drift.Issue, 0)
	issues = append(issues, v.checkMissingBDD(useCases, idx)...)
	issues = append(issues, v.checkFeatureReferences(useCases, features)...)
	issues = append(issues, v.checkCountMismatch(useCases, idx)...)
	issues = append(issues, v.checkBrokenBDDRefs(useCases, idx)...)
	return issues
}

// checkMissingBDD reports one error per use case no feature claims.
func (v *Validator) checkMissingBDD(useCases map[string]*UseCase, idx *Index) []drift.Issue {
	var issues []drift.Issue
	for _, ucID := range slices.Sorted(maps.Keys(useCases)) {
		if _, ok := idx.ReferencedUCs[ucID]; ok {
			continue
		}
		issues = append(issues, drift.Issue{
			Type:     IssueMissingBDD,
			Severity: drift.SeverityError,
			UCID:     ucID,
			Path:     useCases[ucID].Path,
			Message:  fmt.Sprintf("%s has no corresponding BDD feature file", ucID),
			Hint:     "Create a BDD feature file with scenarios covering the acceptance criteria.",
		})
	}
	return issues
}

// checkFeatureReferences reports a warning for features with no use case
// reference and an error for features referencing a use case that does not
// exist.
func (v *Validator) checkFeatureReferences(useCases map[string]*UseCase, features map[string]*BDDFeature) []drift.Issue {
	var issues []drift.Issue
	for _, name := range slices.Sorted(maps.Keys(features)) {
		f := features[name]
		switch {
		case f.UCReference == "":
			issues = append(issues, drift.Issue{
				Type:        IssueOrphanedFeature,
				Severity:    drift.SeverityWarning,
				FeatureName: name,
				Path:        f.Path,
				Message:     fmt.Sprintf("BDD feature '%s' has no UC reference", name),
				Hint:        "Add a '# UC-XXX' comment to the feature file or a UC id to its filename.",
			})
		default:
			if _, ok := useCases[f.UCReference]; !ok {
				issues = append(issues, drift.Issue{
					Type:        IssueBrokenUCRef,
					Severity:    drift.SeverityError,
					UCID:        f.UCReference,
					FeatureName: name,
					Path:        f.Path,
					Message:     fmt.Sprintf("BDD feature '%s' references non-existent %s", name, f.UCReference),
					Hint:        "Create the use case or correct the reference.",
				})
			}
		}
	}
	return issues
}

// checkCountMismatch warns when a use case's acceptance criteria count differs
// from its feature's scenario count. Use cases no feature claims are skipped;
// checkMissingBDD already reported them.
func (v *Validator) checkCountMismatch(useCases map[string]*UseCase, idx *Index) []drift.Issue {
	var issues []drift.Issue
	for _, ucID := range slices.Sorted(maps.Keys(useCases)) {
		f, ok := idx.FeatureByUC[ucID]
		if !ok {
			continue
		}
		criteria := len(useCases[ucID].AcceptanceCriteria)
		scenarios := len(f.Scenarios)
		if criteria == scenarios {
			continue
		}
		issues = append(issues, drift.Issue{
			Type:        IssueCountMismatch,
			Severity:    drift.SeverityWarning,
			UCID:        ucID,
			FeatureName: f.Name,
			Path:        f.Path,
			Message:     fmt.Sprintf("%s: %d acceptance criteria but %d BDD scenarios in '%s'", ucID, criteria, scenarios, f.Name),
			Hint:        "Give each acceptance criterion exactly one scenario.",
		})
	}
	return issues
}

// checkBrokenBDDRefs reports use cases whose declared feature file does not
// exist. Matching is by lower-cased base filename.
func (v *Validator) checkBrokenBDDRefs(useCases map[string]*UseCase, idx *Index) []drift.Issue {
	var issues []drift.Issue
	for _, ucID := range slices.Sorted(maps.Keys(useCases)) {
		uc := useCases[ucID]
		if uc.BDDFileReferenced == "" {
			continue
		}
		ref := strings.ToLower(filepath.Base(uc.BDDFileReferenced))
		if _, ok := idx.FeatureFiles[ref]; ok {
			continue
		}
		issues = append(issues, drift.Issue{
			Type:     IssueBrokenBDDRef,
			Severity: drift.SeverityError,
			UCID:     ucID,
			Path:     uc.Path,
			Message:  fmt.Sprintf("%s references BDD file '%s' which doesn't exist", ucID, uc.BDDFileReferenced),
			Hint:     "Create the referenced file or update the reference.",
		})
	}
	return issues
}
