package alignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/specdrift/pkg/domain/alignment"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

func uc(id string, criteria ...string) *alignment.UseCase {
	return &alignment.UseCase{ID: id, Path: id + ".md", AcceptanceCriteria: criteria}
}

func feature(name, path, ucRef string, scenarios ...string) *alignment.BDDFeature {
	return &alignment.BDDFeature{Name: name, Path: path, UCReference: ucRef, Scenarios: scenarios}
}

func issuesOfType(issues []drift.Issue, t drift.IssueType) []drift.Issue {
	var out []drift.Issue
	for _, i := range issues {
		if i.Type == t {
			out = append(out, i)
		}
	}
	return out
}

func TestValidate_AlignedWorkspace(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "Given X", "When Y", "Then Z"),
	}
	useCases["UC-001"].BDDFileReferenced = "tests/bdd/uc-001-login.feature"
	features := map[string]*alignment.BDDFeature{
		"Login": feature("Login", "tests/bdd/UC-001-login.feature", "UC-001", "a", "b", "c"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	assert.Empty(t, issues, "three criteria against three scenarios is aligned")
}

func TestValidate_MissingBDD(t *testing.T) {
	// UC-001 has no Acceptance Criteria section at all; that alone must not
	// produce a count mismatch, only the missing feature error.
	useCases := map[string]*alignment.UseCase{"UC-001": uc("UC-001")}

	issues := alignment.NewValidator().Validate(useCases, map[string]*alignment.BDDFeature{})
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueMissingBDD, issues[0].Type)
	assert.Equal(t, drift.SeverityError, issues[0].Severity)
	assert.Equal(t, "UC-001", issues[0].UCID)
	assert.Empty(t, issuesOfType(issues, alignment.IssueCountMismatch))
}

func TestValidate_MissingBDD_OnePerUseCase(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a"),
		"UC-002": uc("UC-002", "a"),
		"UC-003": uc("UC-003", "a"),
	}
	features := map[string]*alignment.BDDFeature{
		"Two": feature("Two", "two.feature", "UC-002", "a"),
	}

	missing := issuesOfType(alignment.NewValidator().Validate(useCases, features), alignment.IssueMissingBDD)
	require.Len(t, missing, 2)
	assert.Equal(t, "UC-001", missing[0].UCID)
	assert.Equal(t, "UC-003", missing[1].UCID)
}

func TestValidate_OrphanedFeature(t *testing.T) {
	features := map[string]*alignment.BDDFeature{
		"Stray": feature("Stray", "stray.feature", "", "a"),
	}

	issues := alignment.NewValidator().Validate(map[string]*alignment.UseCase{}, features)
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueOrphanedFeature, issues[0].Type)
	assert.Equal(t, drift.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "Stray", issues[0].FeatureName)
}

func TestValidate_BrokenUCRef(t *testing.T) {
	features := map[string]*alignment.BDDFeature{
		"Ghost": feature("Ghost", "ghost.feature", "UC-001", "a"),
	}

	issues := alignment.NewValidator().Validate(map[string]*alignment.UseCase{}, features)
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueBrokenUCRef, issues[0].Type)
	assert.Equal(t, drift.SeverityError, issues[0].Severity)
	assert.Equal(t, "UC-001", issues[0].UCID)
	assert.Equal(t, "Ghost", issues[0].FeatureName)
	assert.Contains(t, issues[0].Message, "UC-001")
	assert.Contains(t, issues[0].Message, "Ghost")
}

func TestValidate_CountMismatch(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "one", "two", "three"),
	}
	features := map[string]*alignment.BDDFeature{
		"Login": feature("Login", "login.feature", "UC-001", "only one"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueCountMismatch, issues[0].Type)
	assert.Equal(t, drift.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "3 acceptance criteria")
	assert.Contains(t, issues[0].Message, "1 BDD scenarios")
}

func TestValidate_BrokenBDDRef(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a"),
	}
	useCases["UC-001"].BDDFileReferenced = "tests/bdd/does-not-exist.feature"
	features := map[string]*alignment.BDDFeature{
		"Other": feature("Other", "tests/bdd/other.feature", "UC-001", "a"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueBrokenBDDRef, issues[0].Type)
	assert.Contains(t, issues[0].Message, "does-not-exist.feature")
}

func TestValidate_BDDRefMatchIsCaseInsensitive(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a"),
	}
	useCases["UC-001"].BDDFileReferenced = "TESTS/BDD/Login.FEATURE"
	features := map[string]*alignment.BDDFeature{
		"Login": feature("Login", "tests/bdd/login.feature", "UC-001", "a"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	assert.Empty(t, issuesOfType(issues, alignment.IssueBrokenBDDRef))
}

// The forward link (declared BDD file) and the backward link (feature's UC
// reference) are independent: a feature can claim a UC while the UC points at
// a different, missing file. Both findings are reported.
func TestValidate_IndependentLinkDirections(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a"),
	}
	useCases["UC-001"].BDDFileReferenced = "gone.feature"
	features := map[string]*alignment.BDDFeature{
		"Login": feature("Login", "tests/bdd/login.feature", "UC-001", "a"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	require.Len(t, issues, 1)
	assert.Equal(t, alignment.IssueBrokenBDDRef, issues[0].Type)
}

func TestValidate_Idempotent(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a", "b"),
		"UC-002": uc("UC-002"),
	}
	features := map[string]*alignment.BDDFeature{
		"One":   feature("One", "one.feature", "UC-001", "x"),
		"Stray": feature("Stray", "stray.feature", "", "y"),
		"Ghost": feature("Ghost", "ghost.feature", "UC-404", "z"),
	}

	v := alignment.NewValidator()
	first := v.Validate(useCases, features)
	second := v.Validate(useCases, features)
	assert.Equal(t, first, second, "unchanged input must yield an identical, identically-ordered issue list")
}

func TestValidate_CheckOrderIsFixed(t *testing.T) {
	useCases := map[string]*alignment.UseCase{
		"UC-001": uc("UC-001", "a", "b"),
		"UC-002": uc("UC-002"),
	}
	useCases["UC-002"].BDDFileReferenced = "nowhere.feature"
	features := map[string]*alignment.BDDFeature{
		"One":   feature("One", "one.feature", "UC-001", "x"),
		"Stray": feature("Stray", "stray.feature", "", "y"),
	}

	issues := alignment.NewValidator().Validate(useCases, features)
	types := make([]drift.IssueType, 0, len(issues))
	for _, i := range issues {
		types = append(types, i.Type)
	}
	assert.Equal(t, []drift.IssueType{
		alignment.IssueMissingBDD,      // UC-002 unclaimed
		alignment.IssueOrphanedFeature, // Stray
		alignment.IssueCountMismatch,   // UC-001: 2 criteria, 1 scenario
		alignment.IssueBrokenBDDRef,    // UC-002 -> nowhere.feature
	}, types)
}

func TestBuildIndex_SeparatesEdgeSets(t *testing.T) {
	features := map[string]*alignment.BDDFeature{
		"A": feature("A", "tests/bdd/a.feature", "UC-001", "s"),
		"B": feature("B", "tests/bdd/B.Feature", "", "s"),
	}

	idx := alignment.BuildIndex(features)
	assert.Contains(t, idx.ReferencedUCs, "UC-001")
	assert.NotContains(t, idx.ReferencedUCs, "")
	assert.Contains(t, idx.FeatureFiles, "a.feature")
	assert.Contains(t, idx.FeatureFiles, "b.feature", "file names are matched lower-cased")
	assert.Equal(t, "A", idx.FeatureByUC["UC-001"].Name)
}

func TestBuildIndex_DuplicateClaimIsDeterministic(t *testing.T) {
	features := map[string]*alignment.BDDFeature{
		"Alpha": feature("Alpha", "alpha.feature", "UC-001", "s"),
		"Beta":  feature("Beta", "beta.feature", "UC-001", "s"),
	}

	for range 20 {
		idx := alignment.BuildIndex(features)
		assert.Equal(t, "Beta", idx.FeatureByUC["UC-001"].Name, "lexically last feature name wins")
	}
}
