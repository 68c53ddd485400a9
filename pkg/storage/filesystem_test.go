package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
	"github.com/felixgeelhaar/specdrift/pkg/storage"
)

func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(parts[:len(parts)-1]...)
	path = filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(parts[len(parts)-1]), 0600))
}

func newRepo(t *testing.T) (*storage.FilesystemRepository, string) {
	t.Helper()
	root := t.TempDir()
	return storage.NewFilesystemRepository(root, storage.DefaultLayout()), root
}

func TestScanUseCases(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, "specs", "use-cases", "UC-001-login.md",
		"## Acceptance Criteria\n1. Given a user\n2. When they log in\n")
	writeFile(t, root, "specs", "use-cases", "UC-002-logout.md", "no criteria section")
	writeFile(t, root, "specs", "use-cases", "README.md", "not a use case")

	useCases, err := repo.ScanUseCases()
	require.NoError(t, err)
	require.Len(t, useCases, 2)
	assert.Len(t, useCases["UC-001"].AcceptanceCriteria, 2)
	assert.Empty(t, useCases["UC-002"].AcceptanceCriteria)
}

func TestScanUseCases_DuplicateIDLastWriteWins(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, "specs", "use-cases", "UC-001-alpha.md", "## Acceptance Criteria\n1. alpha\n")
	writeFile(t, root, "specs", "use-cases", "UC-001-beta.md", "## Acceptance Criteria\n1. beta\n2. beta\n")

	// Sorted glob order makes the overwrite deterministic.
	for range 5 {
		useCases, err := repo.ScanUseCases()
		require.NoError(t, err)
		require.Len(t, useCases, 1)
		assert.Len(t, useCases["UC-001"].AcceptanceCriteria, 2)
	}
}

func TestScanUseCases_MissingDirectory(t *testing.T) {
	repo, _ := newRepo(t)

	assert.False(t, repo.HasUseCaseDir())
	useCases, err := repo.ScanUseCases()
	require.NoError(t, err)
	assert.Empty(t, useCases)
}

func TestScanFeatures_Recursive(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, "tests", "bdd", "login.feature", "# UC-001\nFeature: Login\nScenario: ok\n")
	writeFile(t, root, "tests", "bdd", "nested", "deep", "search.feature", "Feature: Search\nScenario: ok\n")
	writeFile(t, root, "tests", "bdd", "notes.txt", "Feature: Not Gherkin")
	writeFile(t, root, "tests", "bdd", "broken.feature", "no feature line")

	features, err := repo.ScanFeatures()
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "UC-001", features["Login"].UCReference)
	assert.Contains(t, features, "Search")
}

func TestScanTraceUseCases_SortedOrder(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, "specs", "use-cases", "UC-002-b.md", "Pure UI\n")
	writeFile(t, root, "specs", "use-cases", "UC-001-a.md", "Pure UI\n")

	useCases, err := repo.ScanTraceUseCases()
	require.NoError(t, err)
	require.Len(t, useCases, 2)
	assert.Equal(t, "UC-001", useCases[0].ID)
	assert.Equal(t, "UC-002", useCases[1].ID)
}

func TestScanServices(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, "services", "auth", "service-spec.md",
		"Service ID: SVC-001\n\n## Used By\n\n| UC |\n|----|\n| UC-001 |\n")
	writeFile(t, root, "services", "users", "service-spec.md", "# Users\n")
	writeFile(t, root, "services", "stray.md", "not a service spec")
	writeFile(t, root, "services", "nested", "deep", "service-spec.md", "too deep")

	services, err := repo.ScanServices()
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "SVC-001", services[0].ID)
	assert.Equal(t, []string{"UC-001"}, services[0].UsedBy)
	assert.Equal(t, "users", services[1].ID)
}

func TestScanServices_MissingDirectory(t *testing.T) {
	repo, _ := newRepo(t)
	services, err := repo.ScanServices()
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestLoadLayout(t *testing.T) {
	root := t.TempDir()

	layout, err := storage.LoadLayout(root)
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultLayout(), layout)

	writeFile(t, root, storage.ConfigFile, "use_cases: docs/ucs\nbdd: features\n")
	layout, err = storage.LoadLayout(root)
	require.NoError(t, err)
	assert.Equal(t, "docs/ucs", layout.UseCases)
	assert.Equal(t, "features", layout.BDD)
	assert.Equal(t, "services", layout.Services, "unset keys keep their defaults")
}

func TestLoadLayout_Malformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, storage.ConfigFile, "use_cases: [unclosed")

	_, err := storage.LoadLayout(root)
	assert.Error(t, err)
}

func TestBaselineRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)

	loaded, err := repo.LoadBaseline()
	require.NoError(t, err)
	assert.Nil(t, loaded, "no baseline accepted yet")

	issue := drift.Issue{Type: "missing_bdd", UCID: "UC-001", Message: "UC-001 has no corresponding BDD feature file"}
	require.NoError(t, repo.SaveBaseline(&drift.Baseline{Accepted: []string{issue.Fingerprint()}}))

	loaded, err = repo.LoadBaseline()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Contains(issue))
}

func TestLoadBaseline_RejectsInvalidShape(t *testing.T) {
	repo, root := newRepo(t)
	writeFile(t, root, storage.SpecdriftDir, storage.BaselineFile, `{"accepted": "not-an-array"}`)

	_, err := repo.LoadBaseline()
	assert.Error(t, err)
}
