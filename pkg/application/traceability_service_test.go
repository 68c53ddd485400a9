package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/specdrift/pkg/application"
	"github.com/felixgeelhaar/specdrift/pkg/domain"
)

func TestTraceabilityService_Check_Traced(t *testing.T) {
	repo, root := newWorkspace(t)
	writeFile(t, root, "specs", "use-cases", "UC-001-login.md",
		"## Services Used\n\n| Service | Purpose |\n|---------|---------|\n| auth-service | Login |\n")
	writeFile(t, root, "services", "auth-service", "service-spec.md",
		"Service ID: SVC-001\n\n## Used By\n\n| UC | Purpose |\n|----|---------|\n| UC-001 | Login |\n")

	report, err := application.NewTraceabilityService(repo).Check()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Counts.UseCases)
	assert.Equal(t, 1, report.Counts.Services)
	assert.False(t, report.HasIssues())
}

func TestTraceabilityService_Check_MissingUseCaseDir(t *testing.T) {
	repo, _ := newWorkspace(t)

	_, err := application.NewTraceabilityService(repo).Check()
	assert.ErrorIs(t, err, domain.ErrNoUseCaseDir)
}

func TestTraceabilityService_Check_MissingServicesDir(t *testing.T) {
	repo, root := newWorkspace(t)
	writeFile(t, root, "specs", "use-cases", "UC-001-login.md",
		"## Services Used\n\n| Service | Purpose |\n|---------|---------|\n| auth-service | Login |\n")

	report, err := application.NewTraceabilityService(repo).Check()
	require.NoError(t, err)
	assert.Equal(t, 0, report.Counts.Services)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "missing_service", string(report.Issues[0].Type))
	assert.Equal(t, "auth-service", report.Issues[0].ServiceID)
}
