package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/felixgeelhaar/fortify/retry"

	"github.com/felixgeelhaar/specdrift/pkg/domain/alignment"
	"github.com/felixgeelhaar/specdrift/pkg/domain/traceability"
)

// FilesystemRepository scans a project workspace for specification documents.
// All scans are read-only; a directory that does not exist yields an empty
// repository, and a file that cannot be read is logged as a warning and
// skipped so one bad file never fails a whole scan.
type FilesystemRepository struct {
	root        string
	layout      Layout
	retryConfig retry.Config
}

func NewFilesystemRepository(root string, layout Layout) *FilesystemRepository {
	return &FilesystemRepository{
		root:   root,
		layout: layout,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

func (r *FilesystemRepository) UseCaseDir() string {
	return r.resolve(r.layout.UseCases)
}

func (r *FilesystemRepository) BDDDir() string {
	return r.resolve(r.layout.BDD)
}

func (r *FilesystemRepository) ServiceDir() string {
	return r.resolve(r.layout.Services)
}

// resolve keeps absolute layout paths as-is; relative ones are anchored at the
// workspace root.
func (r *FilesystemRepository) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(r.root, dir)
}

func (r *FilesystemRepository) HasUseCaseDir() bool {
	info, err := os.Stat(r.UseCaseDir())
	return err == nil && info.IsDir()
}

// ScanUseCases parses every UC-*.md in the use case directory into a map
// keyed by use case id. Paths are globbed in sorted order, so when two files
// share an id prefix the lexically last one wins, deterministically.
func (r *FilesystemRepository) ScanUseCases() (map[string]*alignment.UseCase, error) {
	useCases := make(map[string]*alignment.UseCase)
	paths, err := r.glob(filepath.Join(r.UseCaseDir(), "UC-*.md"))
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		content, ok := r.readDocument(path)
		if !ok {
			continue
		}
		if uc, ok := alignment.ParseUseCase(path, content); ok {
			useCases[uc.ID] = uc
		}
	}
	return useCases, nil
}

// ScanFeatures parses every .feature file under the BDD directory,
// recursively, into a map keyed by feature name. Duplicate feature names
// follow the same sorted last-write-wins rule as use case ids.
func (r *FilesystemRepository) ScanFeatures() (map[string]*alignment.BDDFeature, error) {
	features := make(map[string]*alignment.BDDFeature)
	paths, err := r.glob(filepath.Join(r.BDDDir(), "**", "*.feature"))
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		content, ok := r.readDocument(path)
		if !ok {
			continue
		}
		if f, ok := alignment.ParseFeature(path, content); ok {
			features[f.Name] = f
		}
	}
	return features, nil
}

// ScanTraceUseCases parses every UC-*.md for service dependencies, preserving
// sorted path order. Traceability treats use cases as an ordered list.
func (r *FilesystemRepository) ScanTraceUseCases() ([]*traceability.UseCase, error) {
	paths, err := r.glob(filepath.Join(r.UseCaseDir(), "UC-*.md"))
	if err != nil {
		return nil, err
	}
	useCases := make([]*traceability.UseCase, 0, len(paths))
	for _, path := range paths {
		content, ok := r.readDocument(path)
		if !ok {
			continue
		}
		useCases = append(useCases, traceability.ParseUseCase(path, content))
	}
	return useCases, nil
}

// ScanServices parses every */service-spec.md one level under the services
// directory, in sorted path order. Services are a list, not a map: duplicate
// ids are preserved and left for the validator to report against.
func (r *FilesystemRepository) ScanServices() ([]*traceability.Service, error) {
	paths, err := r.glob(filepath.Join(r.ServiceDir(), "*", "service-spec.md"))
	if err != nil {
		return nil, err
	}
	services := make([]*traceability.Service, 0, len(paths))
	for _, path := range paths {
		content, ok := r.readDocument(path)
		if !ok {
			continue
		}
		services = append(services, traceability.ParseService(path, content))
	}
	return services, nil
}

// glob expands a pattern to sorted matching file paths. A pattern whose base
// directory does not exist matches nothing.
func (r *FilesystemRepository) glob(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// readDocument reads one file, retrying transient failures. A file that still
// cannot be read is excluded from the scan with a warning.
func (r *FilesystemRepository) readDocument(path string) (string, bool) {
	retryer := retry.New[[]byte](r.retryConfig)

	data, err := retryer.Do(context.Background(), func(ctx context.Context) ([]byte, error) {
		// #nosec G304 -- Paths come from globbing the configured workspace directories
		return os.ReadFile(path)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
		return "", false
	}
	return string(data), true
}
