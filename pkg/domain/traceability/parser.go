package traceability

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/felixgeelhaar/specdrift/pkg/markdown"
)

var (
	ucIDRe      = regexp.MustCompile(`^(UC-\d+)`)
	serviceIDRe = regexp.MustCompile(`(?i)Service\s+ID[:\s]+([A-Z]+-\d+)`)

	servicesHeadingRe = regexp.MustCompile(`(?i)^##\s+Services\s+Used\s*$`)
	usedByHeadingRe   = regexp.MustCompile(`(?i)^##\s+(Used\s+By|Use\s+Cases)\s*$`)

	justificationRe = regexp.MustCompile(`(?i)No services needed|No services required|Justification:|Pure UI|No backend interaction`)
)

// ParseUseCase extracts the service dependencies of one use case document.
// It always succeeds: a document without a recognizable id or table simply
// yields an entity with the filename stem as id and no services.
func ParseUseCase(path, content string) *UseCase {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	uc := &UseCase{ID: stem, Name: stem, Path: path}
	if m := ucIDRe.FindStringSubmatch(stem); m != nil {
		uc.ID = m[1]
	}

	for _, row := range markdown.TableRows(content, servicesHeadingRe) {
		if len(row) < 2 {
			continue
		}
		ref := markdown.CleanCell(row[1])
		if ref == "" || strings.HasPrefix(ref, "-") {
			continue
		}
		uc.ServicesUsed = append(uc.ServicesUsed, ref)
	}

	if len(uc.ServicesUsed) == 0 {
		uc.HasJustification = justificationRe.MatchString(content)
	}
	return uc
}

// ParseService extracts the consumers of one service-spec.md document. The
// service id comes from a "Service ID: SVC-XXX" declaration, falling back to
// the parent directory name; the name is always the parent directory name.
func ParseService(path, content string) *Service {
	dir := filepath.Base(filepath.Dir(path))
	svc := &Service{ID: dir, Name: dir, Path: path}
	if m := serviceIDRe.FindStringSubmatch(content); m != nil {
		svc.ID = m[1]
	}

	for _, row := range markdown.TableRows(content, usedByHeadingRe) {
		if len(row) < 2 {
			continue
		}
		if id, ok := markdown.FirstIdentifier(row[1], markdown.UCPattern); ok {
			svc.UsedBy = append(svc.UsedBy, id)
		}
	}
	return svc
}
