package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
)

// DirectoryFilter narrows a directory search. Zero values match everything.
type DirectoryFilter struct {
	Department     string
	GraduationYear int
}

// DirectoryService is the alumni directory: approved submissions searched
// and filtered the way the directory screen presents them.
type DirectoryService interface {
	// SearchAlumni returns approved submissions matching the query and
	// filter, newest first. An empty query matches everything.
	SearchAlumni(ctx context.Context, query string, filter DirectoryFilter) []models.AlumniSubmission
	// Departments returns the distinct departments of approved alumni,
	// sorted alphabetically.
	Departments(ctx context.Context) []string
}

type directoryServiceImpl struct {
	submissions *repositories.SubmissionRepository
	logger      zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(submissions *repositories.SubmissionRepository, logger zerolog.Logger) DirectoryService {
	return &directoryServiceImpl{submissions: submissions, logger: logger}
}

// SearchAlumni searches the approved submissions. Store faults degrade to
// an empty result so the directory screen renders an empty list.
func (s *directoryServiceImpl) SearchAlumni(ctx context.Context, query string, filter DirectoryFilter) []models.AlumniSubmission {
	approved, err := s.submissions.List(ctx, models.SubmissionApproved)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load alumni directory, returning empty list")
		return []models.AlumniSubmission{}
	}

	lowerQuery := strings.ToLower(query)
	matches := []models.AlumniSubmission{}
	for _, a := range approved {
		if filter.Department != "" && a.Department != filter.Department {
			continue
		}
		if filter.GraduationYear != 0 && a.GraduationYear != filter.GraduationYear {
			continue
		}
		if lowerQuery != "" && !alumniMatches(a, lowerQuery) {
			continue
		}
		matches = append(matches, a)
	}
	return matches
}

// Departments lists the departments the directory screen builds its filter
// chips from
func (s *directoryServiceImpl) Departments(ctx context.Context) []string {
	approved, err := s.submissions.List(ctx, models.SubmissionApproved)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load alumni directory, returning no departments")
		return []string{}
	}

	seen := make(map[string]bool)
	departments := []string{}
	for _, a := range approved {
		if a.Department == "" || seen[a.Department] {
			continue
		}
		seen[a.Department] = true
		departments = append(departments, a.Department)
	}
	sort.Strings(departments)
	return departments
}

func alumniMatches(a models.AlumniSubmission, lowerQuery string) bool {
	for _, field := range []string{a.DisplayName, a.CurrentCompany, a.JobTitle, a.Department} {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
