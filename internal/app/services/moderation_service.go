package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
)

// Overview is the admin dashboard aggregate
type Overview struct {
	PendingSubmissions []models.AlumniSubmission
	PendingReports     []models.Report
	TotalPosts         int
}

// ModerationService backs the admin dashboard: the pending review queues
// and the review operations
type ModerationService interface {
	// DashboardOverview loads the pending queues and the post count.
	DashboardOverview(ctx context.Context) Overview
	// ApproveSubmission marks a submission approved by reviewerID.
	ApproveSubmission(ctx context.Context, id, reviewerID string) (*models.AlumniSubmission, error)
	// RejectSubmission marks a submission rejected by reviewerID with a reason.
	RejectSubmission(ctx context.Context, id, reviewerID, reason string) (*models.AlumniSubmission, error)
	// ResolveReport closes a report with the action taken.
	ResolveReport(ctx context.Context, id, action string) (*models.Report, error)
	// DismissReport closes a report without action.
	DismissReport(ctx context.Context, id string) (*models.Report, error)
}

type moderationServiceImpl struct {
	submissions *repositories.SubmissionRepository
	reports     *repositories.ReportRepository
	posts       *repositories.PostRepository
	logger      zerolog.Logger
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	submissions *repositories.SubmissionRepository,
	reports *repositories.ReportRepository,
	posts *repositories.PostRepository,
	logger zerolog.Logger,
) ModerationService {
	return &moderationServiceImpl{
		submissions: submissions,
		reports:     reports,
		posts:       posts,
		logger:      logger,
	}
}

// DashboardOverview loads the pending queues. Store faults degrade each
// section to empty so the dashboard still renders.
func (s *moderationServiceImpl) DashboardOverview(ctx context.Context) Overview {
	overview := Overview{
		PendingSubmissions: []models.AlumniSubmission{},
		PendingReports:     []models.Report{},
	}

	submissions, err := s.submissions.List(ctx, models.SubmissionPending)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load pending submissions")
	} else {
		overview.PendingSubmissions = submissions
	}

	reports, err := s.reports.List(ctx, models.ReportPending)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load pending reports")
	} else {
		overview.PendingReports = reports
	}

	posts, err := s.posts.List(ctx, "")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load posts for dashboard stats")
	} else {
		overview.TotalPosts = len(posts)
	}

	return overview
}

// ApproveSubmission marks a submission approved
func (s *moderationServiceImpl) ApproveSubmission(ctx context.Context, id, reviewerID string) (*models.AlumniSubmission, error) {
	return s.submissions.Approve(ctx, id, reviewerID)
}

// RejectSubmission marks a submission rejected with a reason
func (s *moderationServiceImpl) RejectSubmission(ctx context.Context, id, reviewerID, reason string) (*models.AlumniSubmission, error) {
	return s.submissions.Reject(ctx, id, reviewerID, reason)
}

// ResolveReport closes a report with the action taken
func (s *moderationServiceImpl) ResolveReport(ctx context.Context, id, action string) (*models.Report, error) {
	return s.reports.Resolve(ctx, id, action)
}

// DismissReport closes a report without action
func (s *moderationServiceImpl) DismissReport(ctx context.Context, id string) (*models.Report, error) {
	return s.reports.Dismiss(ctx, id)
}
