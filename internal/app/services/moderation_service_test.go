package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/app/services"
	"github.com/iiuc/alumnihub/internal/store"
)

func newModerationService(repos *repositories.Repositories) services.ModerationService {
	return services.NewModerationService(repos.Submissions, repos.Reports, repos.Posts, zerolog.Nop())
}

func TestDashboardOverview(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestDeps()
	moderation := newModerationService(repos)

	pending := seedAlumnus(t, repos, repositories.CreateSubmissionInput{
		UserID: "u1", Email: "a@example.com", DisplayName: "A",
	}, false)
	seedAlumnus(t, repos, repositories.CreateSubmissionInput{
		UserID: "u2", Email: "b@example.com", DisplayName: "B",
	}, true)

	report, err := repos.Reports.Create(ctx, repositories.CreateReportInput{
		ReportedPostID: "post_1", ReportedBy: "u1", Reason: "spam",
	})
	if err != nil {
		t.Fatalf("Create report: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := repos.Posts.Create(ctx, repositories.CreatePostInput{
			AuthorID: "u1", AuthorName: "A", Type: models.PostAdvice, Title: "t", Content: "c",
		}); err != nil {
			t.Fatalf("Create post: %v", err)
		}
	}

	overview := moderation.DashboardOverview(ctx)
	if len(overview.PendingSubmissions) != 1 || overview.PendingSubmissions[0].ID != pending.ID {
		t.Fatalf("unexpected pending submissions: %+v", overview.PendingSubmissions)
	}
	if len(overview.PendingReports) != 1 || overview.PendingReports[0].ID != report.ID {
		t.Fatalf("unexpected pending reports: %+v", overview.PendingReports)
	}
	if overview.TotalPosts != 3 {
		t.Fatalf("expected 3 total posts, got %d", overview.TotalPosts)
	}
}

func TestDashboardOverview_SectionsDegradeIndependently(t *testing.T) {
	ctx := context.Background()
	repos, kv, records := newTestDeps()
	moderation := newModerationService(repos)

	// Only the submissions collection is broken; the rest still loads
	if err := kv.Set(ctx, records.Key(store.CollectionSubmissions), "{corrupt"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := repos.Posts.Create(ctx, repositories.CreatePostInput{
		AuthorID: "u1", AuthorName: "A", Type: models.PostJob, Title: "t", Content: "c",
	}); err != nil {
		t.Fatalf("Create post: %v", err)
	}

	overview := moderation.DashboardOverview(ctx)
	if overview.PendingSubmissions == nil || len(overview.PendingSubmissions) != 0 {
		t.Fatalf("expected empty submissions section, got %+v", overview.PendingSubmissions)
	}
	if overview.TotalPosts != 1 {
		t.Fatalf("post count must survive a submissions fault, got %d", overview.TotalPosts)
	}
}

func TestModerationReviewOperations(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestDeps()
	moderation := newModerationService(repos)

	submission := seedAlumnus(t, repos, repositories.CreateSubmissionInput{
		UserID: "u1", Email: "a@example.com", DisplayName: "A",
	}, false)

	approved, err := moderation.ApproveSubmission(ctx, submission.ID, "admin_1")
	if err != nil {
		t.Fatalf("ApproveSubmission: %v", err)
	}
	if approved.Status != models.SubmissionApproved {
		t.Fatalf("expected approved, got %q", approved.Status)
	}

	rejected, err := moderation.RejectSubmission(ctx, submission.ID, "admin_1", "duplicate record")
	if err != nil {
		t.Fatalf("RejectSubmission: %v", err)
	}
	if rejected.Status != models.SubmissionRejected || rejected.RejectionReason != "duplicate record" {
		t.Fatalf("unexpected rejected submission: %+v", rejected)
	}

	report, err := repos.Reports.Create(ctx, repositories.CreateReportInput{
		ReportedUserID: "u2", ReportedBy: "u1", Reason: "spam",
	})
	if err != nil {
		t.Fatalf("Create report: %v", err)
	}

	resolved, err := moderation.ResolveReport(ctx, report.ID, "user_warned")
	if err != nil {
		t.Fatalf("ResolveReport: %v", err)
	}
	if resolved.Status != models.ReportResolved || resolved.Action != "user_warned" {
		t.Fatalf("unexpected resolved report: %+v", resolved)
	}

	dismissed, err := moderation.DismissReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("DismissReport: %v", err)
	}
	if dismissed.Status != models.ReportDismissed {
		t.Fatalf("expected dismissed, got %q", dismissed.Status)
	}
}
