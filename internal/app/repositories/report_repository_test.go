package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
)

func TestReportResolve(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Reports.Create(ctx, repositories.CreateReportInput{
		ReportedPostID: "post_1",
		ReportedBy:     "user_1",
		Reason:         "spam",
		Description:    "same job link posted five times",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.ReportPending {
		t.Fatalf("expected new report to be pending, got %q", created.Status)
	}
	if created.ResolvedAt != 0 {
		t.Fatal("resolvedAt must be unset on a fresh report")
	}

	resolved, err := repos.Reports.Resolve(ctx, created.ID, "post_removed")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Status != models.ReportResolved {
		t.Fatalf("expected status resolved, got %q", resolved.Status)
	}
	if resolved.Action != "post_removed" || resolved.ResolvedAt == 0 {
		t.Fatalf("resolution details not recorded: %+v", resolved)
	}

	pending, err := repos.Reports.List(ctx, models.ReportPending)
	if err != nil {
		t.Fatalf("List(pending): %v", err)
	}
	if len(pending) != 0 {
		t.Fatal("resolved report still listed as pending")
	}
}

func TestReportDismiss(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Reports.Create(ctx, repositories.CreateReportInput{
		ReportedUserID: "user_2",
		ReportedBy:     "user_1",
		Reason:         "harassment",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	dismissed, err := repos.Reports.Dismiss(ctx, created.ID)
	if err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if dismissed.Status != models.ReportDismissed {
		t.Fatalf("expected status dismissed, got %q", dismissed.Status)
	}
	if dismissed.ResolvedAt == 0 {
		t.Fatal("expected resolvedAt to be stamped on dismissal")
	}
}

func TestReportUpdate_PartialMerge(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Reports.Create(ctx, repositories.CreateReportInput{
		ReportedPostID: "post_1", ReportedBy: "user_1",
		Reason: "spam", Description: "repeated link",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	description := "repeated link, five posts in an hour"
	updated, err := repos.Reports.Update(ctx, created.ID, repositories.ReportUpdate{
		Description: &description,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != description {
		t.Fatalf("expected description updated, got %q", updated.Description)
	}
	if updated.Reason != "spam" || updated.Status != models.ReportPending {
		t.Fatal("untouched fields must survive a partial update")
	}

	got, err := repos.Reports.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != description {
		t.Fatalf("update not persisted, got %q", got.Description)
	}
}

func TestReportUpdate_MissingID(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	reason := "x"
	_, err := repos.Reports.Update(ctx, "report_missing", repositories.ReportUpdate{Reason: &reason})
	if !errors.Is(err, apperrors.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected the not-found family to match, got %v", err)
	}
}

func TestReportClose_MissingID(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	_, err := repos.Reports.Resolve(ctx, "report_missing", "none")
	if !errors.Is(err, apperrors.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}
