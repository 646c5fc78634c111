package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
)

func TestSubmissionApprovalFlow(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Submissions.Create(ctx, repositories.CreateSubmissionInput{
		UserID:         "user_1",
		Email:          "tanvir@example.com",
		DisplayName:    "Tanvir Ahmed",
		Department:     "Computer Science",
		GraduationYear: 2019,
		CurrentCompany: "BrainStation",
		SubmittedBy:    models.SubmittedByGeneral,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.SubmissionPending {
		t.Fatalf("expected new submission to default to pending, got %q", created.Status)
	}

	pending, err := repos.Submissions.List(ctx, models.SubmissionPending)
	if err != nil {
		t.Fatalf("List(pending): %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending submission, got %d", len(pending))
	}

	approved, err := repos.Submissions.Approve(ctx, created.ID, "admin_1")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != models.SubmissionApproved || approved.ReviewedBy != "admin_1" {
		t.Fatalf("unexpected approved submission: %+v", approved)
	}

	pending, err = repos.Submissions.List(ctx, models.SubmissionPending)
	if err != nil {
		t.Fatalf("List(pending): %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("approved submission still listed as pending")
	}

	got, err := repos.Submissions.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.SubmissionApproved {
		t.Fatalf("expected persisted status approved, got %q", got.Status)
	}
	if got.Department != "Computer Science" || got.GraduationYear != 2019 {
		t.Fatal("approval must not touch profile fields")
	}
}

func TestSubmissionRejectionFlow(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Submissions.Create(ctx, repositories.CreateSubmissionInput{
		UserID:      "user_2",
		Email:       "x@example.com",
		DisplayName: "X",
		Department:  "EEE",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rejected, err := repos.Submissions.Reject(ctx, created.ID, "admin_1", "certificate unreadable")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != models.SubmissionRejected {
		t.Fatalf("expected status rejected, got %q", rejected.Status)
	}
	if rejected.RejectionReason != "certificate unreadable" || rejected.ReviewedBy != "admin_1" {
		t.Fatalf("rejection details not recorded: %+v", rejected)
	}
}

func TestSubmissionReReview_OverwritesDecision(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Submissions.Create(ctx, repositories.CreateSubmissionInput{
		UserID: "user_3", Email: "y@example.com", DisplayName: "Y",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repos.Submissions.Reject(ctx, created.ID, "admin_1", "wrong department"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	// An admin changing their mind approves over the rejection; the stale
	// reason must not linger
	approved, err := repos.Submissions.Approve(ctx, created.ID, "admin_2")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != models.SubmissionApproved {
		t.Fatalf("expected status approved, got %q", approved.Status)
	}
	if approved.RejectionReason != "" {
		t.Fatalf("rejection reason not cleared on re-approval: %q", approved.RejectionReason)
	}
	if approved.ReviewedBy != "admin_2" {
		t.Fatalf("expected reviewer admin_2, got %q", approved.ReviewedBy)
	}
}

func TestSubmissionReview_MissingID(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	_, err := repos.Submissions.Approve(ctx, "submission_missing", "admin_1")
	if !errors.Is(err, apperrors.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionUpdate_PartialMerge(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := newTestRepos()

	created, err := repos.Submissions.Create(ctx, repositories.CreateSubmissionInput{
		UserID: "user_4", Email: "z@example.com", DisplayName: "Z",
		CurrentCompany: "Old Corp", JobTitle: "Engineer",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	company := "New Corp"
	updated, err := repos.Submissions.Update(ctx, created.ID, repositories.SubmissionUpdate{
		CurrentCompany: &company,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CurrentCompany != "New Corp" {
		t.Fatalf("expected company updated, got %q", updated.CurrentCompany)
	}
	if updated.JobTitle != "Engineer" {
		t.Fatal("untouched fields must survive a partial update")
	}
}
