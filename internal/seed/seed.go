// Package seed fills an empty store with demo content so a fresh install
// has something to render.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/app/repositories"
)

// CreateDemoData seeds a couple of posts and an approved alumni entry when
// the posts collection is empty. Existing data is left alone.
func CreateDemoData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	posts, err := repos.Posts.List(ctx, "")
	if err != nil {
		return err
	}
	if len(posts) > 0 {
		lgr.Debug().Int("posts", len(posts)).Msg("Store already has content, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")
	var finalErr error

	submission, err := repos.Submissions.Create(ctx, repositories.CreateSubmissionInput{
		UserID:         "user_demo_alumni",
		Email:          "tanvir.ahmed@example.com",
		DisplayName:    "Tanvir Ahmed",
		Department:     "Computer Science",
		GraduationYear: 2019,
		CurrentCompany: "BrainStation",
		JobTitle:       "Senior Software Engineer",
		SubmittedBy:    models.SubmittedByAdmin,
	})
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	} else {
		if _, err := repos.Submissions.Approve(ctx, submission.ID, "user_demo_admin"); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := repos.Posts.Create(ctx, repositories.CreatePostInput{
		AuthorID:         "user_demo_alumni",
		AuthorName:       "Tanvir Ahmed",
		AuthorDepartment: "Computer Science",
		Type:             models.PostJob,
		Title:            "Backend Engineer (Go)",
		Content:          "We are hiring backend engineers for our platform team. Remote friendly.",
		Tags:             []string{"remote", "backend", "go"},
		Company:          "BrainStation",
		Position:         "Backend Engineer",
		Level:            "Mid-Senior",
		SalaryRange:      "Negotiable",
	}); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := repos.Posts.Create(ctx, repositories.CreatePostInput{
		AuthorID:         "user_demo_alumni",
		AuthorName:       "Tanvir Ahmed",
		AuthorDepartment: "Computer Science",
		Type:             models.PostAdvice,
		Title:            "Preparing for your first technical interview",
		Content:          "Practice explaining your projects out loud. Interviewers care about how you think, not just the answer.",
		Tags:             []string{"career", "interview"},
	}); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr != nil {
		lgr.Error().Err(finalErr).Msg("Demo seed finished with errors")
	}
	return finalErr
}
