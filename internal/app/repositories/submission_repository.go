package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
	"github.com/iiuc/alumnihub/internal/store"
)

// SubmissionRepository handles storage operations for alumni verification
// submissions
type SubmissionRepository struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(records *store.RecordStore, logger zerolog.Logger) *SubmissionRepository {
	return &SubmissionRepository{records: records, logger: logger}
}

// CreateSubmissionInput carries the caller-settable fields of a new submission
type CreateSubmissionInput struct {
	UserID         string
	Email          string
	DisplayName    string
	Department     string
	GraduationYear int
	CurrentCompany string
	JobTitle       string
	Bio            string
	Status         models.SubmissionStatus
	SubmittedBy    models.SubmittedBy
}

// SubmissionUpdate lists the fields a partial update may touch
type SubmissionUpdate struct {
	DisplayName    *string
	Department     *string
	GraduationYear *int
	CurrentCompany *string
	JobTitle       *string
	Bio            *string
	Status         *models.SubmissionStatus
}

// Create assigns an id and timestamps and persists the new submission
func (r *SubmissionRepository) Create(ctx context.Context, input CreateSubmissionInput) (*models.AlumniSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var submissions []models.AlumniSubmission
	if err := r.records.Load(ctx, store.CollectionSubmissions, &submissions); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.SubmissionPending
	}

	now := store.NowMillis()
	submission := models.AlumniSubmission{
		ID:             store.NewID("submission"),
		UserID:         input.UserID,
		Email:          input.Email,
		DisplayName:    input.DisplayName,
		Department:     input.Department,
		GraduationYear: input.GraduationYear,
		CurrentCompany: input.CurrentCompany,
		JobTitle:       input.JobTitle,
		Bio:            input.Bio,
		Status:         status,
		SubmittedBy:    input.SubmittedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	submissions = append(submissions, submission)
	if err := r.records.Save(ctx, store.CollectionSubmissions, submissions); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("submissionId", submission.ID).Msg("Submission created")
	return &submission, nil
}

// List returns all submissions, newest first. A non-empty status filters
// the result.
func (r *SubmissionRepository) List(ctx context.Context, status models.SubmissionStatus) ([]models.AlumniSubmission, error) {
	var submissions []models.AlumniSubmission
	if err := r.records.Load(ctx, store.CollectionSubmissions, &submissions); err != nil {
		return nil, err
	}

	if status != "" {
		filtered := submissions[:0]
		for _, s := range submissions {
			if s.Status == status {
				filtered = append(filtered, s)
			}
		}
		submissions = filtered
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt > submissions[j].CreatedAt
	})
	return submissions, nil
}

// GetByID returns the submission with the given id, or ErrSubmissionNotFound
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*models.AlumniSubmission, error) {
	var submissions []models.AlumniSubmission
	if err := r.records.Load(ctx, store.CollectionSubmissions, &submissions); err != nil {
		return nil, err
	}

	for i := range submissions {
		if submissions[i].ID == id {
			return &submissions[i], nil
		}
	}
	return nil, apperrors.ErrSubmissionNotFound
}

// Update merges the provided fields over the stored submission
func (r *SubmissionRepository) Update(ctx context.Context, id string, updates SubmissionUpdate) (*models.AlumniSubmission, error) {
	return r.mutate(ctx, id, func(s *models.AlumniSubmission) {
		if updates.DisplayName != nil {
			s.DisplayName = *updates.DisplayName
		}
		if updates.Department != nil {
			s.Department = *updates.Department
		}
		if updates.GraduationYear != nil {
			s.GraduationYear = *updates.GraduationYear
		}
		if updates.CurrentCompany != nil {
			s.CurrentCompany = *updates.CurrentCompany
		}
		if updates.JobTitle != nil {
			s.JobTitle = *updates.JobTitle
		}
		if updates.Bio != nil {
			s.Bio = *updates.Bio
		}
		if updates.Status != nil {
			s.Status = *updates.Status
		}
	})
}

// Approve marks the submission approved and records the reviewer. A second
// review overwrites the first; re-review is allowed so an admin can change a
// decision.
func (r *SubmissionRepository) Approve(ctx context.Context, id, reviewerID string) (*models.AlumniSubmission, error) {
	return r.mutate(ctx, id, func(s *models.AlumniSubmission) {
		s.Status = models.SubmissionApproved
		s.ReviewedBy = reviewerID
		s.RejectionReason = ""
	})
}

// Reject marks the submission rejected with the reviewer and reason
func (r *SubmissionRepository) Reject(ctx context.Context, id, reviewerID, reason string) (*models.AlumniSubmission, error) {
	return r.mutate(ctx, id, func(s *models.AlumniSubmission) {
		s.Status = models.SubmissionRejected
		s.ReviewedBy = reviewerID
		s.RejectionReason = reason
	})
}

func (r *SubmissionRepository) mutate(ctx context.Context, id string, apply func(*models.AlumniSubmission)) (*models.AlumniSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var submissions []models.AlumniSubmission
	if err := r.records.Load(ctx, store.CollectionSubmissions, &submissions); err != nil {
		return nil, err
	}

	for i := range submissions {
		if submissions[i].ID == id {
			apply(&submissions[i])
			submissions[i].UpdatedAt = store.NowMillis()
			if err := r.records.Save(ctx, store.CollectionSubmissions, submissions); err != nil {
				return nil, err
			}
			updated := submissions[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrSubmissionNotFound
}
