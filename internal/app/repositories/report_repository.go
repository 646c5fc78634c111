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

// ReportRepository handles storage operations for moderation reports
type ReportRepository struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(records *store.RecordStore, logger zerolog.Logger) *ReportRepository {
	return &ReportRepository{records: records, logger: logger}
}

// CreateReportInput carries the caller-settable fields of a new report.
// One of ReportedUserID and ReportedPostID should be set.
type CreateReportInput struct {
	ReportedUserID string
	ReportedPostID string
	ReportedBy     string
	Reason         string
	Description    string
}

// ReportUpdate lists the fields a partial update may touch
type ReportUpdate struct {
	Reason      *string
	Description *string
	Status      *models.ReportStatus
	Action      *string
}

// Create assigns an id and timestamp and persists the new report as pending
func (r *ReportRepository) Create(ctx context.Context, input CreateReportInput) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reports []models.Report
	if err := r.records.Load(ctx, store.CollectionReports, &reports); err != nil {
		return nil, err
	}

	report := models.Report{
		ID:             store.NewID("report"),
		ReportedUserID: input.ReportedUserID,
		ReportedPostID: input.ReportedPostID,
		ReportedBy:     input.ReportedBy,
		Reason:         input.Reason,
		Description:    input.Description,
		Status:         models.ReportPending,
		CreatedAt:      store.NowMillis(),
	}

	reports = append(reports, report)
	if err := r.records.Save(ctx, store.CollectionReports, reports); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("reportId", report.ID).Msg("Report created")
	return &report, nil
}

// List returns all reports, newest first. A non-empty status filters the
// result.
func (r *ReportRepository) List(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	var reports []models.Report
	if err := r.records.Load(ctx, store.CollectionReports, &reports); err != nil {
		return nil, err
	}

	if status != "" {
		filtered := reports[:0]
		for _, rep := range reports {
			if rep.Status == status {
				filtered = append(filtered, rep)
			}
		}
		reports = filtered
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt > reports[j].CreatedAt
	})
	return reports, nil
}

// GetByID returns the report with the given id, or ErrReportNotFound
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var reports []models.Report
	if err := r.records.Load(ctx, store.CollectionReports, &reports); err != nil {
		return nil, err
	}

	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

// Update merges the provided fields over the stored report. A missing id
// leaves the collection untouched.
func (r *ReportRepository) Update(ctx context.Context, id string, updates ReportUpdate) (*models.Report, error) {
	return r.mutate(ctx, id, func(rep *models.Report) {
		if updates.Reason != nil {
			rep.Reason = *updates.Reason
		}
		if updates.Description != nil {
			rep.Description = *updates.Description
		}
		if updates.Status != nil {
			rep.Status = *updates.Status
		}
		if updates.Action != nil {
			rep.Action = *updates.Action
		}
	})
}

// Resolve marks the report resolved with the action the admin took and
// stamps the resolution time
func (r *ReportRepository) Resolve(ctx context.Context, id, action string) (*models.Report, error) {
	return r.close(ctx, id, models.ReportResolved, action)
}

// Dismiss marks the report dismissed and stamps the resolution time
func (r *ReportRepository) Dismiss(ctx context.Context, id string) (*models.Report, error) {
	return r.close(ctx, id, models.ReportDismissed, "")
}

func (r *ReportRepository) close(ctx context.Context, id string, status models.ReportStatus, action string) (*models.Report, error) {
	return r.mutate(ctx, id, func(rep *models.Report) {
		rep.Status = status
		rep.Action = action
		rep.ResolvedAt = store.NowMillis()
	})
}

func (r *ReportRepository) mutate(ctx context.Context, id string, apply func(*models.Report)) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reports []models.Report
	if err := r.records.Load(ctx, store.CollectionReports, &reports); err != nil {
		return nil, err
	}

	for i := range reports {
		if reports[i].ID == id {
			apply(&reports[i])
			if err := r.records.Save(ctx, store.CollectionReports, reports); err != nil {
				return nil, err
			}
			updated := reports[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}
