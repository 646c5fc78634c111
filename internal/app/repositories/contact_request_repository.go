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

// ContactRequestRepository handles storage operations for contact requests
type ContactRequestRepository struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewContactRequestRepository creates a new ContactRequestRepository
func NewContactRequestRepository(records *store.RecordStore, logger zerolog.Logger) *ContactRequestRepository {
	return &ContactRequestRepository{records: records, logger: logger}
}

// CreateContactRequestInput carries the caller-settable fields of a new
// contact request
type CreateContactRequestInput struct {
	FromUserID string
	ToUserID   string
	Message    string
}

// ContactRequestFilter narrows List results. Zero values match everything.
type ContactRequestFilter struct {
	ToUserID string
	Status   models.ContactStatus
}

// ContactRequestUpdate lists the fields a partial update may touch
type ContactRequestUpdate struct {
	Message *string
	Status  *models.ContactStatus
}

// Create assigns an id and timestamp and persists the new request as pending
func (r *ContactRequestRepository) Create(ctx context.Context, input CreateContactRequestInput) (*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []models.ContactRequest
	if err := r.records.Load(ctx, store.CollectionContactRequests, &requests); err != nil {
		return nil, err
	}

	request := models.ContactRequest{
		ID:         store.NewID("contact"),
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Status:     models.ContactPending,
		Message:    input.Message,
		CreatedAt:  store.NowMillis(),
	}

	requests = append(requests, request)
	if err := r.records.Save(ctx, store.CollectionContactRequests, requests); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("requestId", request.ID).Msg("Contact request created")
	return &request, nil
}

// List returns contact requests matching the filter, newest first
func (r *ContactRequestRepository) List(ctx context.Context, filter ContactRequestFilter) ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	if err := r.records.Load(ctx, store.CollectionContactRequests, &requests); err != nil {
		return nil, err
	}

	if filter.ToUserID != "" || filter.Status != "" {
		filtered := requests[:0]
		for _, req := range requests {
			if filter.ToUserID != "" && req.ToUserID != filter.ToUserID {
				continue
			}
			if filter.Status != "" && req.Status != filter.Status {
				continue
			}
			filtered = append(filtered, req)
		}
		requests = filtered
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
	return requests, nil
}

// GetByID returns the request with the given id, or ErrContactRequestNotFound
func (r *ContactRequestRepository) GetByID(ctx context.Context, id string) (*models.ContactRequest, error) {
	var requests []models.ContactRequest
	if err := r.records.Load(ctx, store.CollectionContactRequests, &requests); err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, apperrors.ErrContactRequestNotFound
}

// Update merges the provided fields over the stored request. A missing id
// leaves the collection untouched.
func (r *ContactRequestRepository) Update(ctx context.Context, id string, updates ContactRequestUpdate) (*models.ContactRequest, error) {
	return r.mutate(ctx, id, func(req *models.ContactRequest) {
		if updates.Message != nil {
			req.Message = *updates.Message
		}
		if updates.Status != nil {
			req.Status = *updates.Status
		}
	})
}

// Approve marks the request approved and stamps the response time
func (r *ContactRequestRepository) Approve(ctx context.Context, id string) (*models.ContactRequest, error) {
	return r.respond(ctx, id, models.ContactApproved)
}

// Reject marks the request rejected and stamps the response time
func (r *ContactRequestRepository) Reject(ctx context.Context, id string) (*models.ContactRequest, error) {
	return r.respond(ctx, id, models.ContactRejected)
}

func (r *ContactRequestRepository) respond(ctx context.Context, id string, status models.ContactStatus) (*models.ContactRequest, error) {
	return r.mutate(ctx, id, func(req *models.ContactRequest) {
		req.Status = status
		req.RespondedAt = store.NowMillis()
	})
}

func (r *ContactRequestRepository) mutate(ctx context.Context, id string, apply func(*models.ContactRequest)) (*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []models.ContactRequest
	if err := r.records.Load(ctx, store.CollectionContactRequests, &requests); err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].ID == id {
			apply(&requests[i])
			if err := r.records.Save(ctx, store.CollectionContactRequests, requests); err != nil {
				return nil, err
			}
			updated := requests[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrContactRequestNotFound
}
