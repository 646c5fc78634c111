package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
	"github.com/iiuc/alumnihub/internal/store"
)

// PostRepository handles storage operations for feed posts. Every mutation
// is a full read-modify-write of the posts collection, serialized behind mu
// so two rapid mutations cannot stomp each other's write.
type PostRepository struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(records *store.RecordStore, logger zerolog.Logger) *PostRepository {
	return &PostRepository{records: records, logger: logger}
}

// CreatePostInput carries the caller-settable fields of a new post
type CreatePostInput struct {
	AuthorID         string
	AuthorName       string
	AuthorDepartment string
	Type             models.PostType
	Title            string
	Content          string
	Tags             []string

	// Job-specific fields
	Company         string
	Position        string
	Level           string
	Requirements    string
	SalaryRange     string
	ApplicationLink string
}

// PostUpdate lists the fields a partial update may touch; nil fields are
// left unchanged
type PostUpdate struct {
	Title            *string
	Content          *string
	Tags             []string
	AuthorDepartment *string
	Likes            *int
	Saves            *int
	Comments         *int
	Company          *string
	Position         *string
	Level            *string
	Requirements     *string
	SalaryRange      *string
	ApplicationLink  *string
}

// Create assigns an id and timestamps, zeroes the counters and persists the
// new post.
func (r *PostRepository) Create(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return nil, err
	}

	now := store.NowMillis()
	post := models.Post{
		ID:               store.NewID("post"),
		AuthorID:         input.AuthorID,
		AuthorName:       input.AuthorName,
		AuthorDepartment: input.AuthorDepartment,
		Type:             input.Type,
		Title:            input.Title,
		Content:          input.Content,
		Tags:             input.Tags,
		Likes:            0,
		Saves:            0,
		Comments:         0,
		CreatedAt:        now,
		UpdatedAt:        now,
		Company:          input.Company,
		Position:         input.Position,
		Level:            input.Level,
		Requirements:     input.Requirements,
		SalaryRange:      input.SalaryRange,
		ApplicationLink:  input.ApplicationLink,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	posts = append(posts, post)
	if err := r.records.Save(ctx, store.CollectionPosts, posts); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("postId", post.ID).Str("type", string(post.Type)).Msg("Post created")
	return &post, nil
}

// List returns all posts, newest first. A non-empty postType filters the
// result to that type.
func (r *PostRepository) List(ctx context.Context, postType models.PostType) ([]models.Post, error) {
	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return nil, err
	}

	if postType != "" {
		filtered := posts[:0]
		for _, p := range posts {
			if p.Type == postType {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts, nil
}

// GetByID returns the post with the given id, or ErrPostNotFound
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

// Update merges the provided fields over the stored post and forces
// UpdatedAt forward. A missing id leaves the collection untouched.
func (r *PostRepository) Update(ctx context.Context, id string, updates PostUpdate) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return nil, err
	}

	index := -1
	for i := range posts {
		if posts[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.ErrPostNotFound
	}

	p := &posts[index]
	if updates.Title != nil {
		p.Title = *updates.Title
	}
	if updates.Content != nil {
		p.Content = *updates.Content
	}
	if updates.Tags != nil {
		p.Tags = updates.Tags
	}
	if updates.AuthorDepartment != nil {
		p.AuthorDepartment = *updates.AuthorDepartment
	}
	if updates.Likes != nil {
		p.Likes = *updates.Likes
	}
	if updates.Saves != nil {
		p.Saves = *updates.Saves
	}
	if updates.Comments != nil {
		p.Comments = *updates.Comments
	}
	if updates.Company != nil {
		p.Company = *updates.Company
	}
	if updates.Position != nil {
		p.Position = *updates.Position
	}
	if updates.Level != nil {
		p.Level = *updates.Level
	}
	if updates.Requirements != nil {
		p.Requirements = *updates.Requirements
	}
	if updates.SalaryRange != nil {
		p.SalaryRange = *updates.SalaryRange
	}
	if updates.ApplicationLink != nil {
		p.ApplicationLink = *updates.ApplicationLink
	}
	p.UpdatedAt = store.NowMillis()

	if err := r.records.Save(ctx, store.CollectionPosts, posts); err != nil {
		return nil, err
	}

	updated := *p
	return &updated, nil
}

// IncrementLikes bumps the like counter by one. The read-modify-write runs
// under the repository mutex, so concurrent bumps all land.
func (r *PostRepository) IncrementLikes(ctx context.Context, id string) (*models.Post, error) {
	return r.increment(ctx, id, func(p *models.Post) { p.Likes++ })
}

// IncrementSaves bumps the save counter by one
func (r *PostRepository) IncrementSaves(ctx context.Context, id string) (*models.Post, error) {
	return r.increment(ctx, id, func(p *models.Post) { p.Saves++ })
}

// IncrementComments bumps the comment counter by one
func (r *PostRepository) IncrementComments(ctx context.Context, id string) (*models.Post, error) {
	return r.increment(ctx, id, func(p *models.Post) { p.Comments++ })
}

func (r *PostRepository) increment(ctx context.Context, id string, bump func(*models.Post)) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			bump(&posts[i])
			posts[i].UpdatedAt = store.NowMillis()
			if err := r.records.Save(ctx, store.CollectionPosts, posts); err != nil {
				return nil, err
			}
			updated := posts[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

// Delete filters the id out of the collection and persists the rest. Per the
// storage contract it reports success even when the id never existed.
func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []models.Post
	if err := r.records.Load(ctx, store.CollectionPosts, &posts); err != nil {
		return false, err
	}

	remaining := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if err := r.records.Save(ctx, store.CollectionPosts, remaining); err != nil {
		return false, err
	}

	r.logger.Debug().Str("postId", id).Msg("Post deleted")
	return true, nil
}

// Search returns posts whose title, content or any tag contains the query,
// case-insensitively, in the same order as List.
func (r *PostRepository) Search(ctx context.Context, query string, postType models.PostType) ([]models.Post, error) {
	posts, err := r.List(ctx, postType)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	matches := posts[:0]
	for _, p := range posts {
		if postMatches(p, lowerQuery) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func postMatches(p models.Post, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
