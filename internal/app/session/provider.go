// Package session holds the single current-user identity in process memory
// and mirrors it to the device store for restart continuity.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/models"
	"github.com/iiuc/alumnihub/internal/kvstore"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
	"github.com/iiuc/alumnihub/internal/pkg/auth"
	"github.com/iiuc/alumnihub/internal/pkg/validation"
	"github.com/iiuc/alumnihub/internal/store"
)

// Fixed storage keys of the persisted session. UserKey matches the key the
// original records were written under.
const (
	UserKey  = "@auth_user"
	TokenKey = "@auth_token"
)

// Mode selects how credentials are handled
type Mode string

const (
	// ModeMock fabricates a session from whatever is typed; the password
	// is ignored entirely. Kept for parity with the legacy behavior and
	// for demos.
	ModeMock Mode = "mock"
	// ModeLocal verifies credentials against the local credential store.
	ModeLocal Mode = "local"
)

// Provider is the session/identity provider: one in-memory user slot,
// mirrored to the key-value store.
type Provider struct {
	kv     kvstore.Store
	creds  *CredentialStore
	tokens *auth.TokenService
	mode   Mode
	logger zerolog.Logger

	mu      sync.Mutex
	current *models.User
}

// NewProvider creates a session provider. creds may be nil when mode is
// ModeMock.
func NewProvider(kv kvstore.Store, creds *CredentialStore, tokens *auth.TokenService, mode Mode, logger zerolog.Logger) *Provider {
	return &Provider{
		kv:     kv,
		creds:  creds,
		tokens: tokens,
		mode:   mode,
		logger: logger,
	}
}

// Current returns the in-memory session user, if any
func (p *Provider) Current() (*models.User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil, false
	}
	user := *p.current
	return &user, true
}

// Restore loads the persisted session on process start. Absent or malformed
// state leaves no current user and never fails the startup sequence. A
// persisted token that fails validation clears the session.
func (p *Provider) Restore(ctx context.Context) {
	raw, ok, err := p.kv.Get(ctx, UserKey)
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to restore user session")
		return
	}
	if !ok || raw == "" {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		p.logger.Error().Err(err).Msg("Malformed persisted session, ignoring")
		return
	}

	// Sessions written before tokens existed restore without one.
	if token, ok, err := p.kv.Get(ctx, TokenKey); err == nil && ok && token != "" {
		if _, err := p.tokens.Validate(token); err != nil {
			p.logger.Warn().Err(err).Msg("Persisted session token rejected, clearing session")
			p.clearPersisted(ctx)
			return
		}
	}

	p.mu.Lock()
	p.current = &user
	p.mu.Unlock()
	p.logger.Info().Str("uid", user.UID).Msg("Session restored")
}

// SignUp creates a new account and opens a session for it. In mock mode the
// password is ignored and no account record exists anywhere.
func (p *Provider) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	now := store.NowMillis()
	user := models.User{
		Email:       email,
		DisplayName: displayName,
		Role:        models.RoleGeneral,
		Status:      models.UserActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch p.mode {
	case ModeLocal:
		// Mock mode skips validation, matching the legacy behavior
		if err := validation.ValidateEmail(email); err != nil {
			return nil, err
		}
		if err := validation.ValidatePassword(password); err != nil {
			return nil, err
		}
		credential, err := p.creds.Register(ctx, email, password, displayName)
		if err != nil {
			return nil, err
		}
		user.UID = credential.UID
	default:
		user.UID = store.NewID("user")
	}

	if err := p.open(ctx, &user); err != nil {
		return nil, err
	}
	p.logger.Info().Str("uid", user.UID).Msg("Signed up")
	return &user, nil
}

// Login opens a session for an existing account. In mock mode any non-empty
// credentials succeed and the display name is derived from the email
// local-part.
func (p *Provider) Login(ctx context.Context, email, password string) (*models.User, error) {
	now := store.NowMillis()
	var user models.User

	switch p.mode {
	case ModeLocal:
		if err := validation.ValidateLogin(email, password); err != nil {
			return nil, err
		}
		credential, err := p.creds.Verify(ctx, email, password)
		if err != nil {
			return nil, err
		}
		user = models.User{
			UID:         credential.UID,
			Email:       credential.Email,
			DisplayName: credential.DisplayName,
			Role:        models.RoleGeneral,
			Status:      models.UserActive,
			CreatedAt:   credential.CreatedAt,
			UpdatedAt:   now,
		}
	default:
		user = models.User{
			UID:         store.NewID("user"),
			Email:       email,
			DisplayName: strings.SplitN(email, "@", 2)[0],
			Role:        models.RoleGeneral,
			Status:      models.UserActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	if err := p.open(ctx, &user); err != nil {
		return nil, err
	}
	p.logger.Info().Str("uid", user.UID).Msg("Logged in")
	return &user, nil
}

// Logout clears the in-memory session and removes the persisted values
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.clearPersisted(ctx)
	p.logger.Info().Msg("Logged out")
	return nil
}

// UpdateRole changes the session user's role. Without a session it returns
// ErrNoSession and touches nothing.
func (p *Provider) UpdateRole(ctx context.Context, role models.UserRole) (*models.User, error) {
	return p.mutate(ctx, func(u *models.User) {
		u.Role = role
	})
}

// ProfileUpdate lists the profile fields a partial update may touch
type ProfileUpdate struct {
	DisplayName    *string
	Department     *string
	GraduationYear *int
	ProfilePhoto   *string
	Bio            *string
	CurrentCompany *string
	JobTitle       *string
}

// UpdateProfile merges the provided fields over the session user. Without a
// session it returns ErrNoSession and touches nothing.
func (p *Provider) UpdateProfile(ctx context.Context, updates ProfileUpdate) (*models.User, error) {
	return p.mutate(ctx, func(u *models.User) {
		if updates.DisplayName != nil {
			u.DisplayName = *updates.DisplayName
		}
		if updates.Department != nil {
			u.Department = *updates.Department
		}
		if updates.GraduationYear != nil {
			u.GraduationYear = *updates.GraduationYear
		}
		if updates.ProfilePhoto != nil {
			u.ProfilePhoto = *updates.ProfilePhoto
		}
		if updates.Bio != nil {
			u.Bio = *updates.Bio
		}
		if updates.CurrentCompany != nil {
			u.CurrentCompany = *updates.CurrentCompany
		}
		if updates.JobTitle != nil {
			u.JobTitle = *updates.JobTitle
		}
	})
}

func (p *Provider) mutate(ctx context.Context, apply func(*models.User)) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil, apperrors.ErrNoSession
	}

	user := *p.current
	apply(&user)
	user.UpdatedAt = store.NowMillis()

	if err := p.persist(ctx, &user); err != nil {
		return nil, err
	}

	p.current = &user
	updated := user
	return &updated, nil
}

// open makes user the current session and persists it with a fresh token
func (p *Provider) open(ctx context.Context, user *models.User) error {
	if err := p.persist(ctx, user); err != nil {
		return err
	}

	token, err := p.tokens.Generate(user.UID, user.Email, string(user.Role))
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, TokenKey, token); err != nil {
		p.logger.Error().Err(err).Msg("Failed to persist session token")
		return err
	}

	p.mu.Lock()
	p.current = user
	p.mu.Unlock()
	return nil
}

func (p *Provider) persist(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, UserKey, string(data)); err != nil {
		p.logger.Error().Err(err).Msg("Failed to persist session")
		return err
	}
	return nil
}

func (p *Provider) clearPersisted(ctx context.Context) {
	if err := p.kv.Delete(ctx, UserKey); err != nil {
		p.logger.Error().Err(err).Msg("Failed to remove persisted session")
	}
	if err := p.kv.Delete(ctx, TokenKey); err != nil {
		p.logger.Error().Err(err).Msg("Failed to remove persisted session token")
	}
}
