package session

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
	"github.com/iiuc/alumnihub/internal/pkg/auth"
	"github.com/iiuc/alumnihub/internal/store"
)

// Credential is one stored sign-up record for local credential verification
type Credential struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	DisplayName  string `json:"displayName"`
	CreatedAt    int64  `json:"createdAt"`
}

// CredentialStore keeps bcrypt-hashed sign-up credentials in the record
// store. It backs the local auth mode; the mock mode never touches it.
type CredentialStore struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewCredentialStore creates a new CredentialStore
func NewCredentialStore(records *store.RecordStore, logger zerolog.Logger) *CredentialStore {
	return &CredentialStore{records: records, logger: logger}
}

// Register stores a new credential. The email must not be registered yet.
func (s *CredentialStore) Register(ctx context.Context, email, password, displayName string) (*Credential, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	var credentials []Credential
	if err := s.records.Load(ctx, store.CollectionCredentials, &credentials); err != nil {
		return nil, err
	}

	for _, c := range credentials {
		if c.Email == email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	credential := Credential{
		UID:          store.NewID("user"),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    store.NowMillis(),
	}

	credentials = append(credentials, credential)
	if err := s.records.Save(ctx, store.CollectionCredentials, credentials); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("uid", credential.UID).Msg("Credential registered")
	return &credential, nil
}

// Verify checks email and password against the stored credential. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *CredentialStore) Verify(ctx context.Context, email, password string) (*Credential, error) {
	email = normalizeEmail(email)

	var credentials []Credential
	if err := s.records.Load(ctx, store.CollectionCredentials, &credentials); err != nil {
		return nil, err
	}

	for i := range credentials {
		if credentials[i].Email == email {
			if !auth.CheckPassword(credentials[i].PasswordHash, password) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &credentials[i], nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
