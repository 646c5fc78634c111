// Package store implements the record store convention: each named
// collection is one JSON array persisted as a whole under a prefixed key in
// the underlying key-value store.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/kvstore"
	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
)

// DefaultPrefix is the application namespace the original records live under.
const DefaultPrefix = "@alumni_app_"

// Collection names
const (
	CollectionPosts           = "posts"
	CollectionSubmissions     = "submissions"
	CollectionContactRequests = "contact_requests"
	CollectionReports         = "reports"
	CollectionMessages        = "messages"
	CollectionCredentials     = "credentials"
)

// RecordStore persists whole collections of JSON records. There are no
// transactions across collection keys; a Save replaces exactly one key.
type RecordStore struct {
	kv     kvstore.Store
	prefix string
	logger zerolog.Logger
}

// NewRecordStore creates a RecordStore over kv. An empty prefix falls back
// to DefaultPrefix.
func NewRecordStore(kv kvstore.Store, prefix string, logger zerolog.Logger) *RecordStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RecordStore{kv: kv, prefix: prefix, logger: logger}
}

// Key returns the storage key of a collection
func (s *RecordStore) Key(collection string) string {
	return s.prefix + collection
}

// Load reads a whole collection into dest, which must be a pointer to a
// slice. An absent key leaves dest empty and is not an error. Storage and
// decode faults are logged and returned wrapped in ErrStoreUnavailable so
// callers can tell a failed read from a truly empty collection.
func (s *RecordStore) Load(ctx context.Context, collection string, dest any) error {
	raw, ok, err := s.kv.Get(ctx, s.Key(collection))
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("Failed to read collection")
		return fmt.Errorf("%w: read %s: %w", apperrors.ErrStoreUnavailable, collection, err)
	}
	if !ok || raw == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("Failed to decode collection")
		return fmt.Errorf("%w: decode %s: %w", apperrors.ErrStoreUnavailable, collection, err)
	}
	return nil
}

// Save serializes src and replaces the collection in a single key write.
func (s *RecordStore) Save(ctx context.Context, collection string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("Failed to encode collection")
		return fmt.Errorf("%w: encode %s: %w", apperrors.ErrStoreUnavailable, collection, err)
	}

	if err := s.kv.Set(ctx, s.Key(collection), string(data)); err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("Failed to write collection")
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStoreUnavailable, collection, err)
	}
	return nil
}
