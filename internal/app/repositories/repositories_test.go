package repositories_test

import (
	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/app/repositories"
	"github.com/iiuc/alumnihub/internal/kvstore"
	"github.com/iiuc/alumnihub/internal/store"
)

// newTestRepos builds the repositories over a fresh in-memory store
func newTestRepos() (*repositories.Repositories, *kvstore.MemoryStore, *store.RecordStore) {
	kv := kvstore.NewMemoryStore()
	records := store.NewRecordStore(kv, "", zerolog.Nop())
	return repositories.NewRepositories(records, zerolog.Nop()), kv, records
}
