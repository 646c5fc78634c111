package repositories

import (
	"github.com/rs/zerolog"

	"github.com/iiuc/alumnihub/internal/store"
)

// Repositories holds all the repository instances
type Repositories struct {
	Posts           *PostRepository
	Submissions     *SubmissionRepository
	ContactRequests *ContactRequestRepository
	Reports         *ReportRepository
	Messages        *MessageRepository
}

// NewRepositories initializes all repositories over one record store
func NewRepositories(records *store.RecordStore, logger zerolog.Logger) *Repositories {
	return &Repositories{
		Posts:           NewPostRepository(records, logger),
		Submissions:     NewSubmissionRepository(records, logger),
		ContactRequests: NewContactRequestRepository(records, logger),
		Reports:         NewReportRepository(records, logger),
		Messages:        NewMessageRepository(records, logger),
	}
}
