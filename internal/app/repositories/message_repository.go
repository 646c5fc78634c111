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

// MessageRepository handles storage operations for direct messages. All
// conversations share one collection; the remote schema will split them
// into per-conversation subcollections.
type MessageRepository struct {
	records *store.RecordStore
	logger  zerolog.Logger
	mu      sync.Mutex
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(records *store.RecordStore, logger zerolog.Logger) *MessageRepository {
	return &MessageRepository{records: records, logger: logger}
}

// SendMessageInput carries the caller-settable fields of a new message
type SendMessageInput struct {
	ConversationID string
	SenderID       string
	SenderName     string
	Content        string
}

// Send assigns an id and timestamp and persists the new message as unread
func (r *MessageRepository) Send(ctx context.Context, input SendMessageInput) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var messages []models.Message
	if err := r.records.Load(ctx, store.CollectionMessages, &messages); err != nil {
		return nil, err
	}

	message := models.Message{
		ID:             store.NewID("message"),
		ConversationID: input.ConversationID,
		SenderID:       input.SenderID,
		SenderName:     input.SenderName,
		Content:        input.Content,
		Timestamp:      store.NowMillis(),
		Read:           false,
	}

	messages = append(messages, message)
	if err := r.records.Save(ctx, store.CollectionMessages, messages); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("messageId", message.ID).Str("conversationId", message.ConversationID).Msg("Message sent")
	return &message, nil
}

// ListConversation returns a conversation's messages in chronological order
func (r *MessageRepository) ListConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.records.Load(ctx, store.CollectionMessages, &messages); err != nil {
		return nil, err
	}

	conversation := messages[:0]
	for _, m := range messages {
		if m.ConversationID == conversationID {
			conversation = append(conversation, m)
		}
	}

	sort.SliceStable(conversation, func(i, j int) bool {
		return conversation[i].Timestamp < conversation[j].Timestamp
	})
	return conversation, nil
}

// MarkRead flags the message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var messages []models.Message
	if err := r.records.Load(ctx, store.CollectionMessages, &messages); err != nil {
		return nil, err
	}

	for i := range messages {
		if messages[i].ID == id {
			messages[i].Read = true
			if err := r.records.Save(ctx, store.CollectionMessages, messages); err != nil {
				return nil, err
			}
			updated := messages[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrMessageNotFound
}

// UnreadCount counts the messages in a conversation the given user has not
// read yet (messages sent by others)
func (r *MessageRepository) UnreadCount(ctx context.Context, conversationID, userID string) (int, error) {
	messages, err := r.ListConversation(ctx, conversationID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range messages {
		if !m.Read && m.SenderID != userID {
			count++
		}
	}
	return count, nil
}
