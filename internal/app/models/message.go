package models

// Message is one direct message inside a conversation. Conversations group
// messages by ConversationID; the planned remote schema nests them under
// messages/{conversationId}/messages.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Content        string `json:"content"`
	Timestamp      int64  `json:"timestamp"`
	Read           bool   `json:"read"`
}
