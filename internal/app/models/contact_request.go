package models

// ContactStatus is the contact request lifecycle
type ContactStatus string

const (
	ContactPending  ContactStatus = "pending"
	ContactApproved ContactStatus = "approved"
	ContactRejected ContactStatus = "rejected"
)

// ContactRequest asks an alumnus for permission to get in touch.
// RespondedAt is set once the request leaves pending.
type ContactRequest struct {
	ID          string        `json:"id"`
	FromUserID  string        `json:"fromUserId"`
	ToUserID    string        `json:"toUserId"`
	Status      ContactStatus `json:"status"`
	Message     string        `json:"message,omitempty"`
	CreatedAt   int64         `json:"createdAt"`
	RespondedAt int64         `json:"respondedAt,omitempty"`
}
