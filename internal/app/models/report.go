package models

// ReportStatus is the moderation report lifecycle
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// Report flags a user or a post for admin review. One of ReportedUserID and
// ReportedPostID is expected to be set; the store does not enforce it.
type Report struct {
	ID             string       `json:"id"`
	ReportedUserID string       `json:"reportedUserId,omitempty"`
	ReportedPostID string       `json:"reportedPostId,omitempty"`
	ReportedBy     string       `json:"reportedBy"`
	Reason         string       `json:"reason"`
	Description    string       `json:"description"`
	Status         ReportStatus `json:"status"`
	Action         string       `json:"action,omitempty"`
	CreatedAt      int64        `json:"createdAt"`
	ResolvedAt     int64        `json:"resolvedAt,omitempty"`
}
