package models

// SubmissionStatus is the alumni verification lifecycle
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// SubmittedBy identifies who filed the submission
type SubmittedBy string

const (
	SubmittedByGeneral SubmittedBy = "general"
	SubmittedByAdmin   SubmittedBy = "admin"
)

// AlumniSubmission is a verification request for alumni status.
// ReviewedBy is set once the submission leaves pending; RejectionReason is
// set only on rejected submissions.
type AlumniSubmission struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	Email           string           `json:"email"`
	DisplayName     string           `json:"displayName"`
	Department      string           `json:"department"`
	GraduationYear  int              `json:"graduationYear"`
	CurrentCompany  string           `json:"currentCompany,omitempty"`
	JobTitle        string           `json:"jobTitle,omitempty"`
	Bio             string           `json:"bio,omitempty"`
	Status          SubmissionStatus `json:"status"`
	SubmittedBy     SubmittedBy      `json:"submittedBy"`
	ReviewedBy      string           `json:"reviewedBy,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	CreatedAt       int64            `json:"createdAt"`
	UpdatedAt       int64            `json:"updatedAt"`
}
