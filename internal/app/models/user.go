package models

// UserRole defines the user role
type UserRole string

const (
	RoleGeneral UserRole = "general"
	RoleAlumni  UserRole = "alumni"
	RoleAdmin   UserRole = "admin"
)

// UserStatus defines the user account status
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
	UserPending UserStatus = "pending"
)

// User is the single current-user identity held by the session provider and
// mirrored to the device store. Role and status are display inputs for the
// presentation layer, not an enforcement boundary.
type User struct {
	UID            string     `json:"uid"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"displayName"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	Department     string     `json:"department,omitempty"`
	GraduationYear int        `json:"graduationYear,omitempty"`
	ProfilePhoto   string     `json:"profilePhoto,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	CurrentCompany string     `json:"currentCompany,omitempty"`
	JobTitle       string     `json:"jobTitle,omitempty"`
	CreatedAt      int64      `json:"createdAt"`
	UpdatedAt      int64      `json:"updatedAt"`
}
