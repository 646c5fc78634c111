package models

// PostType discriminates the post tagged union
type PostType string

const (
	PostJob    PostType = "job"
	PostAdvice PostType = "advice"
)

// Post is one feed entry. The job-specific fields are meaningful only when
// Type is PostJob.
type Post struct {
	ID               string   `json:"id"`
	AuthorID         string   `json:"authorId"`
	AuthorName       string   `json:"authorName"`
	AuthorDepartment string   `json:"authorDepartment,omitempty"`
	Type             PostType `json:"type"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags"`
	Likes            int      `json:"likes"`
	Saves            int      `json:"saves"`
	Comments         int      `json:"comments"`
	CreatedAt        int64    `json:"createdAt"`
	UpdatedAt        int64    `json:"updatedAt"`

	// Job-specific fields
	Company         string `json:"company,omitempty"`
	Position        string `json:"position,omitempty"`
	Level           string `json:"level,omitempty"`
	Requirements    string `json:"requirements,omitempty"`
	SalaryRange     string `json:"salaryRange,omitempty"`
	ApplicationLink string `json:"applicationLink,omitempty"`
}
