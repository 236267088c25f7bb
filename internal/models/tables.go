package models

// Tables is one snapshot of the extracted statistics tables
type Tables struct {
	Comments     []*Comment
	PullRequests []*PullRequest
	Authors      []*AuthorSummary
	Reviewers    []*ReviewerSummary
}

// NewTables creates an empty snapshot
func NewTables() *Tables {
	return &Tables{
		Comments:     []*Comment{},
		PullRequests: []*PullRequest{},
		Authors:      []*AuthorSummary{},
		Reviewers:    []*ReviewerSummary{},
	}
}
