package models

// ReviewerSummary aggregates the comments left by one account
type ReviewerSummary struct {
	Reviewer     string `json:"reviewer" db:"reviewer"`
	Number       int    `json:"number" db:"number"`
	FirstComment string `json:"first_comment" db:"first_comment"`
}

// ReviewerColumns is the persisted column order of the reviewers table
var ReviewerColumns = []string{"reviewer", "number", "first_comment"}
