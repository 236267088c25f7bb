package models

// AuthorSummary aggregates the merged pull requests of one author
type AuthorSummary struct {
	Author        string `json:"author" db:"author"`
	NumberPRs     int    `json:"number_prs" db:"number_prs"`
	NumberCommits int    `json:"number_commits" db:"number_commits"`
	FirstMerge    string `json:"first_merge" db:"first_merge"`
}

// AuthorColumns is the persisted column order of the authors table
var AuthorColumns = []string{"author", "number_prs", "number_commits", "first_merge"}
