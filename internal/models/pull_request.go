package models

import (
	"strings"
)

// PullRequestState is the derived state of a pull request
type PullRequestState string

const (
	PullRequestStateOpen   PullRequestState = "open"
	PullRequestStateClosed PullRequestState = "closed"
	PullRequestStateMerged PullRequestState = "merged"
)

// LabelSeparator joins label names in the labels column
const LabelSeparator = ";"

// PullRequest represents a pull request targeting the canonical integration branch
type PullRequest struct {
	Number   int              `json:"number" db:"number"`
	Title    string           `json:"title" db:"title"`
	Author   string           `json:"author" db:"author"`
	Opened   string           `json:"opened" db:"opened"`
	Commits  int              `json:"commits" db:"commits"`
	Comments int              `json:"comments" db:"comments"`
	Labels   string           `json:"labels" db:"labels"`
	State    PullRequestState `json:"state" db:"state"`
	Closed   string           `json:"closed" db:"closed"`
}

// PullRequestColumns is the persisted column order of the pull requests table
var PullRequestColumns = []string{"number", "title", "author", "opened", "commits", "comments", "labels", "state", "closed"}

// LabelList splits the stored labels back into names
func (p *PullRequest) LabelList() []string {
	if p.Labels == "" {
		return nil
	}
	return strings.Split(p.Labels, LabelSeparator)
}

// Components returns the allow-listed component labels of the pull request
func (p *PullRequest) Components() []string {
	var components []string
	for _, label := range p.LabelList() {
		if IsComponent(label) {
			components = append(components, label)
		}
	}
	return components
}

// IsMerged checks if the pull request was merged
func (p *PullRequest) IsMerged() bool {
	return p.State == PullRequestStateMerged
}

// IsClosed checks if the pull request was closed without being merged
func (p *PullRequest) IsClosed() bool {
	return p.State == PullRequestStateClosed
}

// OpenedIn checks if the pull request was opened in the given year
func (p *PullRequest) OpenedIn(year int) bool {
	return InYear(p.Opened, year)
}

// MergedIn checks if the pull request was merged in the given year
func (p *PullRequest) MergedIn(year int) bool {
	return p.IsMerged() && InYear(p.Closed, year)
}

// ClosedIn checks if the pull request was closed unmerged in the given year
func (p *PullRequest) ClosedIn(year int) bool {
	return p.IsClosed() && InYear(p.Closed, year)
}
