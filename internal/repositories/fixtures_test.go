package repositories

import (
	"github.com/alimgiray/repostats/internal/models"
)

// sampleTables exercises quoting, empty cells and row order in every store
func sampleTables() *models.Tables {
	return &models.Tables{
		Comments: []*models.Comment{
			{Number: 12, Author: "bob", Date: "2019-02-01T00:00:00Z"},
			{Number: 3, Author: "alice", Date: "2018-01-01T08:30:00Z"},
			{Number: 12, Author: "bob", Date: "2019-02-02T00:00:00Z"},
		},
		PullRequests: []*models.PullRequest{
			{Number: 12, Title: "wallet: fix \"quoted\", comma", Author: "alice", Opened: "2019-01-01T00:00:00Z", Commits: 2, Comments: 2, Labels: "Wallet;needs rebase", State: models.PullRequestStateMerged, Closed: "2019-02-10T00:00:00Z"},
			{Number: 3, Title: "multi\nline title", Author: "carol", Opened: "2018-01-01T00:00:00Z", Commits: 1, Comments: 1, Labels: "", State: models.PullRequestStateOpen, Closed: ""},
		},
		Authors: []*models.AuthorSummary{
			{Author: "alice", NumberPRs: 1, NumberCommits: 2, FirstMerge: "2019-01-01T00:00:00Z"},
		},
		Reviewers: []*models.ReviewerSummary{
			{Reviewer: "bob", Number: 2, FirstComment: "2019-02-01T00:00:00Z"},
			{Reviewer: "alice", Number: 1, FirstComment: "2018-01-01T08:30:00Z"},
		},
	}
}
