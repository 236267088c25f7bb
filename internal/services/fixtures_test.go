package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/stretchr/testify/require"
)

const testBranch = "bitcoin:master"

// exportTree writes issue-tracker mirror files into a temporary directory
type exportTree struct {
	t    *testing.T
	root string
}

func newExportTree(t *testing.T) *exportTree {
	t.Helper()
	return &exportTree{t: t, root: t.TempDir()}
}

func (e *exportTree) bucket(bucket int) string {
	dir := filepath.Join(e.root, "issues", fmt.Sprintf("%dxx", bucket))
	require.NoError(e.t, os.MkdirAll(dir, 0755))
	return dir
}

func (e *exportTree) write(number int, suffix string, v interface{}) {
	e.t.Helper()
	data, err := json.Marshal(v)
	require.NoError(e.t, err)
	path := filepath.Join(e.bucket(number/100), fmt.Sprintf("%d-%s.json", number, suffix))
	require.NoError(e.t, os.WriteFile(path, data, 0644))
}

func (e *exportTree) writeRaw(number int, suffix, content string) {
	e.t.Helper()
	path := filepath.Join(e.bucket(number/100), fmt.Sprintf("%d-%s.json", number, suffix))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
}

type testComment struct {
	login string // empty means a deleted account
	date  string
}

func (e *exportTree) comments(number int, comments ...testComment) {
	e.t.Helper()
	records := make([]map[string]interface{}, 0, len(comments))
	for _, c := range comments {
		var user interface{}
		if c.login != "" {
			user = map[string]string{"login": c.login}
		}
		records = append(records, map[string]interface{}{
			"user":       user,
			"created_at": c.date,
			"body":       "comment",
		})
	}
	e.write(number, "comments", records)
}

type testPR struct {
	author  string
	title   string
	opened  string
	closed  string
	commits int
	labels  []string
	merged  bool
	state   string
	base    string
}

func (e *exportTree) pullRequest(number int, pr testPR) {
	e.t.Helper()
	labels := make([]map[string]string, 0, len(pr.labels))
	for _, l := range pr.labels {
		labels = append(labels, map[string]string{"name": l})
	}
	if pr.base == "" {
		pr.base = testBranch
	}
	if pr.state == "" {
		pr.state = "open"
		if pr.merged || pr.closed != "" {
			pr.state = "closed"
		}
	}
	if pr.title == "" {
		pr.title = fmt.Sprintf("PR %d", number)
	}
	var closedAt interface{}
	if pr.closed != "" {
		closedAt = pr.closed
	}
	e.write(number, "PR", map[string]interface{}{
		"number":     number,
		"user":       map[string]string{"login": pr.author},
		"title":      pr.title,
		"created_at": pr.opened,
		"commits":    pr.commits,
		"labels":     labels,
		"merged":     pr.merged,
		"state":      pr.state,
		"closed_at":  closedAt,
		"base":       map[string]string{"label": pr.base},
	})
}

// tablesFixture builds report input directly, without going through extraction
func tablesFixture() *models.Tables {
	return &models.Tables{
		Comments: []*models.Comment{
			{Number: 10, Author: "bob", Date: "2019-02-01T00:00:00Z"},
			{Number: 10, Author: "bob", Date: "2019-02-02T00:00:00Z"},
			{Number: 11, Author: "bob", Date: "2019-03-01T00:00:00Z"},
			{Number: 11, Author: "bob", Date: "2019-03-02T00:00:00Z"},
			{Number: 11, Author: "bob", Date: "2019-03-03T00:00:00Z"},
			{Number: 11, Author: "alice", Date: "2019-03-04T00:00:00Z"},
			{Number: 12, Author: "carol", Date: "2020-01-05T00:00:00Z"},
			{Number: 12, Author: "alice", Date: "2020-01-06T00:00:00Z"},
		},
		PullRequests: []*models.PullRequest{
			{Number: 10, Title: "Add wallet flag", Author: "alice", Opened: "2019-01-01T00:00:00Z", Commits: 2, Comments: 2, Labels: "Wallet;needs rebase", State: models.PullRequestStateMerged, Closed: "2019-02-10T00:00:00Z"},
			{Number: 11, Title: "Refactor GUI", Author: "alice", Opened: "2019-03-01T00:00:00Z", Commits: 5, Comments: 4, Labels: "GUI;Wallet", State: models.PullRequestStateClosed, Closed: "2019-04-01T00:00:00Z"},
			{Number: 12, Title: "Fix tests", Author: "bob", Opened: "2019-12-30T00:00:00Z", Commits: 1, Comments: 2, Labels: "Tests", State: models.PullRequestStateMerged, Closed: "2020-01-10T00:00:00Z"},
			{Number: 13, Title: "Docs typo", Author: "carol", Opened: "2020-02-01T00:00:00Z", Commits: 1, Comments: 0, Labels: "Docs", State: models.PullRequestStateOpen},
		},
		Authors: []*models.AuthorSummary{
			{Author: "alice", NumberPRs: 1, NumberCommits: 2, FirstMerge: "2019-01-01T00:00:00Z"},
			{Author: "bob", NumberPRs: 1, NumberCommits: 1, FirstMerge: "2019-12-30T00:00:00Z"},
		},
		Reviewers: []*models.ReviewerSummary{
			{Reviewer: "bob", Number: 5, FirstComment: "2019-02-01T00:00:00Z"},
			{Reviewer: "alice", Number: 2, FirstComment: "2019-03-04T00:00:00Z"},
			{Reviewer: "carol", Number: 1, FirstComment: "2020-01-05T00:00:00Z"},
		},
	}
}
