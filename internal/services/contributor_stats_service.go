package services

import (
	"sort"

	"github.com/alimgiray/repostats/internal/models"
)

const (
	// ContributorTopComponents is how many favorite components a contributor summary lists
	ContributorTopComponents = 3
	// ContributorPopularPRs is how many of the most discussed pull requests are listed
	ContributorPopularPRs = 3
)

// ContributorStatsService answers per-contributor questions. Rows are indexed
// by author once so that batches over many contributors and years do not
// rescan the tables.
type ContributorStatsService struct {
	prsByAuthor      map[string][]*models.PullRequest
	commentsByAuthor map[string][]*models.Comment
}

func NewContributorStatsService(tables *models.Tables) *ContributorStatsService {
	if tables == nil {
		tables = models.NewTables()
	}

	s := &ContributorStatsService{
		prsByAuthor:      make(map[string][]*models.PullRequest),
		commentsByAuthor: make(map[string][]*models.Comment),
	}
	for _, pr := range tables.PullRequests {
		s.prsByAuthor[pr.Author] = append(s.prsByAuthor[pr.Author], pr)
	}
	for _, comment := range tables.Comments {
		s.commentsByAuthor[comment.Author] = append(s.commentsByAuthor[comment.Author], comment)
	}
	return s
}

// Report computes the summary of one contributor for one calendar year
func (s *ContributorStatsService) Report(contributor string, year int) *models.ContributorSummary {
	summary := models.NewContributorSummary(contributor, year)

	components := newComponentCounter()
	var considered []*models.PullRequest
	seen := make(map[int]bool)
	consider := func(pr *models.PullRequest) {
		if !seen[pr.Number] {
			seen[pr.Number] = true
			considered = append(considered, pr)
		}
	}

	for _, pr := range s.prsByAuthor[contributor] {
		if pr.OpenedIn(year) {
			summary.PRsOpened++
			components.add(pr)
			consider(pr)
		}
		if pr.MergedIn(year) {
			summary.PRsMerged++
			summary.Commits += pr.Commits
			consider(pr)
		}
		if pr.ClosedIn(year) {
			summary.PRsClosed++
			consider(pr)
		}
	}
	summary.TopComponents = components.top(ContributorTopComponents)
	summary.PopularPRs = mostDiscussed(considered, ContributorPopularPRs)

	for _, comment := range s.commentsByAuthor[contributor] {
		if models.InYear(comment.Date, year) {
			summary.ReviewComments++
		}
	}

	return summary
}

// ReportBatch computes every (contributor, year) pair, grouped by contributor.
// Contributor and year order follow the arguments.
func (s *ContributorStatsService) ReportBatch(contributors []string, years []int) []*models.ContributorReport {
	reports := make([]*models.ContributorReport, 0, len(contributors))
	for _, contributor := range contributors {
		report := &models.ContributorReport{
			Contributor: contributor,
			Years:       make([]*models.ContributorSummary, 0, len(years)),
		}
		for _, year := range years {
			report.Years = append(report.Years, s.Report(contributor, year))
		}
		reports = append(reports, report)
	}
	return reports
}

// mostDiscussed returns at most n pull requests by comment count, descending
func mostDiscussed(prs []*models.PullRequest, n int) []*models.PullRequest {
	ordered := make([]*models.PullRequest, len(prs))
	copy(ordered, prs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Comments > ordered[j].Comments
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}
