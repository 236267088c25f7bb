package services

import (
	"github.com/alimgiray/repostats/internal/models"
)

const (
	// GlobalTopComponents is how many components the global summary lists
	GlobalTopComponents = 5
	// DefaultRegularReviewerThreshold is the all-time comment count of a regular reviewer
	DefaultRegularReviewerThreshold = 5
)

// GlobalStatsService answers repository-wide questions about one year
type GlobalStatsService struct {
	tables           *models.Tables
	regularThreshold int
}

func NewGlobalStatsService(tables *models.Tables) *GlobalStatsService {
	if tables == nil {
		tables = models.NewTables()
	}
	return &GlobalStatsService{
		tables:           tables,
		regularThreshold: DefaultRegularReviewerThreshold,
	}
}

// WithRegularThreshold overrides the comment count that makes a reviewer regular
func (s *GlobalStatsService) WithRegularThreshold(threshold int) *GlobalStatsService {
	if threshold > 0 {
		s.regularThreshold = threshold
	}
	return s
}

// Report computes the global summary of a calendar year
func (s *GlobalStatsService) Report(year int) *models.GlobalSummary {
	summary := models.NewGlobalSummary(year)
	summary.RegularThreshold = s.regularThreshold

	components := newComponentCounter()
	authors := make(map[string]bool)

	for _, pr := range s.tables.PullRequests {
		if pr.OpenedIn(year) {
			summary.PRsOpened++
			components.add(pr)
		}
		if pr.MergedIn(year) {
			summary.PRsMerged++
			summary.CommitsInMerged += pr.Commits
			authors[pr.Author] = true
		}
		if pr.ClosedIn(year) {
			summary.PRsClosed++
		}
	}
	summary.TopComponents = components.top(GlobalTopComponents)
	summary.UniqueAuthors = len(authors)

	// First merges come from the authors table, not from this year's merged set
	for _, author := range s.tables.Authors {
		if models.InYear(author.FirstMerge, year) {
			summary.NewAuthors++
		}
	}

	commenters := make(map[string]bool)
	for _, comment := range s.tables.Comments {
		if models.InYear(comment.Date, year) {
			summary.ReviewComments++
			commenters[comment.Author] = true
		}
	}

	for _, reviewer := range s.tables.Reviewers {
		if models.InYear(reviewer.FirstComment, year) {
			summary.NewReviewers++
		}
		if commenters[reviewer.Reviewer] && reviewer.Number >= s.regularThreshold {
			summary.RegularReviewers++
		}
	}

	return summary
}

// ReportYears computes one global summary per year, in the given order
func (s *GlobalStatsService) ReportYears(years []int) []*models.GlobalSummary {
	summaries := make([]*models.GlobalSummary, 0, len(years))
	for _, year := range years {
		summaries = append(summaries, s.Report(year))
	}
	return summaries
}
