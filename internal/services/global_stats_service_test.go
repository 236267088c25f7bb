package services

import (
	"testing"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGlobalStatsReport(t *testing.T) {
	service := NewGlobalStatsService(tablesFixture())

	t.Run("Year with merges and closes", func(t *testing.T) {
		summary := service.Report(2019)

		assert.Equal(t, 2019, summary.Year)
		assert.Equal(t, 3, summary.PRsOpened)
		assert.Equal(t, []models.ComponentCount{
			{Component: "Wallet", Count: 2},
			{Component: "GUI", Count: 1},
			{Component: "Tests", Count: 1},
		}, summary.TopComponents)
		assert.Equal(t, 1, summary.PRsMerged)
		assert.Equal(t, 1, summary.PRsClosed)
		assert.Equal(t, 2, summary.CommitsInMerged)
		assert.Equal(t, 1, summary.UniqueAuthors)
		// bob opened his first merged pull request in 2019 even though it merged in 2020
		assert.Equal(t, 2, summary.NewAuthors)
		assert.Equal(t, 6, summary.ReviewComments)
		assert.Equal(t, 1, summary.RegularReviewers)
		assert.Equal(t, 2, summary.NewReviewers)
		assert.Equal(t, DefaultRegularReviewerThreshold, summary.RegularThreshold)
	})

	t.Run("Following year", func(t *testing.T) {
		summary := service.Report(2020)

		assert.Equal(t, 1, summary.PRsOpened)
		assert.Equal(t, []string{"Docs"}, summary.ComponentNames())
		assert.Equal(t, 1, summary.PRsMerged)
		assert.Equal(t, 0, summary.PRsClosed)
		assert.Equal(t, 1, summary.CommitsInMerged)
		assert.Equal(t, 1, summary.UniqueAuthors)
		assert.Equal(t, 0, summary.NewAuthors)
		assert.Equal(t, 2, summary.ReviewComments)
		assert.Equal(t, 0, summary.RegularReviewers)
		assert.Equal(t, 1, summary.NewReviewers)
	})

	t.Run("Year without activity", func(t *testing.T) {
		summary := service.Report(2031)

		assert.Equal(t, models.NewGlobalSummary(2031).TopComponents, summary.TopComponents)
		assert.NotNil(t, summary.TopComponents)
		assert.Zero(t, summary.PRsOpened)
		assert.Zero(t, summary.PRsMerged)
		assert.Zero(t, summary.CommitsInMerged)
		assert.Zero(t, summary.UniqueAuthors)
		assert.Zero(t, summary.NewAuthors)
		assert.Zero(t, summary.ReviewComments)
		assert.Zero(t, summary.RegularReviewers)
		assert.Zero(t, summary.NewReviewers)
	})
}

func TestGlobalStatsRegularThreshold(t *testing.T) {
	testCases := []struct {
		name      string
		threshold int
		expected  int
	}{
		{name: "Default threshold", threshold: 0, expected: 1},
		{name: "Lower threshold", threshold: 2, expected: 2},
		{name: "Threshold above everyone", threshold: 6, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := NewGlobalStatsService(tablesFixture()).WithRegularThreshold(tc.threshold).Report(2019)
			assert.Equal(t, tc.expected, summary.RegularReviewers)
		})
	}
}

func TestGlobalStatsConservation(t *testing.T) {
	tables := tablesFixture()
	service := NewGlobalStatsService(tables)

	for _, year := range []int{2018, 2019, 2020} {
		summary := service.Report(year)

		mergedCommits := 0
		for _, pr := range tables.PullRequests {
			if pr.State == models.PullRequestStateMerged && models.InYear(pr.Closed, year) {
				mergedCommits += pr.Commits
			}
		}
		assert.Equal(t, mergedCommits, summary.CommitsInMerged, "year %d", year)
		assert.LessOrEqual(t, summary.UniqueAuthors, summary.PRsMerged, "year %d", year)
		assert.LessOrEqual(t, summary.RegularReviewers, summary.ReviewComments, "year %d", year)
	}
}

func TestGlobalStatsTopComponentsLimit(t *testing.T) {
	tables := models.NewTables()
	labels := []string{"Wallet", "GUI", "Tests", "Docs", "RPC/REST/ZMQ", "Mining", "P2P"}
	for i, label := range labels {
		tables.PullRequests = append(tables.PullRequests, &models.PullRequest{
			Number: i + 1,
			Author: "alice",
			Opened: "2019-06-01T00:00:00Z",
			Labels: label,
			State:  models.PullRequestStateOpen,
		})
	}
	// P2P overtakes every other component
	tables.PullRequests = append(tables.PullRequests, &models.PullRequest{
		Number: 100,
		Author: "bob",
		Opened: "2019-06-02T00:00:00Z",
		Labels: "P2P",
		State:  models.PullRequestStateOpen,
	})

	summary := NewGlobalStatsService(tables).Report(2019)

	assert.Len(t, summary.TopComponents, GlobalTopComponents)
	assert.Equal(t, []string{"P2P", "Wallet", "GUI", "Tests", "Docs"}, summary.ComponentNames())
}

func TestGlobalStatsReportYears(t *testing.T) {
	summaries := NewGlobalStatsService(tablesFixture()).ReportYears([]int{2020, 2019})

	assert.Len(t, summaries, 2)
	assert.Equal(t, 2020, summaries[0].Year)
	assert.Equal(t, 2019, summaries[1].Year)
}
