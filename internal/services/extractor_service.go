package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/alimgiray/repostats/internal/repositories"
	"github.com/alimgiray/repostats/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
)

// RecordSource is the read-only view of the issue-tracker export the extractor needs
type RecordSource interface {
	HasBucket(bucket int) bool
	GetComments(number int) ([]*github.IssueComment, bool, error)
	GetPullRequest(number int) (*github.PullRequest, bool, error)
}

type ExtractorService struct {
	records         RecordSource
	canonicalBranch string
	manifest        []int
}

func NewExtractorService(records RecordSource, canonicalBranch string) *ExtractorService {
	return &ExtractorService{
		records:         records,
		canonicalBranch: canonicalBranch,
	}
}

// WithManifest makes the extractor scan exactly the given issue numbers
// instead of walking buckets until one is missing
func (s *ExtractorService) WithManifest(numbers []int) *ExtractorService {
	s.manifest = numbers
	return s
}

// reviewerTally is the running aggregate of one comment author
type reviewerTally struct {
	number       int
	firstComment string
}

// authorTally is the running aggregate of one merged pull request author
type authorTally struct {
	numberPRs     int
	numberCommits int
	firstMerge    string
}

// extraction holds the accumulators of a single Extract call
type extraction struct {
	tables         *models.Tables
	reviewers      map[string]*reviewerTally
	reviewerOrder  []string
	authors        map[string]*authorTally
	authorOrder    []string
	skippedForeign int
}

func newExtraction() *extraction {
	return &extraction{
		tables:    models.NewTables(),
		reviewers: make(map[string]*reviewerTally),
		authors:   make(map[string]*authorTally),
	}
}

// Extract scans the export and builds the four statistics tables.
// A malformed record aborts the whole extraction.
func (s *ExtractorService) Extract() (*models.Tables, error) {
	if s.records == nil {
		return nil, errors.New("record source is required")
	}
	if s.canonicalBranch == "" {
		return nil, errors.New("canonical branch is required")
	}

	run := newExtraction()

	if s.manifest != nil {
		for _, number := range s.manifest {
			if err := s.extractIssue(run, number); err != nil {
				return nil, err
			}
		}
	} else {
		for number := 0; ; number++ {
			if number%repositories.BucketSize == 0 {
				bucket := number / repositories.BucketSize
				if !s.records.HasBucket(bucket) {
					logger.Debugf("Bucket %dxx not found, stopping scan at %d", bucket, number)
					break
				}
			}
			if err := s.extractIssue(run, number); err != nil {
				return nil, err
			}
		}
	}

	run.flush()

	logger.WithFields(logrus.Fields{
		"comments":      len(run.tables.Comments),
		"pull_requests": len(run.tables.PullRequests),
		"authors":       len(run.tables.Authors),
		"reviewers":     len(run.tables.Reviewers),
		"foreign_base":  run.skippedForeign,
	}).Info("Extraction finished")

	return run.tables, nil
}

// extractIssue folds one issue number into the running tables
func (s *ExtractorService) extractIssue(run *extraction, number int) error {
	comments, _, err := s.records.GetComments(number)
	if err != nil {
		return fmt.Errorf("reading comments of #%d: %w", number, err)
	}

	for i, comment := range comments {
		if comment == nil {
			continue
		}
		if comment.CreatedAt == nil {
			return fmt.Errorf("%w: comment %d of #%d has no created_at", repositories.ErrMalformedRecord, i, number)
		}
		if comment.GetUser().GetLogin() == "" {
			continue
		}
		run.addComment(number, comment.GetUser().GetLogin(), models.FormatDate(comment.GetCreatedAt().Time))
	}

	pr, found, err := s.records.GetPullRequest(number)
	if err != nil {
		return fmt.Errorf("reading pull request #%d: %w", number, err)
	}
	if !found {
		return nil
	}

	if pr.CreatedAt == nil {
		return fmt.Errorf("%w: pull request #%d has no created_at", repositories.ErrMalformedRecord, number)
	}

	if pr.GetBase().GetLabel() != s.canonicalBranch {
		run.skippedForeign++
		return nil
	}

	row := toPullRequestRow(number, pr, len(comments))
	run.tables.PullRequests = append(run.tables.PullRequests, row)

	if row.IsMerged() {
		run.addMerge(row.Author, row.Commits, row.Opened)
	}

	return nil
}

// toPullRequestRow derives the stored row of a pull request record
func toPullRequestRow(number int, pr *github.PullRequest, comments int) *models.PullRequest {
	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	state := models.PullRequestState(pr.GetState())
	if pr.GetMerged() {
		state = models.PullRequestStateMerged
	}

	closed := ""
	if state != models.PullRequestStateOpen && pr.ClosedAt != nil {
		closed = models.FormatDate(pr.GetClosedAt().Time)
	}

	return &models.PullRequest{
		Number:   number,
		Title:    pr.GetTitle(),
		Author:   pr.GetUser().GetLogin(),
		Opened:   models.FormatDate(pr.GetCreatedAt().Time),
		Commits:  pr.GetCommits(),
		Comments: comments,
		Labels:   strings.Join(labels, models.LabelSeparator),
		State:    state,
		Closed:   closed,
	}
}

func (e *extraction) addComment(number int, author, date string) {
	e.tables.Comments = append(e.tables.Comments, &models.Comment{
		Number: number,
		Author: author,
		Date:   date,
	})

	tally, ok := e.reviewers[author]
	if !ok {
		tally = &reviewerTally{}
		e.reviewers[author] = tally
		e.reviewerOrder = append(e.reviewerOrder, author)
	}
	tally.number++
	tally.firstComment = models.EarlierDate(tally.firstComment, date)
}

func (e *extraction) addMerge(author string, commits int, opened string) {
	tally, ok := e.authors[author]
	if !ok {
		tally = &authorTally{}
		e.authors[author] = tally
		e.authorOrder = append(e.authorOrder, author)
	}
	tally.numberPRs++
	tally.numberCommits += commits
	tally.firstMerge = models.EarlierDate(tally.firstMerge, opened)
}

// flush turns the accumulators into table rows in first-insertion order
func (e *extraction) flush() {
	for _, reviewer := range e.reviewerOrder {
		tally := e.reviewers[reviewer]
		e.tables.Reviewers = append(e.tables.Reviewers, &models.ReviewerSummary{
			Reviewer:     reviewer,
			Number:       tally.number,
			FirstComment: tally.firstComment,
		})
	}

	for _, author := range e.authorOrder {
		tally := e.authors[author]
		e.tables.Authors = append(e.tables.Authors, &models.AuthorSummary{
			Author:        author,
			NumberPRs:     tally.numberPRs,
			NumberCommits: tally.numberCommits,
			FirstMerge:    tally.firstMerge,
		})
	}
}
