package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-github/v57/github"
)

// BucketSize is the number of issue numbers sharded into one export directory
const BucketSize = 100

// ErrMalformedRecord is returned when an export file exists but cannot be decoded
var ErrMalformedRecord = errors.New("malformed issue record")

// IssueRecordRepository reads the per-issue JSON files of an issue-tracker mirror.
// The layout is <root>/issues/<n/100>xx/<n>-comments.json and <n>-PR.json.
type IssueRecordRepository struct {
	root string
}

func NewIssueRecordRepository(metaDir string) *IssueRecordRepository {
	return &IssueRecordRepository{root: metaDir}
}

// BucketDir returns the directory that holds the given bucket
func (r *IssueRecordRepository) BucketDir(bucket int) string {
	return filepath.Join(r.root, "issues", fmt.Sprintf("%dxx", bucket))
}

func (r *IssueRecordRepository) commentsPath(number int) string {
	return filepath.Join(r.BucketDir(number/BucketSize), fmt.Sprintf("%d-comments.json", number))
}

func (r *IssueRecordRepository) pullRequestPath(number int) string {
	return filepath.Join(r.BucketDir(number/BucketSize), fmt.Sprintf("%d-PR.json", number))
}

// HasBucket checks if the export contains a directory for the bucket
func (r *IssueRecordRepository) HasBucket(bucket int) bool {
	info, err := os.Stat(r.BucketDir(bucket))
	return err == nil && info.IsDir()
}

// HasIssue checks if either a comments or a pull request file exists for the number.
// The extraction scan walks buckets instead; this is for callers that check single issues.
func (r *IssueRecordRepository) HasIssue(number int) bool {
	return fileExists(r.commentsPath(number)) || fileExists(r.pullRequestPath(number))
}

// GetComments returns the comments of an issue. The bool is false when no
// comments file exists for the number.
func (r *IssueRecordRepository) GetComments(number int) ([]*github.IssueComment, bool, error) {
	var comments []*github.IssueComment
	found, err := readRecord(r.commentsPath(number), &comments)
	if err != nil || !found {
		return nil, found, err
	}
	return comments, true, nil
}

// GetPullRequest returns the pull request stored for an issue number. The bool
// is false when the number is not a pull request.
func (r *IssueRecordRepository) GetPullRequest(number int) (*github.PullRequest, bool, error) {
	var pr github.PullRequest
	found, err := readRecord(r.pullRequestPath(number), &pr)
	if err != nil || !found {
		return nil, found, err
	}
	return &pr, true, nil
}

func readRecord(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, path, err)
	}

	return true, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
