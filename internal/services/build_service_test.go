package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/alimgiray/repostats/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps the last saved snapshot
type memoryStore struct {
	saved   *models.Tables
	saveErr error
	saves   int
}

func (m *memoryStore) Name() string { return "memory" }

func (m *memoryStore) Save(tables *models.Tables) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = tables
	return nil
}

func (m *memoryStore) Load() (*models.Tables, error) {
	if m.saved == nil {
		return nil, errors.New("nothing saved")
	}
	return m.saved, nil
}

func sampleTree(t *testing.T) *exportTree {
	tree := newExportTree(t)
	tree.comments(1,
		testComment{login: "bob", date: "2019-05-01T10:00:00Z"},
		testComment{login: "carol", date: "2019-05-02T11:00:00Z"},
	)
	tree.pullRequest(1, testPR{author: "alice", title: "Add, with comma", opened: "2019-05-01T00:00:00Z", merged: true, closed: "2019-05-03T00:00:00Z", commits: 2, labels: []string{"Wallet", "GUI"}})
	tree.pullRequest(2, testPR{author: "dave", title: "Quote \"this\"", opened: "2019-06-01T00:00:00Z"})
	return tree
}

func readStatsFiles(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	for _, name := range []string{
		repositories.CommentsFile,
		repositories.PullRequestsFile,
		repositories.AuthorsFile,
		repositories.ReviewersFile,
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		files[name] = data
	}
	return files
}

func TestBuildWritesEveryStore(t *testing.T) {
	tree := sampleTree(t)
	statsDir := t.TempDir()
	memory := &memoryStore{}

	extractor := NewExtractorService(repositories.NewIssueRecordRepository(tree.root), testBranch)
	result, err := NewBuildService(extractor, repositories.NewCSVTableRepository(statsDir), memory).Build()
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, []string{"csv", "memory"}, result.Stores)
	assert.Len(t, result.Tables.PullRequests, 2)
	assert.Equal(t, result.Tables, memory.saved)

	loaded, err := LoadTables(repositories.NewCSVTableRepository(statsDir))
	require.NoError(t, err)
	assert.Equal(t, result.Tables, loaded)
}

func TestBuildIsIdempotent(t *testing.T) {
	tree := sampleTree(t)
	statsDir := t.TempDir()
	extractor := NewExtractorService(repositories.NewIssueRecordRepository(tree.root), testBranch)
	build := NewBuildService(extractor, repositories.NewCSVTableRepository(statsDir))

	first, err := build.Build()
	require.NoError(t, err)
	firstFiles := readStatsFiles(t, statsDir)

	second, err := build.Build()
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, firstFiles, readStatsFiles(t, statsDir))
}

func TestBuildLeavesTablesUntouchedOnMalformedRecord(t *testing.T) {
	tree := sampleTree(t)
	statsDir := t.TempDir()
	memory := &memoryStore{}
	csvStore := repositories.NewCSVTableRepository(statsDir)
	extractor := NewExtractorService(repositories.NewIssueRecordRepository(tree.root), testBranch)

	_, err := NewBuildService(extractor, csvStore).Build()
	require.NoError(t, err)
	before := readStatsFiles(t, statsDir)

	tree.writeRaw(3, "PR", "{not json")

	result, err := NewBuildService(extractor, csvStore, memory).Build()
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repositories.ErrMalformedRecord)
	assert.Equal(t, 0, memory.saves)
	assert.Equal(t, before, readStatsFiles(t, statsDir))
}

func TestBuildStoreFailure(t *testing.T) {
	tree := sampleTree(t)
	failing := &memoryStore{saveErr: errors.New("disk full")}
	extractor := NewExtractorService(repositories.NewIssueRecordRepository(tree.root), testBranch)

	_, err := NewBuildService(extractor, failing).Build()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "saving memory tables")
	assert.Contains(t, err.Error(), "disk full")
}

func TestBuildRequiresStore(t *testing.T) {
	extractor := NewExtractorService(repositories.NewIssueRecordRepository(t.TempDir()), testBranch)
	_, err := NewBuildService(extractor).Build()
	assert.Error(t, err)
}

func TestLoadTablesMissingSnapshot(t *testing.T) {
	_, err := LoadTables(repositories.NewCSVTableRepository(t.TempDir()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run the build command first?")
}
