package repositories

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alimgiray/repostats/internal/models"
)

// File names of the persisted tables
const (
	CommentsFile     = "comments_stats.csv"
	PullRequestsFile = "pr_stats.csv"
	AuthorsFile      = "author_stats.csv"
	ReviewersFile    = "reviewer_stats.csv"
)

// CSVTableRepository persists the statistics tables as CSV files with a header row
type CSVTableRepository struct {
	dir string
}

func NewCSVTableRepository(dir string) *CSVTableRepository {
	return &CSVTableRepository{dir: dir}
}

func (r *CSVTableRepository) Name() string {
	return "csv"
}

// renameFile is swapped in tests to simulate a failing rename
var renameFile = os.Rename

// stagedTable is a fully written temporary file waiting to replace its target
type stagedTable struct {
	tmp    string
	target string
}

// Save overwrites all four table files. Every table is written to a temporary
// file first; the targets are only replaced once all four are complete, and a
// failed replacement restores the previous snapshot.
func (r *CSVTableRepository) Save(tables *models.Tables) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}

	var staged []stagedTable
	defer func() {
		for _, st := range staged {
			os.Remove(st.tmp)
		}
	}()

	stage := func(name string, header []string, n int, row func(i int) []string) error {
		tmp, err := r.writeTemp(name, header, n, row)
		if err != nil {
			return err
		}
		staged = append(staged, stagedTable{tmp: tmp, target: filepath.Join(r.dir, name)})
		return nil
	}

	if err := stage(CommentsFile, models.CommentColumns, len(tables.Comments), func(i int) []string {
		c := tables.Comments[i]
		return []string{strconv.Itoa(c.Number), c.Author, c.Date}
	}); err != nil {
		return err
	}

	if err := stage(PullRequestsFile, models.PullRequestColumns, len(tables.PullRequests), func(i int) []string {
		pr := tables.PullRequests[i]
		return []string{
			strconv.Itoa(pr.Number), pr.Title, pr.Author, pr.Opened,
			strconv.Itoa(pr.Commits), strconv.Itoa(pr.Comments),
			pr.Labels, string(pr.State), pr.Closed,
		}
	}); err != nil {
		return err
	}

	if err := stage(AuthorsFile, models.AuthorColumns, len(tables.Authors), func(i int) []string {
		a := tables.Authors[i]
		return []string{a.Author, strconv.Itoa(a.NumberPRs), strconv.Itoa(a.NumberCommits), a.FirstMerge}
	}); err != nil {
		return err
	}

	if err := stage(ReviewersFile, models.ReviewerColumns, len(tables.Reviewers), func(i int) []string {
		rv := tables.Reviewers[i]
		return []string{rv.Reviewer, strconv.Itoa(rv.Number), rv.FirstComment}
	}); err != nil {
		return err
	}

	return commitTables(staged)
}

// commitTables moves the previous files aside, renames every staged file into
// place and removes the backups. Any failure puts the previous files back.
func commitTables(staged []stagedTable) error {
	backups := make(map[string]string)
	var installed []string

	rollback := func(cause error) error {
		for _, target := range installed {
			os.Remove(target)
		}
		for target, backup := range backups {
			if err := renameFile(backup, target); err != nil {
				return fmt.Errorf("%w (restoring %s: %v)", cause, target, err)
			}
		}
		return cause
	}

	for _, st := range staged {
		if _, err := os.Stat(st.target); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return rollback(err)
		}
		backup := st.tmp + ".bak"
		if err := renameFile(st.target, backup); err != nil {
			return rollback(err)
		}
		backups[st.target] = backup
	}

	for _, st := range staged {
		if err := renameFile(st.tmp, st.target); err != nil {
			return rollback(err)
		}
		installed = append(installed, st.target)
	}

	for _, backup := range backups {
		os.Remove(backup)
	}
	return nil
}

// writeTemp writes one table into a temporary file next to its target and
// returns the temporary path
func (r *CSVTableRepository) writeTemp(name string, header []string, n int, row func(i int) []string) (string, error) {
	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return "", err
	}

	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if err := tmp.Chmod(0644); err != nil {
		return fail(err)
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return fail(err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fail(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// Load reads all four table files
func (r *CSVTableRepository) Load() (*models.Tables, error) {
	tables := models.NewTables()

	if err := r.readTable(CommentsFile, models.CommentColumns, func(rec []string) error {
		number, err := strconv.Atoi(rec[0])
		if err != nil {
			return err
		}
		tables.Comments = append(tables.Comments, &models.Comment{Number: number, Author: rec[1], Date: rec[2]})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.readTable(PullRequestsFile, models.PullRequestColumns, func(rec []string) error {
		ints, err := atoiAll(rec[0], rec[4], rec[5])
		if err != nil {
			return err
		}
		tables.PullRequests = append(tables.PullRequests, &models.PullRequest{
			Number:   ints[0],
			Title:    rec[1],
			Author:   rec[2],
			Opened:   rec[3],
			Commits:  ints[1],
			Comments: ints[2],
			Labels:   rec[6],
			State:    models.PullRequestState(rec[7]),
			Closed:   rec[8],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.readTable(AuthorsFile, models.AuthorColumns, func(rec []string) error {
		ints, err := atoiAll(rec[1], rec[2])
		if err != nil {
			return err
		}
		tables.Authors = append(tables.Authors, &models.AuthorSummary{
			Author:        rec[0],
			NumberPRs:     ints[0],
			NumberCommits: ints[1],
			FirstMerge:    rec[3],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.readTable(ReviewersFile, models.ReviewerColumns, func(rec []string) error {
		number, err := strconv.Atoi(rec[1])
		if err != nil {
			return err
		}
		tables.Reviewers = append(tables.Reviewers, &models.ReviewerSummary{
			Reviewer:     rec[0],
			Number:       number,
			FirstComment: rec[2],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	return tables, nil
}

func (r *CSVTableRepository) readTable(name string, header []string, row func(rec []string) error) error {
	path := filepath.Join(r.dir, name)

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)

	got, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%s: reading header: %w", path, err)
	}
	for i, column := range header {
		if got[i] != column {
			return fmt.Errorf("%s: unexpected column %q at position %d, want %q", path, got[i], i, column)
		}
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := row(rec); err != nil {
			line, _ := reader.FieldPos(0)
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
}

func atoiAll(values ...string) ([]int, error) {
	ints := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}
