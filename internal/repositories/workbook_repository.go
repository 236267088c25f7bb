package repositories

import (
	"fmt"
	"strconv"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the statistics workbook
const (
	CommentsSheet     = "comments"
	PullRequestsSheet = "pull_requests"
	AuthorsSheet      = "authors"
	ReviewersSheet    = "reviewers"
)

// WorkbookRepository stores the statistics tables as sheets of one XLSX file
type WorkbookRepository struct {
	path string
}

func NewWorkbookRepository(path string) *WorkbookRepository {
	return &WorkbookRepository{path: path}
}

func (r *WorkbookRepository) Name() string {
	return "xlsx"
}

func (r *WorkbookRepository) Path() string {
	return r.path
}

// Save rewrites the workbook with one sheet per table
func (r *WorkbookRepository) Save(tables *models.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CommentsSheet); err != nil {
		return err
	}
	for _, sheet := range []string{PullRequestsSheet, AuthorsSheet, ReviewersSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	comments := make([][]interface{}, 0, len(tables.Comments))
	for _, c := range tables.Comments {
		comments = append(comments, []interface{}{c.Number, c.Author, c.Date})
	}
	if err := writeSheet(f, CommentsSheet, models.CommentColumns, comments); err != nil {
		return err
	}

	prs := make([][]interface{}, 0, len(tables.PullRequests))
	for _, pr := range tables.PullRequests {
		prs = append(prs, []interface{}{
			pr.Number, pr.Title, pr.Author, pr.Opened, pr.Commits, pr.Comments, pr.Labels, string(pr.State), pr.Closed,
		})
	}
	if err := writeSheet(f, PullRequestsSheet, models.PullRequestColumns, prs); err != nil {
		return err
	}

	authors := make([][]interface{}, 0, len(tables.Authors))
	for _, a := range tables.Authors {
		authors = append(authors, []interface{}{a.Author, a.NumberPRs, a.NumberCommits, a.FirstMerge})
	}
	if err := writeSheet(f, AuthorsSheet, models.AuthorColumns, authors); err != nil {
		return err
	}

	reviewers := make([][]interface{}, 0, len(tables.Reviewers))
	for _, rv := range tables.Reviewers {
		reviewers = append(reviewers, []interface{}{rv.Reviewer, rv.Number, rv.FirstComment})
	}
	if err := writeSheet(f, ReviewersSheet, models.ReviewerColumns, reviewers); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(r.path)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, column := range header {
		headerRow[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the four sheets back into tables
func (r *WorkbookRepository) Load() (*models.Tables, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tables := models.NewTables()

	rows, err := readSheet(f, CommentsSheet, models.CommentColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		number, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", CommentsSheet, err)
		}
		tables.Comments = append(tables.Comments, &models.Comment{Number: number, Author: rec[1], Date: rec[2]})
	}

	rows, err = readSheet(f, PullRequestsSheet, models.PullRequestColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		ints, err := atoiAll(rec[0], rec[4], rec[5])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", PullRequestsSheet, err)
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
	}

	rows, err = readSheet(f, AuthorsSheet, models.AuthorColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		ints, err := atoiAll(rec[1], rec[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", AuthorsSheet, err)
		}
		tables.Authors = append(tables.Authors, &models.AuthorSummary{
			Author:        rec[0],
			NumberPRs:     ints[0],
			NumberCommits: ints[1],
			FirstMerge:    rec[3],
		})
	}

	rows, err = readSheet(f, ReviewersSheet, models.ReviewerColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		number, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ReviewersSheet, err)
		}
		tables.Reviewers = append(tables.Reviewers, &models.ReviewerSummary{
			Reviewer:     rec[0],
			Number:       number,
			FirstComment: rec[2],
		})
	}

	return tables, nil
}

// readSheet returns the data rows of a sheet, padded to the header width
// because excelize drops trailing empty cells
func readSheet(f *excelize.File, sheet string, header []string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", sheet)
	}

	for i, column := range header {
		if i >= len(rows[0]) || rows[0][i] != column {
			return nil, fmt.Errorf("%s: unexpected header %v", sheet, rows[0])
		}
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		padded := make([]string, len(header))
		copy(padded, row)
		data = append(data, padded)
	}
	return data, nil
}
