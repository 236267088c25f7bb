package repositories

import (
	"database/sql"
	"sync"

	"github.com/alimgiray/repostats/internal/models"
)

// SQLiteTableRepository mirrors the statistics tables into a SQLite database
type SQLiteTableRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

func NewSQLiteTableRepository(db *sql.DB) *SQLiteTableRepository {
	return &SQLiteTableRepository{db: db}
}

func (r *SQLiteTableRepository) Name() string {
	return "sqlite"
}

// Save replaces the content of every table in a single transaction
func (r *SQLiteTableRepository) Save(tables *models.Tables) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"comments", "pull_requests", "authors", "reviewers"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}

	commentStmt, err := tx.Prepare(`INSERT INTO comments (position, number, author, date) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer commentStmt.Close()
	for i, c := range tables.Comments {
		if _, err := commentStmt.Exec(i, c.Number, c.Author, c.Date); err != nil {
			return err
		}
	}

	prStmt, err := tx.Prepare(`
		INSERT INTO pull_requests (
			position, number, title, author, opened, commits, comments, labels, state, closed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer prStmt.Close()
	for i, pr := range tables.PullRequests {
		if _, err := prStmt.Exec(i, pr.Number, pr.Title, pr.Author, pr.Opened, pr.Commits, pr.Comments, pr.Labels, string(pr.State), pr.Closed); err != nil {
			return err
		}
	}

	authorStmt, err := tx.Prepare(`INSERT INTO authors (position, author, number_prs, number_commits, first_merge) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer authorStmt.Close()
	for i, a := range tables.Authors {
		if _, err := authorStmt.Exec(i, a.Author, a.NumberPRs, a.NumberCommits, a.FirstMerge); err != nil {
			return err
		}
	}

	reviewerStmt, err := tx.Prepare(`INSERT INTO reviewers (position, reviewer, number, first_comment) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer reviewerStmt.Close()
	for i, rv := range tables.Reviewers {
		if _, err := reviewerStmt.Exec(i, rv.Reviewer, rv.Number, rv.FirstComment); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads every table back in the order it was saved
func (r *SQLiteTableRepository) Load() (*models.Tables, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := models.NewTables()

	rows, err := r.db.Query(`SELECT number, author, date FROM comments ORDER BY position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.Number, &c.Author, &c.Date); err != nil {
			rows.Close()
			return nil, err
		}
		tables.Comments = append(tables.Comments, &c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(`
		SELECT number, title, author, opened, commits, comments, labels, state, closed
		FROM pull_requests ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var pr models.PullRequest
		var state string
		if err := rows.Scan(&pr.Number, &pr.Title, &pr.Author, &pr.Opened, &pr.Commits, &pr.Comments, &pr.Labels, &state, &pr.Closed); err != nil {
			rows.Close()
			return nil, err
		}
		pr.State = models.PullRequestState(state)
		tables.PullRequests = append(tables.PullRequests, &pr)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(`SELECT author, number_prs, number_commits, first_merge FROM authors ORDER BY position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var a models.AuthorSummary
		if err := rows.Scan(&a.Author, &a.NumberPRs, &a.NumberCommits, &a.FirstMerge); err != nil {
			rows.Close()
			return nil, err
		}
		tables.Authors = append(tables.Authors, &a)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(`SELECT reviewer, number, first_comment FROM reviewers ORDER BY position`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var rv models.ReviewerSummary
		if err := rows.Scan(&rv.Reviewer, &rv.Number, &rv.FirstComment); err != nil {
			rows.Close()
			return nil, err
		}
		tables.Reviewers = append(tables.Reviewers, &rv)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return tables, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
