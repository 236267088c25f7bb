package models

// Comment is one authored comment on an issue or pull request
type Comment struct {
	Number int    `json:"number" db:"number"`
	Author string `json:"author" db:"author"`
	Date   string `json:"date" db:"date"`
}

// CommentColumns is the persisted column order of the comments table
var CommentColumns = []string{"number", "author", "date"}
