package models

// GlobalSummary is the repository-wide activity of one calendar year
type GlobalSummary struct {
	Year             int              `json:"year"`
	PRsOpened        int              `json:"prs_opened"`
	TopComponents    []ComponentCount `json:"top_components"`
	PRsMerged        int              `json:"prs_merged"`
	PRsClosed        int              `json:"prs_closed"`
	CommitsInMerged  int              `json:"commits_in_merged"`
	UniqueAuthors    int              `json:"unique_authors"`
	NewAuthors       int              `json:"new_authors"`
	ReviewComments   int              `json:"review_comments"`
	RegularReviewers int              `json:"regular_reviewers"`
	NewReviewers     int              `json:"new_reviewers"`
	RegularThreshold int              `json:"regular_threshold"`
}

// NewGlobalSummary creates an all-zero summary for a year
func NewGlobalSummary(year int) *GlobalSummary {
	return &GlobalSummary{
		Year:          year,
		TopComponents: []ComponentCount{},
	}
}

// ComponentNames returns the names of the top components
func (s *GlobalSummary) ComponentNames() []string {
	return ComponentNames(s.TopComponents)
}
