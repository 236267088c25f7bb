package models

// ContributorSummary is the activity of one contributor in one calendar year
type ContributorSummary struct {
	Contributor    string           `json:"contributor"`
	Year           int              `json:"year"`
	PRsOpened      int              `json:"prs_opened"`
	TopComponents  []ComponentCount `json:"components"`
	PRsMerged      int              `json:"prs_merged"`
	PRsClosed      int              `json:"prs_closed"`
	Commits        int              `json:"commits"`
	PopularPRs     []*PullRequest   `json:"popular_prs"`
	ReviewComments int              `json:"comments"`
}

// NewContributorSummary creates an all-zero summary for a contributor and year
func NewContributorSummary(contributor string, year int) *ContributorSummary {
	return &ContributorSummary{
		Contributor:   contributor,
		Year:          year,
		TopComponents: []ComponentCount{},
		PopularPRs:    []*PullRequest{},
	}
}

// ComponentNames returns the names of the favorite components
func (s *ContributorSummary) ComponentNames() []string {
	return ComponentNames(s.TopComponents)
}

// ContributorReport groups the yearly summaries of one contributor
type ContributorReport struct {
	Contributor string                `json:"contributor"`
	Years       []*ContributorSummary `json:"years"`
}
