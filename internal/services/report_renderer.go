package services

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/alimgiray/repostats/web"
)

// Output formats understood by the renderer
const (
	FormatText = "text"
	FormatHTML = "html"
)

// ReportRenderer writes summaries either as plain text or as HTML. Both
// renderings read the same summary structs.
type ReportRenderer struct {
	templates *template.Template
}

func NewReportRenderer() (*ReportRenderer, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing report templates: %w", err)
	}
	return &ReportRenderer{templates: tmpl}, nil
}

// Templates exposes the parsed templates to other HTML consumers
func (r *ReportRenderer) Templates() *template.Template {
	return r.templates
}

// RenderGlobal writes global summaries in the requested format
func (r *ReportRenderer) RenderGlobal(w io.Writer, format string, summaries []*models.GlobalSummary) error {
	if format == FormatHTML {
		return r.templates.ExecuteTemplate(w, "global_page", summaries)
	}

	var b strings.Builder
	for i, s := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "In %d...\n", s.Year)
		fmt.Fprintf(&b, "%d PRs were opened\n", s.PRsOpened)
		fmt.Fprintf(&b, "The most active components were %s\n", listNames(s.ComponentNames()))
		fmt.Fprintf(&b, "%d PRs were merged with %d commits\n", s.PRsMerged, s.CommitsInMerged)
		fmt.Fprintf(&b, "From %d unique authors (%d first time authors)\n", s.UniqueAuthors, s.NewAuthors)
		fmt.Fprintf(&b, "There were %d review comments\n", s.ReviewComments)
		fmt.Fprintf(&b, "From %d unique regular* reviewers and %d first time reviewers\n", s.RegularReviewers, s.NewReviewers)
		fmt.Fprintf(&b, "*A regular reviewer must have left >= %d comments\n", s.RegularThreshold)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderContributors writes contributor reports in the requested format
func (r *ReportRenderer) RenderContributors(w io.Writer, format string, reports []*models.ContributorReport) error {
	if format == FormatHTML {
		return r.templates.ExecuteTemplate(w, "contributors_page", reports)
	}

	var b strings.Builder
	for _, report := range reports {
		fmt.Fprintf(&b, "Contributor %s\n", report.Contributor)
		for _, s := range report.Years {
			fmt.Fprintf(&b, "In %d...\n", s.Year)
			fmt.Fprintf(&b, "You opened %d PRs\n", s.PRsOpened)
			fmt.Fprintf(&b, "Your favorite components were %s\n", listNames(s.ComponentNames()))
			fmt.Fprintf(&b, "You had %d PRs (including %d commits) merged\n", s.PRsMerged, s.Commits)
			b.WriteString("Your most popular PRs (by review comments) were\n")
			for _, pr := range s.PopularPRs {
				fmt.Fprintf(&b, " - %d: %s (%d comments)\n", pr.Number, pr.Title, pr.Comments)
			}
			fmt.Fprintf(&b, "You made %d review comments\n\n", s.ReviewComments)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func listNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
