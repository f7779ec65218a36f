package reports

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"salesspark_backend/internal/events"
)

//go:embed templates/*.html
var templateFS embed.FS

var weeklyTemplate = template.Must(template.ParseFS(templateFS, "templates/weekly_report.html"))

const subjectWeeklyReportFmt = "SalesSpark weekly report %s"

type weeklyReportEmailData struct {
	Title        string
	GeneratedAt  string
	DataSource   string
	Summary      string
	TotalLeads   int
	HotLeads     int
	AvgScore     string
	Trend        string
	Highlights   []string
	PipelineNote string
}

func weeklySubject(e events.WeeklyReportGenerated) string {
	return fmt.Sprintf(subjectWeeklyReportFmt, e.Week)
}

func renderWeeklyReport(e events.WeeklyReportGenerated) (string, error) {
	data := weeklyReportEmailData{
		Title:        weeklySubject(e),
		GeneratedAt:  e.GeneratedAt.Format("2006-01-02 15:04"),
		DataSource:   e.DataSource,
		Summary:      e.Summary,
		TotalLeads:   e.TotalLeads,
		HotLeads:     e.HotLeads,
		AvgScore:     fmt.Sprintf("%.1f/100", e.AvgScore),
		Trend:        e.Trend,
		Highlights:   e.Highlights,
		PipelineNote: e.PipelineNote,
	}

	var buf bytes.Buffer
	if err := weeklyTemplate.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute weekly report template: %w", err)
	}
	return buf.String(), nil
}
