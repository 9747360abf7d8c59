package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawAuditReport renders every section of a tag audit
func DrawAuditReport(w io.Writer, source string, report *model.AuditReport) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🏷️  TAG COMPLIANCE AUDIT"))
	fmt.Fprintf(w, " Source: %s\n", text.FgBlue.Sprint(source))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawSummary(w, report.Summary)
	if len(report.ByProvider) > 1 {
		DrawProviderComplianceTable(w, report.ByProvider)
	}
	drawMissingRequired(w, report.MissingRequired)
	drawMostMissing(w, report.MostMissing)
	drawInvalidValues(w, report.InvalidValues)
	drawRecommendedCoverage(w, report.RecommendedCoverage)
	drawByType(w, report.ByType)
	drawCoverageMatrix(w, report.CoverageMatrix)
	drawRemediations(w, report.Remediations)
	drawDetails(w, report.Details)
	drawActionPlan(w, report.Actions)
}

func drawSummary(w io.Writer, s model.AuditSummary) {
	tw := newTable("Overall Compliance")
	tw.AppendRows([]table.Row{
		{"Total resources", s.Total},
		{"Compliant (all required tags)", fmt.Sprintf("%d (%.1f%%)", s.Compliant, s.ComplianceRate)},
		{"Non-compliant", s.NonCompliant},
		{"Average compliance score", fmt.Sprintf("%.1f/100", s.AverageScore)},
		{"Rating", ratingColor(s.Rating).Sprint(s.Rating)},
		{"Most missing required tag", orDash(s.MostMissingTag)},
		{"Resources needing attention (score < 70)", s.NeedingAttention},
		{"Resources with invalid values", s.WithInvalidValues},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	fmt.Fprintln(w, tw.Render())
}

func drawMissingRequired(w io.Writer, counts []model.TagCount) {
	tw := newTable("Missing Required Tags")
	tw.AppendHeader(table.Row{"Tag", "Missing", "Percent"})
	for _, c := range counts {
		color := text.FgGreen
		if c.Count > 0 {
			color = text.FgRed
		}
		tw.AppendRow(table.Row{c.Tag, color.Sprint(c.Count), fmt.Sprintf("%.1f%%", c.Percent)})
	}
	tw.SetColumnConfigs(rightAligned(2, 3))
	fmt.Fprintln(w, tw.Render())
}

func drawMostMissing(w io.Writer, evals []model.ResourceCompliance) {
	if len(evals) == 0 {
		return
	}

	tw := newTable("Resources Missing the Most Required Tags")
	tw.AppendHeader(table.Row{"Resource", "Type", "Missing", "Tags"})
	for _, e := range evals {
		tw.AppendRow(table.Row{
			e.Resource.Name,
			e.Resource.Type,
			text.FgRed.Sprint(len(e.MissingRequired)),
			strings.Join(e.MissingRequired, ", "),
		})
	}
	fmt.Fprintln(w, tw.Render())
}

func drawInvalidValues(w io.Writer, evals []model.ResourceCompliance) {
	if len(evals) == 0 {
		return
	}

	tw := newTable("Invalid Tag Values")
	tw.AppendHeader(table.Row{"Resource", "Tag", "Value", "Allowed"})
	for _, e := range evals {
		for _, inv := range e.InvalidTags {
			tw.AppendRow(table.Row{
				e.Resource.Name,
				inv.Tag,
				text.FgRed.Sprintf("'%s'", inv.Value),
				strings.Join(inv.ValidValues, ", "),
			})
		}
	}
	fmt.Fprintln(w, tw.Render())
}

func drawRecommendedCoverage(w io.Writer, coverage []model.TagCoverage) {
	tw := newTable("Recommended Tag Coverage")
	tw.AppendHeader(table.Row{"Tag", "Present", "Coverage", "Status"})
	for _, c := range coverage {
		tw.AppendRow(table.Row{
			c.Tag,
			fmt.Sprintf("%d/%d", c.Present, c.Total),
			fmt.Sprintf("%.1f%%", c.Percent),
			statusColor(c.Status).Sprint(c.Status),
		})
	}
	tw.SetColumnConfigs(rightAligned(2, 3))
	fmt.Fprintln(w, tw.Render())
}

func drawByType(w io.Writer, types []model.TypeCompliance) {
	tw := newTable("Compliance by Resource Type")
	tw.AppendHeader(table.Row{"Type", "Compliant", "Rate", "Status"})
	for _, t := range types {
		tw.AppendRow(table.Row{
			t.Type,
			fmt.Sprintf("%d/%d", t.Compliant, t.Total),
			fmt.Sprintf("%.1f%%", t.Percent),
			statusColor(t.Status).Sprint(t.Status),
		})
	}
	tw.SetColumnConfigs(rightAligned(2, 3))
	fmt.Fprintln(w, tw.Render())
}

func drawCoverageMatrix(w io.Writer, matrix []model.TagCoverage) {
	tw := newTable("Tag Coverage Matrix")
	tw.AppendHeader(table.Row{"Tag", "Kind", "Present", "Coverage", "Status"})
	for _, c := range matrix {
		kind := "recommended"
		if c.Required {
			kind = "required"
		}
		tw.AppendRow(table.Row{
			c.Tag,
			kind,
			fmt.Sprintf("%d/%d", c.Present, c.Total),
			fmt.Sprintf("%.1f%%", c.Percent),
			statusColor(c.Status).Sprint(c.Status),
		})
	}
	tw.SetColumnConfigs(rightAligned(3, 4))
	fmt.Fprintln(w, tw.Render())
}

func drawRemediations(w io.Writer, remediations []model.Remediation) {
	if len(remediations) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🔧 Remediation Commands"))
	for _, r := range remediations {
		fmt.Fprintf(w, "\n # %s\n", text.FgHiYellow.Sprint(r.Resource))
		for _, cmd := range r.Commands {
			fmt.Fprintf(w, " %s\n", cmd)
		}
	}
	fmt.Fprintln(w)
}

func drawDetails(w io.Writer, evals []model.ResourceCompliance) {
	if len(evals) == 0 {
		return
	}

	tw := newTable("Resource Details")
	tw.AppendHeader(table.Row{"Resource", "Type", "Group", "Score", "Status", "Missing Required"})
	for _, e := range evals {
		tw.AppendRow(table.Row{
			e.Resource.Name,
			e.Resource.Type,
			e.Resource.ResourceGroup,
			fmt.Sprintf("%.1f", e.Score),
			resourceStatusColor(e.Status).Sprint(e.Status),
			orDash(strings.Join(e.MissingRequired, ", ")),
		})
	}
	tw.SetColumnConfigs(rightAligned(4))
	fmt.Fprintln(w, tw.Render())
}

func drawActionPlan(w io.Writer, actions []model.Action) {
	tw := newTable("Action Plan")
	tw.AppendHeader(table.Row{"Priority", "Action", "Impact", "Effort"})
	for _, a := range actions {
		tw.AppendRow(table.Row{
			priorityColor(a.Priority).Sprint(a.Priority),
			a.Title,
			a.Impact,
			orDash(a.Effort),
		})
	}
	fmt.Fprintln(w, tw.Render())
}

func newTable(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.SetStyle(table.StyleRounded)
	return tw
}

func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, n := range columns {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	return configs
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func statusColor(s model.Status) text.Color {
	switch s {
	case model.StatusOK, model.StatusGood:
		return text.FgHiGreen
	case model.StatusWarning, model.StatusLow:
		return text.FgHiYellow
	}
	return text.FgHiRed
}

func resourceStatusColor(s model.ResourceStatus) text.Color {
	switch s {
	case model.ResourceCompliant:
		return text.FgHiGreen
	case model.ResourcePartial:
		return text.FgHiYellow
	}
	return text.FgHiRed
}

func ratingColor(r model.Rating) text.Color {
	switch r {
	case model.RatingExcellent, model.RatingGood:
		return text.FgHiGreen
	case model.RatingNeedsImprovement:
		return text.FgHiYellow
	}
	return text.FgHiRed
}

func priorityColor(p model.Priority) text.Color {
	switch p {
	case model.PriorityCritical:
		return text.FgHiRed
	case model.PriorityHigh:
		return text.FgHiYellow
	}
	return text.FgHiCyan
}
