package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawInventoryTable(w io.Writer, title string, items []model.InventoryItem) {
	tw := newTable(title)
	tw.AppendHeader(table.Row{"Name", "Type", "Resource Group", "Location", "Status", "Created", "Tags", "Monthly Cost"})

	var total float64
	for _, item := range items {
		status := text.FgGreen.Sprint(item.Status)
		if item.Status != "Running" {
			status = text.FgYellow.Sprint(item.Status)
		}

		tw.AppendRow(table.Row{
			item.Name,
			item.Type,
			item.ResourceGroup,
			item.Location,
			status,
			item.Created,
			orDash(FormatTags(item.Tags)),
			fmt.Sprintf("$%.2f", item.MonthlyCost),
		})
		total += item.MonthlyCost
	}

	tw.AppendFooter(table.Row{"", "", "", "", "", "", "Total", fmt.Sprintf("$%.2f", total)})
	tw.SetColumnConfigs(rightAligned(8))
	fmt.Fprintln(w, tw.Render())
}

// DrawCostSummaryTable renders per-type or per-group aggregates
func DrawCostSummaryTable(w io.Writer, title, keyHeader string, summaries []model.CostSummary) {
	tw := newTable(title)
	tw.AppendHeader(table.Row{keyHeader, "Count", "Total Monthly Cost"})
	for _, s := range summaries {
		tw.AppendRow(table.Row{s.Key, s.Count, fmt.Sprintf("$%.2f", s.Total)})
	}
	tw.SetColumnConfigs(rightAligned(2, 3))
	fmt.Fprintln(w, tw.Render())
}

func DrawOptimizationSteps(w io.Writer, steps []model.OptimizationStep) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🔧 OPTIMIZATION OPERATIONS"))

	phase := 0
	for _, step := range steps {
		if step.Phase != phase {
			phase = step.Phase
			fmt.Fprintf(w, "\n %d. %s...\n", step.Phase, step.Title)
		}

		switch {
		case step.Err != nil:
			fmt.Fprintf(w, "    %s %s: %v\n", text.FgHiRed.Sprint("✗"), step.Resource, step.Err)
		case step.Change != nil:
			fmt.Fprintf(w, "    %s %s ($%.2f -> $%.2f, saves %s)\n",
				text.FgHiGreen.Sprint("✓"), step.Message, step.Change.OldCost, step.Change.NewCost, savings(step.Change.Savings()))
		default:
			fmt.Fprintf(w, "    %s %s\n", text.FgHiGreen.Sprint("✓"), step.Message)
		}
	}
	fmt.Fprintln(w)
}

func DrawCostComparison(w io.Writer, c model.CostComparison) {
	tw := newTable("Cost Comparison")
	tw.AppendRows([]table.Row{
		{"Before Optimization", fmt.Sprintf("$%.2f/month", c.Before)},
		{"After Optimization", fmt.Sprintf("$%.2f/month", c.After)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Monthly Savings", fmt.Sprintf("%s (%.1f%%)", savings(c.Savings()), c.SavingsPercent())},
		{"Annual Savings", savings(c.AnnualSavings())},
	})
	tw.SetColumnConfigs(rightAligned(2))
	fmt.Fprintln(w, tw.Render())
}

func savings(amount float64) string {
	if amount < 0 {
		return text.FgHiRed.Sprintf("-$%.2f", -amount)
	}
	return text.FgHiGreen.Sprintf("$%.2f", amount)
}
