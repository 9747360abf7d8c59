package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawProviderComplianceTable compares compliance across inventory sources
func DrawProviderComplianceTable(w io.Writer, providers []model.ProviderCompliance) {
	sorted := make([]model.ProviderCompliance, len(providers))
	copy(sorted, providers)
	providerOrder := map[string]int{model.ProviderAzure: 1, model.ProviderAWS: 2, model.ProviderGCP: 3, model.ProviderSynthetic: 4}
	sort.SliceStable(sorted, func(i, j int) bool {
		return providerOrder[sorted[i].Provider] < providerOrder[sorted[j].Provider]
	})

	tw := newTable("Compliance by Provider")
	tw.AppendHeader(table.Row{"Provider", "Resources", "Compliant", "Rate", "Avg Score", "Rating"})
	for _, p := range sorted {
		tw.AppendRow(table.Row{
			text.FgHiCyan.Sprint(strings.ToUpper(p.Provider)),
			p.Total,
			p.Compliant,
			fmt.Sprintf("%.1f%%", p.Percent),
			fmt.Sprintf("%.1f", p.AverageScore),
			ratingColor(p.Rating).Sprint(p.Rating),
		})
	}
	tw.SetColumnConfigs(rightAligned(2, 3, 4, 5))
	fmt.Fprintln(w, tw.Render())
}

// DrawSourceStatus lists which inventory sources were queried
func DrawSourceStatus(w io.Writer, sources []string, resources []model.Resource) {
	counts := make(map[string]int)
	for _, r := range resources {
		counts[r.Provider]++
	}

	tw := newTable("Inventory Sources")
	tw.AppendHeader(table.Row{"Source", "Resources", "Status"})
	for _, src := range sources {
		status := text.FgHiGreen.Sprint("✅ Listed")
		if counts[src] == 0 {
			status = text.FgHiYellow.Sprint("⚠ No resources")
		}
		tw.AppendRow(table.Row{text.FgHiCyan.Sprint(strings.ToUpper(src)), counts[src], status})
	}
	tw.SetColumnConfigs(rightAligned(2))
	fmt.Fprintln(w, tw.Render())
}
