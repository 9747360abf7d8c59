package utils

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"

	azureBlue = "#0078D4"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawTrendChart renders six months of totals, the most expensive month in red
func DrawTrendChart(w io.Writer, account model.AccountInfo, monthlyCosts []model.CostInfo) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🏥  TAG DOCTOR TREND"))
	fmt.Fprintf(w, " Account: %s (%s)\n", text.FgBlue.Sprint(account.AccountName), account.AccountID)
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(monthlyCosts)

	for idx, monthlyCost := range monthlyCosts {
		start := ""
		if monthlyCost.Start != nil {
			start = *monthlyCost.Start
		}

		bc.Push(barchart.BarData{
			Label: getBarLabel(start, monthlyCost),
			Values: []barchart.BarValue{
				{
					Value: monthlyCost.CostGroup["Total"].Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w)

	bc.Draw()
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

// DrawCostByTypeChart renders the modelled monthly cost per resource type
func DrawCostByTypeChart(w io.Writer, byType []model.CostSummary) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 💰 Monthly Cost by Resource Type"))

	bc := barchart.New(100, 16)
	for _, s := range byType {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: $%.2f", s.Key, s.Total),
			Values: []barchart.BarValue{
				{
					Name:  s.Key,
					Value: s.Total,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(azureBlue)),
				},
			},
		})
	}

	bc.Draw()
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func getBarLabel(date string, monthlyCost model.CostInfo) string {
	total := monthlyCost.CostGroup["Total"]

	parsedTime, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Sprintf("%s: %.2f %s", date, total.Amount, total.Unit)
	}

	return fmt.Sprintf("%s: %.2f %s", parsedTime.Format("Jan"), total.Amount, total.Unit)
}

func assignRankedColors(allCosts []model.CostInfo) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type costWithIndex struct {
		index int
		value float64
	}

	costsToSort := make([]costWithIndex, len(allCosts))
	for i, cost := range allCosts {
		costsToSort[i] = costWithIndex{
			index: i,
			value: cost.CostGroup["Total"].Amount,
		}
	}

	sort.SliceStable(costsToSort, func(i, j int) bool {
		return costsToSort[i].value > costsToSort[j].value
	})

	resultColors := make([]string, len(allCosts))
	for rank, sortedCost := range costsToSort {
		color := palette[len(palette)-1]
		if rank < len(palette) {
			color = palette[rank]
		}
		resultColors[sortedCost.index] = color
	}

	return resultColors
}
