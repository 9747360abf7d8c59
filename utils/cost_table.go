package utils

import (
	"fmt"
	"io"
	"sort"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawGroupCostTable renders actual month-to-date cost per group (resource
// group or tag value), most expensive first, with a total row
func DrawGroupCostTable(w io.Writer, account model.AccountInfo, groupLabel string, costInfo *model.CostInfo) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 💵 ACTUAL COSTS"))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	header := "Current Month"
	if costInfo.Start != nil && costInfo.End != nil {
		header = fmt.Sprintf("Current Month\n(%s\n%s)", *costInfo.Start, *costInfo.End)
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Account", groupLabel, header})

	ordered := orderCostGroups(costInfo.CostGroup)

	var total float64
	unit := "USD"
	rows := make([]table.Row, 0, len(ordered)+1)
	for _, group := range ordered {
		total += group.Amount
		unit = group.Unit
		rows = append(rows, table.Row{
			"",
			text.FgGreen.Sprint(group.Name),
			fmt.Sprintf("%.2f %s", group.Amount, group.Unit),
		})
	}

	if len(rows) == 0 {
		rows = append(rows, table.Row{"", text.FgYellow.Sprint("no costs reported"), "-"})
	}
	rows[len(rows)/2][0] = text.FgBlue.Sprint(account.AccountName)

	tw.AppendRows(rows)
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"", text.FgHiGreen.Sprint("Total Costs"), text.FgHiGreen.Sprintf("%.2f %s", total, unit)})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlignHeader: text.VAlignMiddle},
		{Number: 2, VAlignHeader: text.VAlignMiddle},
		{Number: 3, Align: text.AlignRight},
	})
	fmt.Fprintln(w, tw.Render())
}

func orderCostGroups(costGroups model.CostGroup) []model.ServiceCost {
	sorted := make([]model.ServiceCost, 0, len(costGroups))
	for key, group := range costGroups {
		sorted = append(sorted, model.ServiceCost{
			Name:   key,
			Amount: group.Amount,
			Unit:   group.Unit,
		})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Amount == sorted[j].Amount {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Amount > sorted[j].Amount
	})

	return sorted
}
