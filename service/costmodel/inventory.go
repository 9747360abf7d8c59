package costmodel

import (
	"cmp"
	"slices"

	"github.com/elC0mpa/tag-doctor/model"
)

// BuildInventory flattens the groups into one row per resource
func BuildInventory(groups []*ResourceGroup, hours float64) []model.InventoryItem {
	var items []model.InventoryItem
	for _, g := range groups {
		for r := range g.All() {
			items = append(items, model.InventoryItem{
				Name:          r.Name(),
				Type:          string(r.Kind()),
				ResourceGroup: g.Name(),
				Location:      r.Location(),
				Status:        string(r.Status()),
				Created:       r.CreatedAt().Format("2006-01-02"),
				Tags:          r.Tags(),
				MonthlyCost:   r.MonthlyCost(hours),
			})
		}
	}
	return items
}

func SummarizeByType(items []model.InventoryItem) []model.CostSummary {
	return summarize(items, func(i model.InventoryItem) string { return i.Type })
}

func SummarizeByGroup(items []model.InventoryItem) []model.CostSummary {
	return summarize(items, func(i model.InventoryItem) string { return i.ResourceGroup })
}

// summarize groups rows by key, sorted by key
func summarize(items []model.InventoryItem, key func(model.InventoryItem) string) []model.CostSummary {
	byKey := make(map[string]*model.CostSummary)
	for _, item := range items {
		k := key(item)
		s, ok := byKey[k]
		if !ok {
			s = &model.CostSummary{Key: k}
			byKey[k] = s
		}
		s.Count++
		s.Total += item.MonthlyCost
	}

	out := make([]model.CostSummary, 0, len(byKey))
	for _, s := range byKey {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b model.CostSummary) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
