package utils

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 700
	chartHeight = 600
)

var ErrNothingToPlot = errors.New("inventory is empty, nothing to plot")

var csvHeader = []string{"name", "type", "resource_group", "location", "status", "created", "tags", "monthly_cost"}

// FormatTags renders tags as sorted k=v pairs joined by ';'
func FormatTags(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+tags[k])
	}
	return strings.Join(pairs, ";")
}

func WriteInventoryCSV(w io.Writer, items []model.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.Name,
			item.Type,
			item.ResourceGroup,
			item.Location,
			item.Status,
			item.Created,
			FormatTags(item.Tags),
			strconv.FormatFloat(item.MonthlyCost, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record %s: %w", item.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func ExportInventoryCSV(path string, items []model.InventoryItem) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteInventoryCSV(w, items)
	})
}

// RenderAnalysisPNG draws the monthly cost per type as a bar chart next to
// the resource count per type as a pie chart
func RenderAnalysisPNG(w io.Writer, items []model.InventoryItem) error {
	if len(items) == 0 {
		return ErrNothingToPlot
	}

	var byType []model.CostSummary
	for _, item := range items {
		i := slices.IndexFunc(byType, func(s model.CostSummary) bool { return s.Key == item.Type })
		if i < 0 {
			byType = append(byType, model.CostSummary{Key: item.Type})
			i = len(byType) - 1
		}
		byType[i].Count++
		byType[i].Total += item.MonthlyCost
	}
	slices.SortFunc(byType, func(a, b model.CostSummary) int { return strings.Compare(a.Key, b.Key) })

	maxCost := 0.0
	bars := make([]chart.Value, 0, len(byType))
	pieValues := make([]chart.Value, 0, len(byType))
	for _, s := range byType {
		maxCost = max(maxCost, s.Total)
		bars = append(bars, chart.Value{
			Label: s.Key,
			Value: s.Total,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("0078D4"),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
		pieValues = append(pieValues, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Key, float64(s.Count)/float64(len(items))*100),
			Value: float64(s.Count),
		})
	}
	if maxCost == 0 {
		maxCost = 1
	}

	costChart := chart.BarChart{
		Title:      "Monthly Cost by Resource Type",
		Background: chart.Style{Padding: chart.Box{Top: 50, Bottom: 20}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		BarSpacing: 40,
		YAxis: chart.YAxis{
			Name:  "Monthly Cost ($)",
			Range: &chart.ContinuousRange{Min: 0, Max: maxCost * 1.1},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	distribution := chart.PieChart{
		Title:  "Resource Distribution by Type",
		Width:  chartWidth,
		Height: chartHeight,
		Values: pieValues,
	}

	var left, right bytes.Buffer
	if err := costChart.Render(chart.PNG, &left); err != nil {
		return fmt.Errorf("failed to render cost chart: %w", err)
	}
	if err := distribution.Render(chart.PNG, &right); err != nil {
		return fmt.Errorf("failed to render distribution chart: %w", err)
	}

	return composeSideBySide(w, &left, &right)
}

func ExportAnalysisPNG(path string, items []model.InventoryItem) error {
	return writeFile(path, func(w io.Writer) error {
		return RenderAnalysisPNG(w, items)
	})
}

func composeSideBySide(w io.Writer, left, right io.Reader) error {
	leftImg, err := png.Decode(left)
	if err != nil {
		return fmt.Errorf("failed to decode chart: %w", err)
	}
	rightImg, err := png.Decode(right)
	if err != nil {
		return fmt.Errorf("failed to decode chart: %w", err)
	}

	lb, rb := leftImg.Bounds(), rightImg.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy())))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Over)

	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
