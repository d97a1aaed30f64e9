package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/npillmayer/snarkmr/space"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func labels(rows []row) []string {
	ls := make([]string, len(rows))
	for i, r := range rows {
		ls[i] = join(r.block)
	}
	return ls
}

// renderHTML writes an HTML page with a bar chart of indices per block.
func renderHTML(w io.Writer, sp space.Space, rows []row) error {
	title := fmt.Sprintf("Partition of %v", sp)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d blocks", len(rows))}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	items := make([]opts.BarData, len(rows))
	for i, r := range rows {
		items[i] = opts.BarData{Value: r.count}
	}
	bar.SetXAxis(labels(rows)).
		AddSeries("indices", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}

// renderPNG writes a PNG image with a bar chart of indices per block.
func renderPNG(w io.Writer, sp space.Space, rows []row) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Partition of %v", sp)
	p.X.Label.Text = "block"
	p.Y.Label.Text = "indices"
	values := make(plotter.Values, len(rows))
	for i, r := range rows {
		values[i] = float64(r.count)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	if len(rows) <= 32 {
		p.NominalX(labels(rows)...)
	}
	wt, err := p.WriterTo(16*vg.Centimeter, 9*vg.Centimeter, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
