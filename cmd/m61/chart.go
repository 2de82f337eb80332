package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart writes an HTML page plotting throughput and best run time
// against the worker count.
func renderChart(w io.Writer, results []benchResult, digits int) error {
	labels := make([]string, len(results))
	mbps := make([]opts.LineData, len(results))
	ms := make([]opts.LineData, len(results))
	for i, r := range results {
		labels[i] = strconv.Itoa(r.Workers)
		mbps[i] = opts.LineData{Value: r.MBps}
		ms[i] = opts.LineData{Value: float64(r.Best.Microseconds()) / 1000}
	}

	throughput := charts.NewLine()
	throughput.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Reduction throughput",
			Subtitle: fmt.Sprintf("%d × 64-bit digits mod 2^61-1", digits),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "workers"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MB/s"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	throughput.SetXAxis(labels).AddSeries("best MB/s", mbps)

	latency := charts.NewLine()
	latency.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Best run time"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "workers"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	latency.SetXAxis(labels).AddSeries("best ms", ms)

	page := components.NewPage().SetPageTitle("m61 reduction benchmark")
	page.AddCharts(throughput, latency)
	return page.Render(w)
}
