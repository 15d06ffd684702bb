package report

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

// BuildCostChart builds a stacked bar chart of setup versus holding cost
// per item, in ranked order.
func BuildCostChart(policy solver.Policy, palette Palette) *charts.Bar {
	ids := make([]string, len(policy.Items))
	setup := make([]opts.BarData, len(policy.Items))
	holding := make([]opts.BarData, len(policy.Items))
	for i, item := range policy.Items {
		ids[i] = item.ID
		setup[i] = opts.BarData{Value: item.SetupCost}
		holding[i] = opts.BarData{Value: item.HoldingCost}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cost Breakdown per Item"}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       policy.InstanceName,
			BackgroundColor: palette.Background,
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cost ($)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(ids).
		AddSeries("Setup Cost", setup,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Setup}),
			charts.WithBarChartOpts(opts.BarChart{Stack: "cost"}),
		).
		AddSeries("Holding Cost", holding,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Holding}),
			charts.WithBarChartOpts(opts.BarChart{Stack: "cost"}),
		)

	return bar
}
