package cmd

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwei/folio"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// chartCmd renders the net-worth reconstruction to a PNG.
type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the net-worth curve to a PNG file" }
func (*chartCmd) Usage() string {
	return `fol chart [-o <file.png>]

  Renders the year-by-year net-worth reconstruction as a chart: cumulative
  cost, total assets and the 8% counterfactual baseline.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "networth.png", "Output PNG file.")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	hist, err := DecodeHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading history:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	points := folio.NetWorthSeries(ledger, quotes, hist)
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to chart: the ledger is empty.")
		return subcommands.ExitFailure
	}

	if err := renderChart(points, c.output); err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering chart:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}

func renderChart(points []folio.ChartDataPoint, output string) error {
	p := plot.New()
	p.Title.Text = "Net worth"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "TWD"
	p.Add(plotter.NewGrid())

	cost := make(plotter.XYs, len(points))
	total := make(plotter.XYs, len(points))
	est := make(plotter.XYs, len(points))
	for i, pt := range points {
		cost[i] = plotter.XY{X: float64(pt.Year), Y: pt.Cost}
		total[i] = plotter.XY{X: float64(pt.Year), Y: pt.TotalAssets}
		est[i] = plotter.XY{X: float64(pt.Year), Y: pt.EstTotalAssets}
	}

	costLine, err := plotter.NewLine(cost)
	if err != nil {
		return err
	}
	costLine.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	totalLine, err := plotter.NewLine(total)
	if err != nil {
		return err
	}
	totalLine.Color = color.RGBA{G: 128, B: 255, A: 255}
	totalLine.Width = vg.Points(2)

	estLine, err := plotter.NewLine(est)
	if err != nil {
		return err
	}
	estLine.Color = color.RGBA{R: 255, A: 120}
	estLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(costLine, totalLine, estLine)
	p.Legend.Add("cost", costLine)
	p.Legend.Add("total assets", totalLine)
	p.Legend.Add("8% baseline", estLine)

	return p.Save(8*vg.Inch, 4*vg.Inch, output)
}
