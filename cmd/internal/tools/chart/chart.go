package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = renderChart(f, args, tools.ErrorKindFor(MessageError, ParityError))
	if err != nil {
		fmt.Println(err)
	}
}

func renderChart(out io.Writer, resultFiles []string, kind tools.ErrorKind) error {
	// loop through all the results files and collect data needed for displaying
	stats, xvalues, err := tools.LoadAllResults(resultFiles)
	if err != nil {
		return err
	}

	// create a new bar instance
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Symbol " + kind.String() + " Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Symbol Error Probability",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining " + kind.String(),
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xAxisNames(xvalues))

	for i, s := range stats {
		bar.AddSeries(resultFiles[i], series(s, xvalues, kind))
	}

	return bar.Render(out)
}

func xAxisNames(values []float64) []string {
	strs := make([]string, 0, len(values))
	for _, n := range values {
		strs = append(strs, strconv.FormatFloat(n, 'g', -1, 64))
	}
	return strs
}

func series(stat *tools.SimulationStats, values []float64, kind tools.ErrorKind) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: kind.Mean(x),
		}
	}
	return results
}
