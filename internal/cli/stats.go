package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

// NewStatsCmd создаёт команду вычисления скалярной статистики.
func NewStatsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts StatOpts

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute a statistic over a (filtered) population",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			opts.HasP = cmd.Flags().Changed("p")

			stat, err := client.GetStat(opts)
			if err != nil {
				return err
			}

			headers := []string{"ATTRIBUTE", "STAT", "COUNT", "VALUE"}
			rows := [][]string{{
				stat.Attribute,
				stat.Stat,
				strconv.Itoa(stat.Count),
				formatFloat(stat.Value),
			}}

			out.Print(headers, rows, stat)
			return nil
		},
	}

	addFilterFlags(cmd, &opts.FilterOpts)
	cmd.Flags().StringVar(&opts.Attribute, "attribute", "", "Target numeric attribute")
	cmd.Flags().StringVar(&opts.Stat, "stat", "", "Statistic: min, max, mean, median, quantile")
	cmd.Flags().Float64Var(&opts.P, "p", 0, "Quantile level in [0,1] (with --stat quantile)")
	cmd.MarkFlagRequired("attribute")
	cmd.MarkFlagRequired("stat")

	return cmd
}

// NewSummaryCmd создаёт команду сводки по всему датасету.
func NewSummaryCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Dataset summary: species distribution and per-attribute statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			summary, err := client.GetSummary()
			if err != nil {
				return err
			}

			out.Print(measurementHeaders, measurementRows(summary.Measurements), summary)
			return nil
		},
	}
}

var measurementHeaders = []string{"ATTRIBUTE", "MIN", "MAX", "MEAN", "MEDIAN", "STD"}

// measurementRows форматирует сводки атрибутов в алфавитном порядке.
func measurementRows(measurements map[string]AttributeSummary) [][]string {
	attrs := make([]string, 0, len(measurements))
	for attr := range measurements {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	rows := make([][]string, len(attrs))
	for i, attr := range attrs {
		m := measurements[attr]
		rows[i] = []string{
			attr,
			formatFloat(m.Min),
			formatFloat(m.Max),
			formatFloat(m.Mean),
			formatFloat(m.Median),
			formatFloat(m.Std),
		}
	}
	return rows
}
